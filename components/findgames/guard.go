package findgames

import (
	"fmt"
	"net/http"
	"strings"
)

// OriginGuard rejects browser requests whose Origin header is not listed in
// origins. Requests without an Origin header (server to server, the page
// handler, curl) pass. A "*" entry allows every origin.
func OriginGuard(origins ...string) GuardFunc {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		origin = strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
		if origin == "" {
			continue
		}
		if origin == "*" {
			return nil
		}
		allowed[origin] = struct{}{}
	}
	return func(r *http.Request) error {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			return nil
		}
		if _, ok := allowed[strings.TrimRight(strings.ToLower(origin), "/")]; ok {
			return nil
		}
		return StatusError{Code: http.StatusForbidden, Err: fmt.Errorf("origin %q not allowed", origin)}
	}
}
