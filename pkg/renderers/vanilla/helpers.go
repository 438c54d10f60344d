package vanilla

import "strings"

// sanitizeClassList drops blank tokens and the reserved "gamefinder-" prefix
// so overrides extend the chrome classes instead of replacing them.
func sanitizeClassList(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "gamefinder-") {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
