package findgames

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bmizerany/pat"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath(""); got != "/find_games" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/api"); got != "/api/find_games" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("api/", WithRoutePath("search")); got != "/api/search" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersPostHandler(t *testing.T) {
	mux := pat.New()
	pattern, err := New(WithRecommender(&stubRecommender{})).RegisterRoutes(mux, "/api")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/api/find_games" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodPost, pattern, strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestComponent_OptionsCopy(t *testing.T) {
	c := New(WithRoutePath("/search"))
	opts := c.Options()
	opts.RoutePath = "/changed"
	if got := c.Options().RoutePath; got != "/search" {
		t.Fatalf("expected component options to be immutable, got %q", got)
	}
}
