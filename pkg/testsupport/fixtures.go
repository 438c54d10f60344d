package testsupport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-gamefinder/pkg/dom"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/model"
)

// HostPage is a minimal host document carrying every element the finder
// controller consumes, without styling.
const HostPage = `<!DOCTYPE html>
<html>
<head><title>finder</title></head>
<body>
<form id="game-finder-form">
  <textarea id="description" name="description"></textarea>
  <div id="genres"></div>
  <div id="devices"></div>
  <div id="mechanics"></div>
  <div id="vibes"></div>
  <div id="group-toggle">
    <button type="button" class="toggle-button active" data-value="false">Solo</button>
    <button type="button" class="toggle-button" data-value="true">With Friends</button>
  </div>
  <button type="submit" id="find-game-btn">Find My Game</button>
</form>
<div id="loader" style="display: none"></div>
<div id="error-message" style="display: none"></div>
<div id="results-container"></div>
</body>
</html>`

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// NewDocument parses HostPage.
func NewDocument(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(HostPage))
	if err != nil {
		t.Fatalf("parse host page: %v", err)
	}
	return doc
}

// NewController builds and initialises a controller over a fresh HostPage.
func NewController(t *testing.T, fns ...finder.OptionFn) *finder.Controller {
	t.Helper()
	doc := NewDocument(t)
	elements, err := finder.ElementsFromDocument(doc, finder.DefaultIDs())
	if err != nil {
		t.Fatalf("resolve elements: %v", err)
	}
	ctrl, err := finder.New(elements, fns...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := ctrl.Init(); err != nil {
		t.Fatalf("init controller: %v", err)
	}
	return ctrl
}

// SearchRequest is one request captured by a SearchServer.
type SearchRequest struct {
	Method      string
	ContentType string
	Filters     model.SearchFilters
	RawBody     string
}

// SearchServer is a scripted search endpoint that records every request.
type SearchServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []SearchRequest
}

// NewSearchServer responds to every request with status and body. The
// server is closed when the test ends.
func NewSearchServer(t *testing.T, status int, body string) *SearchServer {
	t.Helper()
	return NewSearchServerFunc(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// NewSearchServerFunc records requests then delegates to fn.
func NewSearchServerFunc(t *testing.T, fn http.HandlerFunc) *SearchServer {
	t.Helper()
	s := &SearchServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec := SearchRequest{
			Method:      r.Method,
			ContentType: r.Header.Get("Content-Type"),
			RawBody:     string(raw),
		}
		_ = json.Unmarshal(raw, &rec.Filters)

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		fn(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns a copy of the captured requests.
func (s *SearchServer) Requests() []SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SearchRequest(nil), s.requests...)
}
