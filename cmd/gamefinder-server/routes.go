package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	"github.com/goliatone/go-gamefinder/pkg/renderers/vanilla"
)

// AssetsPath serves the embedded page assets.
const AssetsPath = "/assets/"

func (app *application) routes() (http.Handler, error) {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	mux := pat.New()

	api := apiMux{mux: mux, chain: alice.New(app.cors.Handler)}
	if _, err := app.finder.RegisterRoutes(api, ""); err != nil {
		return nil, err
	}

	mux.Get(AssetsPath, http.StripPrefix(AssetsPath, http.FileServer(http.FS(vanilla.AssetsFS()))))
	mux.Get("/", exactPath("/", app.page))
	mux.Post("/", exactPath("/", app.page))

	return standardMiddleware.Then(mux), nil
}

// apiMux registers API handlers behind CORS, including the preflight route.
type apiMux struct {
	mux   *pat.PatternServeMux
	chain alice.Chain
}

func (m apiMux) Post(pattern string, handler http.Handler) {
	wrapped := m.chain.Then(handler)
	m.mux.Post(pattern, wrapped)
	m.mux.Options(pattern, wrapped)
}

func exactPath(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
}
