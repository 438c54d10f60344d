package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/goliatone/go-gamefinder/components/findgames"
	"github.com/goliatone/go-gamefinder/components/findgames/finderwiring"
	"github.com/goliatone/go-gamefinder/internal/config"
	"github.com/goliatone/go-gamefinder/internal/web"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/recommend"
	"github.com/goliatone/go-gamefinder/pkg/renderers/vanilla"
)

type application struct {
	logger *slog.Logger
	page   http.Handler
	finder *findgames.Component
	cors   *cors.Cors
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	configPath := flag.String("config", "", "configuration file (yaml)")
	addr := flag.String("addr", "", "HTTP network address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger := newLogger(cfg.Server.LogLevel)

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	keys := recommend.NewKeyRing(cfg.LLM.Keys()...)
	if keys.Len() == 0 {
		logger.Warn("no API keys configured, searches will fail")
	}
	gemini, err := recommend.NewGemini(keys,
		recommend.WithModel(cfg.LLM.Model),
		recommend.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create recommender: %v", err)
	}

	app, err := newApplication(cfg, logger, gemini, catalog)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	handler, err := app.routes()
	if err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		Handler:      handler,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("starting server", "addr", cfg.Server.Addr, "model", gemini.Model(), "keys", keys.Len())
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func newApplication(cfg config.Config, logger *slog.Logger, recommender recommend.Recommender, catalog model.Catalog) (*application, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	finderComponent := findgames.New(
		findgames.WithRecommender(recommender),
		findgames.WithLogger(logger),
		findgames.WithGuard(findgames.OriginGuard(origins...)),
	)

	renderer, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}
	endpoint := cfg.Endpoint(finderwiring.EndpointURL(localOrigin(cfg.Server.Addr), ""))
	page, err := web.New(renderer,
		web.WithLogger(logger),
		web.WithFinderOptions(
			finder.WithEndpoint(endpoint),
			finder.WithCatalog(catalog),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("page handler: %w", err)
	}

	return &application{
		logger: logger,
		page:   page,
		finder: finderComponent,
		cors:   newCORS(origins),
	}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func loadCatalog(path string) (model.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return model.DefaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return model.Catalog{}, err
	}
	defer f.Close()
	return model.LoadCatalog(f)
}

// localOrigin returns the origin the server's own page uses to reach the
// search API on addr.
func localOrigin(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://127.0.0.1:5000"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
