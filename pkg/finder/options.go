package finder

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/render"
)

const (
	// DefaultEndpoint is the search endpoint used for local development.
	DefaultEndpoint = "http://127.0.0.1:5000/find_games"
	// DefaultIdleLabel is the submit button text while idle.
	DefaultIdleLabel = "Find My Game"
	// DefaultBusyLabel is the submit button text while a request runs.
	DefaultBusyLabel = "Thinking..."
	// DefaultMaxErrorBody bounds how much of an error response is read.
	DefaultMaxErrorBody int64 = 1 << 20
)

// Observer is notified on every lifecycle transition.
type Observer func(Phase)

// Options configures a Controller.
type Options struct {
	Endpoint      string
	HTTPClient    *http.Client
	Catalog       model.Catalog
	IdleLabel     string
	BusyLabel     string
	MaxErrorBody  int64
	Logger        *slog.Logger
	Observer      Observer
	ResultOptions []render.ResultOptionFn

	idleOverride bool
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the development defaults with the embedded catalog.
func DefaultOptions() Options {
	return Options{
		Endpoint:     DefaultEndpoint,
		HTTPClient:   http.DefaultClient,
		Catalog:      model.MustDefaultCatalog(),
		IdleLabel:    DefaultIdleLabel,
		BusyLabel:    DefaultBusyLabel,
		MaxErrorBody: DefaultMaxErrorBody,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// NewOptions applies fns over DefaultOptions and restores blank fields.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.Endpoint) == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.IdleLabel == "" {
		opts.IdleLabel = DefaultIdleLabel
		opts.idleOverride = false
	}
	if opts.BusyLabel == "" {
		opts.BusyLabel = DefaultBusyLabel
	}
	if opts.MaxErrorBody <= 0 {
		opts.MaxErrorBody = DefaultMaxErrorBody
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	opts.Catalog = opts.Catalog.Clone()
	return opts
}

// WithEndpoint sets the search endpoint URL.
func WithEndpoint(endpoint string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = strings.TrimSpace(endpoint)
	}
}

// WithHTTPClient sets the client used for the search request.
func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

// WithCatalog sets the option lists rendered into the groups.
func WithCatalog(catalog model.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = catalog.Clone()
	}
}

// WithLabels overrides the idle and busy submit button labels. A non-empty
// idle label replaces the button's own text when a submission finishes.
func WithLabels(idle, busy string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.IdleLabel = idle
		o.idleOverride = strings.TrimSpace(idle) != ""
		o.BusyLabel = busy
	}
}

// WithMaxErrorBody bounds how many bytes of an error body are decoded.
func WithMaxErrorBody(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxErrorBody = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithObserver registers a lifecycle observer.
func WithObserver(fn Observer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Observer = fn
	}
}

// WithResultOptions forwards options to the result renderer.
func WithResultOptions(fns ...render.ResultOptionFn) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ResultOptions = append(o.ResultOptions, fns...)
	}
}
