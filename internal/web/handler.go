package web

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/dom"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/options"
	"github.com/goliatone/go-gamefinder/pkg/render"
	"github.com/goliatone/go-gamefinder/pkg/renderers/vanilla"
)

const (
	// ClickField carries "<group>:<label>" for option clicks and
	// "toggle:<true|false>" for the solo/group switch.
	ClickField = "click"
	// StatePrefix prefixes the hidden fields that persist group state.
	StatePrefix = "state."
	// StateWithGroup persists the solo/group switch.
	StateWithGroup = StatePrefix + "withGroup"

	toggleTarget              = "toggle"
	defaultMaxFormBytes int64 = 64 << 10
)

type Options struct {
	Page          vanilla.PageData
	FinderOptions []finder.OptionFn
	MaxFormBytes  int64
	Logger        *slog.Logger
}

type OptionFn func(*Options)

func NewOptions(fns ...OptionFn) Options {
	opts := Options{Page: vanilla.DefaultPageData(), MaxFormBytes: defaultMaxFormBytes}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.MaxFormBytes <= 0 {
		opts.MaxFormBytes = defaultMaxFormBytes
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

func WithPage(page vanilla.PageData) OptionFn {
	return func(o *Options) { o.Page = page }
}

func WithFinderOptions(fns ...finder.OptionFn) OptionFn {
	return func(o *Options) { o.FinderOptions = append(o.FinderOptions, fns...) }
}

func WithMaxFormBytes(n int64) OptionFn {
	return func(o *Options) { o.MaxFormBytes = n }
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) { o.Logger = logger }
}

// Handler renders and drives the finder page.
type Handler struct {
	renderer *vanilla.Renderer
	opts     Options
}

// New builds a page handler over renderer.
func New(renderer *vanilla.Renderer, fns ...OptionFn) (*Handler, error) {
	if renderer == nil {
		return nil, fmt.Errorf("web: missing page renderer")
	}
	return &Handler{renderer: renderer, opts: NewOptions(fns...)}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.serve(w, r, nil)
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		h.serve(w, r, r.PostForm)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, form map[string][]string) {
	ctx := r.Context()
	doc, ctrl, err := h.page(ctx)
	if err != nil {
		h.opts.Logger.Error("build finder page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer ctrl.Detach()

	if form != nil {
		h.apply(ctx, ctrl, form)
	}
	Hydrate(ctrl)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		h.opts.Logger.Error("render finder page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) page(ctx context.Context) (*dom.Document, *finder.Controller, error) {
	doc, err := h.renderer.Document(ctx, h.opts.Page)
	if err != nil {
		return nil, nil, err
	}
	elements, err := finder.ElementsFromDocument(doc, h.opts.Page.WithDefaults().IDs)
	if err != nil {
		return nil, nil, err
	}
	fns := append([]finder.OptionFn{finder.WithLogger(h.opts.Logger)}, h.opts.FinderOptions...)
	ctrl, err := finder.New(elements, fns...)
	if err != nil {
		return nil, nil, err
	}
	if err := ctrl.Init(); err != nil {
		return nil, nil, err
	}
	return doc, ctrl, nil
}

// apply replays the persisted state, then performs the posted click or, when
// no click was posted, submits the form.
func (h *Handler) apply(ctx context.Context, ctrl *finder.Controller, form map[string][]string) {
	Restore(ctx, ctrl, form)

	if click := first(form[ClickField]); click != "" {
		if !Click(ctx, ctrl, click) {
			h.opts.Logger.Warn("ignored unknown click target", "click", click)
		}
		return
	}
	ctrl.Elements().SubmitButton.Click(ctx)
}

// Restore applies the description and state.* fields to a freshly initialised
// controller. Unknown labels are ignored.
func Restore(ctx context.Context, ctrl *finder.Controller, form map[string][]string) {
	el := ctrl.Elements()
	if values, ok := form["description"]; ok {
		el.Description.SetValue(first(values))
	}
	for _, name := range finder.GroupNames {
		group := ctrl.Group(name)
		values, ok := form[StatePrefix+name]
		if group == nil || !ok {
			continue
		}
		group.Select(ctx, values...)
	}
	if raw := first(form[StateWithGroup]); raw != "" {
		if mode, err := options.ParsePlayMode(raw); err == nil {
			ctrl.Toggle().Select(ctx, mode)
		}
	}
}

// Click applies a "<group>:<label>" or "toggle:<value>" click.
func Click(ctx context.Context, ctrl *finder.Controller, target string) bool {
	name, value, ok := strings.Cut(target, ":")
	if !ok {
		return false
	}
	if name == toggleTarget {
		mode, err := options.ParsePlayMode(value)
		if err != nil {
			return false
		}
		return ctrl.Toggle().Select(ctx, mode)
	}
	group := ctrl.Group(name)
	if group == nil {
		return false
	}
	return group.Click(ctx, value)
}

// Hydrate turns the option and toggle buttons into named submit buttons and
// appends the hidden state fields for the current selection.
func Hydrate(ctrl *finder.Controller) {
	el := ctrl.Elements()
	var fields []render.HiddenField
	for _, name := range finder.GroupNames {
		group := ctrl.Group(name)
		if group == nil {
			continue
		}
		for _, label := range group.Labels() {
			group.Button(label).
				SetAttr("type", "submit").
				SetAttr("name", ClickField).
				SetAttr("value", name+":"+label)
		}
		fields = append(fields, render.StateFields(StatePrefix+name, group.Selected()...)...)
	}

	for _, button := range el.GroupToggle.FindAll(dom.HasClass(options.ToggleButtonClass)) {
		button.SetAttr("type", "submit").
			SetAttr("name", ClickField).
			SetAttr("value", toggleTarget+":"+button.Data("value"))
	}
	if mode, err := ctrl.Toggle().Value(); err == nil {
		fields = append(fields, render.Hidden(StateWithGroup, mode))
	}

	render.AppendHiddenFields(el.Form, fields...)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
