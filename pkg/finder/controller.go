package finder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-gamefinder/pkg/dom"
	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/options"
	"github.com/goliatone/go-gamefinder/pkg/render"
)

// Group names accepted by Controller.Group.
const (
	GroupGenres    = "genres"
	GroupDevices   = "devices"
	GroupMechanics = "mechanics"
	GroupVibes     = "vibes"
)

// GroupNames lists the option groups in page order.
var GroupNames = []string{GroupGenres, GroupDevices, GroupMechanics, GroupVibes}

// Phase is a step of the submit lifecycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// Display is the busy state visible on the page.
type Display string

const (
	DisplayIdle    Display = "idle"
	DisplayLoading Display = "loading"
	DisplayError   Display = "error"
	DisplayResults Display = "results"
)

// Controller owns the finder form: it renders the option groups, builds the
// SearchFilters payload on submit, performs the search request and renders
// the outcome.
type Controller struct {
	el   Elements
	opts Options

	mu           sync.Mutex
	phase        Phase
	initialized  bool
	groups       map[string]*options.Group
	toggle       *options.Toggle
	detachSubmit func()
	submitLabel  string

	inFlight atomic.Bool
}

// New validates the element handles and applies options. Call Init to
// render the groups and attach listeners.
func New(el Elements, fns ...OptionFn) (*Controller, error) {
	if err := el.validate(); err != nil {
		return nil, err
	}
	opts := NewOptions(fns...)
	if err := opts.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("finder: %w", err)
	}
	return &Controller{
		el:     el,
		opts:   opts,
		phase:  PhaseIdle,
		groups: make(map[string]*options.Group, len(GroupNames)),
	}, nil
}

// Init renders the four option groups, binds the solo/group toggle and
// attaches the form submit listener. Existing group content is replaced.
func (c *Controller) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return errors.New("finder: controller already initialized")
	}

	catalog := c.opts.Catalog
	for _, container := range []*dom.Element{c.el.Genres, c.el.Devices, c.el.Mechanics, c.el.Vibes} {
		container.RemoveChildren()
	}
	c.groups[GroupGenres] = options.Render(c.el.Genres, catalog.Genres, options.MultiSelect)
	c.groups[GroupDevices] = options.Render(c.el.Devices, catalog.Devices, options.SingleSelect)
	c.groups[GroupMechanics] = options.Render(c.el.Mechanics, catalog.Mechanics, options.MultiSelect)
	c.groups[GroupVibes] = options.Render(c.el.Vibes, catalog.Vibes, options.MultiSelect)
	c.toggle = options.BindToggle(c.el.GroupToggle)
	c.detachSubmit = c.el.Form.AddEventListener(dom.EventSubmit, c.handleSubmit)

	c.initialized = true
	return nil
}

// Detach removes every listener Init attached. The rendered buttons stay.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, g := range c.groups {
		g.Detach()
	}
	if c.toggle != nil {
		c.toggle.Detach()
	}
	if c.detachSubmit != nil {
		c.detachSubmit()
		c.detachSubmit = nil
	}
	c.initialized = false
}

// Elements returns the element handles.
func (c *Controller) Elements() Elements { return c.el }

// Group returns a rendered option group by name, nil before Init.
func (c *Controller) Group(name string) *options.Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups[name]
}

// Toggle returns the solo/group toggle, nil before Init.
func (c *Controller) Toggle() *options.Toggle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toggle
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Display derives the visible busy state from the page.
func (c *Controller) Display() Display {
	switch {
	case c.el.Loader.Visible():
		return DisplayLoading
	case c.el.ErrorMessage.Visible() && c.el.ErrorMessage.Text() != "":
		return DisplayError
	case len(c.el.Results.Children()) > 0:
		return DisplayResults
	default:
		return DisplayIdle
	}
}

// Filters reads the current form state into a SearchFilters record.
func (c *Controller) Filters() (model.SearchFilters, error) {
	toggle := c.Toggle()
	if toggle == nil {
		return model.SearchFilters{}, errors.New("finder: controller not initialized")
	}
	mode, err := toggle.Value()
	if err != nil {
		return model.SearchFilters{}, fmt.Errorf("finder: read group toggle: %w", err)
	}
	device, ok := options.Active(c.el.Devices)
	if !ok {
		return model.SearchFilters{}, errors.New("finder: no device selected")
	}
	return model.SearchFilters{
		Description: c.el.Description.Value(),
		Genres:      options.Selected(c.el.Genres),
		WithGroup:   mode.WithGroup(),
		Device:      device,
		Mechanics:   options.Selected(c.el.Mechanics),
		Vibes:       options.Selected(c.el.Vibes),
	}, nil
}

func (c *Controller) handleSubmit(ev *dom.Event) {
	ev.PreventDefault()
	_ = c.Submit(ev.Context())
}

// Submit runs one full submission: it shows the loading state, issues the
// search request, renders results or the error message, then restores the
// idle state. The error shown on the page is also returned.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	c.begin()
	defer c.finish()

	games, err := c.run(ctx)
	if err != nil {
		c.opts.Logger.Warn("search failed",
			"endpoint", c.opts.Endpoint,
			"kind", errorKind(err),
			"error", err,
		)
		c.showError(err)
		c.transition(PhaseFailed)
		return err
	}

	c.opts.Logger.Info("search completed", "endpoint", c.opts.Endpoint, "results", len(games))
	render.DisplayResults(c.el.Results, games, c.opts.ResultOptions...)
	c.transition(PhaseSucceeded)
	return nil
}

func (c *Controller) run(ctx context.Context) ([]model.GameResult, error) {
	filters, err := c.Filters()
	if err != nil {
		return nil, err
	}
	return c.search(ctx, filters)
}

func (c *Controller) begin() {
	c.el.Loader.SetDisplay("block")
	c.el.ErrorMessage.SetDisplay("none")
	c.el.Results.RemoveChildren()
	c.submitLabel = c.el.SubmitButton.Text()
	c.el.SubmitButton.SetDisabled(true).SetText(c.opts.BusyLabel)
	c.transition(PhaseSubmitting)
}

func (c *Controller) finish() {
	c.el.Loader.SetDisplay("none")
	c.el.SubmitButton.SetDisabled(false).SetText(c.idleLabel())
	c.transition(PhaseIdle)
}

// idleLabel is the text the submit button had before the submission, unless
// WithLabels set one or the button was empty.
func (c *Controller) idleLabel() string {
	if c.opts.idleOverride || strings.TrimSpace(c.submitLabel) == "" {
		return c.opts.IdleLabel
	}
	return c.submitLabel
}

func (c *Controller) showError(err error) {
	c.el.ErrorMessage.SetText("Error: " + err.Error())
	c.el.ErrorMessage.SetDisplay("block")
}

func (c *Controller) transition(phase Phase) {
	c.mu.Lock()
	c.phase = phase
	c.mu.Unlock()
	if c.opts.Observer != nil {
		c.opts.Observer(phase)
	}
}

func (c *Controller) search(ctx context.Context, filters model.SearchFilters) ([]model.GameResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	payload, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("finder: encode filters: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp)
	}

	var games []model.GameResult
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return games, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Controller) statusError(resp *http.Response) error {
	statusErr := &StatusError{Code: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxErrorBody))
	if err != nil {
		return statusErr
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		statusErr.Message = body.Error
	}
	return statusErr
}

func errorKind(err error) string {
	var (
		statusErr    *StatusError
		transportErr *TransportError
		decodeErr    *DecodeError
	)
	switch {
	case errors.As(err, &statusErr):
		return "status"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "form"
	}
}
