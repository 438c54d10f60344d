package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/options"
	"github.com/goliatone/go-gamefinder/pkg/render"
)

// Renderer drives a finder controller from the terminal: it prompts for the
// form state, applies the answers as clicks and prints the outcome.
type Renderer struct {
	driver PromptDriver
	out    io.Writer
	styles Styles
	theme  Theme
}

// New constructs a TUI renderer with defaults (survey driver, stdout).
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		out:    os.Stdout,
		styles: DefaultStyles(),
		theme:  Theme{InfoPrefix: "› ", ErrorPrefix: "✗ "},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Collect prompts for every form input, seeded with the controller's current
// state, and applies the answers through the page. It returns the filters a
// submit would send.
func (r *Renderer) Collect(ctx context.Context, ctrl *finder.Controller) (model.SearchFilters, error) {
	if ctx == nil {
		return model.SearchFilters{}, errors.New("tui: context is required")
	}
	if ctrl == nil || ctrl.Toggle() == nil {
		return model.SearchFilters{}, ErrNoController
	}

	el := ctrl.Elements()
	description, err := r.driver.Input(ctx, InputConfig{
		Message: "Describe your ideal game",
		Default: el.Description.Value(),
		Help:    "Free text, e.g. a spooky puzzle adventure",
	})
	if err != nil {
		return model.SearchFilters{}, err
	}
	el.Description.SetValue(strings.TrimSpace(description))

	prompts := []struct {
		group   string
		message string
	}{
		{finder.GroupGenres, "Genres"},
		{finder.GroupDevices, "Device"},
		{finder.GroupMechanics, "Mechanics"},
		{finder.GroupVibes, "Vibes"},
	}
	for _, p := range prompts {
		if err := r.promptGroup(ctx, ctrl.Group(p.group), p.message); err != nil {
			return model.SearchFilters{}, err
		}
	}

	current, err := ctrl.Toggle().Value()
	if err != nil {
		return model.SearchFilters{}, fmt.Errorf("tui: %w", err)
	}
	withGroup, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Playing with friends?",
		Default: current.WithGroup(),
	})
	if err != nil {
		return model.SearchFilters{}, err
	}
	mode := options.PlaySolo
	if withGroup {
		mode = options.PlayWithGroup
	}
	ctrl.Toggle().Select(ctx, mode)

	return ctrl.Filters()
}

func (r *Renderer) promptGroup(ctx context.Context, group *options.Group, message string) error {
	if group == nil {
		return ErrNoController
	}
	labels := group.Labels()
	selected := group.Selected()

	if group.Mode() == options.SingleSelect {
		def := 0
		if len(selected) > 0 {
			def = indexOf(labels, selected[0])
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: def,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(labels) {
			group.Select(ctx, labels[idx])
		}
		return nil
	}

	var defaults []int
	for _, label := range selected {
		defaults = append(defaults, indexOf(labels, label))
	}
	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  message,
		Options:  labels,
		Defaults: defaults,
		Help:     "Leave empty for any",
	})
	if err != nil {
		return err
	}
	group.Select(ctx, labelsAt(labels, indices)...)
	return nil
}

// Submit clicks the form's submit button and reports a search failure as
// ErrSearchFailed carrying the displayed message.
func (r *Renderer) Submit(ctx context.Context, ctrl *finder.Controller) error {
	if ctrl == nil || ctrl.Toggle() == nil {
		return ErrNoController
	}
	if err := r.driver.Info(ctx, r.theme.InfoPrefix+"Searching..."); err != nil {
		return err
	}

	el := ctrl.Elements()
	el.SubmitButton.Click(ctx)

	if ctrl.Display() == finder.DisplayError {
		msg := strings.TrimPrefix(el.ErrorMessage.Text(), "Error: ")
		return fmt.Errorf("%w: %s", ErrSearchFailed, msg)
	}
	return nil
}

// Print writes the page outcome: the error message, the no-results notice
// or one styled card per game.
func (r *Renderer) Print(w io.Writer, ctrl *finder.Controller) error {
	if ctrl == nil {
		return ErrNoController
	}
	if w == nil {
		w = r.out
	}
	el := ctrl.Elements()

	if ctrl.Display() == finder.DisplayError {
		_, err := fmt.Fprintln(w, r.styles.Error.Render(r.theme.ErrorPrefix+el.ErrorMessage.Text()))
		return err
	}

	cards := render.ReadCards(el.Results)
	if len(cards) == 0 {
		notice := strings.TrimSpace(el.Results.Text())
		if notice == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, r.styles.Notice.Render(notice))
		return err
	}

	blocks := make([]string, 0, len(cards)+1)
	blocks = append(blocks, r.styles.Heading.Render(fmt.Sprintf("%d games for you", len(cards))))
	for _, card := range cards {
		blocks = append(blocks, r.card(card))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

func (r *Renderer) card(card render.Card) string {
	header := r.styles.Title.Render(card.Title) + "  " + r.styles.Rating.Render(card.Rating)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		r.styles.Body.Render(card.Description),
		r.styles.Link.Render(card.Link),
	)
	return r.styles.Card.Render(body)
}
