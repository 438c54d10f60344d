package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/dom"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	rendertemplate "github.com/goliatone/go-gamefinder/pkg/render/template"
	gotemplate "github.com/goliatone/go-gamefinder/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the inlined stylesheet. An empty string disables
// the inline style block.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// PageData holds the copy and wiring of the finder page.
type PageData struct {
	Lang             string        `json:"lang"`
	Title            string        `json:"title"`
	Heading          string        `json:"heading"`
	Tagline          string        `json:"tagline"`
	Action           string        `json:"action"`
	DescriptionLabel string        `json:"description_label"`
	Placeholder      string        `json:"placeholder"`
	Description      string        `json:"description"`
	ToggleHeading    string        `json:"toggle_heading"`
	SoloLabel        string        `json:"solo_label"`
	GroupLabel       string        `json:"group_label"`
	SubmitLabel      string        `json:"submit_label"`
	Headings         GroupHeadings `json:"-"`
	Classes          ChromeClasses `json:"-"`
	IDs              finder.IDs    `json:"-"`
}

// GroupHeadings titles the four option sections.
type GroupHeadings struct {
	Genres    string
	Devices   string
	Mechanics string
	Vibes     string
}

// DefaultPageData returns the stock page copy.
func DefaultPageData() PageData {
	return PageData{
		Lang:             "en",
		Title:            "Game Finder",
		Heading:          "Find your next game",
		Tagline:          "Tell us what you feel like playing and we'll pick three games for you.",
		Action:           "/",
		DescriptionLabel: "Describe your ideal game",
		Placeholder:      "e.g. a spooky puzzle adventure I can play with friends",
		ToggleHeading:    "Who's playing?",
		SoloLabel:        "Solo",
		GroupLabel:       "With Friends",
		SubmitLabel:      finder.DefaultIdleLabel,
		Headings: GroupHeadings{
			Genres:    "Genres",
			Devices:   "Device",
			Mechanics: "Mechanics",
			Vibes:     "Vibes",
		},
		IDs: finder.DefaultIDs(),
	}
}

// WithDefaults fills blank fields from DefaultPageData.
func (p PageData) WithDefaults() PageData {
	def := DefaultPageData()
	fill := func(dst *string, fallback string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = fallback
		}
	}
	fill(&p.Lang, def.Lang)
	fill(&p.Title, def.Title)
	fill(&p.Heading, def.Heading)
	fill(&p.Tagline, def.Tagline)
	fill(&p.Placeholder, def.Placeholder)
	fill(&p.Action, def.Action)
	fill(&p.DescriptionLabel, def.DescriptionLabel)
	fill(&p.ToggleHeading, def.ToggleHeading)
	fill(&p.SoloLabel, def.SoloLabel)
	fill(&p.GroupLabel, def.GroupLabel)
	fill(&p.SubmitLabel, def.SubmitLabel)
	fill(&p.Headings.Genres, def.Headings.Genres)
	fill(&p.Headings.Devices, def.Headings.Devices)
	fill(&p.Headings.Mechanics, def.Headings.Mechanics)
	fill(&p.Headings.Vibes, def.Headings.Vibes)

	ids := def.IDs
	fill(&p.IDs.Form, ids.Form)
	fill(&p.IDs.SubmitButton, ids.SubmitButton)
	fill(&p.IDs.Description, ids.Description)
	fill(&p.IDs.Genres, ids.Genres)
	fill(&p.IDs.Devices, ids.Devices)
	fill(&p.IDs.Mechanics, ids.Mechanics)
	fill(&p.IDs.Vibes, ids.Vibes)
	fill(&p.IDs.GroupToggle, ids.GroupToggle)
	fill(&p.IDs.Loader, ids.Loader)
	fill(&p.IDs.ErrorMessage, ids.ErrorMessage)
	fill(&p.IDs.Results, ids.Results)
	return p
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
}

// New constructs the vanilla page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{templates: renderer, stylesheet: stylesheet}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders the finder host page. The option groups are left empty for
// the controller to fill.
func (r *Renderer) Render(ctx context.Context, data PageData) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	data = data.WithDefaults()
	ids := data.IDs
	result, err := r.templates.RenderTemplate(PageTemplate, map[string]any{
		"page":       data,
		"stylesheet": r.stylesheet,
		"classes":    data.Classes.resolve(),
		"ids": map[string]string{
			"form":         ids.Form,
			"submit":       ids.SubmitButton,
			"description":  ids.Description,
			"group_toggle": ids.GroupToggle,
			"loader":       ids.Loader,
			"error":        ids.ErrorMessage,
			"results":      ids.Results,
		},
		"sections": []map[string]string{
			{"id": ids.Genres, "heading": data.Headings.Genres},
			{"id": ids.Devices, "heading": data.Headings.Devices},
			{"id": ids.Mechanics, "heading": data.Headings.Mechanics},
			{"id": ids.Vibes, "heading": data.Headings.Vibes},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// Document renders the page and parses it into a host document.
func (r *Renderer) Document(ctx context.Context, data PageData) (*dom.Document, error) {
	page, err := r.Render(ctx, data)
	if err != nil {
		return nil, err
	}
	doc, err := dom.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: parse page: %w", err)
	}
	return doc, nil
}
