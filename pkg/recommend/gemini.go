package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"github.com/goliatone/go-gamefinder/pkg/model"
	rendertemplate "github.com/goliatone/go-gamefinder/pkg/render/template"
	gotemplate "github.com/goliatone/go-gamefinder/pkg/render/template/gotemplate"
)

// DefaultModel is the Gemini model asked for suggestions.
const DefaultModel = "gemini-1.5-flash"

// Recommender suggests games for a set of filters.
type Recommender interface {
	Recommend(ctx context.Context, filters model.SearchFilters) ([]model.GameResult, error)
}

// GenerateFunc sends prompt to modelName with apiKey and returns the text
// output.
type GenerateFunc func(ctx context.Context, apiKey, modelName, prompt string) (string, error)

// Option configures a Gemini recommender.
type Option func(*Gemini)

// WithModel selects the Gemini model.
func WithModel(name string) Option {
	return func(g *Gemini) {
		if name = strings.TrimSpace(name); name != "" {
			g.model = name
		}
	}
}

// WithGenerateFunc replaces the API call.
func WithGenerateFunc(fn GenerateFunc) Option {
	return func(g *Gemini) {
		if fn != nil {
			g.generate = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gemini) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithPromptTemplate overrides the prompt template source.
func WithPromptTemplate(source string) Option {
	return func(g *Gemini) {
		g.promptSource = source
	}
}

// WithGameCount sets how many games the prompt asks for.
func WithGameCount(n int) Option {
	return func(g *Gemini) {
		g.count = n
	}
}

// WithTemplateRenderer injects the renderer used for the prompt.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(g *Gemini) {
		if renderer != nil {
			g.templates = renderer
		}
	}
}

// Gemini asks a Gemini model for game suggestions, rotating API keys per
// request.
type Gemini struct {
	keys         *KeyRing
	model        string
	generate     GenerateFunc
	logger       *slog.Logger
	templates    rendertemplate.TemplateRenderer
	promptSource string
	count        int
	prompts      *PromptBuilder
}

var _ Recommender = (*Gemini)(nil)

// NewGemini builds a recommender over keys. A ring without keys is valid;
// Recommend then fails with ErrNoKeys.
func NewGemini(keys *KeyRing, opts ...Option) (*Gemini, error) {
	g := &Gemini{
		keys:     keys,
		model:    DefaultModel,
		generate: generateContent,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.keys == nil {
		g.keys = NewKeyRing()
	}
	if g.templates == nil {
		engine, err := gotemplate.New()
		if err != nil {
			return nil, fmt.Errorf("recommend: configure template renderer: %w", err)
		}
		g.templates = engine
	}
	g.prompts = NewPromptBuilder(g.templates, g.promptSource, g.count)
	return g, nil
}

// Model returns the configured model name.
func (g *Gemini) Model() string { return g.model }

// Recommend renders the prompt, calls the model with the next key and parses
// its output.
func (g *Gemini) Recommend(ctx context.Context, filters model.SearchFilters) ([]model.GameResult, error) {
	idx, key, err := g.keys.Next()
	if err != nil {
		return nil, err
	}
	prompt, err := g.prompts.Build(filters)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("calling model", "model", g.model, "key_index", idx)
	text, err := g.generate(ctx, key, g.model, prompt)
	if err != nil {
		return nil, fmt.Errorf("recommend: generate content: %w", err)
	}

	games, err := ParseGames(text)
	if err != nil {
		g.logger.Warn("model returned invalid output", "model", g.model, "output", text)
		return nil, err
	}
	return games, nil
}

func generateContent(ctx context.Context, apiKey, modelName, prompt string) (string, error) {
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("generativelanguage.NewService: %w", err)
	}
	if !strings.HasPrefix(modelName, "models/") {
		modelName = "models/" + modelName
	}

	resp, err := svc.Models.GenerateContent(modelName, &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		break
	}
	return b.String(), nil
}
