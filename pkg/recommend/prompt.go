package recommend

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/model"
	rendertemplate "github.com/goliatone/go-gamefinder/pkg/render/template"
)

// DefaultGameCount is how many games the prompt asks for.
const DefaultGameCount = 3

// DefaultPromptTemplate is the pongo2 template used to ask for suggestions.
const DefaultPromptTemplate = `{% autoescape off %}Find {{ count }} Roblox games based on these criteria:
- Description: {{ filters.description|trim|default:"any" }}
- Genres: {{ filters.genres|listor:"any" }}
- Playing with a group: {% if filters.withGroup %}Yes{% else %}No{% endif %}
- Device: {{ filters.device|default:"Any" }}
- Mechanics: {{ filters.mechanics|listor:"any" }}
- Vibes: {{ filters.vibes|listor:"any" }}

Return ONLY a valid JSON array of objects with the following keys for each game:
"gameName", "urlName", "gameId", "description", "matchRating".

- urlName should be a URL-friendly version of the name.
- matchRating must be a number from 1 to 10.
- The description should be short, engaging, and about 2-3 sentences.
- Do not include any text, markdown, or formatting outside of the JSON array.

Example response:
[
  {
    "gameName": "Adopt Me!",
    "urlName": "Adopt-Me",
    "gameId": 920587237,
    "description": "A relaxing social game where you can adopt pets and build a home.",
    "matchRating": 9
  }
]
{% endautoescape %}`

// PromptBuilder renders the model prompt for a set of filters.
type PromptBuilder struct {
	templates rendertemplate.TemplateRenderer
	source    string
	count     int
}

// NewPromptBuilder wraps a template renderer. An empty source uses
// DefaultPromptTemplate.
func NewPromptBuilder(templates rendertemplate.TemplateRenderer, source string, count int) *PromptBuilder {
	if strings.TrimSpace(source) == "" {
		source = DefaultPromptTemplate
	}
	if count <= 0 {
		count = DefaultGameCount
	}
	return &PromptBuilder{templates: templates, source: source, count: count}
}

// Build renders the prompt.
func (b *PromptBuilder) Build(filters model.SearchFilters) (string, error) {
	if b == nil || b.templates == nil {
		return "", fmt.Errorf("recommend: prompt builder has no template renderer")
	}
	out, err := b.templates.RenderString(b.source, map[string]any{
		"count":   b.count,
		"filters": filters,
	})
	if err != nil {
		return "", fmt.Errorf("recommend: render prompt: %w", err)
	}
	return strings.TrimSpace(out), nil
}
