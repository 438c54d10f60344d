package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/dom"
	"github.com/goliatone/go-gamefinder/pkg/model"
)

const (
	// DefaultNoResultsMessage is shown when the endpoint returns no games.
	DefaultNoResultsMessage = "No games found matching your criteria. Try being more general!"
	// DefaultGameURLBase prefixes the external game page link.
	DefaultGameURLBase = "https://www.roblox.com/games/"
	// DefaultPlayLabel is the card link text.
	DefaultPlayLabel = "Play Now"
)

// ResultOptions configures the result cards.
type ResultOptions struct {
	NoResultsMessage string
	GameURLBase      string
	PlayLabel        string
}

// ResultOptionFn mutates ResultOptions.
type ResultOptionFn func(*ResultOptions)

// NewResultOptions applies fns over the defaults.
func NewResultOptions(fns ...ResultOptionFn) ResultOptions {
	opts := ResultOptions{
		NoResultsMessage: DefaultNoResultsMessage,
		GameURLBase:      DefaultGameURLBase,
		PlayLabel:        DefaultPlayLabel,
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.NoResultsMessage == "" {
		opts.NoResultsMessage = DefaultNoResultsMessage
	}
	if opts.GameURLBase == "" {
		opts.GameURLBase = DefaultGameURLBase
	}
	if !strings.HasSuffix(opts.GameURLBase, "/") {
		opts.GameURLBase += "/"
	}
	if opts.PlayLabel == "" {
		opts.PlayLabel = DefaultPlayLabel
	}
	return opts
}

// WithNoResultsMessage overrides the empty-results text.
func WithNoResultsMessage(msg string) ResultOptionFn {
	return func(o *ResultOptions) { o.NoResultsMessage = msg }
}

// WithGameURLBase overrides the game page link prefix.
func WithGameURLBase(base string) ResultOptionFn {
	return func(o *ResultOptions) { o.GameURLBase = strings.TrimSpace(base) }
}

// WithPlayLabel overrides the card link text.
func WithPlayLabel(label string) ResultOptionFn {
	return func(o *ResultOptions) { o.PlayLabel = label }
}

// DisplayResults replaces the content of container with one card per game,
// in order, or a single "no results" paragraph when games is empty or nil.
func DisplayResults(container *dom.Element, games []model.GameResult, fns ...ResultOptionFn) {
	if container == nil {
		return
	}
	opts := NewResultOptions(fns...)
	container.RemoveChildren()

	if len(games) == 0 {
		container.AppendChild(dom.NewElement("p").SetText(opts.NoResultsMessage))
		return
	}
	for _, game := range games {
		container.AppendChild(gameCard(game, opts))
	}
}

func gameCard(game model.GameResult, opts ResultOptions) *dom.Element {
	card := dom.NewElement("div").SetAttr("class", "game-card")
	body := card.AppendChild(dom.NewElement("div"))

	header := body.AppendChild(dom.NewElement("div").SetAttr("class", "card-header"))
	header.AppendChild(dom.NewElement("h3").SetText(game.GameName))
	header.AppendChild(dom.NewElement("div").
		SetAttr("class", "match-rating").
		SetText(FormatRating(game.MatchRating)))
	body.AppendChild(dom.NewElement("p").SetText(game.Description))

	card.AppendChild(dom.NewElement("a").
		SetAttr("href", GameURL(opts.GameURLBase, game)).
		SetAttr("target", "_blank").
		SetAttr("rel", "noopener noreferrer").
		SetAttr("class", "play-button").
		SetText(opts.PlayLabel))
	return card
}

// FormatRating renders a match rating as "<n>/10" using the shortest
// decimal form of n.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64) + "/10"
}

// GameURL builds the external game page link from the id and URL name.
// Both are inserted as provided by the search endpoint.
func GameURL(base string, game model.GameResult) string {
	if base == "" {
		base = DefaultGameURLBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + game.GameID.String() + "/" + game.URLName
}

// Card is a result card read back from a rendered results region.
type Card struct {
	Title       string
	Rating      string
	Description string
	Link        string
}

// ReadCards extracts the rendered cards from container in order.
func ReadCards(container *dom.Element) []Card {
	if container == nil {
		return nil
	}
	var cards []Card
	for _, el := range container.FindAll(dom.HasClass("game-card")) {
		card := Card{}
		if h := el.Find(dom.HasTag("h3")); h != nil {
			card.Title = h.Text()
		}
		if r := el.Find(dom.HasClass("match-rating")); r != nil {
			card.Rating = r.Text()
		}
		if p := el.Find(dom.HasTag("p")); p != nil {
			card.Description = p.Text()
		}
		if a := el.Find(dom.HasClass("play-button")); a != nil {
			card.Link, _ = a.Attr("href")
		}
		cards = append(cards, card)
	}
	return cards
}
