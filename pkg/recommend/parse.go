package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-gamefinder/pkg/model"
)

// ErrInvalidResponse is returned when the model output is not a JSON array
// of games.
var ErrInvalidResponse = errors.New("recommend: invalid model response")

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// StripFences removes markdown code fences around a JSON payload.
func StripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ParseGames decodes model output into games. Text fields are reduced to
// plain text.
func ParseGames(text string) ([]model.GameResult, error) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty output", ErrInvalidResponse)
	}

	var games []model.GameResult
	if err := json.Unmarshal([]byte(cleaned), &games); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if games == nil {
		games = []model.GameResult{}
	}
	for i := range games {
		games[i].GameName = plainText(games[i].GameName)
		games[i].URLName = plainText(games[i].URLName)
		games[i].Description = plainText(games[i].Description)
		games[i].GameID = model.GameID(plainText(games[i].GameID.String()))
	}
	return games, nil
}

func plainText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(raw)))
}
