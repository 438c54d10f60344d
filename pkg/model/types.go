package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SearchFilters is the submission payload. It is constructed fresh from the
// page state on every submit and never persisted.
type SearchFilters struct {
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	WithGroup   bool     `json:"withGroup"`
	Device      string   `json:"device"`
	Mechanics   []string `json:"mechanics"`
	Vibes       []string `json:"vibes"`
}

// MarshalJSON encodes nil list fields as empty arrays.
func (f SearchFilters) MarshalJSON() ([]byte, error) {
	type alias SearchFilters
	out := alias(f)
	out.Genres = nonNil(out.Genres)
	out.Mechanics = nonNil(out.Mechanics)
	out.Vibes = nonNil(out.Vibes)
	return json.Marshal(out)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// GameResult is one search hit returned by the endpoint.
type GameResult struct {
	GameID      GameID  `json:"gameId"`
	URLName     string  `json:"urlName"`
	GameName    string  `json:"gameName"`
	MatchRating float64 `json:"matchRating"`
	Description string  `json:"description"`
}

// GameID identifies a game on the external catalogue. It decodes from JSON
// strings or numbers and always encodes as a string.
type GameID string

// UnmarshalJSON accepts "123", 123 and null.
func (id *GameID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = GameID(s)
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("model: game id must be a string or number: %w", err)
	}
	*id = GameID(n.String())
	return nil
}

// String returns the identifier text.
func (id GameID) String() string {
	return strings.TrimSpace(string(id))
}
