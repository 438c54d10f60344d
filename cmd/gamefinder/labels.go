package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a label to be offered
// as a suggestion.
const maxSuggestDistance = 3

type stringsFlag []string

func (s *stringsFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// resolveLabels maps user input onto catalogue labels ignoring case.
func resolveLabels(kind string, input, labels []string) ([]string, error) {
	out := make([]string, 0, len(input))
	for _, raw := range input {
		label, ok := matchLabel(raw, labels)
		if !ok {
			return nil, unknownLabelError(kind, raw, labels)
		}
		out = append(out, label)
	}
	return out, nil
}

func matchLabel(raw string, labels []string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, label := range labels {
		if strings.EqualFold(raw, label) {
			return label, true
		}
	}
	return "", false
}

func unknownLabelError(kind, raw string, labels []string) error {
	if suggestion := suggest(raw, labels); suggestion != "" {
		return fmt.Errorf("unknown %s %q, did you mean %q?", kind, raw, suggestion)
	}
	return fmt.Errorf("unknown %s %q (choose from: %s)", kind, raw, strings.Join(labels, ", "))
}

// suggest returns the closest label within maxSuggestDistance edits, or "".
func suggest(raw string, labels []string) string {
	needle := strings.ToLower(strings.TrimSpace(raw))
	best, bestDist := "", maxSuggestDistance+1
	for _, label := range labels {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(label))
		if dist < bestDist {
			best, bestDist = label, dist
		}
	}
	return best
}
