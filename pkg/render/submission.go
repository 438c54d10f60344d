package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/dom"
)

// HiddenField represents a hidden form input emitted alongside the visible
// page so a script-free form post carries the current group state back.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// StateFields returns one hidden field per value under name, preserving
// order.
func StateFields(name string, values ...string) []HiddenField {
	name = strings.TrimSpace(name)
	if name == "" || len(values) == 0 {
		return nil
	}
	out := make([]HiddenField, 0, len(values))
	for _, value := range values {
		out = append(out, HiddenField{Name: name, Value: value})
	}
	return out
}

// SortedHiddenFields normalises and stably sorts hidden fields by name for
// deterministic rendering. Empty names are dropped; values sharing a name
// keep their relative order.
func SortedHiddenFields(fields []HiddenField) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]HiddenField, 0, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out = append(out, HiddenField{Name: name, Value: field.Value})
	}
	if len(out) == 0 {
		return nil
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AppendHiddenFields renders fields as hidden inputs inside form.
func AppendHiddenFields(form *dom.Element, fields ...HiddenField) {
	if form == nil {
		return
	}
	for _, field := range SortedHiddenFields(fields) {
		form.AppendChild(dom.NewElement("input").
			SetAttr("type", "hidden").
			SetAttr("name", field.Name).
			SetAttr("value", field.Value))
	}
}
