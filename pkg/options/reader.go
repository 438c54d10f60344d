package options

import "github.com/goliatone/go-gamefinder/pkg/dom"

// Selected returns the labels of the active option buttons inside container,
// in document order. The result is never nil.
func Selected(container *dom.Element) []string {
	return SelectedWith(container, DefaultConfig())
}

// SelectedWith is Selected for groups rendered with custom class names.
func SelectedWith(container *dom.Element, cfg Config) []string {
	selected := []string{}
	if container == nil {
		return selected
	}
	for _, button := range container.FindAll(dom.HasClass(cfg.ButtonClass, cfg.ActiveClass)) {
		selected = append(selected, button.Data("value"))
	}
	return selected
}

// Active returns the first active label of a single-select group.
func Active(container *dom.Element) (string, bool) {
	selected := Selected(container)
	if len(selected) == 0 {
		return "", false
	}
	return selected[0], true
}
