package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme captures optional message prefixes the renderer applies when
// printing through the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Styles holds the lipgloss styles used to print result cards.
type Styles struct {
	Card    lipgloss.Style
	Title   lipgloss.Style
	Rating  lipgloss.Style
	Body    lipgloss.Style
	Link    lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
	Heading lipgloss.Style
}

// DefaultStyles returns the stock card styling.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#00A2FF")
	muted := lipgloss.Color("#9AA3B5")
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(64),
		Title:   lipgloss.NewStyle().Bold(true),
		Rating:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Body:    lipgloss.NewStyle(),
		Link:    lipgloss.NewStyle().Foreground(muted).Underline(true),
		Notice:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5C5C")).Bold(true),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver writes info messages.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithStyles replaces the card styles.
func WithStyles(styles Styles) Option {
	return func(r *Renderer) {
		r.styles = styles
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
