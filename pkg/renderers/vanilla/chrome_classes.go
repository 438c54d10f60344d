package vanilla

// ChromeClass is a typed identifier for the page's semantic CSS classes.
type ChromeClass string

const (
	ClassPage      ChromeClass = "gamefinder-page"
	ClassContainer ChromeClass = "gamefinder-container"
	ClassHeader    ChromeClass = "gamefinder-header"
	ClassForm      ChromeClass = "gamefinder-form"
	ClassLabel     ChromeClass = "gamefinder-label"
	ClassSection   ChromeClass = "gamefinder-section"
	ClassOptions   ChromeClass = "gamefinder-options"
	ClassToggle    ChromeClass = "gamefinder-toggle"
	ClassSubmit    ChromeClass = "gamefinder-submit"
	ClassResults   ChromeClass = "gamefinder-results"
)

// ChromeClasses overrides the class attribute of the page chrome. Empty
// fields keep the defaults.
type ChromeClasses struct {
	Page      string
	Container string
	Header    string
	Form      string
	Section   string
	Options   string
	Submit    string
	Results   string
}

func (c ChromeClasses) resolve() map[string]string {
	pick := func(override string, fallback ChromeClass) string {
		if cleaned := sanitizeClassList(override); cleaned != "" {
			return string(fallback) + " " + cleaned
		}
		return string(fallback)
	}
	return map[string]string{
		"page":      pick(c.Page, ClassPage),
		"container": pick(c.Container, ClassContainer),
		"header":    pick(c.Header, ClassHeader),
		"form":      pick(c.Form, ClassForm),
		"label":     string(ClassLabel),
		"section":   pick(c.Section, ClassSection),
		"options":   pick(c.Options, ClassOptions),
		"toggle":    string(ClassToggle),
		"submit":    pick(c.Submit, ClassSubmit),
		"results":   pick(c.Results, ClassResults),
	}
}
