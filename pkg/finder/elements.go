package finder

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/dom"
)

// IDs names the host page elements the controller consumes.
type IDs struct {
	Form         string
	SubmitButton string
	Description  string
	Genres       string
	Devices      string
	Mechanics    string
	Vibes        string
	GroupToggle  string
	Loader       string
	ErrorMessage string
	Results      string
}

// DefaultIDs returns the ids used by the bundled page template.
func DefaultIDs() IDs {
	return IDs{
		Form:         "game-finder-form",
		SubmitButton: "find-game-btn",
		Description:  "description",
		Genres:       "genres",
		Devices:      "devices",
		Mechanics:    "mechanics",
		Vibes:        "vibes",
		GroupToggle:  "group-toggle",
		Loader:       "loader",
		ErrorMessage: "error-message",
		Results:      "results-container",
	}
}

// Elements holds the element handles the controller owns or reads.
type Elements struct {
	Form         *dom.Element
	SubmitButton *dom.Element
	Description  *dom.Element
	Genres       *dom.Element
	Devices      *dom.Element
	Mechanics    *dom.Element
	Vibes        *dom.Element
	GroupToggle  *dom.Element
	Loader       *dom.Element
	ErrorMessage *dom.Element
	Results      *dom.Element
}

// ElementsFromDocument resolves every handle by id. Missing elements are
// reported together.
func ElementsFromDocument(doc *dom.Document, ids IDs) (Elements, error) {
	if doc == nil {
		return Elements{}, fmt.Errorf("finder: missing document")
	}
	var missing []string
	lookup := func(id string) *dom.Element {
		el := doc.GetElementByID(id)
		if el == nil {
			missing = append(missing, "#"+id)
		}
		return el
	}

	el := Elements{
		Form:         lookup(ids.Form),
		SubmitButton: lookup(ids.SubmitButton),
		Description:  lookup(ids.Description),
		Genres:       lookup(ids.Genres),
		Devices:      lookup(ids.Devices),
		Mechanics:    lookup(ids.Mechanics),
		Vibes:        lookup(ids.Vibes),
		GroupToggle:  lookup(ids.GroupToggle),
		Loader:       lookup(ids.Loader),
		ErrorMessage: lookup(ids.ErrorMessage),
		Results:      lookup(ids.Results),
	}
	if len(missing) > 0 {
		return Elements{}, fmt.Errorf("finder: page is missing %s", strings.Join(missing, ", "))
	}
	return el, nil
}

func (e Elements) validate() error {
	var missing []string
	check := func(name string, el *dom.Element) {
		if el == nil {
			missing = append(missing, name)
		}
	}
	check("Form", e.Form)
	check("SubmitButton", e.SubmitButton)
	check("Description", e.Description)
	check("Genres", e.Genres)
	check("Devices", e.Devices)
	check("Mechanics", e.Mechanics)
	check("Vibes", e.Vibes)
	check("GroupToggle", e.GroupToggle)
	check("Loader", e.Loader)
	check("ErrorMessage", e.ErrorMessage)
	check("Results", e.Results)
	if len(missing) > 0 {
		return fmt.Errorf("finder: missing elements: %s", strings.Join(missing, ", "))
	}
	return nil
}
