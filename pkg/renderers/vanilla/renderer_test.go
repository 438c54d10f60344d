package vanilla_test

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gamefinder/pkg/dom"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/options"
	"github.com/goliatone/go-gamefinder/pkg/renderers/vanilla"
	"github.com/goliatone/go-gamefinder/pkg/testsupport"
)

func newRenderer(t *testing.T, opts ...vanilla.Option) *vanilla.Renderer {
	t.Helper()
	renderer, err := vanilla.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_DocumentCarriesHostElements(t *testing.T) {
	doc, err := newRenderer(t).Document(testsupport.Context(), vanilla.PageData{})
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	el, err := finder.ElementsFromDocument(doc, finder.DefaultIDs())
	if err != nil {
		t.Fatalf("elements: %v", err)
	}
	if el.Loader.Visible() || el.ErrorMessage.Visible() {
		t.Fatalf("expected loader and error region hidden initially")
	}
	if got := el.SubmitButton.Text(); got != finder.DefaultIdleLabel {
		t.Fatalf("unexpected submit label %q", got)
	}
	if typ, _ := el.SubmitButton.Attr("type"); typ != "submit" {
		t.Fatalf("expected submit button type, got %q", typ)
	}
	if el.SubmitButton.Closest(dom.HasTag("form")) != el.Form {
		t.Fatalf("expected submit button inside the form")
	}
	for _, group := range []*dom.Element{el.Genres, el.Devices, el.Mechanics, el.Vibes} {
		if n := len(group.Children()); n != 0 {
			t.Fatalf("expected empty group container %q, got %d children", group.ID(), n)
		}
	}

	toggles := el.GroupToggle.FindAll(dom.HasClass(options.ToggleButtonClass))
	var values []string
	for _, button := range toggles {
		values = append(values, button.Data("value"))
	}
	if diff := cmp.Diff([]string{"false", "true"}, values); diff != "" {
		t.Fatalf("toggle values mismatch (-want +got):\n%s", diff)
	}
	if !toggles[0].ClassList().Contains(options.ActiveClass) {
		t.Fatalf("expected solo toggle active by default")
	}
}

func TestRenderer_ControllerInitialisesRenderedPage(t *testing.T) {
	doc, err := newRenderer(t).Document(testsupport.Context(), vanilla.PageData{})
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	el, err := finder.ElementsFromDocument(doc, finder.DefaultIDs())
	if err != nil {
		t.Fatalf("elements: %v", err)
	}
	ctrl, err := finder.New(el)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := ctrl.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	catalog := model.MustDefaultCatalog()
	if diff := cmp.Diff(catalog.Genres, ctrl.Group(finder.GroupGenres).Labels()); diff != "" {
		t.Fatalf("genres mismatch (-want +got):\n%s", diff)
	}
	filters, err := ctrl.Filters()
	if err != nil {
		t.Fatalf("filters: %v", err)
	}
	if filters.Device != catalog.Devices[0] || filters.WithGroup {
		t.Fatalf("unexpected default filters %+v", filters)
	}
}

func TestRenderer_EscapesCopyAndPrefillsDescription(t *testing.T) {
	page := vanilla.DefaultPageData()
	page.Title = "<script>alert(1)</script>"
	page.Description = "co-op & chill"

	out, err := newRenderer(t).Render(testsupport.Context(), page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Fatalf("expected title to be escaped")
	}

	doc, err := newRenderer(t).Document(testsupport.Context(), page)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if got := doc.GetElementByID("description").Value(); got != "co-op & chill" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestRenderer_InlinesStylesheet(t *testing.T) {
	out, err := newRenderer(t).Render(testsupport.Context(), vanilla.PageData{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), ".game-card") {
		t.Fatalf("expected embedded stylesheet inline")
	}

	out, err = newRenderer(t, vanilla.WithStylesheet("")).Render(testsupport.Context(), vanilla.PageData{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<style>") {
		t.Fatalf("expected no style block when stylesheet is empty")
	}
}

func TestRenderer_CustomIDsAndClasses(t *testing.T) {
	page := vanilla.DefaultPageData()
	page.IDs.Results = "hits"
	page.IDs.Genres = ""
	page.Classes.Submit = "big gamefinder-evil big"

	doc, err := newRenderer(t).Document(testsupport.Context(), page)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if doc.GetElementByID("hits") == nil {
		t.Fatalf("expected custom results id")
	}
	if doc.GetElementByID("genres") == nil {
		t.Fatalf("expected blank id to fall back to default")
	}
	classes := doc.GetElementByID("find-game-btn").ClassList().Values()
	if diff := cmp.Diff([]string{"gamefinder-submit", "big"}, classes); diff != "" {
		t.Fatalf("submit classes mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name == vanilla.PageTemplate {
				return "custom-output", nil
			}
			return "", nil
		},
	}

	out, err := newRenderer(t, vanilla.WithTemplateRenderer(stub)).Render(testsupport.Context(), vanilla.PageData{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
}

func TestAssetsFSIncludesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".option-button.active") {
		t.Fatalf("expected stylesheet to style active option buttons")
	}
}

type stubTemplateRenderer struct {
	called             bool
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	return nil
}
