package dom

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const samplePage = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body>
<!-- comment -->
<form id="f">
  <textarea id="desc">hello</textarea>
  <div id="group"><button type="button" class="option-button active" data-value="PC">PC</button></div>
  <button id="go" type="submit">Go</button>
</form>
</body></html>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestParse_LookupByID(t *testing.T) {
	doc := parseSample(t)

	if doc.Body() == nil {
		t.Fatalf("expected body element")
	}
	desc := doc.GetElementByID("desc")
	if desc == nil {
		t.Fatalf("expected textarea")
	}
	if got := desc.Value(); got != "hello" {
		t.Fatalf("unexpected textarea value %q", got)
	}
	if doc.GetElementByID("missing") != nil {
		t.Fatalf("expected nil for missing id")
	}

	btn := doc.GetElementByID("group").FirstElementChild()
	if btn.Data("value") != "PC" || !btn.ClassList().Contains("option-button", "active") {
		t.Fatalf("unexpected button: %s", btn.OuterHTML())
	}
}

func TestClassList_AddRemoveToggle(t *testing.T) {
	el := NewElement("button")
	el.ClassList().Add("option-button", "active", "active")
	if diff := cmp.Diff([]string{"option-button", "active"}, el.ClassList().Values()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	if el.ClassList().Toggle("active") {
		t.Fatalf("expected toggle to remove active")
	}
	if !el.ClassList().Toggle("active") {
		t.Fatalf("expected toggle to add active")
	}

	el.ClassList().Remove("option-button", "active")
	if el.HasAttr("class") {
		t.Fatalf("expected empty class attribute to be dropped, got %s", el.OuterHTML())
	}
}

func TestDisplay_PreservesOtherDeclarations(t *testing.T) {
	el := NewElement("div").SetAttr("style", "color: red; display: none")
	if el.Visible() {
		t.Fatalf("expected hidden element")
	}
	el.SetDisplay("block")
	if got, _ := el.Attr("style"); got != "color: red; display: block" {
		t.Fatalf("unexpected style %q", got)
	}
	if !el.Visible() {
		t.Fatalf("expected visible element")
	}
}

func TestDispatch_BubblesAndDetaches(t *testing.T) {
	parent := NewElement("div")
	child := parent.AppendChild(NewElement("span"))

	var seen []string
	detach := parent.AddEventListener(EventClick, func(ev *Event) {
		if ev.Target != child || ev.CurrentTarget != parent {
			t.Fatalf("unexpected targets")
		}
		seen = append(seen, "parent")
	})
	child.AddEventListener(EventClick, func(*Event) { seen = append(seen, "child") })

	child.Click(context.Background())
	if diff := cmp.Diff([]string{"child", "parent"}, seen); diff != "" {
		t.Fatalf("dispatch order mismatch (-want +got):\n%s", diff)
	}

	detach()
	detach()
	seen = nil
	child.Click(context.Background())
	if diff := cmp.Diff([]string{"child"}, seen); diff != "" {
		t.Fatalf("detached listener still ran (-want +got):\n%s", diff)
	}
}

func TestClick_SubmitButtonSubmitsForm(t *testing.T) {
	doc := parseSample(t)
	form := doc.GetElementByID("f")
	submits := 0
	form.AddEventListener(EventSubmit, func(ev *Event) {
		ev.PreventDefault()
		submits++
	})

	doc.GetElementByID("go").Click(context.Background())
	if submits != 1 {
		t.Fatalf("expected one submit, got %d", submits)
	}

	// type="button" never submits.
	doc.GetElementByID("group").FirstElementChild().Click(context.Background())
	if submits != 1 {
		t.Fatalf("expected option click not to submit, got %d", submits)
	}

	doc.GetElementByID("go").SetDisabled(true).Click(context.Background())
	if submits != 1 {
		t.Fatalf("expected disabled button to ignore clicks, got %d", submits)
	}
}

func TestRender_EscapesText(t *testing.T) {
	doc := parseSample(t)
	doc.GetElementByID("group").SetText(`<script>alert(1)</script>`)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("expected doctype, got %q", out[:20])
	}
	if strings.Contains(out, "<script>alert") {
		t.Fatalf("expected text to be escaped: %s", out)
	}
	if strings.Contains(out, "comment") {
		t.Fatalf("expected comments to be dropped")
	}
}
