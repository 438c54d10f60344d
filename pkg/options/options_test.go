package options

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-gamefinder/pkg/dom"
)

func activeCount(g *Group) int {
	return len(g.Selected())
}

func TestRender_MultiSelectToggles(t *testing.T) {
	ctx := context.Background()
	container := dom.NewElement("div")
	g := Render(container, []string{"Obby", "Horror", "Puzzle"}, MultiSelect)

	if got := Selected(container); len(got) != 0 {
		t.Fatalf("expected no active buttons, got %v", got)
	}

	g.Click(ctx, "Horror")
	if diff := cmp.Diff([]string{"Horror"}, Selected(container)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	g.Click(ctx, "Horror")
	if diff := cmp.Diff([]string{}, Selected(container)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ButtonsInListOrder(t *testing.T) {
	container := dom.NewElement("div")
	Render(container, []string{"PvP", "PvE", "Building"}, MultiSelect)

	children := container.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(children))
	}
	for i, label := range []string{"PvP", "PvE", "Building"} {
		btn := children[i]
		if btn.Tag() != "button" || btn.Text() != label || btn.Data("value") != label {
			t.Fatalf("unexpected button %d: %s", i, btn.OuterHTML())
		}
		if typ, _ := btn.Attr("type"); typ != "button" {
			t.Fatalf("expected type=button, got %q", typ)
		}
	}
}

func TestRender_SingleSelectKeepsExactlyOneActive(t *testing.T) {
	ctx := context.Background()
	container := dom.NewElement("div")
	g := Render(container, []string{"PC", "Mobile", "Console", "VR"}, SingleSelect)

	if got, ok := Active(container); !ok || got != "PC" {
		t.Fatalf("expected PC active before any click, got %q", got)
	}

	g.Click(ctx, "VR")
	if diff := cmp.Diff([]string{"VR"}, Selected(container)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	g.Click(ctx, "VR")
	if diff := cmp.Diff([]string{"VR"}, Selected(container)); diff != "" {
		t.Fatalf("re-click changed selection (-want +got):\n%s", diff)
	}
}

func TestRender_SingleSelectKeepsOneActiveUnderRandomClicks(t *testing.T) {
	ctx := context.Background()
	labels := []string{"Any", "PC", "Mobile", "Console", "VR"}
	g := Render(dom.NewElement("div"), labels, SingleSelect)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		label := labels[rng.Intn(len(labels))]
		g.Click(ctx, label)
		if n := activeCount(g); n != 1 {
			t.Fatalf("after click %d expected exactly one active, got %d", i, n)
		}
		if got, _ := Active(g.Container()); got != label {
			t.Fatalf("expected %q active, got %q", label, got)
		}
	}
}

func TestRender_MultiSelectParity(t *testing.T) {
	ctx := context.Background()
	labels := []string{"Fast-Paced", "Relaxing", "Story-Driven", "Competitive", "Social", "Exploration"}
	g := Render(dom.NewElement("div"), labels, MultiSelect)
	rng := rand.New(rand.NewSource(11))

	counts := map[string]int{}
	for i := 0; i < 101; i++ {
		label := labels[rng.Intn(len(labels))]
		counts[label]++
		g.Click(ctx, label)
	}

	want := []string{}
	for _, label := range labels {
		if counts[label]%2 == 1 {
			want = append(want, label)
		}
	}
	if diff := cmp.Diff(want, g.Selected()); diff != "" {
		t.Fatalf("odd-click set mismatch (-want +got):\n%s", diff)
	}
}

func TestSelected_FollowsRenderOrderNotClickOrder(t *testing.T) {
	ctx := context.Background()
	g := Render(dom.NewElement("div"), []string{"a", "b", "c", "d"}, MultiSelect)
	g.Click(ctx, "d")
	g.Click(ctx, "a")
	g.Click(ctx, "c")

	if diff := cmp.Diff([]string{"a", "c", "d"}, g.Selected()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_Select(t *testing.T) {
	ctx := context.Background()
	multi := Render(dom.NewElement("div"), []string{"a", "b", "c"}, MultiSelect)
	multi.Click(ctx, "a")

	unknown := multi.Select(ctx, "c", "b", "zzz")
	if diff := cmp.Diff([]string{"b", "c"}, multi.Selected()); diff != "" {
		t.Fatalf("multi selection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"zzz"}, unknown); diff != "" {
		t.Fatalf("unknown mismatch (-want +got):\n%s", diff)
	}

	single := Render(dom.NewElement("div"), []string{"PC", "VR"}, SingleSelect)
	single.Select(ctx, "nope", "VR")
	if diff := cmp.Diff([]string{"VR"}, single.Selected()); diff != "" {
		t.Fatalf("single selection mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_DetachStopsClicks(t *testing.T) {
	ctx := context.Background()
	g := Render(dom.NewElement("div"), []string{"a"}, MultiSelect)
	g.Detach()
	g.Click(ctx, "a")
	if got := g.Selected(); len(got) != 0 {
		t.Fatalf("expected detached group to ignore clicks, got %v", got)
	}
}

func TestRender_EmptySingleSelect(t *testing.T) {
	g := Render(dom.NewElement("div"), nil, SingleSelect)
	if _, ok := Active(g.Container()); ok {
		t.Fatalf("expected no active label for empty group")
	}
}

func newToggleContainer() *dom.Element {
	container := dom.NewElement("div")
	container.AppendChild(dom.NewElement("button").
		SetAttr("type", "button").
		SetAttr("class", "toggle-button active").
		SetData("value", "false").
		SetText("Solo"))
	container.AppendChild(dom.NewElement("button").
		SetAttr("type", "button").
		SetAttr("class", "toggle-button").
		SetData("value", "true").
		SetText("With Friends"))
	return container
}

func TestToggle_DelegatedClicks(t *testing.T) {
	ctx := context.Background()
	container := newToggleContainer()
	toggle := BindToggle(container)

	mode, err := toggle.Value()
	if err != nil || mode != PlaySolo || mode.WithGroup() {
		t.Fatalf("expected solo, got %v (%v)", mode, err)
	}

	container.Children()[1].Click(ctx)
	mode, err = toggle.Value()
	if err != nil || mode != PlayWithGroup {
		t.Fatalf("expected group, got %v (%v)", mode, err)
	}
	if n := len(container.FindAll(dom.HasClass(ToggleButtonClass, ActiveClass))); n != 1 {
		t.Fatalf("expected one active toggle button, got %d", n)
	}

	// Clicks on the container itself are ignored.
	container.Click(ctx)
	if mode, _ := toggle.Value(); mode != PlayWithGroup {
		t.Fatalf("container click changed mode")
	}

	if !toggle.Select(ctx, PlaySolo) {
		t.Fatalf("expected solo button")
	}
	if mode, _ := toggle.Value(); mode != PlaySolo {
		t.Fatalf("expected solo after Select")
	}

	toggle.Detach()
	container.Children()[1].Click(ctx)
	if mode, _ := toggle.Value(); mode != PlaySolo {
		t.Fatalf("detached toggle still reacts")
	}
}

func TestToggle_NoActiveButton(t *testing.T) {
	container := newToggleContainer()
	container.Children()[0].ClassList().Remove(ActiveClass)
	if _, err := BindToggle(container).Value(); err != ErrNoActiveToggle {
		t.Fatalf("expected ErrNoActiveToggle, got %v", err)
	}
}

func TestParsePlayMode(t *testing.T) {
	for raw, want := range map[string]PlayMode{"true": PlayWithGroup, "false": PlaySolo} {
		got, err := ParsePlayMode(raw)
		if err != nil || got != want || got.String() != raw {
			t.Fatalf("ParsePlayMode(%q) = %v, %v", raw, got, err)
		}
	}
	if _, err := ParsePlayMode("yes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}
