package main

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gamefinder "github.com/goliatone/go-gamefinder"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/model"
)

func TestSuggest(t *testing.T) {
	labels := model.MustDefaultCatalog().Genres
	cases := map[string]string{
		"horor":    "Horror",
		"SURVIVAL": "Survival",
		"tycon":    "Tycoon",
		"zzzzzzzz": "",
	}
	for input, want := range cases {
		if got := suggest(input, labels); got != want {
			t.Fatalf("suggest(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveLabels(t *testing.T) {
	labels := model.MustDefaultCatalog().Mechanics

	got, err := resolveLabels("mechanic", []string{"pvp", " Trading "}, labels)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"PvP", "Trading"}, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	_, err = resolveLabels("mechanic", []string{"Bilding"}, labels)
	if err == nil || !strings.Contains(err.Error(), `did you mean "Building"?`) {
		t.Fatalf("expected suggestion, got %v", err)
	}

	_, err = resolveLabels("mechanic", []string{"qwertyuiop"}, labels)
	if err == nil || !strings.Contains(err.Error(), "choose from: PvP") {
		t.Fatalf("expected label list, got %v", err)
	}
}

func TestStringsFlagRepeatsAndSplits(t *testing.T) {
	var genres stringsFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&genres, "genre", "")
	if err := fs.Parse([]string{"-genre", "Obby", "-genre", "Horror, Puzzle"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(stringsFlag{"Obby", "Horror", "Puzzle"}, genres); diff != "" {
		t.Fatalf("flag mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySelection(t *testing.T) {
	ctx := context.Background()
	ctrl, err := gamefinder.NewController(ctx, gamefinder.PageData{})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}

	err = applySelection(ctx, ctrl, selection{
		description: "spooky",
		genres:      []string{"horror"},
		device:      "vr",
		vibes:       []string{"Social", "relaxing"},
		withGroup:   true,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	filters, err := ctrl.Filters()
	if err != nil {
		t.Fatalf("filters: %v", err)
	}
	want := model.SearchFilters{
		Description: "spooky",
		Genres:      []string{"Horror"},
		WithGroup:   true,
		Device:      "VR",
		Mechanics:   []string{},
		Vibes:       []string{"Relaxing", "Social"},
	}
	if diff := cmp.Diff(want, filters); diff != "" {
		t.Fatalf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySelectionUnknownDevice(t *testing.T) {
	ctx := context.Background()
	ctrl, err := gamefinder.NewController(ctx, gamefinder.PageData{})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	err = applySelection(ctx, ctrl, selection{device: "Mobil"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "Mobile"?`) {
		t.Fatalf("expected device suggestion, got %v", err)
	}
	if got := ctrl.Group(finder.GroupDevices).Selected(); len(got) != 1 || got[0] != "Any" {
		t.Fatalf("expected default device kept, got %v", got)
	}
}
