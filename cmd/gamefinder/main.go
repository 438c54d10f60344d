package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	gamefinder "github.com/goliatone/go-gamefinder"
	"github.com/goliatone/go-gamefinder/internal/config"
	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/options"
	"github.com/goliatone/go-gamefinder/pkg/renderers/tui"
)

type selection struct {
	description string
	genres      []string
	device      string
	mechanics   []string
	vibes       []string
	withGroup   bool
}

func main() {
	_ = godotenv.Load()

	var (
		sel        selection
		genres     stringsFlag
		mechanics  stringsFlag
		vibes      stringsFlag
		configPath = flag.String("config", "", "configuration file (yaml)")
		endpoint   = flag.String("endpoint", "", "search endpoint URL (overrides config)")
		interact   = flag.Bool("interactive", false, "prompt for every input")
	)
	flag.StringVar(&sel.description, "description", "", "free text description of the game")
	flag.Var(&genres, "genre", "genre label (repeatable)")
	flag.StringVar(&sel.device, "device", "", "device label")
	flag.Var(&mechanics, "mechanic", "mechanic label (repeatable)")
	flag.Var(&vibes, "vibe", "vibe label (repeatable)")
	flag.BoolVar(&sel.withGroup, "group", false, "playing with friends")
	flag.Parse()
	sel.genres, sel.mechanics, sel.vibes = genres, mechanics, vibes

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	target := cfg.Endpoint("")
	if *endpoint != "" {
		target = *endpoint
	}

	ctx := context.Background()
	ctrl, err := gamefinder.NewController(ctx, gamefinder.PageData{}, finder.WithEndpoint(target))
	if err != nil {
		log.Fatalf("Failed to build finder: %v", err)
	}
	defer ctrl.Detach()

	if err := applySelection(ctx, ctrl, sel); err != nil {
		log.Fatal(err)
	}

	renderer, err := tui.New()
	if err != nil {
		log.Fatalf("Failed to create terminal renderer: %v", err)
	}
	if *interact {
		if _, err := renderer.Collect(ctx, ctrl); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				os.Exit(130)
			}
			log.Fatalf("Failed to collect input: %v", err)
		}
	}

	submitErr := renderer.Submit(ctx, ctrl)
	if err := renderer.Print(os.Stdout, ctrl); err != nil {
		log.Fatalf("Failed to print results: %v", err)
	}
	if submitErr != nil {
		if !errors.Is(submitErr, tui.ErrSearchFailed) {
			fmt.Fprintln(os.Stderr, submitErr)
		}
		os.Exit(1)
	}
}

// applySelection clicks the flag values into the page.
func applySelection(ctx context.Context, ctrl *finder.Controller, sel selection) error {
	ctrl.Elements().Description.SetValue(sel.description)

	groups := []struct {
		name   string
		kind   string
		labels []string
	}{
		{finder.GroupGenres, "genre", sel.genres},
		{finder.GroupMechanics, "mechanic", sel.mechanics},
		{finder.GroupVibes, "vibe", sel.vibes},
	}
	if sel.device != "" {
		groups = append(groups, struct {
			name   string
			kind   string
			labels []string
		}{finder.GroupDevices, "device", []string{sel.device}})
	}

	for _, g := range groups {
		group := ctrl.Group(g.name)
		if group == nil || len(g.labels) == 0 {
			continue
		}
		labels, err := resolveLabels(g.kind, g.labels, group.Labels())
		if err != nil {
			return err
		}
		group.Select(ctx, labels...)
	}

	mode := options.PlaySolo
	if sel.withGroup {
		mode = options.PlayWithGroup
	}
	ctrl.Toggle().Select(ctx, mode)
	return nil
}
