package gamefinder

import (
	"context"
	"io/fs"
	"net/http"
	"strings"
	"testing"

	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/render"
	"github.com/goliatone/go-gamefinder/pkg/renderers/vanilla"
	"github.com/goliatone/go-gamefinder/pkg/testsupport"
)

func TestEmbeddedTemplatesContainsPage(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), vanilla.PageTemplate)
	if err != nil {
		t.Fatalf("expected page template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "sections") {
		t.Fatalf("expected page template to render option sections")
	}
}

func TestAssetsFSContainsStylesheet(t *testing.T) {
	if _, err := fs.ReadFile(AssetsFS(), vanilla.StylesheetName); err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
}

func TestRenderPage(t *testing.T) {
	page := vanilla.DefaultPageData()
	page.Title = "Find a game"
	out, err := RenderPage(context.Background(), page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>Find a game</title>") {
		t.Fatalf("expected title in output")
	}
}

func TestNewControllerSubmits(t *testing.T) {
	srv := testsupport.NewSearchServer(t, http.StatusOK,
		`[{"gameId":"1","urlName":"abc","gameName":"Test","matchRating":8,"description":"d"}]`)

	ctrl, err := NewController(context.Background(), PageData{}, finder.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	defer ctrl.Detach()

	if err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if cards := render.ReadCards(ctrl.Elements().Results); len(cards) != 1 {
		t.Fatalf("expected one card, got %+v", cards)
	}
}
