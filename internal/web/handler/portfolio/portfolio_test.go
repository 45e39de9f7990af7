package portfolio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
)

func newTestService(t *testing.T, content string) (*fiber.App, store.Store) {
	t.Helper()

	dir := t.TempDir()
	contentFile := filepath.Join(dir, "content.txt")

	if content != "" {
		if err := os.WriteFile(contentFile, []byte(content), 0o640); err != nil {
			t.Fatalf("failed to write content file: %v", err)
		}
	}

	app := fiber.New()
	cfg := &config.Config{
		Storage:   config.Storage{ContentFile: contentFile},
		Webserver: config.Webserver{URL: "http://localhost", Port: 8000},
	}
	st := store.NewFileStore(dir)

	var s Service
	if err := s.Init(app, cfg, st, nil); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	return app, st
}

func getContent(t *testing.T, app *fiber.App) map[string]map[string]string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, Path, nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	body := struct {
		Content map[string]map[string]string `json:"content"`
	}{}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return body.Content
}

func TestGet_ParsesSections(t *testing.T) {
	app, _ := newTestService(t, `[Hero]
name=Venky
tagline=Builder of things

[About]
# a comment line
bio=Short bio
`)

	content := getContent(t, app)

	hero, ok := content["hero"]
	if !ok {
		t.Fatalf("missing hero section, got %v", content)
	}

	if hero["name"] != "Venky" || hero["tagline"] != "Builder of things" {
		t.Errorf("hero section = %v", hero)
	}

	about := content["about"]
	if about["bio"] != "Short bio" {
		t.Errorf("about section = %v", about)
	}

	if _, ok := about["# a comment line"]; ok {
		t.Error("comment lines must not become keys")
	}
}

func TestGet_MissingFileDegradesToEmpty(t *testing.T) {
	app, _ := newTestService(t, "")

	content := getContent(t, app)
	if len(content) != 0 {
		t.Errorf("expected empty content, got %v", content)
	}
}

func TestGet_RecordsView(t *testing.T) {
	app, st := newTestService(t, "[hero]\nname=Venky\n")

	getContent(t, app)
	getContent(t, app)

	events := st.ListAnalytics()
	if len(events) != 2 {
		t.Fatalf("expected 2 recorded events, got %d", len(events))
	}

	for _, event := range events {
		if event.EventType != models.EventContentView {
			t.Errorf("event type = %v, want %v", event.EventType, models.EventContentView)
		}

		if event.UUID == "" || event.ClientIP == "" {
			t.Errorf("event missing id or client ip: %+v", event)
		}
	}
}

func TestGet_FileEditsVisibleWithoutRestart(t *testing.T) {
	dir := t.TempDir()
	contentFile := filepath.Join(dir, "content.txt")

	if err := os.WriteFile(contentFile, []byte("[hero]\nname=Old\n"), 0o640); err != nil {
		t.Fatalf("failed to write content file: %v", err)
	}

	app := fiber.New()
	cfg := &config.Config{
		Storage:   config.Storage{ContentFile: contentFile},
		Webserver: config.Webserver{URL: "http://localhost", Port: 8000},
	}

	var s Service
	if err := s.Init(app, cfg, store.NewFileStore(dir), nil); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if got := getContent(t, app)["hero"]["name"]; got != "Old" {
		t.Fatalf("name = %v, want Old", got)
	}

	if err := os.WriteFile(contentFile, []byte("[hero]\nname=New\n"), 0o640); err != nil {
		t.Fatalf("failed to rewrite content file: %v", err)
	}

	if got := getContent(t, app)["hero"]["name"]; got != "New" {
		t.Errorf("name = %v, want New after file edit", got)
	}
}
