package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"

	"github.com/cometfolio/cometfolio/internal/auth"
	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/db/models"
	"github.com/cometfolio/cometfolio/internal/store"
)

func newTestService(t *testing.T) (*fiber.App, store.Store, *auth.Gate) {
	t.Helper()

	app := fiber.New()
	cfg := &config.Config{
		Auth:      config.Auth{Secret: "test-secret", TokenLifetime: time.Minute},
		Webserver: config.Webserver{URL: "http://localhost", Port: 8000},
	}
	st := store.NewFileStore(t.TempDir())
	gate := auth.New(cfg.Auth.Secret, cfg.Auth.TokenLifetime)

	var s Service
	if err := s.Init(app, cfg, st, gate); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	return app, st, gate
}

func recordEvent(t *testing.T, st store.Store, eventType, ip string) {
	t.Helper()

	err := st.AppendAnalytics(&models.AnalyticsEvent{
		UUID:      uuid.NewString(),
		EventType: eventType,
		CreatedAt: time.Now().UTC(),
		ClientIP:  ip,
	})
	if err != nil {
		t.Fatalf("failed to append event: %v", err)
	}
}

type summaryResponse struct {
	Summary struct {
		TotalEvents    int            `json:"total_events"`
		ByEventType    map[string]int `json:"by_event_type"`
		UniqueVisitors int            `json:"unique_visitors"`
	} `json:"summary"`
	DetailedVisits []models.AnalyticsEvent `json:"detailed_visits"`
}

func getAnalytics(t *testing.T, app *fiber.App, token string) (int, summaryResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body := summaryResponse{}
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}

	return resp.StatusCode, body
}

func TestGet_Summary(t *testing.T) {
	app, st, gate := newTestService(t)

	recordEvent(t, st, models.EventContentView, "10.0.0.1")
	recordEvent(t, st, models.EventContentView, "10.0.0.2")
	recordEvent(t, st, models.EventContentView, "10.0.0.1")
	recordEvent(t, st, models.EventLoginSuccess, "10.0.0.3")

	token, _, err := gate.Issue("venky")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	status, body := getAnalytics(t, app, token)
	if status != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", status)
	}

	if body.Summary.TotalEvents != 4 {
		t.Errorf("total_events = %d, want 4", body.Summary.TotalEvents)
	}

	if body.Summary.ByEventType[models.EventContentView] != 3 {
		t.Errorf("content_view count = %d, want 3", body.Summary.ByEventType[models.EventContentView])
	}

	if body.Summary.ByEventType[models.EventLoginSuccess] != 1 {
		t.Errorf("login_success count = %d, want 1", body.Summary.ByEventType[models.EventLoginSuccess])
	}

	// unique visitors count content views only
	if body.Summary.UniqueVisitors != 2 {
		t.Errorf("unique_visitors = %d, want 2", body.Summary.UniqueVisitors)
	}

	if len(body.DetailedVisits) != 3 {
		t.Fatalf("detailed_visits = %d entries, want 3", len(body.DetailedVisits))
	}

	for _, visit := range body.DetailedVisits {
		if visit.EventType != models.EventContentView {
			t.Errorf("detailed visit with type %v", visit.EventType)
		}
	}
}

func TestGet_Empty(t *testing.T) {
	app, _, gate := newTestService(t)

	token, _, err := gate.Issue("venky")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	status, body := getAnalytics(t, app, token)
	if status != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", status)
	}

	if body.Summary.TotalEvents != 0 || body.Summary.UniqueVisitors != 0 {
		t.Errorf("expected zeroed summary, got %+v", body.Summary)
	}

	if body.DetailedVisits == nil || len(body.DetailedVisits) != 0 {
		t.Errorf("detailed_visits should be an empty list, got %v", body.DetailedVisits)
	}
}

func TestGet_RequiresAuth(t *testing.T) {
	app, _, _ := newTestService(t)

	status, _ := getAnalytics(t, app, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", status)
	}
}
