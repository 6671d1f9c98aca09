package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/developerDD/banyabot/internal/config"
	"github.com/developerDD/banyabot/internal/session"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *memStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.data[key]
	return blob, ok, nil
}

func (s *memStore) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = blob
	return nil
}

func testAPI(t *testing.T) (*API, *session.Manager) {
	t.Helper()
	mgr := session.NewManager(&memStore{data: make(map[string][]byte)}, session.Options{Mode: session.ModeText})
	return New(&config.Config{WebBind: "127.0.0.1:0"}, mgr), mgr
}

func TestHandleHealth(t *testing.T) {
	api, _ := testAPI(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status OK, got %v", w.Code)
	}
}

func TestHandleRoster(t *testing.T) {
	api, mgr := testAPI(t)
	ctx := context.Background()

	if _, err := mgr.Start(ctx, "chan-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := mgr.HandleSelect(ctx, "chan-1", "add_name"); err != nil {
		t.Fatalf("HandleSelect: %v", err)
	}
	if _, err := mgr.HandleText(ctx, "chan-1", "оля"); err != nil {
		t.Fatalf("HandleText: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/roster", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}

	var body struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Names) != 1 || body.Names[0] != "Оля" {
		t.Errorf("Expected roster [Оля], got %v", body.Names)
	}
}

func TestHandleSessionNotFound(t *testing.T) {
	api, _ := testAPI(t)

	req := httptest.NewRequest("GET", "/api/channels/nope/session", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %v", w.Code)
	}
}

func TestHandleSessionAndReport(t *testing.T) {
	api, mgr := testAPI(t)
	ctx := context.Background()

	steps := []struct {
		kind  string
		value string
	}{
		{"select", "add_name"},
		{"text", "ann"},
		{"select", "confirm_participants"},
		{"select", "drinkers_done"},
		{"text", "100"},
		{"text", "ann 60"},
	}
	if _, err := mgr.Start(ctx, "chan-1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, step := range steps {
		var err error
		if step.kind == "select" {
			_, err = mgr.HandleSelect(ctx, "chan-1", step.value)
		} else {
			_, err = mgr.HandleText(ctx, "chan-1", step.value)
		}
		if err != nil {
			t.Fatalf("step %v: %v", step, err)
		}
	}

	req := httptest.NewRequest("GET", "/api/channels/chan-1/session", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	var snap struct {
		Phase        string   `json:"phase"`
		Participants []string `json:"participants"`
		BathCost     int64    `json:"bath_cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snap.Phase != "confirm_food" {
		t.Errorf("Expected phase confirm_food, got %q", snap.Phase)
	}
	if snap.BathCost != 100 {
		t.Errorf("Expected bath cost 100, got %d", snap.BathCost)
	}

	// no report until the flow finishes
	req = httptest.NewRequest("GET", "/api/channels/chan-1/report", nil)
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404 before finalize, got %v", w.Code)
	}

	if _, err := mgr.HandleText(ctx, "chan-1", "ні"); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	req = httptest.NewRequest("GET", "/api/channels/chan-1/report", nil)
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	var report struct {
		GrandTotal int64 `json:"grand_total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.GrandTotal != 160 {
		t.Errorf("Expected grand total 160, got %d", report.GrandTotal)
	}
}
