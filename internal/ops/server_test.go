package ops

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	healthuc "github.com/hetmobile/hetbot/internal/usecase/health"
)

type stubStorage struct {
	err error
}

func (s stubStorage) Check() error { return s.err }

func TestHealthz_OK(t *testing.T) {
	r := NewRouter(healthuc.New(stubStorage{}, nil), zap.NewNop())

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Checks["storage"] != "ok" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestHealthz_Degraded(t *testing.T) {
	r := NewRouter(healthuc.New(stubStorage{err: errors.New("unwritable")}, nil), zap.NewNop())

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(healthuc.New(stubStorage{}, nil), zap.NewNop())

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Error("expected default process metrics in the exposition")
	}
}
