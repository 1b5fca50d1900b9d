package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	hc := NewHealthController("memory")
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	hc.HealthCheck(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", rr.Body.String(), err)
	}
	if body["status"] != "ok" || body["store"] != "memory" {
		t.Errorf("unexpected body %v", body)
	}

	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %v", rr.Header().Get("Content-Type"))
	}
}
