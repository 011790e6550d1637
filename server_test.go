package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCheckEndpointHealthyTarget(t *testing.T) {
	acceptAllTargets(t)
	outputs := map[string]string{}
	healthyPair(outputs, 101, "50.0")
	installRunner(t, fakeRunner{outputs: outputs})

	router := newRouter(testConfig(), []Target{{PID: 101, Label: "one"}})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "OK:one alive heap 10% perm 10%|") {
		t.Fatalf("body = %q", body)
	}
}

func TestCheckEndpointCriticalTarget(t *testing.T) {
	restore := setProcessValidator(func(target Target) error {
		return fmt.Errorf("%w: pid %d", ErrProcessNotFound, target.PID)
	})
	t.Cleanup(restore)
	installRunner(t, fakeRunner{})

	router := newRouter(testConfig(), []Target{{PID: 9, Label: "gone"}})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "CRITICAL:gone process not found") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newRouter(testConfig(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var health healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatalf("decoding health response: %v", err)
	}
	if health.Status != "healthy" || health.Timestamp == "" {
		t.Fatalf("health = %+v", health)
	}
}

func TestCheckEndpointRejectsPost(t *testing.T) {
	router := newRouter(testConfig(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/check", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
