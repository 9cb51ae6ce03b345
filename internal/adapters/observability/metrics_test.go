package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wander_wave/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/hotelRooms", "GET", 200, 12*time.Millisecond)
	observability.ObserveAuthFailure("missing_token")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "wander_http_requests_total") {
		t.Fatalf("expected wander_http_requests_total in output")
	}
	if !strings.Contains(out, "wander_auth_failures_total") {
		t.Fatalf("expected wander_auth_failures_total in output")
	}
}
