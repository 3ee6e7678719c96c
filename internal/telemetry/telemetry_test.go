package telemetry

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func newRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "typecraft_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Add(3)
	return reg
}

func TestMetricsEndpoint(t *testing.T) {
	h := NewRouter(newRegistry(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d; want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "typecraft_test_total 3") {
		t.Errorf("body missing counter:\n%s", rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	var healthErr error
	h := NewRouter(prometheus.NewRegistry(), func() error { return healthErr })

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"healthy", nil, http.StatusOK, "ok"},
		{"unhealthy", errors.New("session ended"), http.StatusServiceUnavailable, "session ended"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthErr = tt.err
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantCode)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q; want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	h := NewRouter(prometheus.NewRegistry(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, NewRouter(prometheus.NewRegistry(), nil)) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q; want ok", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve() = %v; want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve() did not return after cancel")
	}
}

func TestServeBadAddress(t *testing.T) {
	if err := Serve(context.Background(), "not an address", http.NotFoundHandler()); err == nil {
		t.Error("Serve() with bad address succeeded")
	}
}
