package passport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openpitch/pitchside/internal/platform/resilience"
	"github.com/openpitch/pitchside/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:        server.URL,
		IntrospectPath: "/v1/introspect",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_VerifyAccessToken_ActiveToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/introspect" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Token != "token-123" {
			t.Errorf("unexpected token %q", req.Token)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"active":  true,
			"user_id": "user-alex",
			"email":   "alex@example.com",
		})
	})

	principal, err := client.VerifyAccessToken(t.Context(), "token-123")
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.UserID != "user-alex" || principal.Email != "alex@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestClient_VerifyAccessToken_InactiveToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"active": false})
	})

	if _, err := client.VerifyAccessToken(t.Context(), "expired"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_VerifyAccessToken_DeniedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.VerifyAccessToken(t.Context(), "bad"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_VerifyAccessToken_EmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("introspection endpoint should not be called")
		w.WriteHeader(http.StatusOK)
	})

	if _, err := client.VerifyAccessToken(t.Context(), "   "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_CircuitOpensAfterUpstreamFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		IntrospectPath: "/v1/introspect",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenLimit:    1,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(t.Context(), "token"); err == nil {
			t.Fatalf("expected upstream failure on call %d", i)
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", calls)
	}

	// Breaker is now open; the next call must be shed without a request.
	if _, err := client.VerifyAccessToken(t.Context(), "token"); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("open circuit still reached upstream: %d calls", calls)
	}
}
