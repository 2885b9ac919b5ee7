package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jwebster45206/chronicle-engine/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	logger := testLogger()

	archive, err := storage.OpenArchive(filepath.Join(t.TempDir(), "chronicles.db"), logger)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer archive.Close()

	tests := []struct {
		name             string
		setupStorage     func() *storage.MockStorage
		expectedStatus   int
		expectedHealth   string
		expectedSessions string
	}{
		{
			name: "all healthy",
			setupStorage: func() *storage.MockStorage {
				s := storage.NewMockStorage()
				s.SetPingSuccess()
				return s
			},
			expectedStatus:   http.StatusOK,
			expectedHealth:   "healthy",
			expectedSessions: "healthy",
		},
		{
			name: "unhealthy sessions",
			setupStorage: func() *storage.MockStorage {
				s := storage.NewMockStorage()
				s.SetPingError(errors.New("connection failed"))
				return s
			},
			expectedStatus:   http.StatusServiceUnavailable,
			expectedHealth:   "degraded",
			expectedSessions: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(map[string]Pinger{
				"sessions": tt.setupStorage(),
				"archive":  archive,
				"skipped":  nil,
			}, logger)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			if rr.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", rr.Header().Get("Content-Type"))
			}

			var response HealthResponse
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if response.Status != tt.expectedHealth {
				t.Errorf("Expected status '%s', got '%s'", tt.expectedHealth, response.Status)
			}

			if response.Service != "chronicle-engine" {
				t.Errorf("Expected service 'chronicle-engine', got '%s'", response.Service)
			}

			if got := response.Components["sessions"]; got != tt.expectedSessions {
				t.Errorf("Expected sessions status '%s', got '%s'", tt.expectedSessions, got)
			}

			if got := response.Components["archive"]; got != "healthy" {
				t.Errorf("Expected archive status 'healthy', got '%s'", got)
			}

			if _, exists := response.Components["skipped"]; exists {
				t.Error("Nil component should not be reported")
			}

			if timeDiff := time.Since(response.Timestamp); timeDiff > time.Second {
				t.Errorf("Health check timestamp seems old: %v", timeDiff)
			}
		})
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHealthHandler(nil, testLogger())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
