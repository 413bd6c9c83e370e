package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/rangepicker/internal/api"
	"github.com/terraincognita07/rangepicker/internal/db"
)

func TestNewAppServesHealthAndPresets(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "rangepicker-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	handler, err := api.NewHandler(database, "0123456789abcdef0123456789abcdef", time.UTC, time.Hour)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	app := newApp(handler)

	for _, path := range []string{"/healthz", "/api/presets"} {
		response, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("request %s failed: %v", path, err)
		}
		response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, response.StatusCode)
		}
	}
}

func TestNewAppRecoversUnknownRoutesAsNotFound(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "rangepicker-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	handler, err := api.NewHandler(database, "0123456789abcdef0123456789abcdef", time.UTC, time.Hour)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	response, err := newApp(handler).Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}
