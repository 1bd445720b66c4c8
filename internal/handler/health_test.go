package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mathlog/mathlog-go/internal/testutil"
	"github.com/mathlog/mathlog-go/internal/version"
)

func testVersionInfo() *version.Info {
	return &version.Info{Version: "test"}
}

func TestHealth(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, testVersionInfo())

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", status.Status)
	}
	if status.Checks["database"].Status != "healthy" {
		t.Errorf("database check = %q, want healthy", status.Checks["database"].Status)
	}
	if status.System != nil {
		t.Error("System should be omitted without verbose")
	}
}

func TestHealth_Verbose(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, testVersionInfo())

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status.System == nil {
		t.Fatal("System should be included with verbose=true")
	}
	if status.System.GoVersion == "" {
		t.Error("GoVersion should be set")
	}
}

func TestHealth_DegradedWhenDBClosed(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	cleanup()

	h := NewHealthHandler(db, testVersionInfo())

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestLiveness(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, testVersionInfo())

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewHealthHandler(db, testVersionInfo())

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want ready", resp["status"])
	}
}
