package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingRecordsStatus(t *testing.T) {
	buf := captureLogs(t)

	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "status=418") || !strings.Contains(out, "path=/healthz") {
		t.Errorf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("expected debug level for non-error status: %s", out)
	}
}

func TestLoggingServerErrors(t *testing.T) {
	buf := captureLogs(t)

	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/telegram/webhook", nil))

	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("expected error level log: %s", buf.String())
	}
}

func TestLoggingDefaultsToOK(t *testing.T) {
	buf := captureLogs(t)

	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("expected status=200: %s", buf.String())
	}
}
