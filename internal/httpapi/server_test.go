package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeWebhook struct {
	bodies [][]byte
	err    error
}

func (f *fakeWebhook) HandleWebhook(ctx context.Context, body []byte) error {
	f.bodies = append(f.bodies, body)
	return f.err
}

const testSecret = "s3cr3t-token_1"

func webhookRequest(body, secret string) *http.Request {
	req := httptest.NewRequest("POST", WebhookPath, strings.NewReader(body))
	if secret != "" {
		req.Header.Set(SecretHeader, secret)
	}
	return req
}

func TestHealth(t *testing.T) {
	r := NewRouter(nil, "", nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("splitbot_bills_created_total 3\n"))
	})
	r := NewRouter(nil, "", metrics)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(rec.Body.String(), "splitbot_bills_created_total 3") {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestWebhook(t *testing.T) {
	webhook := &fakeWebhook{}
	r := NewRouter(webhook, testSecret, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, webhookRequest(`{"update_id":1}`, testSecret))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if len(webhook.bodies) != 1 || string(webhook.bodies[0]) != `{"update_id":1}` {
		t.Errorf("unexpected bodies: %q", webhook.bodies)
	}
}

func TestWebhookRejectsBadUpdates(t *testing.T) {
	webhook := &fakeWebhook{err: errors.New("bad json")}
	r := NewRouter(webhook, testSecret, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, webhookRequest("{", testSecret))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestWebhookRequiresSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
	}{
		{"missing header", testSecret, ""},
		{"wrong header", testSecret, "guess"},
		{"prefix of secret", testSecret, testSecret[:4]},
		{"no secret configured", "", "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			webhook := &fakeWebhook{}
			r := NewRouter(webhook, tt.secret, nil)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, webhookRequest(`{"update_id":1}`, tt.header))

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if len(webhook.bodies) != 0 {
				t.Errorf("update reached the bot: %q", webhook.bodies)
			}
		})
	}
}

func TestWebhookRouteNeedsHandlerAndPost(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(nil, "", nil).ServeHTTP(rec, httptest.NewRequest("POST", WebhookPath, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("polling mode: status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	NewRouter(&fakeWebhook{}, testSecret, nil).ServeHTTP(rec, httptest.NewRequest("GET", WebhookPath, nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET webhook: status = %d, want 405", rec.Code)
	}
}

func TestServerSpeaksHTTP1(t *testing.T) {
	srv := httptest.NewServer(NewServer("", NewRouter(nil, "", nil)).Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}
