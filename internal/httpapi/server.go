// Package httpapi serves the bot's HTTP endpoints: the Telegram webhook,
// Prometheus metrics and a health check.
package httpapi

import (
	"context"
	"crypto/subtle"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/splitbot/internal/middleware"
)

// WebhookPath is where Telegram posts updates when a webhook is configured.
const WebhookPath = "/telegram/webhook"

// SecretHeader carries the secret_token registered with setWebhook.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// maxUpdateSize bounds webhook bodies; real updates are a few kilobytes.
const maxUpdateSize = 1 << 20

// WebhookHandler consumes raw webhook bodies. *bot.Bot satisfies it.
type WebhookHandler interface {
	HandleWebhook(ctx context.Context, body []byte) error
}

// NewRouter wires the endpoints. webhook may be nil when the bot polls.
// Webhook requests must carry secret in SecretHeader.
func NewRouter(webhook WebhookHandler, secret string, metrics http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging)

	r.HandleFunc("/healthz", handleHealth).Methods("GET")
	if metrics != nil {
		r.Handle("/metrics", metrics).Methods("GET")
	}
	if webhook != nil {
		r.HandleFunc(WebhookPath, webhookHandler(webhook, secret)).Methods("POST")
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func webhookHandler(webhook WebhookHandler, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !validSecret(r.Header.Get(SecretHeader), secret) {
			slog.Warn("Rejected webhook request without a valid secret", "remote", r.RemoteAddr)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxUpdateSize))
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		if err := webhook.HandleWebhook(r.Context(), body); err != nil {
			slog.Warn("Rejected webhook update", "error", err)
			http.Error(w, "invalid update", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// An empty secret matches nothing.
func validSecret(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// NewServer wraps handler with h2c so clients may use HTTP/2 without TLS.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
