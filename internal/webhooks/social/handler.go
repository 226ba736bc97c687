// Package social is the HTTP transport of the provider webhook.
package social

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	appservices "github.com/fr0stylo/socialsync/internal/app/services"
)

const (
	// SignatureHeader carries the HMAC of the raw body.
	SignatureHeader = "X-Hub-Signature-256"
	maxPayloadBytes = 1 << 20
)

// Ingestor is the push-path service used by the handler.
type Ingestor interface {
	VerifyChallenge(mode, token, challenge string) (string, error)
	Authenticate(ctx context.Context, cmd appservices.WebhookCommand) error
	Process(ctx context.Context, body []byte) appservices.WebhookReport
}

// Handler serves the subscription challenge and event deliveries.
type Handler struct {
	ingestor Ingestor
	log      *slog.Logger
}

// NewHandler constructs a social webhook handler.
func NewHandler(ingestor Ingestor, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{ingestor: ingestor, log: log}
}

// Challenge answers the GET verification handshake.
func (h *Handler) Challenge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	challenge, err := h.ingestor.VerifyChallenge(
		query.Get("hub.mode"),
		query.Get("hub.verify_token"),
		query.Get("hub.challenge"),
	)
	if err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, challenge)
}

// Handle authenticates a delivery and then processes it. Once the signature
// passes the response is always 200, whatever processing reports.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil || len(body) > maxPayloadBytes {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	cmd := appservices.WebhookCommand{SignatureHeader: r.Header.Get(SignatureHeader), Body: body}
	if err := h.ingestor.Authenticate(r.Context(), cmd); err != nil {
		h.log.WarnContext(r.Context(), "webhook rejected", "error", err)
		http.Error(w, "invalid signature", http.StatusForbidden)
		return
	}

	report := h.ingestor.Process(r.Context(), body)
	h.log.InfoContext(r.Context(), "webhook processed",
		"changes", report.Changes,
		"imported", len(report.Results),
		"errors", len(report.Errors),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
