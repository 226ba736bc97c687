package services

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/observability"
)

const subscribeMode = "subscribe"

// WebhookConfig holds the shared secrets of the provider subscription.
type WebhookConfig struct {
	AppSecret   string
	VerifyToken string
}

// WebhookCommand is transport-agnostic webhook delivery input.
type WebhookCommand struct {
	SignatureHeader string
	Body            []byte
}

// WebhookReport captures the best-effort processing phase of one delivery.
type WebhookReport struct {
	Changes int
	Results []ImportResult
	Errors  []string
}

// WebhookIngestService authenticates provider deliveries and imports the
// posts they reference.
type WebhookIngestService struct {
	cfg      WebhookConfig
	accounts ports.AccountStore
	provider ports.MediaProvider
	importer *PostImporter
	metrics  observability.PipelineMetrics
	log      *slog.Logger
}

// NewWebhookIngestService constructs the push-path service.
func NewWebhookIngestService(cfg WebhookConfig, accounts ports.AccountStore, provider ports.MediaProvider, importer *PostImporter, metrics observability.PipelineMetrics, log *slog.Logger) *WebhookIngestService {
	if log == nil {
		log = slog.Default()
	}
	return &WebhookIngestService{
		cfg:      cfg,
		accounts: accounts,
		provider: provider,
		importer: importer,
		metrics:  metrics,
		log:      log,
	}
}

// VerifyChallenge answers the subscription handshake. It has no side effects.
func (s *WebhookIngestService) VerifyChallenge(mode, token, challenge string) (string, error) {
	if mode != subscribeMode || s.cfg.VerifyToken == "" {
		return "", ErrInvalidVerifyToken
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.VerifyToken)) != 1 {
		return "", ErrInvalidVerifyToken
	}
	return challenge, nil
}

// Authenticate checks the delivery signature over the raw body.
func (s *WebhookIngestService) Authenticate(ctx context.Context, cmd WebhookCommand) error {
	if !VerifySignature(cmd.Body, cmd.SignatureHeader, s.cfg.AppSecret) {
		s.metrics.RecordRejected(ctx, string(ErrorInvalidSignature))
		return ErrInvalidSignature
	}
	return nil
}

// Handle authenticates the delivery and then processes it. Only an
// authentication failure is returned; processing problems land in the report.
func (s *WebhookIngestService) Handle(ctx context.Context, cmd WebhookCommand) (WebhookReport, error) {
	if err := s.Authenticate(ctx, cmd); err != nil {
		return WebhookReport{}, err
	}
	return s.Process(ctx, cmd.Body), nil
}

// Process imports every media change in an authenticated delivery.
func (s *WebhookIngestService) Process(ctx context.Context, body []byte) WebhookReport {
	report := WebhookReport{}

	changes, err := parseWebhookChanges(body)
	if err != nil {
		s.log.WarnContext(ctx, "webhook payload rejected", "error", err)
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	report.Changes = len(changes)

	accounts := map[string]domain.AccountContext{}
	for _, change := range changes {
		result, err := s.processChange(ctx, change, accounts)
		if err != nil {
			s.log.WarnContext(ctx, "webhook change not imported",
				"account_id", change.AccountID,
				"external_id", change.MediaID,
				"error", err,
			)
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.Results = append(report.Results, result)
	}
	return report
}

func (s *WebhookIngestService) processChange(ctx context.Context, change mediaChange, cache map[string]domain.AccountContext) (ImportResult, error) {
	account, ok := cache[change.AccountID]
	if !ok {
		resolved, err := s.accounts.GetAccountByProviderID(ctx, change.AccountID)
		if err != nil {
			return ImportResult{}, fmt.Errorf("resolve account %s: %w", change.AccountID, accountLookupError(err))
		}
		if !resolved.Enabled {
			return ImportResult{}, fmt.Errorf("resolve account %s: %w", change.AccountID, ErrAccountNotFound)
		}
		cache[change.AccountID] = resolved
		account = resolved
	}
	ctx = observability.WithStoreIdentity(ctx, account.TenantID, account.StoreID)

	exists, err := s.importer.gate.AlreadyImported(ctx, account.StoreID, change.MediaID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: dedup check: %w", ErrItemProcessing, err)
	}
	if exists {
		s.metrics.RecordOutcome(ctx, observability.PathWebhook, string(OutcomeSkipped))
		return ImportResult{ExternalID: change.MediaID, Outcome: OutcomeSkipped}, nil
	}

	post, err := s.provider.GetMedia(ctx, account, change.MediaID)
	if err != nil {
		s.metrics.RecordOutcome(ctx, observability.PathWebhook, string(OutcomeFailed))
		return ImportResult{}, fmt.Errorf("%w: %w", ErrProviderFetch, err)
	}
	if post.ExternalID == "" {
		post.ExternalID = change.MediaID
	}
	return s.importer.Import(ctx, observability.PathWebhook, account, post)
}

type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      flexibleID      `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string              `json:"field"`
	Value *webhookChangeValue `json:"value"`
}

type webhookChangeValue struct {
	MediaID flexibleID `json:"media_id"`
}

// flexibleID accepts provider ids encoded as JSON strings or numbers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = flexibleID(strings.TrimSpace(value))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(number.String(), 10, 64); err != nil {
		return fmt.Errorf("id %s is not an integer", number)
	}
	*id = flexibleID(number.String())
	return nil
}

// mediaChange is one (account, media) pair announced by a delivery.
type mediaChange struct {
	AccountID string
	MediaID   string
}

// parseWebhookChanges flattens entry[].changes[] in delivery order, so
// entry[0].changes[0] comes first. Changes without a media id are dropped.
func parseWebhookChanges(body []byte) ([]mediaChange, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(payload.Entry) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidPayload)
	}

	var changes []mediaChange
	for _, entry := range payload.Entry {
		accountID := string(entry.ID)
		if accountID == "" {
			continue
		}
		for _, change := range entry.Changes {
			if change.Value == nil || change.Value.MediaID == "" {
				continue
			}
			changes = append(changes, mediaChange{AccountID: accountID, MediaID: string(change.Value.MediaID)})
		}
	}
	return changes, nil
}
