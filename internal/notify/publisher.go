// Package notify announces imported draft products as CloudEvents.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	ceclient "github.com/cloudevents/sdk-go/v2/client"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/observability"
)

const (
	// ProductImportedType is the CloudEvent type of a committed draft.
	ProductImportedType = "com.socialsync.product.imported"
	defaultSource       = "socialsync/importer"
	defaultTimeout      = 5 * time.Second
)

// Config selects where events are delivered.
type Config struct {
	SinkURL string
	Source  string
	Timeout time.Duration
}

// Publisher sends one CloudEvent per imported product.
type Publisher struct {
	client ceclient.Client
	source string
}

// ProductImportedData is the event payload.
type ProductImportedData struct {
	ProductID   string  `json:"productId"`
	StoreID     string  `json:"storeId"`
	TenantID    string  `json:"tenantId"`
	ExternalID  string  `json:"externalId"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	PriceMinor  int64   `json:"priceMinorUnits"`
	Currency    string  `json:"currencyCode"`
	Status      string  `json:"status"`
	Permalink   string  `json:"permalink,omitempty"`
	MediaCount  int     `json:"mediaCount"`
	Variants    int     `json:"variantCount"`
	Description *string `json:"description"`
}

// New returns a CloudEvents publisher, or Nop when no sink is configured.
func New(cfg Config) (ports.ImportNotifier, error) {
	sink := strings.TrimSpace(cfg.SinkURL)
	if sink == "" {
		return Nop{}, nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	source := strings.TrimSpace(cfg.Source)
	if source == "" {
		source = defaultSource
	}

	client, err := cloudevents.NewClientHTTP(
		cehttp.WithTarget(sink),
		cehttp.WithClient(http.Client{
			Timeout:   timeout,
			Transport: observability.InstrumentTransport(http.DefaultTransport),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create cloudevents client: %w", err)
	}
	return &Publisher{client: client, source: source}, nil
}

// ProductImported sends a structured product.imported event.
func (p *Publisher) ProductImported(ctx context.Context, product domain.Product) error {
	event, err := p.buildEvent(product)
	if err != nil {
		return err
	}
	if result := p.client.Send(ctx, event); !cloudevents.IsACK(result) {
		if result == nil {
			result = errors.New("not acknowledged")
		}
		return fmt.Errorf("send %s: %w", ProductImportedType, result)
	}
	return nil
}

func (p *Publisher) buildEvent(product domain.Product) (cloudevents.Event, error) {
	event := cloudevents.NewEvent()
	event.SetID(product.ID)
	event.SetSource(p.source)
	event.SetType(ProductImportedType)
	event.SetSubject(product.ID)
	event.SetTime(product.CreatedAt)
	event.SetExtension("storeid", product.StoreID)
	event.SetExtension("tenantid", product.TenantID)

	data := ProductImportedData{
		ProductID:   product.ID,
		StoreID:     product.StoreID,
		TenantID:    product.TenantID,
		ExternalID:  product.ExternalID,
		Title:       product.Title,
		Slug:        product.Slug,
		PriceMinor:  product.PriceMinorUnits,
		Currency:    product.CurrencyCode,
		Status:      string(product.Status),
		Permalink:   product.Permalink,
		MediaCount:  len(product.Media),
		Variants:    len(product.Variants),
		Description: product.Description,
	}
	if err := event.SetData(cloudevents.ApplicationJSON, data); err != nil {
		return cloudevents.Event{}, fmt.Errorf("encode event data: %w", err)
	}
	if err := event.Validate(); err != nil {
		return cloudevents.Event{}, fmt.Errorf("invalid event: %w", err)
	}
	return event, nil
}

// Nop discards notifications.
type Nop struct{}

func (Nop) ProductImported(context.Context, domain.Product) error { return nil }

var (
	_ ports.ImportNotifier = (*Publisher)(nil)
	_ ports.ImportNotifier = Nop{}
)
