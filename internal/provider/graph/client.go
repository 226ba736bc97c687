// Package graph reads posts from the social provider's Graph media API.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	"github.com/fr0stylo/socialsync/internal/app/ports"
	"github.com/fr0stylo/socialsync/internal/observability"
)

const (
	// DefaultBaseURL is the public Graph API host.
	DefaultBaseURL = "https://graph.instagram.com"
	// DefaultTimeout bounds one provider call.
	DefaultTimeout = 5 * time.Second

	maxResponseBytes = 4 << 20
	maxPageSize      = 50
	mediaFields      = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp,children{id,media_type,media_url,thumbnail_url}"
)

var errMissingToken = errors.New("account has no access token")

// Client is a MediaProvider backed by the Graph HTTP API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds a client for baseURL with a per-request timeout. Outbound
// calls are traced.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse graph base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("graph base url must be http(s), got %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: observability.InstrumentTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ListMedia returns up to limit recent posts, following paging cursors.
func (c *Client) ListMedia(ctx context.Context, account domain.AccountContext, limit int) ([]domain.SourcePost, error) {
	if account.AccessToken == "" {
		return nil, errMissingToken
	}
	if limit <= 0 {
		return nil, nil
	}

	owner := account.ProviderAccountID
	if owner == "" {
		owner = "me"
	}
	query := url.Values{}
	query.Set("fields", mediaFields)
	query.Set("limit", strconv.Itoa(min(limit, maxPageSize)))
	next := c.endpoint(owner+"/media", query)

	posts := make([]domain.SourcePost, 0, limit)
	for next != "" && len(posts) < limit {
		var page mediaPage
		if err := c.get(ctx, next, account.AccessToken, &page); err != nil {
			return nil, err
		}
		for _, item := range page.Data {
			if len(posts) == limit {
				break
			}
			if post, ok := item.toSourcePost(); ok {
				posts = append(posts, post)
			}
		}
		if len(page.Data) == 0 {
			break
		}
		next = c.sameHostURL(page.Paging.Next)
	}
	return posts, nil
}

// GetMedia returns one post with its carousel children.
func (c *Client) GetMedia(ctx context.Context, account domain.AccountContext, mediaID string) (domain.SourcePost, error) {
	if account.AccessToken == "" {
		return domain.SourcePost{}, errMissingToken
	}
	mediaID = strings.TrimSpace(mediaID)
	if mediaID == "" {
		return domain.SourcePost{}, errors.New("media id is required")
	}

	query := url.Values{}
	query.Set("fields", mediaFields)

	var item mediaItem
	if err := c.get(ctx, c.endpoint(url.PathEscape(mediaID), query), account.AccessToken, &item); err != nil {
		return domain.SourcePost{}, err
	}
	post, ok := item.toSourcePost()
	if !ok {
		return domain.SourcePost{}, fmt.Errorf("media %s: response has no id", mediaID)
	}
	return post, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	target := *c.baseURL
	target.Path = strings.TrimRight(target.Path, "/") + "/" + strings.TrimLeft(path, "/")
	target.RawQuery = query.Encode()
	return target.String()
}

// sameHostURL drops paging links that point anywhere but the configured host,
// so the access token is never sent elsewhere.
func (c *Client) sameHostURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != c.baseURL.Scheme || parsed.Host != c.baseURL.Host {
		return ""
	}
	query := parsed.Query()
	query.Del("access_token")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func (c *Client) get(ctx context.Context, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	query := req.URL.Query()
	query.Set("access_token", accessToken)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request: %w", redactToken(err, accessToken))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read graph response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode graph response: %w", err)
	}
	return nil
}

// APIError is a non-2xx Graph API response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("graph api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("graph api: status %d: %s", e.StatusCode, e.Message)
}

func errorMessage(body []byte) string {
	var envelope struct {
		Error *struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return ""
	}
	if envelope.Error.Type == "" {
		return envelope.Error.Message
	}
	return envelope.Error.Type + ": " + envelope.Error.Message
}

// redactToken strips the access token from url errors, which embed the request URL.
func redactToken(err error, token string) error {
	var urlErr *url.Error
	if token == "" || !errors.As(err, &urlErr) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), url.QueryEscape(token), "REDACTED"))
}

var _ ports.MediaProvider = (*Client)(nil)
