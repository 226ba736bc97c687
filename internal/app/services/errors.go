package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/fr0stylo/socialsync/internal/app/ports"
)

var (
	// ErrInvalidSignature indicates webhook signature validation failure.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrInvalidVerifyToken indicates a failed subscription challenge.
	ErrInvalidVerifyToken = errors.New("invalid verify token")
	// ErrInvalidPayload indicates a body that is not the expected JSON shape.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrAccountNotFound indicates no enabled social account is connected.
	ErrAccountNotFound = errors.New("social account not found")
	// ErrProviderFetch indicates the provider media API could not be read.
	ErrProviderFetch = errors.New("provider fetch failed")
	// ErrItemProcessing indicates one post failed between parse and commit.
	ErrItemProcessing = errors.New("item processing failed")
	// ErrJobNotFound indicates an unknown ingestion job id.
	ErrJobNotFound = errors.New("ingestion job not found")
	// ErrMissingAuthToken indicates missing bearer authorization token.
	ErrMissingAuthToken = errors.New("missing auth token")
	// ErrInvalidAuthToken indicates a bearer token that does not match.
	ErrInvalidAuthToken = errors.New("invalid auth token")
)

const bearerPrefix = "Bearer "

// ErrorKind classifies pipeline failures for transport-specific mapping.
type ErrorKind string

const (
	ErrorUnknown          ErrorKind = "unknown"
	ErrorInvalidSignature ErrorKind = "invalid_signature"
	ErrorInvalidVerify    ErrorKind = "invalid_verify_token"
	ErrorInvalidPayload   ErrorKind = "invalid_payload"
	ErrorAccountNotFound  ErrorKind = "account_not_found"
	ErrorProviderFetch    ErrorKind = "provider_fetch"
	ErrorItemProcessing   ErrorKind = "item_processing"
	ErrorJobNotFound      ErrorKind = "job_not_found"
	ErrorMissingAuth      ErrorKind = "missing_auth"
	ErrorInvalidAuth      ErrorKind = "invalid_auth"
)

// ClassifyError classifies a returned pipeline error.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorUnknown
	case errors.Is(err, ErrInvalidSignature):
		return ErrorInvalidSignature
	case errors.Is(err, ErrInvalidVerifyToken):
		return ErrorInvalidVerify
	case errors.Is(err, ErrInvalidPayload):
		return ErrorInvalidPayload
	case errors.Is(err, ErrAccountNotFound):
		return ErrorAccountNotFound
	case errors.Is(err, ErrProviderFetch):
		return ErrorProviderFetch
	case errors.Is(err, ErrItemProcessing):
		return ErrorItemProcessing
	case errors.Is(err, ErrJobNotFound):
		return ErrorJobNotFound
	case errors.Is(err, ErrMissingAuthToken):
		return ErrorMissingAuth
	case errors.Is(err, ErrInvalidAuthToken):
		return ErrorInvalidAuth
	default:
		return ErrorUnknown
	}
}

// CheckBearerToken validates an Authorization header against the configured API token.
func CheckBearerToken(authorizationHeader, expected string) error {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return ErrMissingAuthToken
	}
	if expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return ErrInvalidAuthToken
	}
	return nil
}

func bearerToken(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, bearerPrefix) {
		return "", errors.New("missing bearer prefix")
	}
	token := strings.TrimSpace(strings.TrimPrefix(trimmed, bearerPrefix))
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}

func accountLookupError(err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}
