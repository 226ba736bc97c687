package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignaturePrefix prefixes the hex HMAC digest in the signature header.
const SignaturePrefix = "sha256="

// VerifySignature reports whether signatureHeader is the HMAC-SHA256 of the
// raw request body under sharedSecret. It never panics and returns false for a
// missing header, a missing secret or a mismatch.
func VerifySignature(rawBody []byte, signatureHeader, sharedSecret string) bool {
	signatureHeader = strings.ToLower(strings.TrimSpace(signatureHeader))
	if signatureHeader == "" || sharedSecret == "" {
		return false
	}
	expected := SignBody(rawBody, sharedSecret)
	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}

// SignBody returns the signature header value for body.
func SignBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
