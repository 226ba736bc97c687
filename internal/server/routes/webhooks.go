package routes

import (
	"github.com/labstack/echo/v4"

	socialwebhook "github.com/fr0stylo/socialsync/internal/webhooks/social"
)

// WebhookRoutes registers webhook endpoints.
type WebhookRoutes struct {
	social *socialwebhook.Handler
}

// NewWebhookRoutes constructs webhook routes.
func NewWebhookRoutes(handler *socialwebhook.Handler) *WebhookRoutes {
	return &WebhookRoutes{social: handler}
}

// RegisterRoutes registers webhook endpoints.
func (w *WebhookRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/webhooks/social", w.handleChallenge)
	s.POST("/webhooks/social", w.handleDelivery)
}

func (w *WebhookRoutes) handleChallenge(c echo.Context) error {
	w.social.Challenge(c.Response(), c.Request())
	return nil
}

func (w *WebhookRoutes) handleDelivery(c echo.Context) error {
	w.social.Handle(c.Response(), c.Request())
	return nil
}
