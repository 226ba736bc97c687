package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"

	"github.com/fr0stylo/socialsync/internal/observability"
)

// RouteRegister registers Echo routes.
type RouteRegister interface {
	RegisterRoutes(s *echo.Echo)
}

// Server holds the Echo instance.
type Server struct {
	e *echo.Echo
}

// New creates a new server instance.
func New(log *slog.Logger, serviceName string) *Server {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}

	e.Use(middleware.RequestID())
	e.Use(observability.EchoMiddleware(serviceName))
	e.Use(observability.EchoRequestMetadataMiddleware())
	e.Use(slogecho.New(log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("2M"))

	return &Server{e: e}
}

// RegisterRouter attaches a route registrar.
func (s *Server) RegisterRouter(r RouteRegister) {
	r.RegisterRoutes(s.e)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start runs the HTTP server.
func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Shutdown stops accepting requests and drains in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var fields []string
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrs {
				fields = append(fields, fieldErr.Field()+" "+fieldErr.Tag())
			}
		}
		message := "invalid request"
		if len(fields) > 0 {
			message = "invalid request: " + strings.Join(fields, ", ")
		}
		return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(err)
	}
	return nil
}
