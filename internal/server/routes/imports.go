package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/socialsync/internal/app/domain"
	appservices "github.com/fr0stylo/socialsync/internal/app/services"
)

// Syncer runs the pull path for one store.
type Syncer interface {
	Run(ctx context.Context, storeID string) (appservices.SyncResult, error)
}

// JobReader loads recorded ingestion jobs.
type JobReader interface {
	Get(ctx context.Context, jobID string) (domain.IngestionJob, error)
}

// ImportRoutes registers the manual import trigger and job lookup.
type ImportRoutes struct {
	syncer   Syncer
	jobs     JobReader
	apiToken string
	log      *slog.Logger
}

type importRequest struct {
	StoreID string `json:"storeId" validate:"required,max=128"`
}

type importResponse struct {
	OK       bool                      `json:"ok"`
	JobID    string                    `json:"jobId,omitempty"`
	Message  string                    `json:"message"`
	Created  int                       `json:"created"`
	Skipped  int                       `json:"skipped"`
	Failed   int                       `json:"failed"`
	Failures []appservices.ItemFailure `json:"failures"`
}

type errorResponse struct {
	OK      bool   `json:"ok"`
	JobID   string `json:"jobId,omitempty"`
	Message string `json:"message"`
}

type jobResponse struct {
	ID              string     `json:"id"`
	StoreID         string     `json:"storeId"`
	AccountID       string     `json:"accountId"`
	Status          string     `json:"status"`
	MediaFetched    int        `json:"mediaFetched"`
	ProductsCreated int        `json:"productsCreated"`
	ProductsSkipped int        `json:"productsSkipped"`
	ItemsFailed     int        `json:"itemsFailed"`
	ErrorMessage    string     `json:"errorMessage,omitempty"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
}

// NewImportRoutes constructs import routes guarded by apiToken.
func NewImportRoutes(syncer Syncer, jobs JobReader, apiToken string, log *slog.Logger) *ImportRoutes {
	if log == nil {
		log = slog.Default()
	}
	return &ImportRoutes{syncer: syncer, jobs: jobs, apiToken: apiToken, log: log}
}

// RegisterRoutes registers import endpoints.
func (r *ImportRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/api", r.authorize)
	api.POST("/imports", r.handleTrigger)
	api.GET("/imports/:jobId", r.handleGetJob)
}

func (r *ImportRoutes) authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := appservices.CheckBearerToken(c.Request().Header.Get(echo.HeaderAuthorization), r.apiToken); err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: err.Error()})
		}
		return next(c)
	}
}

func (r *ImportRoutes) handleTrigger(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}
	req.StoreID = strings.TrimSpace(req.StoreID)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: validationMessage(err)})
	}

	result, err := r.syncer.Run(c.Request().Context(), req.StoreID)
	if err != nil {
		status := importErrorStatus(err)
		if status == http.StatusInternalServerError {
			r.log.ErrorContext(c.Request().Context(), "manual import failed", "store_id", req.StoreID, "error", err)
			return c.JSON(status, errorResponse{JobID: result.JobID, Message: "import failed"})
		}
		return c.JSON(status, errorResponse{JobID: result.JobID, Message: err.Error()})
	}

	failures := result.Failures
	if failures == nil {
		failures = []appservices.ItemFailure{}
	}
	return c.JSON(http.StatusOK, importResponse{
		OK:       true,
		JobID:    result.JobID,
		Message:  result.Message(),
		Created:  result.Created,
		Skipped:  result.Skipped,
		Failed:   len(failures),
		Failures: failures,
	})
}

func (r *ImportRoutes) handleGetJob(c echo.Context) error {
	job, err := r.jobs.Get(c.Request().Context(), strings.TrimSpace(c.Param("jobId")))
	if err != nil {
		if errors.Is(err, appservices.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
		}
		r.log.ErrorContext(c.Request().Context(), "load ingestion job failed", "job_id", c.Param("jobId"), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to load job"})
	}
	return c.JSON(http.StatusOK, jobResponse{
		ID:              job.ID,
		StoreID:         job.StoreID,
		AccountID:       job.AccountID,
		Status:          string(job.Status),
		MediaFetched:    job.MediaFetched,
		ProductsCreated: job.ProductsCreated,
		ProductsSkipped: job.ProductsSkipped,
		ItemsFailed:     job.ItemsFailed,
		ErrorMessage:    job.ErrorMessage,
		StartedAt:       job.StartedAt,
		CompletedAt:     job.CompletedAt,
	})
}

func importErrorStatus(err error) int {
	switch appservices.ClassifyError(err) {
	case appservices.ErrorAccountNotFound:
		return http.StatusNotFound
	case appservices.ErrorProviderFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func validationMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if message, ok := httpErr.Message.(string); ok {
			return message
		}
	}
	return "invalid request"
}
