// Package httpapi exposes the attendance services over HTTP/JSON.
package httpapi

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"attendance/internal/apperr"
	"attendance/internal/auth"
	"attendance/internal/config"
	"attendance/internal/ingest"
	"attendance/internal/report"
	"attendance/internal/roster"
)

// Handler holds the services behind the API.
type Handler struct {
	auth   *auth.Service
	roster *roster.Service
	ingest *ingest.Service
	report *report.Service
	cfg    config.App
}

// New creates a handler.
func New(authSvc *auth.Service, rosterSvc *roster.Service, ingestSvc *ingest.Service, reportSvc *report.Service, cfg config.App) *Handler {
	return &Handler{auth: authSvc, roster: rosterSvc, ingest: ingestSvc, report: reportSvc, cfg: cfg}
}

// fail maps a service error to a JSON response. Unclassified errors are
// logged and surfaced as an opaque 500.
func (h *Handler) fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}

// yearMonth reads year/month query params, defaulting to the current month.
func yearMonth(c *gin.Context) (int, int, error) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, apperr.New(apperr.Validation, "invalid year")
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, apperr.New(apperr.Validation, "invalid month")
		}
		month = parsed
	}
	return year, month, nil
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
