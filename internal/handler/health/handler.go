package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medilab/lab-api/internal/config"
)

// Diagnoser is the slice of the store the diagnostic endpoint needs.
// Listing collection names doubles as the connectivity probe.
type Diagnoser interface {
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

const (
	maxCollectionsReported = 10
	maxErrorLen            = 50
)

// Handler serves the liveness and diagnostic endpoints. store is nil
// when no database is configured; the endpoint reports that instead of
// failing.
type Handler struct {
	store Diagnoser
	cfg   config.DatabaseConfig
}

func NewHandler(store Diagnoser, cfg config.DatabaseConfig) *Handler {
	return &Handler{store: store, cfg: cfg}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Root)
	r.GET("/test", h.Diagnostics)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Laboratory API running"})
}

// Diagnostics reports store connectivity and the presence of the two
// store configuration variables. It never fails: every degraded state
// collapses into a descriptive status string, with store errors
// truncated so internals do not leak. Secret values are never echoed,
// only whether they are set.
func (h *Handler) Diagnostics(c *gin.Context) {
	report := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		report["database"] = "✅ Available"
		report["database_name"] = h.store.Name()
		report["connection_status"] = "Connected"

		if names, err := h.store.CollectionNames(c.Request.Context()); err != nil {
			report["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorLen)
		} else {
			if len(names) > maxCollectionsReported {
				names = names[:maxCollectionsReported]
			}
			report["collections"] = names
			report["database"] = "✅ Connected & Working"
		}
	}

	// the *_url/*_name fields report configuration presence, never values
	report["database_url"] = presence(h.cfg.URL)
	report["database_name"] = presence(h.cfg.Name)

	c.JSON(http.StatusOK, report)
}

func presence(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
