package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusOK           = "ok"
	StatusDegraded     = "degraded"
	StatusShuttingDown = "shutting_down"
	StatusDown         = "down"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthStatus struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

// Health serves the /health document. Responses are cached for ttl so a busy
// load balancer does not ping the database on every check.
type Health struct {
	mu       sync.Mutex
	status   string
	version  string
	db       Pinger
	started  time.Time
	ttl      time.Duration
	cached   []byte
	code     int
	cachedAt time.Time
	now      func() time.Time
}

// NewHealth builds a health check. A nil db skips the database ping.
func NewHealth(version string, db Pinger) *Health {
	return &Health{
		status:  StatusOK,
		version: version,
		db:      db,
		started: time.Now(),
		ttl:     5 * time.Second,
		now:     time.Now,
	}
}

// SetStatus overrides the process status, e.g. during shutdown.
func (h *Health) SetStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.status = status
	h.cached = nil
}

func (h *Health) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mu.Lock()
		defer h.mu.Unlock()

		now := h.now()
		if h.cached != nil && now.Sub(h.cachedAt) < h.ttl {
			c.Data(h.code, "application/json", h.cached)
			return
		}

		report := HealthStatus{
			Status:      h.status,
			Database:    "skipped",
			LastChecked: now,
			Uptime:      now.Sub(h.started).Round(time.Second).String(),
			Version:     h.version,
		}
		if h.db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			err := h.db.PingContext(ctx)
			cancel()

			report.Database = "up"
			if err != nil {
				report.Database = "down"
				if report.Status == StatusOK {
					report.Status = StatusDegraded
				}
			}
		}

		h.code = http.StatusOK
		if report.Status != StatusOK {
			h.code = http.StatusServiceUnavailable
		}
		h.cached, _ = json.Marshal(report)
		h.cachedAt = now

		c.Data(h.code, "application/json", h.cached)
	}
}
