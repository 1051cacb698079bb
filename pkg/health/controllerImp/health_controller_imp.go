package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/health/controller"
	"farmhub/pkg/logging"
)

var appStart = time.Now()

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthCtrl struct {
	db      Pinger
	timeout time.Duration
	version string
}

var _ controller.HealthController = (*HealthCtrl)(nil)

func NewHealthCtrl(db Pinger, version string) *HealthCtrl {
	return &HealthCtrl{db: db, timeout: 800 * time.Millisecond, version: version}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	db := check{OK: true}
	switch {
	case h.db == nil:
		db = check{Err: "database not configured"}
	default:
		if err := h.db.PingContext(ctx); err != nil {
			db = check{Err: "unreachable"}
			logging.Component("health").WithError(err).Warn("database ping failed")
		}
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"version":    h.version,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]any{"database": db},
		"time":       time.Now().Format(time.RFC3339),
	})
}
