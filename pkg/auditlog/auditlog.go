package auditlog

import (
	"avrental/pkg/models"

	"go.uber.org/zap"
)

type Persister interface {
	PersistLog(auditLog models.AuditLog, data interface{}) error
}

type Auditable interface {
	CreateLogView() models.AuditLog
}

type Auditlog struct {
	r   Persister
	log *zap.Logger
}

func NewAuditLog(r Persister, log *zap.Logger) *Auditlog {
	return &Auditlog{r: r, log: log}
}

// Log records an action against the resource described by item. Failures are
// logged and swallowed so they never fail the request that triggered them.
func (a *Auditlog) Log(action string, data interface{}, item Auditable) {
	auditLog := item.CreateLogView()
	auditLog.Action = action

	if err := a.r.PersistLog(auditLog, data); err != nil {
		a.log.Warn("unable to create audit log entry",
			zap.String("resource_type", auditLog.ResourceType),
			zap.Int("resource_id", auditLog.ResourceID),
			zap.String("action", action),
			zap.Error(err),
		)
		return
	}

	a.log.Debug("created audit log entry",
		zap.String("resource_type", auditLog.ResourceType),
		zap.Int("resource_id", auditLog.ResourceID),
		zap.String("action", action),
	)
}

// Logger is what handlers depend on, so tests can record calls.
type Logger interface {
	Log(action string, data interface{}, item Auditable)
}
