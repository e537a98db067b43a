package auditlog

import (
	"encoding/json"
	"fmt"

	"avrental/internal/repository"
	"avrental/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// AuditLogRepository reads and writes the audit_logs table.
type AuditLogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AuditLogRepository {
	return &AuditLogRepository{repository: r}
}

// PersistLog stores entry with data encoded as its JSONB payload.
func (r *AuditLogRepository) PersistLog(entry models.AuditLog, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode audit data: %w", err)
	}

	_, err = r.repository.Goqu.Insert("audit_logs").
		Rows(goqu.Record{
			"resource_id":   entry.ResourceID,
			"resource_type": entry.ResourceType,
			"action":        entry.Action,
			"data":          string(payload),
		}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) GetResourceLog(id int, resourceType string) ([]models.AuditLog, error) {
	query := r.repository.Goqu.
		From(goqu.T("audit_logs").As("a")).
		Select(
			goqu.I("a.id").As("id"),
			goqu.I("a.resource_id").As("resource_id"),
			goqu.I("a.resource_type").As("resource_type"),
			goqu.I("a.action").As("action"),
			goqu.I("a.data").As("data"),
			goqu.I("a.created_at").As("created_at"),
		).
		Where(goqu.Ex{
			"a.resource_id":   id,
			"a.resource_type": resourceType,
		}).
		Order(goqu.I("a.created_at").Asc(), goqu.I("a.id").Asc())

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("query audit logs: %w", err)
	}
	defer rows.Close()

	auditLogs := []models.AuditLog{}
	for rows.Next() {
		var (
			entry models.AuditLog
			data  []byte
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.ResourceID,
			&entry.ResourceType,
			&entry.Action,
			&data,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		entry.Data = data
		auditLogs = append(auditLogs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read audit logs: %w", err)
	}

	return auditLogs, nil
}
