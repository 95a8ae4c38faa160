package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atvirokodosprendimai/showsapi/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
)

// AuditTrailRepository reads rows written by ShowRepository mutations.
type AuditTrailRepository struct {
	db *gormsqlite.DB
}

func NewAuditTrailRepository(db *gormsqlite.DB) *AuditTrailRepository {
	return &AuditTrailRepository{db: db}
}

// List returns events for filter.ShowID newest first. A positive AfterID
// continues a previous page below that event id.
func (r *AuditTrailRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	var models []auditEventModel
	err := r.db.ReadTX(ctx, func(tx *gormsqlite.Tx) error {
		q := tx.Where("show_id = ?", filter.ShowID)
		if filter.AfterID > 0 {
			q = q.Where("id < ?", filter.AfterID)
		}
		if filter.Limit > 0 {
			q = q.Limit(filter.Limit)
		}
		return q.Order("id DESC").Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}

	events := make([]domain.AuditEvent, 0, len(models))
	for _, m := range models {
		events = append(events, domain.AuditEvent{
			ID:         m.ID,
			EventID:    m.EventID,
			ShowID:     m.ShowID,
			Action:     m.Action,
			Actor:      m.Actor,
			RequestID:  m.RequestID,
			BeforeJSON: rawJSON(m.BeforeJSON),
			AfterJSON:  rawJSON(m.AfterJSON),
			OccurredAt: m.OccurredAt.UTC(),
		})
	}
	return events, nil
}

func rawJSON(s *string) json.RawMessage {
	if s == nil {
		return nil
	}
	return json.RawMessage(*s)
}
