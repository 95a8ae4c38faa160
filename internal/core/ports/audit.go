package ports

import (
	"context"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
)

type AuditTrailRepository interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error)
}
