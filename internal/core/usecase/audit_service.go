package usecase

import (
	"context"
	"fmt"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"github.com/atvirokodosprendimai/showsapi/internal/core/ports"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

type AuditService struct {
	repo ports.AuditTrailRepository
}

func NewAuditService(repo ports.AuditTrailRepository) *AuditService {
	return &AuditService{repo: repo}
}

// List returns the audit trail of one show, newest first.
func (s *AuditService) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	if err := validateID(filter.ShowID); err != nil {
		return nil, err
	}
	if filter.AfterID < 0 {
		return nil, fmt.Errorf("%w: after must not be negative", domain.ErrInvalidInput)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLimit
	}
	if filter.Limit > maxAuditLimit {
		filter.Limit = maxAuditLimit
	}
	return s.repo.List(ctx, filter)
}
