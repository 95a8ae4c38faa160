package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
)

type stubAuditTrailRepo struct {
	got   domain.AuditFilter
	calls int
}

func (s *stubAuditTrailRepo) List(_ context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	s.got = filter
	s.calls++
	return []domain.AuditEvent{{ID: 1, ShowID: filter.ShowID, Action: domain.ActionShowCreated}}, nil
}

func TestAuditServiceListClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 100},
		{limit: -5, want: 100},
		{limit: 25, want: 25},
		{limit: 5000, want: 1000},
	}

	for _, tt := range tests {
		repo := &stubAuditTrailRepo{}
		events, err := NewAuditService(repo).List(context.Background(), domain.AuditFilter{ShowID: 1, Limit: tt.limit})
		require.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, tt.want, repo.got.Limit, "limit %d", tt.limit)
	}
}

func TestAuditServiceListRejectsBadFilter(t *testing.T) {
	repo := &stubAuditTrailRepo{}
	svc := NewAuditService(repo)

	_, err := svc.List(context.Background(), domain.AuditFilter{ShowID: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.List(context.Background(), domain.AuditFilter{ShowID: 1, AfterID: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, repo.calls)
}
