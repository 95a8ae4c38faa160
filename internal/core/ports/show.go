package ports

import (
	"context"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
)

// ShowRepository persists shows. Mutations record an audit event in the same
// transaction as the row change.
type ShowRepository interface {
	Create(ctx context.Context, show domain.Show, meta domain.MutationMetadata) (domain.Show, error)
	Update(ctx context.Context, show domain.Show, meta domain.MutationMetadata) (domain.Show, error)
	Delete(ctx context.Context, id int64, meta domain.MutationMetadata) (bool, error)
	Get(ctx context.Context, id int64) (domain.Show, error)
	List(ctx context.Context) ([]domain.Show, error)
}
