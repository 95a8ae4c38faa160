package ports

import (
	"context"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
)

type APIKeyRepository interface {
	FindByTokenHash(ctx context.Context, tokenHash string) (domain.APIKey, error)
	// Rotate stores key as the only active key.
	Rotate(ctx context.Context, key domain.APIKey) error
}
