package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atvirokodosprendimai/showsapi/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// apiKeyRow is one key allowed to call the show routes. Name is written to
// audit_events.actor for every mutation made with the key.
type apiKeyRow struct {
	TokenHash string    `gorm:"column:token_hash;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Active    bool      `gorm:"column:active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (apiKeyRow) TableName() string {
	return "api_keys"
}

func (row apiKeyRow) toDomain() domain.APIKey {
	return domain.APIKey{
		TokenHash: row.TokenHash,
		Name:      row.Name,
		Active:    row.Active,
		CreatedAt: row.CreatedAt.UTC(),
	}
}

type APIKeyRepository struct {
	db *gormsqlite.DB
}

func NewAPIKeyRepository(db *gormsqlite.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

func (r *APIKeyRepository) FindByTokenHash(ctx context.Context, tokenHash string) (domain.APIKey, error) {
	var row apiKeyRow
	err := r.db.ReadTX(ctx, func(tx *gormsqlite.Tx) error {
		return tx.Where("token_hash = ?", tokenHash).First(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.APIKey{}, domain.ErrNotFound
		}
		return domain.APIKey{}, fmt.Errorf("find api key: %w", err)
	}
	return row.toDomain(), nil
}

// Rotate makes key the only active key. Keys configured on earlier runs stay
// in the table, deactivated, so their audit actors keep resolving to a row.
// Re-registering the current key keeps its created_at.
func (r *APIKeyRepository) Rotate(ctx context.Context, key domain.APIKey) error {
	row := apiKeyRow{
		TokenHash: key.TokenHash,
		Name:      key.Name,
		Active:    true,
		CreatedAt: key.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	err := r.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		if err := tx.Model(&apiKeyRow{}).
			Where("token_hash <> ? AND active = ?", row.TokenHash, true).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("deactivate previous keys: %w", err)
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "active"}),
		}).Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("rotate api key: %w", err)
	}
	return nil
}
