package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atvirokodosprendimai/showsapi/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type showModel struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ShowType         string    `gorm:"column:type;size:7;not null"`
	Title            string    `gorm:"column:title;not null"`
	Director         *string   `gorm:"column:director"`
	CastMembers      *string   `gorm:"column:cast_members"`
	Country          string    `gorm:"column:country;size:60;not null"`
	DateAdded        time.Time `gorm:"column:date_added;not null"`
	ReleaseYear      int       `gorm:"column:release_year;not null"`
	Rating           *int      `gorm:"column:rating"`
	DurationInMinute *int      `gorm:"column:duration_in_minute"`
	ListedIn         *string   `gorm:"column:listed_in"`
	Description      *string   `gorm:"column:description"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

func (showModel) TableName() string {
	return "netflix_shows"
}

type auditEventModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventID    string    `gorm:"column:event_id;not null"`
	ShowID     int64     `gorm:"column:show_id;not null"`
	Action     string    `gorm:"column:action;not null"`
	Actor      string    `gorm:"column:actor;not null"`
	RequestID  string    `gorm:"column:request_id;not null"`
	BeforeJSON *string   `gorm:"column:before_json"`
	AfterJSON  *string   `gorm:"column:after_json"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
}

func (auditEventModel) TableName() string {
	return "audit_events"
}

// ShowRepository stores shows in the netflix_shows table. Every mutation
// and its audit row commit in one write transaction.
type ShowRepository struct {
	db *gormsqlite.DB
}

func NewShowRepository(db *gormsqlite.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) Create(ctx context.Context, show domain.Show, meta domain.MutationMetadata) (domain.Show, error) {
	meta = meta.Normalize()
	var result domain.Show

	err := r.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		now := meta.OccurredAt.UTC()
		model := toShowModel(show)
		model.ID = 0
		model.CreatedAt = now
		model.UpdatedAt = now

		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("insert show: %w", err)
		}

		result = toShowDomain(model)
		return insertAudit(tx.DB, domain.ActionShowCreated, model.ID, meta, nil, &result)
	})
	if err != nil {
		return domain.Show{}, err
	}
	return result, nil
}

func (r *ShowRepository) Update(ctx context.Context, show domain.Show, meta domain.MutationMetadata) (domain.Show, error) {
	meta = meta.Normalize()
	var result domain.Show

	err := r.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		var existing showModel
		if err := tx.Where("id = ?", show.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("load show: %w", err)
		}
		before := toShowDomain(existing)

		model := toShowModel(show)
		model.CreatedAt = existing.CreatedAt
		model.UpdatedAt = meta.OccurredAt.UTC()

		// Save writes every column, so cleared optional fields become NULL.
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("update show: %w", err)
		}

		result = toShowDomain(model)
		return insertAudit(tx.DB, domain.ActionShowUpdated, model.ID, meta, &before, &result)
	})
	if err != nil {
		return domain.Show{}, err
	}
	return result, nil
}

func (r *ShowRepository) Delete(ctx context.Context, id int64, meta domain.MutationMetadata) (bool, error) {
	meta = meta.Normalize()
	deleted := false

	err := r.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		var existing showModel
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("load show before delete: %w", err)
		}

		if err := tx.Delete(&showModel{}, id).Error; err != nil {
			return fmt.Errorf("delete show: %w", err)
		}

		before := toShowDomain(existing)
		if err := insertAudit(tx.DB, domain.ActionShowDeleted, id, meta, &before, nil); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *ShowRepository) Get(ctx context.Context, id int64) (domain.Show, error) {
	var model showModel
	err := r.db.ReadTX(ctx, func(tx *gormsqlite.Tx) error {
		return tx.Where("id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Show{}, domain.ErrNotFound
		}
		return domain.Show{}, fmt.Errorf("get show: %w", err)
	}
	return toShowDomain(model), nil
}

func (r *ShowRepository) List(ctx context.Context) ([]domain.Show, error) {
	var models []showModel
	err := r.db.ReadTX(ctx, func(tx *gormsqlite.Tx) error {
		return tx.Order("id ASC").Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	shows := make([]domain.Show, 0, len(models))
	for _, model := range models {
		shows = append(shows, toShowDomain(model))
	}
	return shows, nil
}

func insertAudit(tx *gorm.DB, action string, showID int64, meta domain.MutationMetadata, before, after *domain.Show) error {
	event := auditEventModel{
		EventID:    uuid.NewString(),
		ShowID:     showID,
		Action:     action,
		Actor:      meta.Actor,
		RequestID:  meta.RequestID,
		OccurredAt: meta.OccurredAt.UTC(),
	}

	var err error
	if event.BeforeJSON, err = snapshot(before); err != nil {
		return err
	}
	if event.AfterJSON, err = snapshot(after); err != nil {
		return err
	}

	if err := tx.Create(&event).Error; err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func snapshot(show *domain.Show) (*string, error) {
	if show == nil {
		return nil, nil
	}
	b, err := json.Marshal(show)
	if err != nil {
		return nil, fmt.Errorf("marshal show snapshot: %w", err)
	}
	s := string(b)
	return &s, nil
}

func toShowModel(show domain.Show) showModel {
	return showModel{
		ID:               show.ID,
		ShowType:         string(show.ShowType),
		Title:            show.Title,
		Director:         show.Director,
		CastMembers:      show.CastMembers,
		Country:          show.Country,
		DateAdded:        show.DateAdded.UTC(),
		ReleaseYear:      show.ReleaseYear,
		Rating:           show.Rating,
		DurationInMinute: show.DurationInMinute,
		ListedIn:         show.ListedIn,
		Description:      show.Description,
	}
}

func toShowDomain(model showModel) domain.Show {
	return domain.Show{
		ID:               model.ID,
		ShowType:         domain.ShowType(model.ShowType),
		Title:            model.Title,
		Director:         model.Director,
		CastMembers:      model.CastMembers,
		Country:          model.Country,
		DateAdded:        domain.DateOf(model.DateAdded),
		ReleaseYear:      model.ReleaseYear,
		Rating:           model.Rating,
		DurationInMinute: model.DurationInMinute,
		ListedIn:         model.ListedIn,
		Description:      model.Description,
	}
}
