package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"github.com/atvirokodosprendimai/showsapi/internal/core/ports"
	"github.com/atvirokodosprendimai/showsapi/internal/core/validation"
)

// ValidationFailedError carries the per-field messages of a rejected show.
type ValidationFailedError struct {
	Errors validation.FieldMessages
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + e.Errors.String()
}

type ShowService struct {
	repo      ports.ShowRepository
	validator *ShowValidator
}

func NewShowService(repo ports.ShowRepository, validator *ShowValidator) *ShowService {
	return &ShowService{repo: repo, validator: validator}
}

// Validate runs the show rules. A nil input is a caller error, not a
// validation failure.
func (s *ShowService) Validate(in *domain.ShowInput) (validation.Result, error) {
	if in == nil {
		return validation.Result{}, fmt.Errorf("%w: show must not be nil", domain.ErrInvalidInput)
	}
	return s.validator.Validate(*in), nil
}

func (s *ShowService) Create(ctx context.Context, in *domain.ShowInput, meta domain.MutationMetadata) (domain.Show, error) {
	show, err := s.checked(in, 0)
	if err != nil {
		return domain.Show{}, err
	}

	created, err := s.repo.Create(ctx, show, meta)
	if err != nil {
		return domain.Show{}, fmt.Errorf("failed to create show: %w", err)
	}
	return created, nil
}

func (s *ShowService) List(ctx context.Context) ([]domain.Show, error) {
	shows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	if len(shows) == 0 {
		return nil, domain.ErrNotFound
	}
	return shows, nil
}

func (s *ShowService) Get(ctx context.Context, id int64) (domain.Show, error) {
	if err := validateID(id); err != nil {
		return domain.Show{}, err
	}

	show, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Show{}, err
		}
		return domain.Show{}, fmt.Errorf("failed to get show by id: %w", err)
	}
	return show, nil
}

func (s *ShowService) Update(ctx context.Context, id int64, in *domain.ShowInput, meta domain.MutationMetadata) (domain.Show, error) {
	if err := validateID(id); err != nil {
		return domain.Show{}, err
	}
	show, err := s.checked(in, id)
	if err != nil {
		return domain.Show{}, err
	}

	updated, err := s.repo.Update(ctx, show, meta)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Show{}, err
		}
		return domain.Show{}, fmt.Errorf("failed to update show: %w", err)
	}
	return updated, nil
}

func (s *ShowService) Delete(ctx context.Context, id int64, meta domain.MutationMetadata) (bool, error) {
	if err := validateID(id); err != nil {
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, id, meta)
	if err != nil {
		return false, fmt.Errorf("failed to delete show: %w", err)
	}
	return deleted, nil
}

func (s *ShowService) checked(in *domain.ShowInput, id int64) (domain.Show, error) {
	res, err := s.Validate(in)
	if err != nil {
		return domain.Show{}, err
	}
	if !res.IsValid() {
		return domain.Show{}, &ValidationFailedError{Errors: validation.GroupErrors(res)}
	}
	return in.ToShow(id)
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}
	return nil
}
