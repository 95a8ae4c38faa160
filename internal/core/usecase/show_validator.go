package usecase

import (
	"strings"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"github.com/atvirokodosprendimai/showsapi/internal/core/validation"
)

const (
	printableASCII   = `^[\x20-\x7E]+$`
	maxCountryLength = 60
	minRating        = 1
	maxRating        = 10
)

// ShowValidator checks client supplied shows before they reach storage.
type ShowValidator = validation.Validator[domain.ShowInput]

// NewShowValidator builds the show rule table. Build it once and share it.
func NewShowValidator() *ShowValidator {
	present := validation.Not(validation.StringEmptyOrNull())
	ascii := validation.StringMatches(printableASCII)
	showTypes := domain.ShowTypeNames()

	return validation.New(
		validation.RuleFor(func(in domain.ShowInput) *string { return in.ShowType },
			validation.Check[*string]{
				Must:    present,
				Message: "ShowType must not be null or empty",
				Field:   "ShowType",
			},
			validation.Check[*string]{
				Must:    validation.StringOneOf(showTypes...),
				When:    present,
				Message: "ShowType must be either " + strings.Join(showTypes, " or "),
				Field:   "ShowType",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *string { return in.Title },
			validation.Check[*string]{
				Must:    present,
				Message: "Title must not be null or empty",
				Field:   "Title",
			},
			validation.Check[*string]{
				Must:    ascii,
				When:    present,
				Message: "Title must contain only printable ASCII characters",
				Field:   "Title",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *string { return in.Director },
			validation.Check[*string]{
				Must:    ascii,
				When:    present,
				Message: "Director must contain only printable ASCII characters",
				Field:   "Director",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *string { return in.CastMembers },
			validation.Check[*string]{
				Must:    ascii,
				When:    present,
				Message: "Cast members must contain only printable ASCII characters",
				Field:   "CastMembers",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *string { return in.Country },
			validation.Check[*string]{
				Must:    present,
				Message: "Country must not be null or empty",
				Field:   "Country",
			},
			validation.Check[*string]{
				Must:    ascii,
				When:    present,
				Message: "Country must contain only printable ASCII characters",
				Field:   "Country",
			},
			validation.Check[*string]{
				Must:    validation.StringSizeLessThanOrEqual(maxCountryLength),
				When:    present,
				Message: "Country must be less than or equal to 60 character length",
				Field:   "Country",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *domain.Date { return in.DateAdded },
			validation.Check[*domain.Date]{
				Must:    validation.Not(validation.NullValue[domain.Date]()),
				Message: "DateAdded must not be null or empty",
				Field:   "DateAdded",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *int { return in.ReleaseYear },
			validation.Check[*int]{
				Must:    validation.Not(validation.NullValue[int]()),
				Message: "ReleaseYear must not be null or empty",
				Field:   "ReleaseYear",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *int { return in.Rating },
			validation.Check[*int]{
				Must:    validation.Between(minRating, maxRating),
				When:    validation.Not(validation.NullValue[int]()),
				Message: "Rating must be between 1 and 10",
				Field:   "Rating",
			},
		),
		validation.RuleFor(func(in domain.ShowInput) *string { return in.ListedIn },
			validation.Check[*string]{
				Must:    ascii,
				When:    present,
				Message: "ListedIn must contain only printable ASCII characters",
				Field:   "ListedIn",
			},
		),
		// Description is stored as free text and has no rule.
	)
}
