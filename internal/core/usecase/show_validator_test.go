package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atvirokodosprendimai/showsapi/internal/core/domain"
	"github.com/atvirokodosprendimai/showsapi/internal/core/validation"
)

func ptr[T any](v T) *T { return &v }

func validShowInput() domain.ShowInput {
	added := domain.NewDate(2021, time.September, 25)
	return domain.ShowInput{
		ShowType:         ptr("MOVIE"),
		Title:            ptr("Dick Johnson Is Dead"),
		Director:         ptr("Kirsten Johnson"),
		CastMembers:      ptr("Michael Hilow, Ana Hoffman"),
		Country:          ptr("United States"),
		DateAdded:        &added,
		ReleaseYear:      ptr(2020),
		Rating:           ptr(8),
		DurationInMinute: ptr(90),
		ListedIn:         ptr("Documentaries"),
		Description:      ptr("As her father nears the end of his life, filmmaker Kirsten Johnson stages his death in inventive ways."),
	}
}

func grouped(in domain.ShowInput) validation.FieldMessages {
	return validation.GroupErrors(NewShowValidator().Validate(in))
}

func TestShowValidatorAcceptsFullRecord(t *testing.T) {
	res := NewShowValidator().Validate(validShowInput())
	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Errors())
}

func TestShowValidatorRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ShowInput)
		field   string
		message string
	}{
		{"null show type", func(in *domain.ShowInput) { in.ShowType = nil }, "ShowType", "ShowType must not be null or empty"},
		{"empty show type", func(in *domain.ShowInput) { in.ShowType = ptr("") }, "ShowType", "ShowType must not be null or empty"},
		{"null title", func(in *domain.ShowInput) { in.Title = nil }, "Title", "Title must not be null or empty"},
		{"empty title", func(in *domain.ShowInput) { in.Title = ptr("") }, "Title", "Title must not be null or empty"},
		{"null country", func(in *domain.ShowInput) { in.Country = nil }, "Country", "Country must not be null or empty"},
		{"empty country", func(in *domain.ShowInput) { in.Country = ptr("") }, "Country", "Country must not be null or empty"},
		{"null date added", func(in *domain.ShowInput) { in.DateAdded = nil }, "DateAdded", "DateAdded must not be null or empty"},
		{"null release year", func(in *domain.ShowInput) { in.ReleaseYear = nil }, "ReleaseYear", "ReleaseYear must not be null or empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validShowInput()
			tt.mutate(&in)

			got := grouped(in)
			assert.Equal(t, validation.FieldMessages{tt.field: {tt.message}}, got)
		})
	}
}

func TestShowValidatorOptionalFieldsMayBeAbsent(t *testing.T) {
	in := validShowInput()
	in.Director = nil
	in.CastMembers = ptr("")
	in.ListedIn = nil
	in.Rating = nil
	in.Description = nil
	in.DurationInMinute = nil

	res := NewShowValidator().Validate(in)
	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Errors())
}

func TestShowValidatorOptionalFieldsMustBePrintableASCII(t *testing.T) {
	tests := []struct {
		mutate  func(*domain.ShowInput)
		field   string
		message string
	}{
		{func(in *domain.ShowInput) { in.Director = ptr("Dîrector") }, "Director", "Director must contain only printable ASCII characters"},
		{func(in *domain.ShowInput) { in.CastMembers = ptr("Cäst") }, "CastMembers", "Cast members must contain only printable ASCII characters"},
		{func(in *domain.ShowInput) { in.ListedIn = ptr("Dramas\n") }, "ListedIn", "ListedIn must contain only printable ASCII characters"},
		{func(in *domain.ShowInput) { in.Title = ptr("Amélie") }, "Title", "Title must contain only printable ASCII characters"},
		{func(in *domain.ShowInput) { in.Country = ptr("España") }, "Country", "Country must contain only printable ASCII characters"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validShowInput()
			tt.mutate(&in)
			assert.Equal(t, validation.FieldMessages{tt.field: {tt.message}}, grouped(in))
		})
	}
}

func TestShowValidatorDescriptionIsUnconstrained(t *testing.T) {
	in := validShowInput()
	in.Description = ptr("Ünïcödé ✓ description")
	assert.True(t, NewShowValidator().Validate(in).IsValid())
}

func TestShowValidatorRatingRange(t *testing.T) {
	for _, rating := range []int{0, 11, -1} {
		in := validShowInput()
		in.Rating = ptr(rating)
		assert.Equal(t, validation.FieldMessages{"Rating": {"Rating must be between 1 and 10"}}, grouped(in), "rating %d", rating)
	}
	for _, rating := range []int{1, 10} {
		in := validShowInput()
		in.Rating = ptr(rating)
		assert.True(t, NewShowValidator().Validate(in).IsValid(), "rating %d", rating)
	}
}

func TestShowValidatorShowTypeEnumeration(t *testing.T) {
	for _, showType := range []string{"SERIES", "BAD", "movie", "MOVIE "} {
		in := validShowInput()
		in.ShowType = ptr(showType)
		assert.Equal(t, validation.FieldMessages{"ShowType": {"ShowType must be either MOVIE or TV_SHOW"}}, grouped(in), "show type %q", showType)
	}

	in := validShowInput()
	in.ShowType = ptr("TV_SHOW")
	assert.True(t, NewShowValidator().Validate(in).IsValid())
}

func TestShowValidatorCountryLength(t *testing.T) {
	in := validShowInput()
	in.Country = ptr(strings.Repeat("a", 60))
	assert.True(t, NewShowValidator().Validate(in).IsValid())

	in.Country = ptr(strings.Repeat("a", 61))
	assert.Equal(t, validation.FieldMessages{
		"Country": {"Country must be less than or equal to 60 character length"},
	}, grouped(in))
}

func TestShowValidatorCountryCollectsEveryFailure(t *testing.T) {
	in := validShowInput()
	in.Country = ptr(strings.Repeat("é", 61))
	assert.Equal(t, validation.FieldMessages{
		"Country": {
			"Country must contain only printable ASCII characters",
			"Country must be less than or equal to 60 character length",
		},
	}, grouped(in))
}

func TestShowValidatorEmptyRecord(t *testing.T) {
	res := NewShowValidator().Validate(domain.ShowInput{})
	require.False(t, res.IsValid())

	got := validation.GroupErrors(res)
	assert.Equal(t, []string{"Country", "DateAdded", "ReleaseYear", "ShowType", "Title"}, got.Fields())

	fields := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"ShowType", "Title", "Country", "DateAdded", "ReleaseYear"}, fields)
}
