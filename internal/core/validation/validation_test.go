package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atvirokodosprendimai/showsapi/internal/core/validation"
)

func ptr[T any](v T) *T { return &v }

type person struct {
	Name  *string
	Email *string
	Age   *int
}

func personValidator() *validation.Validator[person] {
	return validation.New(
		validation.RuleFor(func(p person) *string { return p.Name },
			validation.Check[*string]{
				Must:    validation.Not(validation.StringEmptyOrNull()),
				Message: "Name is required",
				Field:   "Name",
			},
			validation.Check[*string]{
				Must:    validation.StringMatches(`[a-z]+`),
				When:    validation.Not(validation.StringEmptyOrNull()),
				Message: "Name must be lowercase",
				Field:   "Name",
			},
			validation.Check[*string]{
				Must:    validation.StringSizeLessThanOrEqual(5),
				When:    validation.Not(validation.StringEmptyOrNull()),
				Message: "Name is too long",
				Field:   "Name",
			},
		),
		validation.RuleFor(func(p person) *string { return p.Email },
			validation.Check[*string]{
				Must:    validation.StringMatches(`[^@]+@[^@]+`),
				When:    validation.Not(validation.StringEmptyOrNull()),
				Message: "Email is malformed",
				Field:   "Email",
			},
		),
		validation.RuleFor(func(p person) *int { return p.Age },
			validation.Check[*int]{
				Must:    validation.Between(1, 10),
				When:    validation.Not(validation.NullValue[int]()),
				Message: "Age out of range",
				Field:   "Age",
			},
		),
	)
}

func TestPredicates(t *testing.T) {
	t.Run("not negates", func(t *testing.T) {
		p := validation.Not(validation.StringEmptyOrNull())
		assert.False(t, p(nil))
		assert.False(t, p(ptr("")))
		assert.True(t, p(ptr("x")))
	})

	t.Run("null value", func(t *testing.T) {
		p := validation.NullValue[int]()
		assert.True(t, p(nil))
		assert.False(t, p(ptr(0)))
	})

	t.Run("string matches is a full match", func(t *testing.T) {
		p := validation.StringMatches(`[a-z]+`)
		assert.True(t, p(ptr("abc")))
		assert.False(t, p(ptr("abc1")))
		assert.False(t, p(ptr("")))
		assert.False(t, p(nil))
	})

	t.Run("printable ascii", func(t *testing.T) {
		p := validation.StringMatches(`^[\x20-\x7E]+$`)
		assert.True(t, p(ptr("Director Name ~!")))
		assert.False(t, p(ptr("Dîrector")))
		assert.False(t, p(ptr("tab\there")))
	})

	t.Run("string size counts characters", func(t *testing.T) {
		p := validation.StringSizeLessThanOrEqual(3)
		assert.True(t, p(ptr("abc")))
		assert.True(t, p(ptr("îîî")))
		assert.True(t, p(ptr("😀😀😀")), "runes outside the BMP count once")
		assert.False(t, p(ptr("abcd")))
		assert.False(t, p(nil))
	})

	t.Run("one of is case sensitive and anchored", func(t *testing.T) {
		p := validation.StringOneOf("MOVIE", "TV_SHOW")
		assert.True(t, p(ptr("MOVIE")))
		assert.True(t, p(ptr("TV_SHOW")))
		assert.False(t, p(ptr("movie")))
		assert.False(t, p(ptr("MOVIES")))
		assert.False(t, p(ptr("SERIES")))
		assert.False(t, p(nil))
	})

	t.Run("one of quotes metacharacters", func(t *testing.T) {
		p := validation.StringOneOf("A.B")
		assert.True(t, p(ptr("A.B")))
		assert.False(t, p(ptr("AxB")))
	})

	t.Run("between is inclusive", func(t *testing.T) {
		p := validation.Between(1, 10)
		for _, v := range []int{1, 5, 10} {
			assert.True(t, p(ptr(v)), "value %d", v)
		}
		for _, v := range []int{-1, 0, 11} {
			assert.False(t, p(ptr(v)), "value %d", v)
		}
		assert.False(t, p(nil))
	})
}

func TestValidatorValidRecord(t *testing.T) {
	res := personValidator().Validate(person{Name: ptr("ann"), Email: ptr("a@b"), Age: ptr(3)})
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Errors())
}

func TestValidatorGuardSkipsOptionalFields(t *testing.T) {
	res := personValidator().Validate(person{Name: ptr("ann")})
	assert.True(t, res.IsValid())

	res = personValidator().Validate(person{Name: ptr("ann"), Email: ptr("")})
	assert.True(t, res.IsValid())
}

func TestValidatorRequiredFieldFailsOnlyUnguardedCheck(t *testing.T) {
	res := personValidator().Validate(person{})
	require.False(t, res.IsValid())
	assert.Equal(t, []validation.FieldError{{Field: "Name", Message: "Name is required"}}, res.Errors())
}

func TestValidatorEvaluatesEveryCheckOfARule(t *testing.T) {
	res := personValidator().Validate(person{Name: ptr("ANNABEL")})
	assert.Equal(t, []validation.FieldError{
		{Field: "Name", Message: "Name must be lowercase"},
		{Field: "Name", Message: "Name is too long"},
	}, res.Errors())
}

func TestValidatorRunsAllRulesInDeclarationOrder(t *testing.T) {
	res := personValidator().Validate(person{Email: ptr("nope"), Age: ptr(11)})
	assert.Equal(t, []validation.FieldError{
		{Field: "Name", Message: "Name is required"},
		{Field: "Email", Message: "Email is malformed"},
		{Field: "Age", Message: "Age out of range"},
	}, res.Errors())
}

func TestValidatorIsReusable(t *testing.T) {
	v := personValidator()
	first := v.Validate(person{})
	second := v.Validate(person{Name: ptr("ok")})
	assert.False(t, first.IsValid())
	assert.True(t, second.IsValid())
	assert.Len(t, first.Errors(), 1)
}

func TestRuleForRejectsMissingPredicate(t *testing.T) {
	assert.Panics(t, func() {
		validation.RuleFor(func(p person) *string { return p.Name }, validation.Check[*string]{Field: "Name"})
	})
	assert.Panics(t, func() {
		validation.RuleFor[person, *string](nil)
	})
}

func TestGroupErrorsPreservesOrderWithinField(t *testing.T) {
	res := validation.NewResult(
		validation.FieldError{Field: "Title", Message: "m1"},
		validation.FieldError{Field: "Country", Message: "m3"},
		validation.FieldError{Field: "Title", Message: "m2"},
	)

	grouped := validation.GroupErrors(res)
	assert.Equal(t, validation.FieldMessages{
		"Country": {"m3"},
		"Title":   {"m1", "m2"},
	}, grouped)
	assert.Equal(t, []string{"Country", "Title"}, grouped.Fields())
	assert.Equal(t, "Country: m3; Title: m1, m2", grouped.String())
}

func TestGroupErrorsEmpty(t *testing.T) {
	grouped := validation.GroupErrors(validation.Result{})
	assert.Empty(t, grouped)
	assert.Empty(t, grouped.Fields())
	assert.True(t, strings.TrimSpace(grouped.String()) == "")
}
