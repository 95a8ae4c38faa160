package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Predicate is a boolean check over a value extracted from a record.
type Predicate[V any] func(V) bool

func Not[V any](p Predicate[V]) Predicate[V] {
	return func(v V) bool {
		return !p(v)
	}
}

// NullValue reports whether the pointer is nil.
func NullValue[V any]() Predicate[*V] {
	return func(v *V) bool {
		return v == nil
	}
}

// StringEmptyOrNull reports whether the string is nil or has zero length.
func StringEmptyOrNull() Predicate[*string] {
	return func(s *string) bool {
		return s == nil || *s == ""
	}
}

// StringMatches reports whether the whole string matches pattern.
// A nil string never matches. The pattern is compiled once, so an invalid
// pattern panics when the rule table is built.
func StringMatches(pattern string) Predicate[*string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return func(s *string) bool {
		return s != nil && re.MatchString(*s)
	}
}

// StringSizeLessThanOrEqual reports whether the string has at most n
// characters, counted as Unicode code points (runes), not bytes or UTF-16
// units. A character outside the Basic Multilingual Plane counts as one.
func StringSizeLessThanOrEqual(n int) Predicate[*string] {
	return func(s *string) bool {
		return s != nil && utf8.RuneCountInString(*s) <= n
	}
}

// StringOneOf matches the string case-sensitively against the alternation of
// values built at construction time.
func StringOneOf(values ...string) Predicate[*string] {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, regexp.QuoteMeta(v))
	}
	return StringMatches("^(" + strings.Join(quoted, "|") + ")$")
}

// Between reports whether the integer is present and within [min, max].
func Between(min, max int) Predicate[*int] {
	return func(v *int) bool {
		return v != nil && *v >= min && *v <= max
	}
}
