package validation

import (
	"sort"
	"strings"
)

// FieldMessages maps a field name to its messages in production order.
// encoding/json writes map keys sorted, so the encoded form is deterministic.
type FieldMessages map[string][]string

// GroupErrors groups the errors of res by field name.
func GroupErrors(res Result) FieldMessages {
	grouped := make(FieldMessages)
	for _, e := range res.errs {
		grouped[e.Field] = append(grouped[e.Field], e.Message)
	}
	return grouped
}

// Fields returns the field names in lexicographic order.
func (m FieldMessages) Fields() []string {
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (m FieldMessages) String() string {
	parts := make([]string, 0, len(m))
	for _, f := range m.Fields() {
		parts = append(parts, f+": "+strings.Join(m[f], ", "))
	}
	return strings.Join(parts, "; ")
}
