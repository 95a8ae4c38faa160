package validation

// Check is one guarded predicate of a rule. Must is evaluated only when When
// is nil or returns true; a false Must records Field and Message.
type Check[V any] struct {
	Must    Predicate[V]
	When    Predicate[V]
	Message string
	Field   string
}

// Rule evaluates its checks against a record of type T.
type Rule[T any] interface {
	apply(rec T, res *Result)
}

type fieldRule[T, V any] struct {
	accessor func(T) V
	checks   []Check[V]
}

// RuleFor binds a field accessor to an ordered list of checks. Every check
// runs independently: a failing check does not stop the ones after it.
func RuleFor[T, V any](accessor func(T) V, checks ...Check[V]) Rule[T] {
	if accessor == nil {
		panic("validation: nil accessor")
	}
	for _, c := range checks {
		if c.Must == nil {
			panic("validation: check for " + c.Field + " has no predicate")
		}
	}
	return fieldRule[T, V]{
		accessor: accessor,
		checks:   append([]Check[V](nil), checks...),
	}
}

func (r fieldRule[T, V]) apply(rec T, res *Result) {
	value := r.accessor(rec)
	for _, c := range r.checks {
		if c.When != nil && !c.When(value) {
			continue
		}
		if !c.Must(value) {
			res.add(c.Field, c.Message)
		}
	}
}
