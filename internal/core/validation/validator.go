// Package validation is a small declarative rule engine. A Validator holds an
// ordered rule table for one record type and produces a Result listing every
// failed check in declaration order.
package validation

// FieldError is a single failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the ordered outcome of one validation run.
type Result struct {
	errs []FieldError
}

// NewResult builds a Result from already produced errors.
func NewResult(errs ...FieldError) Result {
	return Result{errs: append([]FieldError(nil), errs...)}
}

func (r Result) IsValid() bool {
	return len(r.errs) == 0
}

// Errors returns a copy of the errors in production order.
func (r Result) Errors() []FieldError {
	return append([]FieldError(nil), r.errs...)
}

func (r *Result) add(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

// Validator is immutable once built and safe for concurrent use.
type Validator[T any] struct {
	rules []Rule[T]
}

func New[T any](rules ...Rule[T]) *Validator[T] {
	return &Validator[T]{rules: append([]Rule[T](nil), rules...)}
}

// Validate runs every rule against rec. It never fails: an empty Result
// means the record is valid.
func (v *Validator[T]) Validate(rec T) Result {
	var res Result
	for _, rule := range v.rules {
		rule.apply(rec, &res)
	}
	return res
}
