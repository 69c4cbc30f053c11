package payload

import (
	"fmt"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// StructuralError is returned when the input is not a JSON object at all.
// It matches domain.ErrMalformedPayload with errors.Is.
type StructuralError struct {
	Err error
}

func (e *StructuralError) Error() string {
	if e.Err == nil {
		return domain.ErrMsgMalformedPayload
	}
	return fmt.Sprintf("%s: %v", domain.ErrMsgMalformedPayload, e.Err)
}

func (e *StructuralError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrMalformedPayload}
	}
	return []error{domain.ErrMalformedPayload, e.Err}
}

// Degradation records a field that did not match its expected shape and was
// replaced by its empty value.
type Degradation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Report lists the degraded fields of one decode. It is informational only.
type Report struct {
	Degradations []Degradation `json:"degradations,omitempty"`
}

// Degraded reports whether any field fell back to its default.
func (r Report) Degraded() bool {
	return len(r.Degradations) > 0
}

// Fields returns the names of the degraded fields in decode order.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r.Degradations))
	for _, d := range r.Degradations {
		fields = append(fields, d.Field)
	}
	return fields
}

func (r *Report) add(field, reason string) {
	r.Degradations = append(r.Degradations, Degradation{Field: field, Reason: reason})
}
