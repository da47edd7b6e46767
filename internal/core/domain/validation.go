package domain

import (
	"sort"
	"strings"
)

// ValidationError reports malformed input with one message per failing field.
// It is rendered at the HTTP boundary as a 400 with a field→message map.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a failure for field, keeping the first message per field.
func (e *ValidationError) Add(field, message string) {
	if _, seen := e.Fields[field]; !seen {
		e.Fields[field] = message
	}
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
