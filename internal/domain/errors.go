package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both an unknown slug and an owner-token mismatch.
	// Owner flows must not reveal which of the two happened.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDecision reports a decision value outside {approve, reject}.
	ErrInvalidDecision = errors.New("invalid decision")

	// ErrConflict reports a storage uniqueness violation. Callers inserting
	// generated slugs or tokens regenerate and retry instead of failing.
	ErrConflict = errors.New("unique constraint violation")
)

// ValidationError carries actionable, per-field and per-question messages so
// a submitted form can be re-rendered with its errors marked.
type ValidationError struct {
	Fields    map[string]string
	Questions map[int32]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{
		Fields:    make(map[string]string),
		Questions: make(map[int32]string),
	}
}

func (e *ValidationError) AddField(name, msg string) {
	e.Fields[name] = msg
}

func (e *ValidationError) AddQuestion(questionID int32, msg string) {
	e.Questions[questionID] = msg
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0 && len(e.Questions) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("validation failed")
	if len(names) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(names, ", "))
	}
	if len(e.Questions) > 0 {
		b.WriteString(" (and unanswered required questions)")
	}
	return b.String()
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
