package student

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("student not found")
	ErrAmbiguousName    = errors.New("several students share this name, use the roll number instead")
	ErrRollNumberExists = errors.New("a student with this roll number already exists")

	ErrAmbiguousRollNumber = errors.New("several students share this roll number, fix the data file")
)

// NotFoundError is returned when no student matches a lookup.
// Suggestion holds the closest existing name, if any.
type NotFoundError struct {
	Field      string // "name" | "roll number"
	Query      string
	Suggestion string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("No student found with the %s %s.", err.Field, err.Query)
}

func (err *NotFoundError) Is(target error) bool { return target == ErrNotFound }
