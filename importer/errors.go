package importer

import (
	"errors"
	"fmt"
)

var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports the row and column that stopped a read. Row 1
// is the header row.
type MalformedInputError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %s: row %d, column %q: %v", e.Source, e.Row, e.Column, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
