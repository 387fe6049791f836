package timecard

import (
	"errors"
	"fmt"
	"strings"
)

var errEmptySource = errors.New("no header row found")

// LoadError reports a timecard source that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SchemaError reports required columns absent from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}
