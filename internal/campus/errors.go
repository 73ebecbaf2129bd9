package campus

import (
	"errors"
	"strings"
)

// ErrStorage marks a failure of the backing store. Callers match it with errors.Is.
var ErrStorage = errors.New("storage failure")

// ValidationError is returned when a payload fails its field checks.
// Nothing is stored when it is returned.
type ValidationError struct {
	Entity string
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid " + e.Entity + ": " + e.Err.Error()
	}
	return "invalid " + e.Entity + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
