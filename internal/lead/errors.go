package lead

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a distribution attempted without its prerequisites.
	ErrValidation = errors.New("validation failed")

	ErrNoRecipient = fmt.Errorf("%w: no seller selected", ErrValidation)
	ErrEmptyPool   = fmt.Errorf("%w: no leads imported", ErrValidation)

	ErrNoFile      = errors.New("no CSV file selected")
	ErrTooFewLines = errors.New("CSV must have a header and at least one data row")
)

// ImportError reports a CSV import that produced no leads.
// Source is the file name when known.
type ImportError struct {
	Source string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Source == "" {
		return "import: " + e.Err.Error()
	}
	return fmt.Sprintf("import %s: %v", e.Source, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }
