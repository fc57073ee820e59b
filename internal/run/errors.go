package run

import "fmt"

// ValidationError reports user-entered data that cannot become a record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports persisted or imported data that is not a JSON array.
type FormatError struct {
	Source string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a valid run log: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s is not a valid run log", e.Source)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
