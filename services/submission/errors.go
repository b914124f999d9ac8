package submission

import (
	"errors"
	"fmt"
)

// ErrSubmissionFailed matches every *SubmissionError via errors.Is.
var ErrSubmissionFailed = errors.New("submission failed")

// SubmissionError reports a transport failure or an explicit backend rejection.
// The draft is left untouched and may be resubmitted.
type SubmissionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("submission failed: %s", e.Message)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func (e *SubmissionError) Is(target error) bool { return target == ErrSubmissionFailed }
