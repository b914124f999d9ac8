package models

import (
	"errors"
	"fmt"
)

// RejectionCode classifies a locally recoverable validation failure.
type RejectionCode string

const (
	RejectEmptyField         RejectionCode = "EMPTY_FIELD"
	RejectInvalidTime        RejectionCode = "INVALID_TIME"
	RejectInvertedRange      RejectionCode = "INVERTED_RANGE"
	RejectOverlap            RejectionCode = "OVERLAP"
	RejectInvalidPrice       RejectionCode = "INVALID_PRICE"
	RejectSlotNotFound       RejectionCode = "SLOT_NOT_FOUND"
	RejectFieldNotFound      RejectionCode = "FIELD_NOT_FOUND"
	RejectInvalidFieldType   RejectionCode = "INVALID_FIELD_TYPE"
	RejectLastFieldRemaining RejectionCode = "LAST_FIELD_REMAINING"
	RejectEmptySource        RejectionCode = "EMPTY_SOURCE"
	RejectInvalidCount       RejectionCode = "INVALID_COUNT"
	RejectStepIncomplete     RejectionCode = "STEP_INCOMPLETE"
	RejectNotAtConfirmation  RejectionCode = "NOT_AT_CONFIRMATION"
	RejectSubmissionInFlight RejectionCode = "SUBMISSION_IN_FLIGHT"
	RejectDraftConsumed      RejectionCode = "DRAFT_CONSUMED"
)

// Rejection is returned whenever an operation refuses an operator intent.
// The model is left in its last valid state.
type Rejection struct {
	Code    RejectionCode `json:"code"`
	Message string        `json:"message"`
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Reject builds a Rejection with a formatted message.
func Reject(code RejectionCode, format string, args ...any) error {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// IsRejection reports whether err is a Rejection with the given code.
func IsRejection(err error, code RejectionCode) bool {
	r, ok := AsRejection(err)
	return ok && r.Code == code
}
