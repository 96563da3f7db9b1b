package scheduling

import (
	"errors"
	"fmt"

	"dentora/models"
)

// Rejection codes. These are expected validation outcomes the caller
// branches on, not fatal conditions.
const (
	CodeInvalidTime                  = "invalidTime"
	CodeInsufficientConsecutiveSlots = "insufficientConsecutiveSlots"
	CodeSlotBlocked                  = "slotBlocked"
	CodePastDate                     = "pastDate"
	CodeTooFarFuture                 = "tooFarFuture"
	CodeSchedulingConflict           = "schedulingConflict"
)

// ValidationError is a typed rejection of an appointment candidate.
type ValidationError struct {
	Code        string
	Message     string
	Conflicting []models.Appointment // populated for schedulingConflict
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
