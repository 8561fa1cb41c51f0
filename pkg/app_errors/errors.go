package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrUserNotFound     = errors.New("user not found")

	// business rule violations
	ErrAlreadyRSVPd         = errors.New("user has already RSVP'd to this event")
	ErrEventAtCapacity      = errors.New("event has reached maximum capacity")
	ErrRSVPDeadlinePassed   = errors.New("the RSVP deadline has passed")
	ErrCheckInNotOpen       = errors.New("check-in is not yet available")
	ErrFeedbackWindowClosed = errors.New("feedback window is closed")
	ErrNotEventCreator      = errors.New("operation allowed for the event creator only")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError carries the field that failed validation so handlers can
// surface a field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
