package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// SeatUnavailableError is returned when a bus has no capacity left or no seat record.
type SeatUnavailableError struct {
	BusID  int64
	Reason string
}

func (e SeatUnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("no seats available for bus %d", e.BusID)
	}
	return fmt.Sprintf("no seats available for bus %d: %s", e.BusID, e.Reason)
}

// PartialWriteError reports a multi-step write where some steps did not apply.
// Steps that completed before the failure are not rolled back.
type PartialWriteError struct {
	Op     string
	Failed []string
	Err    error
}

func (e PartialWriteError) Error() string {
	msg := "some edits may not have applied"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if len(e.Failed) > 0 {
		msg = fmt.Sprintf("%s (%d failed)", msg, len(e.Failed))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e PartialWriteError) Unwrap() error { return e.Err }

type AuthRequiredError struct {
	Msg string
	Err error
}

func (e AuthRequiredError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "you must log in first"
}

func (e AuthRequiredError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsSeatUnavailable(err error) bool {
	var target SeatUnavailableError
	return errors.As(err, &target)
}

func IsPartialWrite(err error) bool {
	var target PartialWriteError
	return errors.As(err, &target)
}

func IsAuthRequired(err error) bool {
	var target AuthRequiredError
	return errors.As(err, &target)
}
