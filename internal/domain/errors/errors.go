package errors

import (
	"fmt"
)

type ErrWrongValueCount struct {
	Got      int
	Expected int
}

func (e *ErrWrongValueCount) Error() string {
	return fmt.Sprintf("expected %d values, got %d", e.Expected, e.Got)
}

func (e *ErrWrongValueCount) Is(target error) bool {
	_, ok := target.(*ErrWrongValueCount)
	return ok
}

type ErrInvalidDay struct {
	Value string
}

func (e *ErrInvalidDay) Error() string {
	return "invalid day: " + e.Value
}

func (e *ErrInvalidDay) Is(target error) bool {
	_, ok := target.(*ErrInvalidDay)
	return ok
}

type ErrInvalidTime struct {
	Value string
}

func (e *ErrInvalidTime) Error() string {
	return "invalid time: " + e.Value
}

func (e *ErrInvalidTime) Is(target error) bool {
	_, ok := target.(*ErrInvalidTime)
	return ok
}

type ErrInvalidGampanin struct {
	Value string
}

func (e *ErrInvalidGampanin) Error() string {
	return "invalid gampanin: " + e.Value
}

func (e *ErrInvalidGampanin) Is(target error) bool {
	_, ok := target.(*ErrInvalidGampanin)
	return ok
}

type ErrInvalidLanguage struct {
	Value string
}

func (e *ErrInvalidLanguage) Error() string {
	return "invalid language: " + e.Value
}

func (e *ErrInvalidLanguage) Is(target error) bool {
	_, ok := target.(*ErrInvalidLanguage)
	return ok
}

type ErrInvalidUri struct {
	Value string
}

func (e *ErrInvalidUri) Error() string {
	return "invalid uri: " + e.Value
}

func (e *ErrInvalidUri) Is(target error) bool {
	_, ok := target.(*ErrInvalidUri)
	return ok
}

// ErrInvalidCompanionID is returned when the companion chat ID is not
// all digits. Uri validation runs first; only one of the two is reported.
type ErrInvalidCompanionID struct {
	Value string
}

func (e *ErrInvalidCompanionID) Error() string {
	return "companion chat ID must be a number: " + e.Value
}

func (e *ErrInvalidCompanionID) Is(target error) bool {
	_, ok := target.(*ErrInvalidCompanionID)
	return ok
}

type ErrSheetUnavailable struct {
	Sheet      string
	StatusCode int
	Cause      error
}

func (e *ErrSheetUnavailable) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sheet %q unavailable: %v", e.Sheet, e.Cause)
	}

	return fmt.Sprintf("sheet %q unavailable: status %d", e.Sheet, e.StatusCode)
}

func (e *ErrSheetUnavailable) Unwrap() error {
	return e.Cause
}

func (e *ErrSheetUnavailable) Is(target error) bool {
	_, ok := target.(*ErrSheetUnavailable)
	return ok
}
