package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction matches every *InvalidActionError.
	ErrInvalidAction = errors.New("invalid action")
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
)

// InvalidActionError reports an action the hand refused. The hand is left
// exactly as it was before the call.
type InvalidActionError struct {
	Seat   int
	Action Action
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("seat %d cannot %s: %s", e.Seat, e.Action, e.Reason)
}

func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}

// ConfigurationError reports a hand that cannot be started.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func invalid(seat int, action Action, format string, args ...any) error {
	return &InvalidActionError{Seat: seat, Action: action, Reason: fmt.Sprintf(format, args...)}
}

func misconfigured(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
