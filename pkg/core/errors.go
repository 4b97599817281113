package core

import (
	"fmt"
)

// DeviceError represents a structured error with a machine-readable code
type DeviceError struct {
	Code    string // Machine-readable code: no_device, unexpected_output, etc.
	Message string // Human-readable message
	Cause   error  // Underlying error
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DeviceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DeviceError with the same code, so the
// predefined values below work with errors.Is even after WithCause/WithMessage.
func (e *DeviceError) Is(target error) bool {
	t, ok := target.(*DeviceError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause
func (e *DeviceError) WithCause(cause error) *DeviceError {
	return &DeviceError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *DeviceError) WithMessage(msg string) *DeviceError {
	return &DeviceError{
		Code:    e.Code,
		Message: msg,
		Cause:   e.Cause,
	}
}

// Predefined errors
var (
	ErrNoDevice = &DeviceError{
		Code:    "no_device",
		Message: "no connected devices found",
	}
	ErrUnexpectedOutput = &DeviceError{
		Code:    "unexpected_output",
		Message: "unexpected output from device tool",
	}
	ErrElementNotFound = &DeviceError{
		Code:    "element_not_found",
		Message: "element not found",
	}
	ErrTimeout = &DeviceError{
		Code:    "timeout",
		Message: "operation timed out",
	}
	ErrCommandFailed = &DeviceError{
		Code:    "command_failed",
		Message: "device command failed",
	}
)

// NewDeviceError creates a new DeviceError with the given parameters
func NewDeviceError(code, message string) *DeviceError {
	return &DeviceError{
		Code:    code,
		Message: message,
	}
}
