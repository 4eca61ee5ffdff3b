package terminal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotTerminal is returned when stdin is not attached to a tty
	ErrNotTerminal = errors.New("stdin is not a terminal")

	errInputClosed = errors.New("input closed")
)

// DeviceError reports a failure to acquire the device: raw mode switch or dimension query
type DeviceError struct {
	Op  string
	Err error
}

func newDeviceError(op string, err error) *DeviceError {
	return &DeviceError{Op: op, Err: errors.WithStack(err)}
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, errors.Cause(e.Err))
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// IOError reports a failed key read or output flush on an acquired device
type IOError struct {
	Op  string
	Err error
}

func newIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: errors.WithStack(err)}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, errors.Cause(e.Err))
}

func (e *IOError) Unwrap() error {
	return e.Err
}
