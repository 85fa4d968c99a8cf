package xgbconn

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/pkg/errors"
)

// ErrMissingReply is returned when a request was answered with neither a
// reply nor an error.
var ErrMissingReply = errors.New("the X server did not send a reply")

// ErrClosed is the cause of a ConnectionError when xgb reports that the
// connection has shut down.
var ErrClosed = errors.New("the X connection is closed")

// RequestError is an error the X server sent in answer to a request.
type RequestError struct {
	Err xgb.Error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %d failed: %s", e.Err.SequenceId(), e.Err.Error())
}

func (e *RequestError) Unwrap() error { return e.Err }

// SequenceId is the sequence number of the failed request.
func (e *RequestError) SequenceId() uint16 { return e.Err.SequenceId() }

// BadId is the resource or value the server complained about.
func (e *RequestError) BadId() uint32 { return e.Err.BadId() }

// ConnectionError means the request could not be answered because the
// connection failed.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "the X connection failed: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Checker is the cookie of a request sent with its Checked variant.
type Checker interface {
	Check() error
}

// Check waits for a checked request to complete. It returns nil, a
// *RequestError or a *ConnectionError.
func Check(cookie Checker) error {
	return classify(cookie.Check())
}

// CheckReply sorts out the results of a cookie's Reply method. xgb hands
// back a nil reply without an error when no reply arrived.
func CheckReply[T any](reply *T, err error) (*T, error) {
	if err != nil {
		return nil, classify(err)
	}
	if reply == nil {
		return nil, ErrMissingReply
	}
	return reply, nil
}

// CheckEvent sorts out the results of WaitForEvent. xgb returns neither an
// event nor an error once the connection is gone.
func CheckEvent(ev xgb.Event, xerr xgb.Error) (xgb.Event, error) {
	switch {
	case xerr != nil:
		return nil, &RequestError{Err: xerr}
	case ev == nil:
		return nil, &ConnectionError{Err: ErrClosed}
	}
	return ev, nil
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var xerr xgb.Error
	if errors.As(err, &xerr) {
		return &RequestError{Err: xerr}
	}
	return &ConnectionError{Err: err}
}
