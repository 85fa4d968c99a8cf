package xgbext

import "fmt"

// Class is the coarse outcome of classifying an error or event.
type Class int

const (
	// ClassCore values belong to the core protocol.
	ClassCore Class = iota
	// ClassExtension values were decoded by a resolved extension's schema.
	ClassExtension
	// ClassUnknown values carry a code no resolved extension owns.
	ClassUnknown
	// ClassUnsupported values belong to a resolved extension whose schema
	// is not part of this build.
	ClassUnsupported
	// ClassMalformed values could not be decoded at all.
	ClassMalformed
)

var classNames = [...]string{
	ClassCore:        "core",
	ClassExtension:   "extension",
	ClassUnknown:     "unknown",
	ClassUnsupported: "unsupported",
	ClassMalformed:   "malformed",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// ClassOf reports the class of a value returned by ClassifyError or
// ClassifyEvent.
func ClassOf(v interface{}) Class {
	switch v.(type) {
	case *CoreError, *CoreEvent:
		return ClassCore
	case *UnknownError, *UnknownEvent:
		return ClassUnknown
	case *UnsupportedError:
		return ClassUnsupported
	case *MalformedError, nil:
		return ClassMalformed
	}
	return ClassExtension
}

// DecodeError classifies buf like ClassifyError, but returns unsupported
// and malformed buffers as the error result.
func (r *Registry) DecodeError(buf []byte) (Error, error) {
	xerr := r.ClassifyError(buf)
	switch e := xerr.(type) {
	case *UnsupportedError:
		return nil, e
	case *MalformedError:
		return nil, e
	}
	return xerr, nil
}

// DecodeEvent classifies buf like ClassifyEvent, but returns unsupported
// and malformed buffers as the error result.
func (r *Registry) DecodeEvent(buf []byte) (Event, error) {
	ev := r.ClassifyEvent(buf)
	switch e := ev.(type) {
	case *UnsupportedError:
		return nil, e
	case *MalformedError:
		return nil, e
	}
	return ev, nil
}

// MalformedError describes a buffer that could not be decoded: it is too
// short, its length field disagrees with its size, or a discriminant lies
// outside the known set. Code and Sequence are zero when the buffer was too
// short to hold them.
type MalformedError struct {
	Reason   string
	Code     uint8
	Sequence uint16
	Length   int
}

func malformedError(w wire, format string, v ...interface{}) *MalformedError {
	m := &MalformedError{Reason: fmt.Sprintf(format, v...), Length: len(w.buf)}
	if len(w.buf) >= 2 {
		m.Code = w.get8(1)
	}
	if len(w.buf) >= 4 {
		m.Sequence = w.sequence()
	}
	return m
}

func malformedEvent(w wire, format string, v ...interface{}) *MalformedError {
	m := &MalformedError{Reason: fmt.Sprintf(format, v...), Length: len(w.buf)}
	if len(w.buf) >= 1 {
		m.Code = w.get8(0) & 0x7f
	}
	if len(w.buf) >= 4 {
		m.Sequence = w.sequence()
	}
	return m
}

func (m *MalformedError) ImplementsError()     {}
func (m *MalformedError) ImplementsEvent()     {}
func (m *MalformedError) ErrorCode() uint8     { return m.Code }
func (m *MalformedError) EventCode() uint8     { return m.Code }
func (m *MalformedError) SequenceId() uint16   { return m.Sequence }
func (m *MalformedError) Extension() Extension { return NoExtension }

func (m *MalformedError) Error() string {
	return fmt.Sprintf("malformed response (code: %d, sequence: %d, %d bytes): %s",
		m.Code, m.Sequence, m.Length, m.Reason)
}

func (m *MalformedError) String() string { return m.Error() }

// UnsupportedError is an error or event of a resolved extension whose
// decode schema was left out of the build. Number is the error or event
// number relative to the extension, or the generic event type when Code is
// the Generic Event code.
type UnsupportedError struct {
	Owner    Extension
	Code     uint8
	Number   uint16
	Sequence uint16
}

func (u *UnsupportedError) ImplementsError()     {}
func (u *UnsupportedError) ImplementsEvent()     {}
func (u *UnsupportedError) ErrorCode() uint8     { return u.Code }
func (u *UnsupportedError) EventCode() uint8     { return u.Code }
func (u *UnsupportedError) SequenceId() uint16   { return u.Sequence }
func (u *UnsupportedError) Extension() Extension { return u.Owner }

func (u *UnsupportedError) Error() string {
	return fmt.Sprintf("%s support is not compiled in (code: %d, number: %d, sequence: %d)",
		u.Owner, u.Code, u.Number, u.Sequence)
}

func (u *UnsupportedError) String() string { return u.Error() }

func kindName(names []string, k int) string {
	if k < 0 || k >= len(names) || names[k] == "" {
		return fmt.Sprintf("Unknown(%d)", k)
	}
	return names[k]
}
