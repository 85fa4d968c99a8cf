package xgbext

import "fmt"

// Error is an interface that can contain any of the errors classified by a
// Registry. Use a type assertion switch to extract the Error structs.
type Error interface {
	ImplementsError()
	ErrorCode() uint8
	SequenceId() uint16
	Extension() Extension
	Error() string
}

// ErrorHeader holds the fields every X error carries. Payload is a copy of
// bytes 11 through 31, which are defined by the error's owner.
type ErrorHeader struct {
	Code        uint8
	Sequence    uint16
	BadValue    uint32
	MinorOpcode uint16
	MajorOpcode uint8
	Payload     []byte
}

func readErrorHeader(w wire) ErrorHeader {
	return ErrorHeader{
		Code:        w.get8(1),
		Sequence:    w.sequence(),
		BadValue:    w.get32(4),
		MinorOpcode: w.get16(8),
		MajorOpcode: w.get8(10),
		Payload:     w.copyBytes(11, responseSize),
	}
}

func (h ErrorHeader) ImplementsError()   {}
func (h ErrorHeader) ErrorCode() uint8   { return h.Code }
func (h ErrorHeader) SequenceId() uint16 { return h.Sequence }

func (h ErrorHeader) describe(owner, kind string) string {
	return fmt.Sprintf("%s error %s (code: %d, sequence: %d, bad value: %d, "+
		"major: %d, minor: %d)", owner, kind, h.Code, h.Sequence, h.BadValue,
		h.MajorOpcode, h.MinorOpcode)
}

// errorSchema is an extension's closed set of errors. names is indexed by
// the error number relative to the extension's first error code.
type errorSchema struct {
	names []string
	new   func(h ErrorHeader, number uint8) Error
}

// errorSchemas is a map from extensions to the errors they define. Each
// extension's file adds itself unless it is excluded by a build tag.
var errorSchemas = map[Extension]errorSchema{}

// ClassifyError determines which error buf holds. It never fails: buffers
// it cannot interpret come back as *UnknownError, *UnsupportedError or
// *MalformedError.
func (r *Registry) ClassifyError(buf []byte) Error {
	xerr := r.classifyError(buf)
	r.observer.ObserveError(xerr)
	return xerr
}

func (r *Registry) classifyError(buf []byte) Error {
	w := wire{buf: buf, order: r.order}
	switch {
	case len(buf) < responseSize:
		return malformedError(w, "error is %d bytes, want %d", len(buf), responseSize)
	case len(buf) > responseSize:
		return malformedError(w, "error has %d trailing bytes", len(buf)-responseSize)
	case w.get8(0) != 0:
		return malformedError(w, "response type %d is not an error", w.get8(0))
	}

	h := readErrorHeader(w)
	switch {
	case h.Code == 0:
		return malformedError(w, "error code 0 is not assigned")
	case h.Code <= lastCoreError:
		return &CoreError{ErrorHeader: h, Kind: CoreErrorKind(h.Code)}
	}

	b, ok := r.errorOwner(h.Code)
	if !ok {
		return &UnknownError{ErrorHeader: h}
	}
	number := h.Code - b.FirstError
	schema, ok := errorSchemas[b.Extension]
	if !ok {
		return &UnsupportedError{
			Owner:    b.Extension,
			Code:     h.Code,
			Number:   uint16(number),
			Sequence: h.Sequence,
		}
	}
	if int(number) >= len(schema.names) {
		return malformedError(w, "%s defines no error %d", b.Extension, number)
	}
	return schema.new(h, number)
}

// UnknownError is an error whose code belongs to no resolved extension.
type UnknownError struct {
	ErrorHeader
}

func (err *UnknownError) Extension() Extension { return NoExtension }

func (err *UnknownError) Error() string {
	return err.describe("Unknown", fmt.Sprintf("%d", err.Code))
}

// CoreErrorKind enumerates the errors of the core protocol. Its values are
// the error codes themselves.
type CoreErrorKind uint8

const (
	BadRequest CoreErrorKind = iota + 1
	BadValue
	BadWindow
	BadPixmap
	BadAtom
	BadCursor
	BadFont
	BadMatch
	BadDrawable
	BadAccess
	BadAlloc
	BadColormap
	BadGContext
	BadIDChoice
	BadName
	BadLength
	BadImplementation
)

const lastCoreError = uint8(BadImplementation)

var coreErrorNames = []string{
	BadRequest:        "BadRequest",
	BadValue:          "BadValue",
	BadWindow:         "BadWindow",
	BadPixmap:         "BadPixmap",
	BadAtom:           "BadAtom",
	BadCursor:         "BadCursor",
	BadFont:           "BadFont",
	BadMatch:          "BadMatch",
	BadDrawable:       "BadDrawable",
	BadAccess:         "BadAccess",
	BadAlloc:          "BadAlloc",
	BadColormap:       "BadColormap",
	BadGContext:       "BadGContext",
	BadIDChoice:       "BadIDChoice",
	BadName:           "BadName",
	BadLength:         "BadLength",
	BadImplementation: "BadImplementation",
}

func (k CoreErrorKind) String() string { return kindName(coreErrorNames, int(k)) }

// CoreError is an error of the core protocol. For BadWindow, BadPixmap and
// the other resource errors BadValue holds the offending resource id.
type CoreError struct {
	ErrorHeader
	Kind CoreErrorKind
}

func (err *CoreError) Extension() Extension { return NoExtension }

func (err *CoreError) Error() string {
	return err.describe("Core", err.Kind.String())
}
