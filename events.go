package xgbext

import "fmt"

// GenericEventCode is the core event code whose real type is given by the
// major opcode and event type fields of an extended header.
const GenericEventCode = 35

// Event is an interface that can contain any of the events classified by a
// Registry. Use a type assertion switch to extract the Event structs.
type Event interface {
	ImplementsEvent()
	EventCode() uint8
	SequenceId() uint16
	Extension() Extension
	String() string
}

// EventHeader holds the fields shared by all 32-byte events. Detail is the
// second byte, whose meaning depends on the event. Raw is a copy of the
// whole 32-byte envelope.
type EventHeader struct {
	Code      uint8
	SendEvent bool
	Detail    uint8
	Sequence  uint16
	Raw       [responseSize]byte
}

func readEventHeader(w wire) EventHeader {
	h := EventHeader{
		Code:      w.get8(0) & 0x7f,
		SendEvent: w.get8(0)&0x80 != 0,
		Detail:    w.get8(1),
		Raw:       w.raw(),
	}
	// KeymapNotify uses bytes 1 through 31 for the key vector.
	if h.Code != uint8(KeymapNotify) {
		h.Sequence = w.sequence()
	}
	return h
}

func (h EventHeader) ImplementsEvent()   {}
func (h EventHeader) EventCode() uint8   { return h.Code }
func (h EventHeader) SequenceId() uint16 { return h.Sequence }

func (h EventHeader) describe(owner, kind string) string {
	return fmt.Sprintf("%s event %s (code: %d, sequence: %d, send event: %t)",
		owner, kind, h.Code, h.Sequence, h.SendEvent)
}

// eventSchema is an extension's closed set of conventional events. names is
// indexed by the event number relative to the extension's first event code.
type eventSchema struct {
	names []string
	new   func(w wire, h EventHeader, number uint8) Event
}

// genericSchema is an extension's closed set of events delivered inside the
// Generic Event envelope. names is indexed by event type; empty names are
// types the extension does not define.
type genericSchema struct {
	names []string
	new   func(w wire, evtype uint16) GenericEventData
}

var (
	eventSchemas   = map[Extension]eventSchema{}
	genericSchemas = map[Extension]genericSchema{}
)

// ClassifyEvent determines which event buf holds. Generic events are
// recognized by their code before any event range is consulted, and their
// owner is found by major opcode. It never fails: buffers it cannot
// interpret come back as *UnknownEvent, *UnsupportedError or
// *MalformedError.
func (r *Registry) ClassifyEvent(buf []byte) Event {
	ev := r.classifyEvent(buf)
	r.observer.ObserveEvent(ev)
	return ev
}

func (r *Registry) classifyEvent(buf []byte) Event {
	w := wire{buf: buf, order: r.order}
	if len(buf) < responseSize {
		return malformedEvent(w, "event is %d bytes, want at least %d",
			len(buf), responseSize)
	}

	code := w.get8(0) & 0x7f
	switch {
	case code < 2:
		return malformedEvent(w, "response type %d is not an event", code)
	case code == GenericEventCode:
		return r.classifyGeneric(w)
	case len(buf) != responseSize:
		return malformedEvent(w, "event has %d trailing bytes",
			len(buf)-responseSize)
	}

	h := readEventHeader(w)
	if code <= lastCoreEvent {
		return &CoreEvent{EventHeader: h, Kind: CoreEventKind(code)}
	}

	b, ok := r.eventOwner(code)
	if !ok {
		return &UnknownEvent{EventHeader: h}
	}
	number := code - b.FirstEvent
	schema, ok := eventSchemas[b.Extension]
	if !ok {
		return &UnsupportedError{
			Owner:    b.Extension,
			Code:     code,
			Number:   uint16(number),
			Sequence: h.Sequence,
		}
	}
	if int(number) >= len(schema.names) {
		return malformedEvent(w, "%s defines no event %d", b.Extension, number)
	}
	return schema.new(w, h, number)
}

func (r *Registry) classifyGeneric(w wire) Event {
	length := w.get32(4)
	want := uint64(responseSize) + uint64(length)*genericLengthUnit
	if uint64(len(w.buf)) != want {
		return malformedEvent(w, "generic event length says %d bytes, got %d",
			want, len(w.buf))
	}

	h := readEventHeader(w)
	major := w.get8(1)
	evtype := w.get16(8)

	ext, ok := r.LookupByMajorOpcode(major)
	if !ok {
		return &UnknownEvent{
			EventHeader: h,
			MajorOpcode: major,
			EventType:   evtype,
			Payload:     w.copyBytes(0, len(w.buf)),
		}
	}
	if evtype >= ext.NumGenericEvents() {
		return malformedEvent(w, "%s defines no generic event %d", ext, evtype)
	}
	schema, ok := genericSchemas[ext]
	if !ok {
		return &UnsupportedError{
			Owner:    ext,
			Code:     GenericEventCode,
			Number:   evtype,
			Sequence: h.Sequence,
		}
	}
	if int(evtype) >= len(schema.names) || schema.names[evtype] == "" {
		return malformedEvent(w, "%s defines no generic event %d", ext, evtype)
	}

	return &GenericEvent{
		Owner:       ext,
		MajorOpcode: major,
		EventType:   evtype,
		Sequence:    h.Sequence,
		SendEvent:   h.SendEvent,
		Length:      length,
		Payload:     w.copyBytes(0, len(w.buf)),
		Data:        schema.new(w, evtype),
	}
}

// GenericEventData is the extension-specific part of a GenericEvent. Use a
// type assertion switch to extract it.
type GenericEventData interface {
	ImplementsGenericEvent()
	String() string
}

// GenericEvent is an event delivered in the Generic Event envelope. Its
// owner was identified by MajorOpcode and its type by EventType; Data holds
// the decoded extension-specific event. Payload is a copy of the whole
// buffer, including the 32-byte header.
type GenericEvent struct {
	Owner       Extension
	MajorOpcode uint8
	EventType   uint16
	Sequence    uint16
	SendEvent   bool
	Length      uint32
	Payload     []byte
	Data        GenericEventData
}

func (ev *GenericEvent) ImplementsEvent()     {}
func (ev *GenericEvent) EventCode() uint8     { return GenericEventCode }
func (ev *GenericEvent) SequenceId() uint16   { return ev.Sequence }
func (ev *GenericEvent) Extension() Extension { return ev.Owner }

func (ev *GenericEvent) String() string {
	return fmt.Sprintf("%s generic event %s (type: %d, sequence: %d, length: %d)",
		ev.Owner, ev.Data, ev.EventType, ev.Sequence, ev.Length)
}

// UnknownEvent is an event whose code belongs to no resolved extension. For
// generic events MajorOpcode and EventType are set and Payload holds the
// whole buffer.
type UnknownEvent struct {
	EventHeader
	MajorOpcode uint8
	EventType   uint16
	Payload     []byte
}

func (ev *UnknownEvent) Extension() Extension { return NoExtension }

func (ev *UnknownEvent) String() string {
	if ev.Code == GenericEventCode {
		return ev.describe("Unknown", fmt.Sprintf("generic (major: %d, type: %d)",
			ev.MajorOpcode, ev.EventType))
	}
	return ev.describe("Unknown", fmt.Sprintf("%d", ev.Code))
}

// CoreEventKind enumerates the events of the core protocol. Its values are
// the event codes themselves.
type CoreEventKind uint8

const (
	KeyPress CoreEventKind = iota + 2
	KeyRelease
	ButtonPress
	ButtonRelease
	MotionNotify
	EnterNotify
	LeaveNotify
	FocusIn
	FocusOut
	KeymapNotify
	Expose
	GraphicsExposure
	NoExposure
	VisibilityNotify
	CreateNotify
	DestroyNotify
	UnmapNotify
	MapNotify
	MapRequest
	ReparentNotify
	ConfigureNotify
	ConfigureRequest
	GravityNotify
	ResizeRequest
	CirculateNotify
	CirculateRequest
	PropertyNotify
	SelectionClear
	SelectionRequest
	SelectionNotify
	ColormapNotify
	ClientMessage
	MappingNotify
)

const lastCoreEvent = uint8(MappingNotify)

var coreEventNames = []string{
	KeyPress:         "KeyPress",
	KeyRelease:       "KeyRelease",
	ButtonPress:      "ButtonPress",
	ButtonRelease:    "ButtonRelease",
	MotionNotify:     "MotionNotify",
	EnterNotify:      "EnterNotify",
	LeaveNotify:      "LeaveNotify",
	FocusIn:          "FocusIn",
	FocusOut:         "FocusOut",
	KeymapNotify:     "KeymapNotify",
	Expose:           "Expose",
	GraphicsExposure: "GraphicsExposure",
	NoExposure:       "NoExposure",
	VisibilityNotify: "VisibilityNotify",
	CreateNotify:     "CreateNotify",
	DestroyNotify:    "DestroyNotify",
	UnmapNotify:      "UnmapNotify",
	MapNotify:        "MapNotify",
	MapRequest:       "MapRequest",
	ReparentNotify:   "ReparentNotify",
	ConfigureNotify:  "ConfigureNotify",
	ConfigureRequest: "ConfigureRequest",
	GravityNotify:    "GravityNotify",
	ResizeRequest:    "ResizeRequest",
	CirculateNotify:  "CirculateNotify",
	CirculateRequest: "CirculateRequest",
	PropertyNotify:   "PropertyNotify",
	SelectionClear:   "SelectionClear",
	SelectionRequest: "SelectionRequest",
	SelectionNotify:  "SelectionNotify",
	ColormapNotify:   "ColormapNotify",
	ClientMessage:    "ClientMessage",
	MappingNotify:    "MappingNotify",
}

func (k CoreEventKind) String() string { return kindName(coreEventNames, int(k)) }

// CoreEvent is an event of the core protocol. Its fields beyond the common
// header are left in Raw.
type CoreEvent struct {
	EventHeader
	Kind CoreEventKind
}

func (ev *CoreEvent) Extension() Extension { return NoExtension }

func (ev *CoreEvent) String() string {
	return ev.describe("Core", ev.Kind.String())
}
