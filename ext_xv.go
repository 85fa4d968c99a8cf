//go:build !xgbext_no_xv

package xgbext

import "fmt"

func init() {
	errorSchemas[Xv] = errorSchema{
		names: xvErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &XvError{ErrorHeader: h, Kind: XvErrorKind(number)}
		},
	}
	eventSchemas[Xv] = eventSchema{
		names: xvEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			ev := &XvEvent{
				EventHeader: h,
				Kind:        XvEventKind(number),
				Time:        w.get32(4),
			}
			switch ev.Kind {
			case XvVideoNotify:
				ev.Drawable = w.get32(8)
				ev.Port = w.get32(12)
			case XvPortNotify:
				ev.Port = w.get32(8)
				ev.Attribute = w.get32(12)
				ev.Value = int32(w.get32(16))
			}
			return ev
		},
	}
}

type XvErrorKind uint8

const (
	XvBadPort XvErrorKind = iota
	XvBadEncoding
	XvBadControl
)

var xvErrorNames = []string{
	XvBadPort:     "BadPort",
	XvBadEncoding: "BadEncoding",
	XvBadControl:  "BadControl",
}

func (k XvErrorKind) String() string { return kindName(xvErrorNames, int(k)) }

type XvError struct {
	ErrorHeader
	Kind XvErrorKind
}

func (err *XvError) Extension() Extension { return Xv }
func (err *XvError) Error() string        { return err.describe("Xv", err.Kind.String()) }

type XvEventKind uint8

const (
	XvVideoNotify XvEventKind = iota
	XvPortNotify
)

var xvEventNames = []string{
	XvVideoNotify: "VideoNotify",
	XvPortNotify:  "PortNotify",
}

func (k XvEventKind) String() string { return kindName(xvEventNames, int(k)) }

// XvEvent is an XVideo event. For VideoNotify, Detail holds the reason and
// Drawable is set; for PortNotify, Attribute and Value are.
type XvEvent struct {
	EventHeader
	Kind      XvEventKind
	Time      uint32
	Port      uint32
	Drawable  uint32
	Attribute uint32
	Value     int32
}

func (ev *XvEvent) Extension() Extension { return Xv }

func (ev *XvEvent) String() string {
	return ev.describe("Xv", fmt.Sprintf("%s (port: %d)", ev.Kind, ev.Port))
}
