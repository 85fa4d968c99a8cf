//go:build !xgbext_no_xprint

package xgbext

import "fmt"

func init() {
	errorSchemas[Xprint] = errorSchema{
		names: xprintErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &XprintError{ErrorHeader: h, Kind: XprintErrorKind(number)}
		},
	}
	eventSchemas[Xprint] = eventSchema{
		names: xprintEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			ev := &XprintEvent{
				EventHeader: h,
				Kind:        XprintEventKind(number),
				Context:     w.get32(4),
			}
			if ev.Kind == XprintNotify {
				ev.Cancel = w.getBool(8)
			}
			return ev
		},
	}
}

type XprintErrorKind uint8

const (
	XprintBadContext XprintErrorKind = iota
	XprintBadSequence
)

var xprintErrorNames = []string{
	XprintBadContext:  "BadContext",
	XprintBadSequence: "BadSequence",
}

func (k XprintErrorKind) String() string { return kindName(xprintErrorNames, int(k)) }

type XprintError struct {
	ErrorHeader
	Kind XprintErrorKind
}

func (err *XprintError) Extension() Extension { return Xprint }
func (err *XprintError) Error() string        { return err.describe("Xprint", err.Kind.String()) }

type XprintEventKind uint8

const (
	XprintNotify XprintEventKind = iota
	XprintAttributNotify
)

var xprintEventNames = []string{
	XprintNotify:         "Notify",
	XprintAttributNotify: "AttributNotify",
}

func (k XprintEventKind) String() string { return kindName(xprintEventNames, int(k)) }

type XprintEvent struct {
	EventHeader
	Kind    XprintEventKind
	Context uint32
	Cancel  bool
}

func (ev *XprintEvent) Extension() Extension { return Xprint }

func (ev *XprintEvent) String() string {
	return ev.describe("Xprint", fmt.Sprintf("%s (detail: %d, context: %d)",
		ev.Kind, ev.Detail, ev.Context))
}
