//go:build !xgbext_no_xfixes

package xgbext

import "fmt"

func init() {
	errorSchemas[Xfixes] = errorSchema{
		names: xfixesErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &XfixesError{ErrorHeader: h, Kind: XfixesErrorKind(number)}
		},
	}
	eventSchemas[Xfixes] = eventSchema{
		names: xfixesEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			ev := &XfixesEvent{
				EventHeader: h,
				Kind:        XfixesEventKind(number),
				Subtype:     h.Detail,
				Window:      w.get32(4),
			}
			switch ev.Kind {
			case XfixesSelectionNotify:
				ev.Owner = w.get32(8)
				ev.Selection = w.get32(12)
				ev.Timestamp = w.get32(16)
			case XfixesCursorNotify:
				ev.CursorSerial = w.get32(8)
				ev.Timestamp = w.get32(12)
			}
			return ev
		},
	}
}

type XfixesErrorKind uint8

const XfixesBadRegion XfixesErrorKind = 0

var xfixesErrorNames = []string{XfixesBadRegion: "BadRegion"}

func (k XfixesErrorKind) String() string { return kindName(xfixesErrorNames, int(k)) }

type XfixesError struct {
	ErrorHeader
	Kind XfixesErrorKind
}

func (err *XfixesError) Extension() Extension { return Xfixes }
func (err *XfixesError) Error() string        { return err.describe("Xfixes", err.Kind.String()) }

type XfixesEventKind uint8

const (
	XfixesSelectionNotify XfixesEventKind = iota
	XfixesCursorNotify
)

var xfixesEventNames = []string{
	XfixesSelectionNotify: "SelectionNotify",
	XfixesCursorNotify:    "CursorNotify",
}

func (k XfixesEventKind) String() string { return kindName(xfixesEventNames, int(k)) }

// XfixesEvent is an XFIXES event. Owner and Selection are only set for
// SelectionNotify, CursorSerial only for CursorNotify.
type XfixesEvent struct {
	EventHeader
	Kind         XfixesEventKind
	Subtype      uint8
	Window       uint32
	Owner        uint32
	Selection    uint32
	CursorSerial uint32
	Timestamp    uint32
}

func (ev *XfixesEvent) Extension() Extension { return Xfixes }

func (ev *XfixesEvent) String() string {
	return ev.describe("Xfixes", fmt.Sprintf("%s (subtype: %d, window: %d)",
		ev.Kind, ev.Subtype, ev.Window))
}
