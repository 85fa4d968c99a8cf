//go:build !xgbext_no_xkb

package xgbext

import "fmt"

func init() {
	errorSchemas[Xkb] = errorSchema{
		names: xkbErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &XkbError{ErrorHeader: h, Kind: XkbErrorKind(number)}
		},
	}
	eventSchemas[Xkb] = eventSchema{names: xkbEventNames, new: newXkbEvent}
}

type XkbErrorKind uint8

const XkbKeyboard XkbErrorKind = 0

var xkbErrorNames = []string{XkbKeyboard: "Keyboard"}

func (k XkbErrorKind) String() string { return kindName(xkbErrorNames, int(k)) }

// XkbError is the single XKB error. The low byte of BadValue says what
// was wrong with the keyboard it named; see Cause.
type XkbError struct {
	ErrorHeader
	Kind XkbErrorKind
}

// Cause is BadDevice, BadClass or BadId when the low byte of BadValue
// says so, and the empty string otherwise.
func (err *XkbError) Cause() string {
	switch err.BadValue & 0xff {
	case 0xff:
		return "BadDevice"
	case 0xfe:
		return "BadClass"
	case 0xfd:
		return "BadId"
	}
	return ""
}

func (err *XkbError) Extension() Extension { return Xkb }

func (err *XkbError) Error() string {
	kind := err.Kind.String()
	if c := err.Cause(); c != "" {
		kind += " " + c
	}
	return err.describe("Xkb", kind)
}

// XKB sends all of its events under one event code and uses byte 1 to say
// which one it is.
var xkbEventNames = []string{"Event"}

// XkbEventKind is the xkbType discriminant of an XKB event.
type XkbEventKind uint8

const (
	XkbNewKeyboardNotify XkbEventKind = iota
	XkbMapNotify
	XkbStateNotify
	XkbControlsNotify
	XkbIndicatorStateNotify
	XkbIndicatorMapNotify
	XkbNamesNotify
	XkbCompatMapNotify
	XkbBellNotify
	XkbActionMessage
	XkbAccessXNotify
	XkbExtensionDeviceNotify
)

var xkbKindNames = []string{
	XkbNewKeyboardNotify:     "NewKeyboardNotify",
	XkbMapNotify:             "MapNotify",
	XkbStateNotify:           "StateNotify",
	XkbControlsNotify:        "ControlsNotify",
	XkbIndicatorStateNotify:  "IndicatorStateNotify",
	XkbIndicatorMapNotify:    "IndicatorMapNotify",
	XkbNamesNotify:           "NamesNotify",
	XkbCompatMapNotify:       "CompatMapNotify",
	XkbBellNotify:            "BellNotify",
	XkbActionMessage:         "ActionMessage",
	XkbAccessXNotify:         "AccessXNotify",
	XkbExtensionDeviceNotify: "ExtensionDeviceNotify",
}

func (k XkbEventKind) String() string { return kindName(xkbKindNames, int(k)) }

// XkbEvent is an XKB event. All kinds share the time and device id fields;
// the kind-specific body is left in Raw.
type XkbEvent struct {
	EventHeader
	Kind     XkbEventKind
	Time     uint32
	DeviceID uint8
}

func newXkbEvent(w wire, h EventHeader, number uint8) Event {
	if int(h.Detail) >= len(xkbKindNames) {
		return malformedEvent(w, "Xkb defines no event type %d", h.Detail)
	}
	return &XkbEvent{
		EventHeader: h,
		Kind:        XkbEventKind(h.Detail),
		Time:        w.get32(4),
		DeviceID:    w.get8(8),
	}
}

func (ev *XkbEvent) Extension() Extension { return Xkb }

func (ev *XkbEvent) String() string {
	return ev.describe("Xkb", fmt.Sprintf("%s (device: %d, time: %d)",
		ev.Kind, ev.DeviceID, ev.Time))
}
