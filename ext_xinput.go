//go:build !xgbext_no_xinput

package xgbext

import "fmt"

func init() {
	errorSchemas[Xinput] = errorSchema{
		names: xinputErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &XinputError{ErrorHeader: h, Kind: XinputErrorKind(number)}
		},
	}
	eventSchemas[Xinput] = eventSchema{names: xinputEventNames, new: newXinputEvent}
	genericSchemas[Xinput] = genericSchema{
		names: xiEventNames,
		new: func(w wire, evtype uint16) GenericEventData {
			return &XIEvent{
				Kind:     XIEventKind(evtype),
				DeviceID: w.get16(10),
				Time:     w.get32(12),
			}
		},
	}
}

type XinputErrorKind uint8

const (
	XinputBadDevice XinputErrorKind = iota
	XinputBadEvent
	XinputBadMode
	XinputDeviceBusy
	XinputBadClass
)

var xinputErrorNames = []string{
	XinputBadDevice:  "Device",
	XinputBadEvent:   "Event",
	XinputBadMode:    "Mode",
	XinputDeviceBusy: "DeviceBusy",
	XinputBadClass:   "Class",
}

func (k XinputErrorKind) String() string { return kindName(xinputErrorNames, int(k)) }

type XinputError struct {
	ErrorHeader
	Kind XinputErrorKind
}

func (err *XinputError) Extension() Extension { return Xinput }
func (err *XinputError) Error() string        { return err.describe("Xinput", err.Kind.String()) }

// XinputEventKind enumerates the classic XInput 1.x events that occupy the
// extension's own event codes.
type XinputEventKind uint8

const (
	XinputDeviceValuator XinputEventKind = iota
	XinputDeviceKeyPress
	XinputDeviceKeyRelease
	XinputDeviceButtonPress
	XinputDeviceButtonRelease
	XinputDeviceMotionNotify
	XinputDeviceFocusIn
	XinputDeviceFocusOut
	XinputProximityIn
	XinputProximityOut
	XinputDeviceStateNotify
	XinputDeviceMappingNotify
	XinputChangeDeviceNotify
	XinputDeviceKeyStateNotify
	XinputDeviceButtonStateNotify
	XinputDevicePresenceNotify
	XinputDevicePropertyNotify
)

var xinputEventNames = []string{
	XinputDeviceValuator:          "DeviceValuator",
	XinputDeviceKeyPress:          "DeviceKeyPress",
	XinputDeviceKeyRelease:        "DeviceKeyRelease",
	XinputDeviceButtonPress:       "DeviceButtonPress",
	XinputDeviceButtonRelease:     "DeviceButtonRelease",
	XinputDeviceMotionNotify:      "DeviceMotionNotify",
	XinputDeviceFocusIn:           "DeviceFocusIn",
	XinputDeviceFocusOut:          "DeviceFocusOut",
	XinputProximityIn:             "ProximityIn",
	XinputProximityOut:            "ProximityOut",
	XinputDeviceStateNotify:       "DeviceStateNotify",
	XinputDeviceMappingNotify:     "DeviceMappingNotify",
	XinputChangeDeviceNotify:      "ChangeDeviceNotify",
	XinputDeviceKeyStateNotify:    "DeviceKeyStateNotify",
	XinputDeviceButtonStateNotify: "DeviceButtonStateNotify",
	XinputDevicePresenceNotify:    "DevicePresenceNotify",
	XinputDevicePropertyNotify:    "DevicePropertyNotify",
}

func (k XinputEventKind) String() string { return kindName(xinputEventNames, int(k)) }

// xinputDeviceIDAt is the offset of the device id in each classic event.
// The key, button, motion and proximity events share the core input event
// layout and append the device id in the last byte.
var xinputDeviceIDAt = [...]int{
	XinputDeviceValuator:          1,
	XinputDeviceKeyPress:          31,
	XinputDeviceKeyRelease:        31,
	XinputDeviceButtonPress:       31,
	XinputDeviceButtonRelease:     31,
	XinputDeviceMotionNotify:      31,
	XinputDeviceFocusIn:           13,
	XinputDeviceFocusOut:          13,
	XinputProximityIn:             31,
	XinputProximityOut:            31,
	XinputDeviceStateNotify:       1,
	XinputDeviceMappingNotify:     1,
	XinputChangeDeviceNotify:      1,
	XinputDeviceKeyStateNotify:    1,
	XinputDeviceButtonStateNotify: 1,
	XinputDevicePresenceNotify:    9,
	XinputDevicePropertyNotify:    31,
}

// XinputEvent is a classic XInput event. The low seven bits of DeviceID
// identify the device; the high bit is set when more DeviceValuator events
// follow.
type XinputEvent struct {
	EventHeader
	Kind     XinputEventKind
	DeviceID uint8
}

func newXinputEvent(w wire, h EventHeader, number uint8) Event {
	kind := XinputEventKind(number)
	return &XinputEvent{
		EventHeader: h,
		Kind:        kind,
		DeviceID:    w.get8(xinputDeviceIDAt[kind]),
	}
}

func (ev *XinputEvent) Extension() Extension { return Xinput }

func (ev *XinputEvent) String() string {
	return ev.describe("Xinput", fmt.Sprintf("%s (device: %d)", ev.Kind, ev.DeviceID&0x7f))
}

// XIEventKind enumerates the XInput 2 events delivered inside generic
// events. Type 0 is unused.
type XIEventKind uint16

const (
	XIDeviceChanged XIEventKind = iota + 1
	XIKeyPress
	XIKeyRelease
	XIButtonPress
	XIButtonRelease
	XIMotion
	XIEnter
	XILeave
	XIFocusIn
	XIFocusOut
	XIHierarchy
	XIProperty
	XIRawKeyPress
	XIRawKeyRelease
	XIRawButtonPress
	XIRawButtonRelease
	XIRawMotion
	XITouchBegin
	XITouchUpdate
	XITouchEnd
	XITouchOwnership
	XIRawTouchBegin
	XIRawTouchUpdate
	XIRawTouchEnd
	XIBarrierHit
	XIBarrierLeave
	XIGesturePinchBegin
	XIGesturePinchUpdate
	XIGesturePinchEnd
	XIGestureSwipeBegin
	XIGestureSwipeUpdate
	XIGestureSwipeEnd
)

var xiEventNames = []string{
	XIDeviceChanged:      "DeviceChanged",
	XIKeyPress:           "KeyPress",
	XIKeyRelease:         "KeyRelease",
	XIButtonPress:        "ButtonPress",
	XIButtonRelease:      "ButtonRelease",
	XIMotion:             "Motion",
	XIEnter:              "Enter",
	XILeave:              "Leave",
	XIFocusIn:            "FocusIn",
	XIFocusOut:           "FocusOut",
	XIHierarchy:          "Hierarchy",
	XIProperty:           "Property",
	XIRawKeyPress:        "RawKeyPress",
	XIRawKeyRelease:      "RawKeyRelease",
	XIRawButtonPress:     "RawButtonPress",
	XIRawButtonRelease:   "RawButtonRelease",
	XIRawMotion:          "RawMotion",
	XITouchBegin:         "TouchBegin",
	XITouchUpdate:        "TouchUpdate",
	XITouchEnd:           "TouchEnd",
	XITouchOwnership:     "TouchOwnership",
	XIRawTouchBegin:      "RawTouchBegin",
	XIRawTouchUpdate:     "RawTouchUpdate",
	XIRawTouchEnd:        "RawTouchEnd",
	XIBarrierHit:         "BarrierHit",
	XIBarrierLeave:       "BarrierLeave",
	XIGesturePinchBegin:  "GesturePinchBegin",
	XIGesturePinchUpdate: "GesturePinchUpdate",
	XIGesturePinchEnd:    "GesturePinchEnd",
	XIGestureSwipeBegin:  "GestureSwipeBegin",
	XIGestureSwipeUpdate: "GestureSwipeUpdate",
	XIGestureSwipeEnd:    "GestureSwipeEnd",
}

func (k XIEventKind) String() string { return kindName(xiEventNames, int(k)) }

// XIEvent is an XInput 2 event. Every XI2 event starts its body with the
// device id and server time; the rest is left in the GenericEvent payload.
type XIEvent struct {
	Kind     XIEventKind
	DeviceID uint16
	Time     uint32
}

func (ev *XIEvent) ImplementsGenericEvent() {}

func (ev *XIEvent) String() string {
	return fmt.Sprintf("%s (device: %d, time: %d)", ev.Kind, ev.DeviceID, ev.Time)
}
