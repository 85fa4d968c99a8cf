//go:build !xgbext_no_randr

package xgbext

import "fmt"

func init() {
	errorSchemas[Randr] = errorSchema{
		names: randrErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &RandrError{ErrorHeader: h, Kind: RandrErrorKind(number)}
		},
	}
	eventSchemas[Randr] = eventSchema{names: randrEventNames, new: newRandrEvent}
}

type RandrErrorKind uint8

const (
	RandrBadOutput RandrErrorKind = iota
	RandrBadCrtc
	RandrBadMode
	RandrBadProvider
)

var randrErrorNames = []string{
	RandrBadOutput:   "BadOutput",
	RandrBadCrtc:     "BadCrtc",
	RandrBadMode:     "BadMode",
	RandrBadProvider: "BadProvider",
}

func (k RandrErrorKind) String() string { return kindName(randrErrorNames, int(k)) }

// RandrError is a RandR error. BadValue holds the output, crtc, mode or
// provider id that was not recognized.
type RandrError struct {
	ErrorHeader
	Kind RandrErrorKind
}

func (err *RandrError) Extension() Extension { return Randr }
func (err *RandrError) Error() string        { return err.describe("RandR", err.Kind.String()) }

type RandrEventKind uint8

const (
	RandrScreenChangeNotify RandrEventKind = iota
	RandrNotify
)

var randrEventNames = []string{
	RandrScreenChangeNotify: "ScreenChangeNotify",
	RandrNotify:             "Notify",
}

func (k RandrEventKind) String() string { return kindName(randrEventNames, int(k)) }

// RandrNotifyKind is the sub-code that selects the body of a RandR Notify
// event.
type RandrNotifyKind uint8

const (
	RandrCrtcChange RandrNotifyKind = iota
	RandrOutputChange
	RandrOutputProperty
	RandrProviderChange
	RandrProviderProperty
	RandrResourceChange
	RandrLease
)

var randrNotifyNames = []string{
	RandrCrtcChange:       "CrtcChange",
	RandrOutputChange:     "OutputChange",
	RandrOutputProperty:   "OutputProperty",
	RandrProviderChange:   "ProviderChange",
	RandrProviderProperty: "ProviderProperty",
	RandrResourceChange:   "ResourceChange",
	RandrLease:            "Lease",
}

func (k RandrNotifyKind) String() string { return kindName(randrNotifyNames, int(k)) }

// RandrEvent is a RandR event.
//
// For ScreenChangeNotify, Rotation through Height describe the new screen
// configuration. For Notify, SubCode says which notification it is and Data
// holds its body, bytes 4 through 31.
type RandrEvent struct {
	EventHeader
	Kind RandrEventKind

	Rotation        uint8
	Timestamp       uint32
	ConfigTimestamp uint32
	Root            uint32
	RequestWindow   uint32
	SizeID          uint16
	Width, Height   uint16

	SubCode RandrNotifyKind
	Data    []byte
}

func newRandrEvent(w wire, h EventHeader, number uint8) Event {
	ev := &RandrEvent{EventHeader: h, Kind: RandrEventKind(number)}
	switch ev.Kind {
	case RandrScreenChangeNotify:
		ev.Rotation = h.Detail
		ev.Timestamp = w.get32(4)
		ev.ConfigTimestamp = w.get32(8)
		ev.Root = w.get32(12)
		ev.RequestWindow = w.get32(16)
		ev.SizeID = w.get16(20)
		ev.Width = w.get16(24)
		ev.Height = w.get16(26)
	case RandrNotify:
		if int(h.Detail) >= len(randrNotifyNames) {
			return malformedEvent(w, "RandR defines no notify sub-code %d", h.Detail)
		}
		ev.SubCode = RandrNotifyKind(h.Detail)
		ev.Data = w.copyBytes(4, responseSize)
	}
	return ev
}

func (ev *RandrEvent) Extension() Extension { return Randr }

func (ev *RandrEvent) String() string {
	if ev.Kind == RandrNotify {
		return ev.describe("RandR", fmt.Sprintf("%s %s", ev.Kind, ev.SubCode))
	}
	return ev.describe("RandR", fmt.Sprintf("%s (root: %d, %dx%d)",
		ev.Kind, ev.Root, ev.Width, ev.Height))
}
