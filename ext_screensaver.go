//go:build !xgbext_no_screensaver

package xgbext

import "fmt"

func init() {
	eventSchemas[ScreenSaver] = eventSchema{
		names: screenSaverEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			return &ScreenSaverEvent{
				EventHeader: h,
				Kind:        ScreenSaverEventKind(number),
				State:       h.Detail,
				Time:        w.get32(4),
				Root:        w.get32(8),
				Window:      w.get32(12),
				SaverKind:   w.get8(16),
				Forced:      w.getBool(17),
			}
		},
	}
}

type ScreenSaverEventKind uint8

const ScreenSaverNotify ScreenSaverEventKind = 0

var screenSaverEventNames = []string{ScreenSaverNotify: "Notify"}

func (k ScreenSaverEventKind) String() string { return kindName(screenSaverEventNames, int(k)) }

// ScreenSaverEvent reports that the screen saver turned on, turned off or
// cycled. SaverKind is Blanked, Internal or External.
type ScreenSaverEvent struct {
	EventHeader
	Kind      ScreenSaverEventKind
	State     uint8
	Time      uint32
	Root      uint32
	Window    uint32
	SaverKind uint8
	Forced    bool
}

func (ev *ScreenSaverEvent) Extension() Extension { return ScreenSaver }

func (ev *ScreenSaverEvent) String() string {
	return ev.describe("ScreenSaver", fmt.Sprintf("%s (state: %d, window: %d)",
		ev.Kind, ev.State, ev.Window))
}
