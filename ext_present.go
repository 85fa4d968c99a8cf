//go:build !xgbext_no_present

package xgbext

import "fmt"

func init() {
	genericSchemas[Present] = genericSchema{
		names: presentGenericNames,
		new: func(w wire, evtype uint16) GenericEventData {
			ev := &PresentEvent{
				Kind:    PresentEventKind(evtype),
				EventID: w.get32(12),
				Window:  w.get32(16),
			}
			switch ev.Kind {
			case PresentCompleteNotify, PresentIdleNotify:
				ev.Serial = w.get32(20)
			}
			return ev
		},
	}
}

type PresentEventKind uint16

const (
	PresentConfigureNotify PresentEventKind = iota
	PresentCompleteNotify
	PresentIdleNotify
	PresentRedirectNotify
)

var presentGenericNames = []string{
	PresentConfigureNotify: "ConfigureNotify",
	PresentCompleteNotify:  "CompleteNotify",
	PresentIdleNotify:      "IdleNotify",
	PresentRedirectNotify:  "RedirectNotify",
}

func (k PresentEventKind) String() string { return kindName(presentGenericNames, int(k)) }

// PresentEvent is delivered inside a generic event. EventID is the id the
// client passed to SelectInput; Serial is only set for CompleteNotify and
// IdleNotify.
type PresentEvent struct {
	Kind    PresentEventKind
	EventID uint32
	Window  uint32
	Serial  uint32
}

func (ev *PresentEvent) ImplementsGenericEvent() {}

func (ev *PresentEvent) String() string {
	return fmt.Sprintf("%s (event: %d, window: %d)", ev.Kind, ev.EventID, ev.Window)
}
