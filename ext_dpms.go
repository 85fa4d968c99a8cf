//go:build !xgbext_no_dpms

package xgbext

import "fmt"

func init() {
	genericSchemas[Dpms] = genericSchema{
		names: dpmsGenericNames,
		new: func(w wire, evtype uint16) GenericEventData {
			return &DpmsEvent{
				Kind:       DpmsEventKind(evtype),
				Timestamp:  w.get32(12),
				PowerLevel: w.get16(16),
				State:      w.getBool(18),
			}
		},
	}
}

type DpmsEventKind uint16

const DpmsInfoNotify DpmsEventKind = 0

var dpmsGenericNames = []string{DpmsInfoNotify: "InfoNotify"}

func (k DpmsEventKind) String() string { return kindName(dpmsGenericNames, int(k)) }

// DpmsEvent is sent inside a generic event when the monitor's power level
// changes. PowerLevel is one of the DPMS modes On, Standby, Suspend, Off.
type DpmsEvent struct {
	Kind       DpmsEventKind
	Timestamp  uint32
	PowerLevel uint16
	State      bool
}

func (ev *DpmsEvent) ImplementsGenericEvent() {}

func (ev *DpmsEvent) String() string {
	return fmt.Sprintf("%s (power level: %d, enabled: %t)", ev.Kind, ev.PowerLevel, ev.State)
}
