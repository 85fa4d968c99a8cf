//go:build !xgbext_no_dri2

package xgbext

import "fmt"

func init() {
	eventSchemas[Dri2] = eventSchema{
		names: dri2EventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			ev := &Dri2Event{EventHeader: h, Kind: Dri2EventKind(number)}
			switch ev.Kind {
			case Dri2BufferSwapComplete:
				ev.SwapType = w.get16(4)
				ev.Drawable = w.get32(8)
			case Dri2InvalidateBuffers:
				ev.Drawable = w.get32(4)
			}
			return ev
		},
	}
}

type Dri2EventKind uint8

const (
	Dri2BufferSwapComplete Dri2EventKind = iota
	Dri2InvalidateBuffers
)

var dri2EventNames = []string{
	Dri2BufferSwapComplete: "BufferSwapComplete",
	Dri2InvalidateBuffers:  "InvalidateBuffers",
}

func (k Dri2EventKind) String() string { return kindName(dri2EventNames, int(k)) }

// Dri2Event is a DRI2 event. SwapType is only set for BufferSwapComplete.
type Dri2Event struct {
	EventHeader
	Kind     Dri2EventKind
	SwapType uint16
	Drawable uint32
}

func (ev *Dri2Event) Extension() Extension { return Dri2 }

func (ev *Dri2Event) String() string {
	return ev.describe("DRI2", fmt.Sprintf("%s (drawable: %d)", ev.Kind, ev.Drawable))
}
