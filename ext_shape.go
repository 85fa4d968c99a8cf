//go:build !xgbext_no_shape

package xgbext

import "fmt"

func init() {
	eventSchemas[Shape] = eventSchema{
		names: shapeEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			return &ShapeEvent{
				EventHeader:    h,
				Kind:           ShapeEventKind(number),
				ShapeKind:      h.Detail,
				AffectedWindow: w.get32(4),
				Extents:        w.rectangle(8),
				ServerTime:     w.get32(16),
				Shaped:         w.getBool(20),
			}
		},
	}
}

type ShapeEventKind uint8

const ShapeNotify ShapeEventKind = 0

var shapeEventNames = []string{ShapeNotify: "Notify"}

func (k ShapeEventKind) String() string { return kindName(shapeEventNames, int(k)) }

// ShapeEvent reports a change to the bounding, clip or input shape of a
// window.
type ShapeEvent struct {
	EventHeader
	Kind           ShapeEventKind
	ShapeKind      uint8
	AffectedWindow uint32
	Extents        Rectangle
	ServerTime     uint32
	Shaped         bool
}

func (ev *ShapeEvent) Extension() Extension { return Shape }

func (ev *ShapeEvent) String() string {
	return ev.describe("Shape", fmt.Sprintf("%s (window: %d, shaped: %t)",
		ev.Kind, ev.AffectedWindow, ev.Shaped))
}
