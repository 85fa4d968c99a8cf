//go:build !xgbext_no_damage

package xgbext

import "fmt"

func init() {
	errorSchemas[Damage] = errorSchema{
		names: damageErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &DamageError{ErrorHeader: h, Kind: DamageErrorKind(number)}
		},
	}
	eventSchemas[Damage] = eventSchema{names: damageEventNames, new: newDamageEvent}
}

type DamageErrorKind uint8

const DamageBadDamage DamageErrorKind = 0

var damageErrorNames = []string{DamageBadDamage: "BadDamage"}

func (k DamageErrorKind) String() string { return kindName(damageErrorNames, int(k)) }

// DamageError is sent when a request names a Damage object that does not
// exist. BadValue holds the offending id.
type DamageError struct {
	ErrorHeader
	Kind DamageErrorKind
}

func (err *DamageError) Extension() Extension { return Damage }
func (err *DamageError) Error() string        { return err.describe("Damage", err.Kind.String()) }

type DamageEventKind uint8

const DamageNotify DamageEventKind = 0

var damageEventNames = []string{DamageNotify: "Notify"}

func (k DamageEventKind) String() string { return kindName(damageEventNames, int(k)) }

// DamageEvent reports that part of a drawable was modified. Level is the
// report level the Damage object was created with; More is set when further
// events for the same damage follow.
type DamageEvent struct {
	EventHeader
	Kind      DamageEventKind
	Level     uint8
	More      bool
	Drawable  uint32
	Damage    uint32
	Timestamp uint32
	Area      Rectangle
	Geometry  Rectangle
}

func newDamageEvent(w wire, h EventHeader, number uint8) Event {
	return &DamageEvent{
		EventHeader: h,
		Kind:        DamageEventKind(number),
		Level:       h.Detail & 0x7f,
		More:        h.Detail&0x80 != 0,
		Drawable:    w.get32(4),
		Damage:      w.get32(8),
		Timestamp:   w.get32(12),
		Area:        w.rectangle(16),
		Geometry:    w.rectangle(24),
	}
}

func (ev *DamageEvent) Extension() Extension { return Damage }

func (ev *DamageEvent) String() string {
	return ev.describe("Damage", fmt.Sprintf("%s (drawable: %d, damage: %d)",
		ev.Kind, ev.Drawable, ev.Damage))
}
