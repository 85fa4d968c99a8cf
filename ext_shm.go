//go:build !xgbext_no_shm

package xgbext

import "fmt"

func init() {
	errorSchemas[Shm] = errorSchema{
		names: shmErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &ShmError{ErrorHeader: h, Kind: ShmErrorKind(number)}
		},
	}
	eventSchemas[Shm] = eventSchema{
		names: shmEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			return &ShmEvent{
				EventHeader: h,
				Kind:        ShmEventKind(number),
				Drawable:    w.get32(4),
				MinorEvent:  w.get16(8),
				MajorEvent:  w.get8(10),
				Shmseg:      w.get32(12),
				Offset:      w.get32(16),
			}
		},
	}
}

type ShmErrorKind uint8

const ShmBadSeg ShmErrorKind = 0

var shmErrorNames = []string{ShmBadSeg: "BadSeg"}

func (k ShmErrorKind) String() string { return kindName(shmErrorNames, int(k)) }

type ShmError struct {
	ErrorHeader
	Kind ShmErrorKind
}

func (err *ShmError) Extension() Extension { return Shm }
func (err *ShmError) Error() string        { return err.describe("Shm", err.Kind.String()) }

type ShmEventKind uint8

const ShmCompletion ShmEventKind = 0

var shmEventNames = []string{ShmCompletion: "Completion"}

func (k ShmEventKind) String() string { return kindName(shmEventNames, int(k)) }

// ShmEvent is sent when a shared memory PutImage has finished, so the
// segment may be reused. MajorEvent and MinorEvent are the opcodes of the
// request that completed.
type ShmEvent struct {
	EventHeader
	Kind       ShmEventKind
	Drawable   uint32
	MinorEvent uint16
	MajorEvent uint8
	Shmseg     uint32
	Offset     uint32
}

func (ev *ShmEvent) Extension() Extension { return Shm }

func (ev *ShmEvent) String() string {
	return ev.describe("Shm", fmt.Sprintf("%s (drawable: %d, shmseg: %d, offset: %d)",
		ev.Kind, ev.Drawable, ev.Shmseg, ev.Offset))
}
