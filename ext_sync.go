//go:build !xgbext_no_sync

package xgbext

import "fmt"

func init() {
	errorSchemas[Sync] = errorSchema{
		names: syncErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &SyncError{ErrorHeader: h, Kind: SyncErrorKind(number)}
		},
	}
	eventSchemas[Sync] = eventSchema{names: syncEventNames, new: newSyncEvent}
}

type SyncErrorKind uint8

const (
	SyncCounter SyncErrorKind = iota
	SyncAlarm
)

var syncErrorNames = []string{
	SyncCounter: "Counter",
	SyncAlarm:   "Alarm",
}

func (k SyncErrorKind) String() string { return kindName(syncErrorNames, int(k)) }

// SyncError names a counter or alarm that does not exist. BadValue holds
// its id.
type SyncError struct {
	ErrorHeader
	Kind SyncErrorKind
}

func (err *SyncError) Extension() Extension { return Sync }
func (err *SyncError) Error() string        { return err.describe("Sync", err.Kind.String()) }

type SyncEventKind uint8

const (
	SyncCounterNotify SyncEventKind = iota
	SyncAlarmNotify
)

var syncEventNames = []string{
	SyncCounterNotify: "CounterNotify",
	SyncAlarmNotify:   "AlarmNotify",
}

func (k SyncEventKind) String() string { return kindName(syncEventNames, int(k)) }

// SyncEvent is a Sync event. ID is the counter for CounterNotify and the
// alarm for AlarmNotify; CounterValue is the counter's value when the
// event was generated.
type SyncEvent struct {
	EventHeader
	Kind         SyncEventKind
	ID           uint32
	CounterValue int64
	Timestamp    uint32
}

// int64At reads a Sync INT64, which is sent as a signed high word followed
// by an unsigned low word.
func int64At(w wire, off int) int64 {
	return int64(int32(w.get32(off)))<<32 | int64(w.get32(off+4))
}

func newSyncEvent(w wire, h EventHeader, number uint8) Event {
	ev := &SyncEvent{
		EventHeader: h,
		Kind:        SyncEventKind(number),
		ID:          w.get32(4),
		Timestamp:   w.get32(24),
	}
	switch ev.Kind {
	case SyncCounterNotify:
		ev.CounterValue = int64At(w, 16)
	case SyncAlarmNotify:
		ev.CounterValue = int64At(w, 8)
	}
	return ev
}

func (ev *SyncEvent) Extension() Extension { return Sync }

func (ev *SyncEvent) String() string {
	return ev.describe("Sync", fmt.Sprintf("%s (id: %d, value: %d)",
		ev.Kind, ev.ID, ev.CounterValue))
}
