package xgbext

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var le = binary.LittleEndian

func TestCoreEvents(t *testing.T) {
	c := randrConn()
	r := newTestRegistry(c)

	for code := uint8(2); code <= 34; code++ {
		ev := r.ClassifyEvent(eventBuf(le, code, 0, 77))
		core, ok := ev.(*CoreEvent)
		require.True(t, ok, "code %d classified as %T", code, ev)
		assert.Equal(t, CoreEventKind(code), core.Kind)
		assert.NotContains(t, core.Kind.String(), "Unknown")
	}
	assert.Zero(t, c.totalQueries())

	sent := r.ClassifyEvent(eventBuf(le, 0x80|uint8(ClientMessage), 32, 5)).(*CoreEvent)
	assert.Equal(t, ClientMessage, sent.Kind)
	assert.True(t, sent.SendEvent)
	assert.Equal(t, uint8(32), sent.Detail)
	assert.Equal(t, uint16(5), sent.Sequence)
}

func TestKeymapNotifyHasNoSequence(t *testing.T) {
	r := newTestRegistry(randrConn())
	buf := eventBuf(le, uint8(KeymapNotify), 0xaa, 0xbbcc)

	ev := r.ClassifyEvent(buf).(*CoreEvent)
	assert.Equal(t, KeymapNotify, ev.Kind)
	assert.Zero(t, ev.SequenceId())
	assert.Equal(t, byte(0xcc), ev.Raw[2], "key vector is kept in Raw")
}

func TestMalformedEvents(t *testing.T) {
	r := newTestRegistry(randrConn())

	for n := 0; n < responseSize; n++ {
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(make([]byte, n)), "%d bytes", n)
	}
	assert.IsType(t, &MalformedError{}, r.ClassifyEvent(eventBuf(le, 0, 0, 1)), "error code")
	assert.IsType(t, &MalformedError{}, r.ClassifyEvent(eventBuf(le, 1, 0, 1)), "reply code")
	assert.IsType(t, &MalformedError{}, r.ClassifyEvent(append(eventBuf(le, 12, 0, 1), 0, 0, 0, 0)))
}

func TestRandrEvents(t *testing.T) {
	r := newTestRegistry(randrConn())
	r.Resolve(Randr)

	buf := eventBuf(le, 89, 0x02, 11)
	le.PutUint32(buf[4:], 1000)
	le.PutUint32(buf[12:], 0x1e1)
	le.PutUint16(buf[24:], 1920)
	le.PutUint16(buf[26:], 1080)
	ev := r.ClassifyEvent(buf)
	screen, ok := ev.(*RandrEvent)
	require.True(t, ok, "classified as %T", ev)
	assert.Equal(t, RandrScreenChangeNotify, screen.Kind)
	assert.Equal(t, uint8(0x02), screen.Rotation)
	assert.Equal(t, uint32(1000), screen.Timestamp)
	assert.Equal(t, uint32(0x1e1), screen.Root)
	assert.Equal(t, uint16(1920), screen.Width)
	assert.Equal(t, uint16(1080), screen.Height)
	assert.Equal(t, Randr, screen.Extension())

	notify := r.ClassifyEvent(eventBuf(le, 90, uint8(RandrOutputChange), 12)).(*RandrEvent)
	assert.Equal(t, RandrNotify, notify.Kind)
	assert.Equal(t, RandrOutputChange, notify.SubCode)
	assert.Len(t, notify.Data, 28)
	assert.Contains(t, notify.String(), "Notify OutputChange")

	lease := r.ClassifyEvent(eventBuf(le, 90, uint8(RandrLease), 12)).(*RandrEvent)
	assert.Equal(t, RandrLease, lease.SubCode)

	bad := r.ClassifyEvent(eventBuf(le, 90, 7, 13))
	require.IsType(t, &MalformedError{}, bad)
	assert.Equal(t, uint8(90), bad.EventCode())
	assert.Equal(t, uint16(13), bad.SequenceId())

	assert.IsType(t, &UnknownEvent{}, r.ClassifyEvent(eventBuf(le, 91, 0, 1)))
}

func TestXkbEventTypes(t *testing.T) {
	r := newTestRegistry(newFakeConn(le).bind(Xkb, 135, 85, 137))
	r.Resolve(Xkb)

	for kind := XkbNewKeyboardNotify; kind <= XkbExtensionDeviceNotify; kind++ {
		buf := eventBuf(le, 85, uint8(kind), 3)
		le.PutUint32(buf[4:], 0xdeadbeef)
		buf[8] = 3
		ev, ok := r.ClassifyEvent(buf).(*XkbEvent)
		require.True(t, ok, "xkbType %d", kind)
		assert.Equal(t, kind, ev.Kind)
		assert.Equal(t, uint32(0xdeadbeef), ev.Time)
		assert.Equal(t, uint8(3), ev.DeviceID)
	}

	assert.IsType(t, &MalformedError{}, r.ClassifyEvent(eventBuf(le, 85, 12, 3)))
}

// A generic event is routed by its major opcode even when another
// extension's event range covers the generic event code.
func TestGenericEventPrecedence(t *testing.T) {
	c := newFakeConn(le).
		bind(Xkb, 135, GenericEventCode, 137).
		bind(Xinput, 131, 66, 129)
	r := newTestRegistry(c)
	_, ok := r.Resolve(Xkb)
	require.True(t, ok)
	_, ok = r.Resolve(Xinput)
	require.True(t, ok)

	owner, ok := r.LookupByEventCode(GenericEventCode)
	require.True(t, ok)
	require.Equal(t, Xkb, owner)

	buf := genericBuf(le, 131, uint16(XIKeyPress), 21, 2)
	le.PutUint16(buf[10:], 12)
	le.PutUint32(buf[12:], 5000)
	ev := r.ClassifyEvent(buf)

	ge, ok := ev.(*GenericEvent)
	require.True(t, ok, "classified as %T", ev)
	assert.Equal(t, Xinput, ge.Extension())
	assert.Equal(t, uint8(131), ge.MajorOpcode)
	assert.Equal(t, uint16(XIKeyPress), ge.EventType)
	assert.Equal(t, uint16(21), ge.SequenceId())
	assert.Equal(t, uint32(2), ge.Length)
	assert.Len(t, ge.Payload, 40)
	assert.Equal(t, uint8(GenericEventCode), ge.EventCode())

	xi, ok := ge.Data.(*XIEvent)
	require.True(t, ok, "data is %T", ge.Data)
	assert.Equal(t, XIKeyPress, xi.Kind)
	assert.Equal(t, uint16(12), xi.DeviceID)
	assert.Equal(t, uint32(5000), xi.Time)
}

func TestGenericEventFallbacks(t *testing.T) {
	c := randrConn().bind(Xinput, 131, 66, 129).bind(Present, 148, 0, 0)
	r := newTestRegistry(c)
	r.Resolve(Randr)
	r.Resolve(Xinput)
	r.Resolve(Present)

	t.Run("length mismatch", func(t *testing.T) {
		buf := genericBuf(le, 131, uint16(XIMotion), 1, 2)
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(buf[:36]))
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(append(buf, 0, 0, 0, 0)))
	})
	t.Run("unresolved major", func(t *testing.T) {
		ev := r.ClassifyEvent(genericBuf(le, 200, 3, 8, 0))
		unknown, ok := ev.(*UnknownEvent)
		require.True(t, ok, "classified as %T", ev)
		assert.Equal(t, uint8(200), unknown.MajorOpcode)
		assert.Equal(t, uint16(3), unknown.EventType)
		assert.Equal(t, uint16(8), unknown.Sequence)
		assert.Len(t, unknown.Payload, 32)
	})
	t.Run("extension without generic events", func(t *testing.T) {
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(genericBuf(le, 140, 0, 1, 0)))
	})
	t.Run("event type out of range", func(t *testing.T) {
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(genericBuf(le, 131, 33, 1, 0)))
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(genericBuf(le, 148, 4, 1, 0)))
	})
	t.Run("unused event type", func(t *testing.T) {
		assert.IsType(t, &MalformedError{}, r.ClassifyEvent(genericBuf(le, 131, 0, 1, 0)))
	})
	t.Run("schema left out", func(t *testing.T) {
		withoutSchema(t, Xinput)
		ev := r.ClassifyEvent(genericBuf(le, 131, uint16(XITouchBegin), 4, 0))
		assert.Equal(t, &UnsupportedError{
			Owner:    Xinput,
			Code:     GenericEventCode,
			Number:   uint16(XITouchBegin),
			Sequence: 4,
		}, ev)
	})
}

func TestPresentGenericEvents(t *testing.T) {
	r := newTestRegistry(newFakeConn(le).bind(Present, 148, 0, 0))
	r.Resolve(Present)

	buf := genericBuf(le, 148, uint16(PresentCompleteNotify), 1, 10)
	le.PutUint32(buf[12:], 7)
	le.PutUint32(buf[16:], 0x200001)
	le.PutUint32(buf[20:], 99)
	ge := r.ClassifyEvent(buf).(*GenericEvent)

	present := ge.Data.(*PresentEvent)
	assert.Equal(t, PresentCompleteNotify, present.Kind)
	assert.Equal(t, uint32(7), present.EventID)
	assert.Equal(t, uint32(0x200001), present.Window)
	assert.Equal(t, uint32(99), present.Serial)
	assert.Contains(t, ge.String(), "Present generic event CompleteNotify")
}

func TestDpmsGenericEvent(t *testing.T) {
	r := newTestRegistry(newFakeConn(le).bind(Dpms, 147, 0, 0))
	r.Resolve(Dpms)

	buf := genericBuf(le, 147, uint16(DpmsInfoNotify), 1, 0)
	le.PutUint16(buf[16:], 3)
	buf[18] = 1
	dpms := r.ClassifyEvent(buf).(*GenericEvent).Data.(*DpmsEvent)
	assert.Equal(t, uint16(3), dpms.PowerLevel)
	assert.True(t, dpms.State)
}

func TestConventionalExtensionEvents(t *testing.T) {
	c := newFakeConn(le).
		bind(Damage, 143, 91, 152).
		bind(Shm, 130, 65, 128).
		bind(Sync, 134, 83, 134).
		bind(Xinput, 131, 66, 129).
		bind(Xfixes, 138, 87, 140).
		bind(Shape, 129, 64, 0)
	r := newTestRegistry(c)
	for _, ext := range []Extension{Damage, Shm, Sync, Xinput, Xfixes, Shape} {
		_, ok := r.Resolve(ext)
		require.True(t, ok, "%s", ext)
	}

	t.Run("damage", func(t *testing.T) {
		buf := eventBuf(le, 91, 0x83, 1)
		le.PutUint32(buf[4:], 0x400000)
		le.PutUint32(buf[8:], 0x400001)
		le.PutUint16(buf[16:], 0xfffe)
		le.PutUint16(buf[20:], 640)
		ev := r.ClassifyEvent(buf).(*DamageEvent)
		assert.Equal(t, uint8(3), ev.Level)
		assert.True(t, ev.More)
		assert.Equal(t, uint32(0x400000), ev.Drawable)
		assert.Equal(t, uint32(0x400001), ev.Damage)
		assert.Equal(t, int16(-2), ev.Area.X)
		assert.Equal(t, uint16(640), ev.Area.Width)
	})
	t.Run("shm", func(t *testing.T) {
		buf := eventBuf(le, 65, 0, 1)
		le.PutUint32(buf[12:], 9)
		le.PutUint32(buf[16:], 4096)
		ev := r.ClassifyEvent(buf).(*ShmEvent)
		assert.Equal(t, ShmCompletion, ev.Kind)
		assert.Equal(t, uint32(9), ev.Shmseg)
		assert.Equal(t, uint32(4096), ev.Offset)
	})
	t.Run("sync", func(t *testing.T) {
		buf := eventBuf(le, 83, 0, 1)
		le.PutUint32(buf[4:], 0x600000)
		le.PutUint32(buf[16:], 0xffffffff)
		le.PutUint32(buf[20:], 0xfffffffe)
		ev := r.ClassifyEvent(buf).(*SyncEvent)
		assert.Equal(t, SyncCounterNotify, ev.Kind)
		assert.Equal(t, uint32(0x600000), ev.ID)
		assert.Equal(t, int64(-2), ev.CounterValue)

		alarm := r.ClassifyEvent(eventBuf(le, 84, 0, 1)).(*SyncEvent)
		assert.Equal(t, SyncAlarmNotify, alarm.Kind)
	})
	t.Run("xinput", func(t *testing.T) {
		buf := eventBuf(le, 67, 38, 1)
		buf[31] = 0x85
		ev := r.ClassifyEvent(buf).(*XinputEvent)
		assert.Equal(t, XinputDeviceKeyPress, ev.Kind)
		assert.Equal(t, uint8(0x85), ev.DeviceID)
		assert.Contains(t, ev.String(), "device: 5")

		presence := eventBuf(le, 66+uint8(XinputDevicePresenceNotify), 0, 1)
		presence[9] = 4
		assert.Equal(t, uint8(4), r.ClassifyEvent(presence).(*XinputEvent).DeviceID)

		assert.IsType(t, &XinputEvent{}, r.ClassifyEvent(eventBuf(le, 82, 0, 1)))
	})
	t.Run("xfixes", func(t *testing.T) {
		buf := eventBuf(le, 88, 1, 1)
		le.PutUint32(buf[4:], 0x1e1)
		le.PutUint32(buf[8:], 17)
		ev := r.ClassifyEvent(buf).(*XfixesEvent)
		assert.Equal(t, XfixesCursorNotify, ev.Kind)
		assert.Equal(t, uint32(17), ev.CursorSerial)
	})
	t.Run("shape", func(t *testing.T) {
		buf := eventBuf(le, 64, 2, 1)
		le.PutUint32(buf[4:], 0x800003)
		buf[20] = 1
		ev := r.ClassifyEvent(buf).(*ShapeEvent)
		assert.Equal(t, uint8(2), ev.ShapeKind)
		assert.Equal(t, uint32(0x800003), ev.AffectedWindow)
		assert.True(t, ev.Shaped)
	})
}

func TestUnsupportedEvent(t *testing.T) {
	withoutSchema(t, Randr)
	r := newTestRegistry(randrConn())
	r.Resolve(Randr)

	ev := r.ClassifyEvent(eventBuf(le, 90, 0, 6))
	assert.Equal(t, &UnsupportedError{Owner: Randr, Code: 90, Number: 1, Sequence: 6}, ev)
}

func TestEventByteOrder(t *testing.T) {
	be := binary.BigEndian
	r := newTestRegistry(newFakeConn(be).bind(Randr, 140, 89, 147))
	r.Resolve(Randr)

	buf := eventBuf(be, 89, 0, 0x0102)
	be.PutUint16(buf[24:], 1920)
	ev := r.ClassifyEvent(buf).(*RandrEvent)
	assert.Equal(t, uint16(0x0102), ev.Sequence)
	assert.Equal(t, uint16(1920), ev.Width)

	ge := genericBuf(be, 140, 0, 0x0304, 1)
	assert.IsType(t, &MalformedError{}, r.ClassifyEvent(ge), "RandR sends no generic events")
}
