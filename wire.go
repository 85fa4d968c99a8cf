package xgbext

import "encoding/binary"

const (
	// All core errors and events, and all conventional extension events,
	// occupy exactly this many bytes on the wire.
	responseSize = 32

	// Generic events carry a length field that counts additional 4-byte
	// units beyond the first 32 bytes.
	genericLengthUnit = 4
)

// wire reads fixed-offset fields out of a response buffer in the byte order
// negotiated for the connection. Callers check the buffer size before
// handing it to wire; offsets are always below responseSize.
type wire struct {
	buf   []byte
	order binary.ByteOrder
}

func (w wire) get8(off int) uint8 { return w.buf[off] }

func (w wire) get16(off int) uint16 { return w.order.Uint16(w.buf[off:]) }

func (w wire) get32(off int) uint32 { return w.order.Uint32(w.buf[off:]) }

// sequence reads the sequence number every response except KeymapNotify
// carries at offset 2.
func (w wire) sequence() uint16 { return w.get16(2) }

// copyBytes returns a copy of buf[from:to] that does not alias the
// transport's buffer.
func (w wire) copyBytes(from, to int) []byte {
	b := make([]byte, to-from)
	copy(b, w.buf[from:to])
	return b
}

// raw copies the fixed 32-byte envelope.
func (w wire) raw() (v [responseSize]byte) {
	copy(v[:], w.buf)
	return v
}

// Rectangle is an area in window coordinates, as carried by Damage and
// Shape events.
type Rectangle struct {
	X, Y          int16
	Width, Height uint16
}

func (w wire) rectangle(off int) Rectangle {
	return Rectangle{
		X:      int16(w.get16(off)),
		Y:      int16(w.get16(off + 2)),
		Width:  w.get16(off + 4),
		Height: w.get16(off + 6),
	}
}

func (w wire) getBool(off int) bool { return w.buf[off] != 0 }
