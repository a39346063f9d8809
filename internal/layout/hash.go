package layout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/grindlemire/go-layoutmetrics/internal/graphics"
)

// 17 floats (frame, three insets, scale) plus the two enum bytes.
const hashInputSize = 17*8 + 2

type hashInput struct {
	buf [hashInputSize]byte
	n   int
}

func (h *hashInput) putFloat(f graphics.Float) {
	var bits uint64
	switch {
	case f == 0:
		// -0 == +0, so both must hash alike.
		bits = 0
	case math.IsNaN(f):
		bits = 0x7FF8000000000001
	default:
		bits = math.Float64bits(f)
	}
	binary.LittleEndian.PutUint64(h.buf[h.n:], bits)
	h.n += 8
}

func (h *hashInput) putByte(b uint8) {
	h.buf[h.n] = b
	h.n++
}

func (h *hashInput) rect(r graphics.Rect) {
	h.putFloat(r.Origin.X)
	h.putFloat(r.Origin.Y)
	h.putFloat(r.Size.Width)
	h.putFloat(r.Size.Height)
}

func (h *hashInput) insets(e graphics.EdgeInsets) {
	h.putFloat(e.Top)
	h.putFloat(e.Right)
	h.putFloat(e.Bottom)
	h.putFloat(e.Left)
}

// Hash returns a 64-bit hash of every field, combined in declaration order.
// Equal values always hash equal. The hash is stable across processes.
func (m LayoutMetrics) Hash() uint64 {
	var h hashInput
	h.rect(m.Frame)
	h.insets(m.ContentInsets)
	h.insets(m.BorderWidth)
	h.putByte(uint8(m.DisplayType))
	h.putByte(uint8(m.LayoutDirection))
	h.putFloat(m.PointScaleFactor)
	h.insets(m.OverflowInset)
	return xxhash.Sum64(h.buf[:h.n])
}
