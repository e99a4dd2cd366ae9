package curve

import "sync/atomic"

// Frame is an immutable pairing of a display mode and the curve sampled for
// it. Callers must not modify Points after Store.
type Frame struct {
	Mode   Mode
	Points []Point
}

// Buffer publishes whole frames; a reader sees the previous frame or the
// next one, never a mix.
type Buffer struct {
	cur atomic.Pointer[Frame]
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.cur.Store(&Frame{Mode: Plain})
	return b
}

func (b *Buffer) Load() *Frame {
	return b.cur.Load()
}

func (b *Buffer) Store(f *Frame) {
	b.cur.Store(f)
}
