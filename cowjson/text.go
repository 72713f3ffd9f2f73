package cowjson

import (
	"bytes"

	"go.uber.org/atomic"
)

// buffer is a reference-counted backing store. The data slice always carries
// one extra NUL byte past the logical content so that a Text spanning the
// whole buffer already has a terminated view.
type buffer struct {
	refs atomic.Int64
	data []byte
}

func newBuffer(n int) *buffer {
	b := &buffer{data: make([]byte, n+1)}
	b.refs.Store(1)
	return b
}

// Text is a copy-on-write byte string: an (offset, length) window over a
// reference-counted backing buffer. Multiple Texts may alias the same
// buffer; reading never allocates, and writing a byte while the buffer is
// shared first materializes a private copy of just this window's bytes.
//
// Go has no copy constructor, so aliasing is explicit: Share and Slice
// produce counted aliases, while plain assignment transfers a Text without
// touching the count and must not be used to fan out aliases. The count
// never decrements; garbage collection reclaims buffers, and an over-count
// can only cost a redundant private copy.
type Text struct {
	buf *buffer
	off int
	n   int
}

// NewText copies b into a fresh private buffer (with a NUL terminator
// appended) and returns its sole owner.
func NewText(b []byte) Text {
	buf := newBuffer(len(b))
	copy(buf.data, b)
	return Text{buf: buf, n: len(b)}
}

// NewTextString is NewText for a string source.
func NewTextString(s string) Text {
	buf := newBuffer(len(s))
	copy(buf.data, s)
	return Text{buf: buf, n: len(s)}
}

// Share returns an aliasing copy of t and increments the buffer's
// reference count. O(1), no allocation.
func (t Text) Share() Text {
	if t.buf != nil {
		t.buf.refs.Inc()
	}
	return t
}

// Slice returns a Text aliasing the same buffer, narrowed to count bytes
// starting at off (relative to t). O(1), no allocation; the count is
// incremented as for Share.
//
// Bounds are NOT checked: off+count must stay inside t's window. An
// out-of-range slice silently reads adjacent buffer bytes or panics on a
// later access.
func (t Text) Slice(off, count int) Text {
	if t.buf != nil {
		t.buf.refs.Inc()
	}
	return Text{buf: t.buf, off: t.off + off, n: count}
}

// Len returns the window length in bytes.
func (t Text) Len() int {
	return t.n
}

// At reads the byte at index i. Never allocates.
func (t Text) At(i int) byte {
	return t.buf.data[t.off+i]
}

// SetAt writes the byte at index i. If the backing buffer is shared, the
// window is first materialized into a private terminated buffer (offset
// resets to 0); aliases keep observing the old bytes.
func (t *Text) SetAt(i int, c byte) {
	if t.buf.refs.Load() > 1 {
		t.materialize()
	}
	t.buf.data[t.off+i] = c
}

// materialize copies exactly this window's bytes into a fresh terminated
// private buffer and repoints t at it.
func (t *Text) materialize() {
	buf := newBuffer(t.n)
	copy(buf.data, t.buf.data[t.off:t.off+t.n])
	t.buf = buf
	t.off = 0
}

// IndexByte returns the index of the first occurrence of c at or after
// from within the window, or -1 if absent.
func (t Text) IndexByte(c byte, from int) int {
	for i := from; i < t.n; i++ {
		if t.buf.data[t.off+i] == c {
			return i
		}
	}
	return -1
}

// Terminated returns the window's bytes followed by a NUL byte. The view
// is zero-copy when the window starts at buffer offset 0 and the buffer
// happens to hold a NUL right past the window; otherwise the window is
// materialized into a fresh terminated private buffer first.
func (t *Text) Terminated() []byte {
	if t.buf == nil {
		return []byte{0}
	}
	end := t.off + t.n
	if t.off == 0 && end < len(t.buf.data) && t.buf.data[end] == 0 {
		return t.buf.data[:t.n+1]
	}
	t.materialize()
	return t.buf.data
}

// Bytes returns the window as a zero-copy view. The result must be treated
// as read-only; writing through it bypasses copy-on-write.
func (t Text) Bytes() []byte {
	if t.buf == nil {
		return nil
	}
	return t.buf.data[t.off : t.off+t.n]
}

// String returns a copy of the window. For diagnostics and conversion;
// unlike the other readers it allocates.
func (t Text) String() string {
	return string(t.Bytes())
}

// Compare orders two Texts byte-lexicographically; when one is a prefix of
// the other, the shorter sorts first.
func (t Text) Compare(o Text) int {
	return bytes.Compare(t.Bytes(), o.Bytes())
}

// Less reports whether t sorts before o.
func (t Text) Less(o Text) bool {
	return t.Compare(o) < 0
}

// Equal reports byte equality of the two windows.
func (t Text) Equal(o Text) bool {
	return bytes.Equal(t.Bytes(), o.Bytes())
}

// EqualString reports byte equality against s.
func (t Text) EqualString(s string) bool {
	return string(t.Bytes()) == s
}
