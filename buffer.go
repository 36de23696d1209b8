package utf8span

import (
	"sync"
	"sync/atomic"
)

// Buffer owns a byte slice that spans can borrow. Replacing the content of a
// Buffer invalidates every span obtained from it before: checked operations
// and iterator steps on such a stale span panic. New content always goes to
// fresh storage, so bytes a span has seen are never overwritten.
//
// A Buffer may be used from multiple goroutines.
type Buffer struct {
	mu   sync.RWMutex
	data []byte
	gen  atomic.Uint64
}

// NewBuffer returns a buffer holding a copy of b.
func NewBuffer(b []byte) *Buffer {
	buf := &Buffer{}
	buf.data = append(buf.data, b...)
	return buf
}

// Span validates the buffer's current content and returns a span borrowing
// it. The span stays valid until the next call to [Buffer.SetBytes] or
// [Buffer.Reset].
func (b *Buffer) Span() (Span, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, err := Validate(b.data)
	if err != nil {
		return Span{}, err
	}
	s.owner = b
	s.gen = b.gen.Load()
	return s, nil
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// SetBytes replaces the buffer's content with a copy of p. Spans obtained
// before are invalidated.
func (b *Buffer) SetBytes(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen.Add(1)
	b.data = append([]byte(nil), p...)
}

// Reset empties the buffer. Spans obtained before are invalidated.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen.Add(1)
	b.data = nil
}
