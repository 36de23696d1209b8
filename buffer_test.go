package utf8span

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSpan(t *testing.T) {
	src := []byte("hello")
	buf := NewBuffer(src)
	src[0] = 'j'

	s, err := buf.Span()
	require.NoError(t, err)
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 5, buf.Len())
	assert.True(t, s.IsASCII())
}

func TestBufferInvalidatesSpans(t *testing.T) {
	buf := NewBuffer([]byte("gr\u00fc\u00dfe"))
	s, err := buf.Span()
	require.NoError(t, err)
	sub := s.Slice(0, 2)

	buf.SetBytes([]byte("bye"))

	assert.Panics(t, func() { s.Bytes() })
	assert.Panics(t, func() { _ = s.String() })
	assert.Panics(t, func() { s.NextScalarStart(0) })
	assert.Panics(t, func() { s.CharacterCount() })
	assert.Panics(t, func() { _ = sub.String() })
	assert.Panics(t, func() { s.BytesEqual(sub) })

	fresh, err := buf.Span()
	require.NoError(t, err)
	assert.Equal(t, "bye", fresh.String())

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	assert.Panics(t, func() { _ = fresh.String() })

	empty, err := buf.Span()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestBufferInvalidatesIterators(t *testing.T) {
	buf := NewBuffer([]byte("abcd"))
	s, err := buf.Span()
	require.NoError(t, err)
	seen := s.Bytes()

	scalars := NewScalarIterator(s)
	characters := NewCharacterIterator(s)
	r, ok := scalars.Next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	seq := s.Scalars()
	chars := s.Characters()

	buf.SetBytes([]byte{0xf0, 'x', 'y', 'z'})

	assert.Equal(t, "abcd", string(seen), "replaced content must not overwrite borrowed bytes")
	assert.Panics(t, func() { scalars.Next() })
	assert.Panics(t, func() { scalars.Previous() })
	assert.Panics(t, func() { scalars.SkipForward(1) })
	assert.Panics(t, func() { scalars.Prefix() })
	assert.Panics(t, func() { characters.Next() })
	assert.Panics(t, func() { characters.SkipBack(1) })
	assert.Panics(t, func() { characters.Suffix() })
	assert.Panics(t, func() {
		for range seq {
		}
	})
	assert.Panics(t, func() {
		for range chars {
		}
	})
}

func TestBufferInvalidatesRunningSequence(t *testing.T) {
	buf := NewBuffer([]byte("abcd"))
	s, err := buf.Span()
	require.NoError(t, err)

	var got []rune
	assert.Panics(t, func() {
		for _, r := range s.Scalars() {
			got = append(got, r)
			buf.SetBytes([]byte("wxyz"))
		}
	})
	assert.Equal(t, []rune{'a'}, got)
}

func TestBufferInvalidContent(t *testing.T) {
	buf := NewBuffer([]byte("ok"))
	buf.SetBytes([]byte{'a', 0xc0, 0x80})

	_, err := buf.Span()
	var e EncodingError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, OverlongEncodingByte, e.Kind)
	assert.Equal(t, Range{1, 2}, e.Range)
}

func TestBufferConcurrentReaders(t *testing.T) {
	buf := NewBuffer([]byte("e\u0301\U0001F1E9\U0001F1EA and more text"))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s, err := buf.Span()
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, 16, s.CharacterCount())
			}
		}()
	}
	wg.Wait()
}
