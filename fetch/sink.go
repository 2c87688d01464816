package fetch

// Buffer is a growable byte sink for incrementally delivered response
// chunks. The backing array always holds a zero byte one past Len, so the
// accumulated bytes form a NUL-terminated sequence; the terminator is
// never part of Len or Bytes.
//
// The zero value is ready to use. Buffer implements io.Writer, so a
// response body can be streamed into it with io.Copy.
type Buffer struct {
	data []byte // accumulated bytes plus trailing terminator
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends chunk to the buffer and re-terminates. It consumes the
// whole chunk and never fails; a zero-length chunk is a no-op. Implements
// io.Writer.
func (b *Buffer) Write(chunk []byte) (int, error) {
	if len(chunk) == 0 {
		return 0, nil
	}
	n := b.Len()
	b.data = append(b.data[:n], chunk...)
	b.data = append(b.data, 0)
	return len(chunk), nil
}

// Len returns the number of accumulated bytes, excluding the terminator.
func (b *Buffer) Len() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data) - 1
}

// Bytes returns the accumulated bytes without the terminator. The caller
// owns the returned slice once the producing request has completed.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.Len()]
}

// String returns the accumulated bytes as a string.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Reset discards the accumulated bytes, retaining the backing array.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
