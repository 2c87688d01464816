package fetch

import "io"

// PayloadSource is a cursor-based pull producer over an outbound request
// body. Each Take copies up to the destination's capacity from the current
// position and advances; once the payload is exhausted every further call
// delivers zero bytes. PayloadSource implements io.Reader, so it can feed
// an HTTP request body directly.
//
// A PayloadSource must not be shared between requests.
type PayloadSource struct {
	data []byte
	off  int
}

// NewPayloadSource returns a source positioned at the start of data. The
// source holds an immutable view; the caller must not mutate data until
// the request completes.
func NewPayloadSource(data []byte) *PayloadSource {
	return &PayloadSource{data: data}
}

// Take copies min(remaining, len(dst)) bytes into dst and advances the
// cursor by that amount. Returns the number of bytes written, zero once
// the payload is exhausted.
func (s *PayloadSource) Take(dst []byte) int {
	if s.Remaining() == 0 || len(dst) == 0 {
		return 0
	}
	n := copy(dst, s.data[s.off:])
	s.off += n
	return n
}

// Remaining returns the number of undelivered bytes.
func (s *PayloadSource) Remaining() int {
	return len(s.data) - s.off
}

// Len returns the total payload size.
func (s *PayloadSource) Len() int {
	return len(s.data)
}

// Read implements io.Reader. It delegates to Take and reports io.EOF once
// the payload is exhausted.
func (s *PayloadSource) Read(p []byte) (int, error) {
	n := s.Take(p)
	if n == 0 && s.Remaining() == 0 {
		return 0, io.EOF
	}
	return n, nil
}
