package fetch

import (
	"bytes"
	"io"
	"testing"
)

func TestPayloadSource_CapacityOne(t *testing.T) {
	payload := []byte("Hello World")
	s := NewPayloadSource(payload)

	var got []byte
	dst := make([]byte, 1)
	for {
		n := s.Take(dst)
		if n == 0 {
			break
		}
		got = append(got, dst[:n]...)
	}

	if !bytes.Equal(got, payload) {
		t.Errorf("expected %q, got %q", payload, got)
	}
	if s.Remaining() != 0 {
		t.Errorf("expected exhausted source, remaining=%d", s.Remaining())
	}

	// Exhausted source stays exhausted.
	if n := s.Take(dst); n != 0 {
		t.Errorf("expected 0 from exhausted source, got %d", n)
	}
}

func TestPayloadSource_LargeDestination(t *testing.T) {
	payload := []byte("abc")
	s := NewPayloadSource(payload)

	dst := make([]byte, 64)
	if n := s.Take(dst); n != 3 {
		t.Fatalf("expected 3 bytes, got %d", n)
	}
	if n := s.Take(dst); n != 0 {
		t.Errorf("expected exhaustion, got %d", n)
	}
}

func TestPayloadSource_EmptyPayload(t *testing.T) {
	s := NewPayloadSource(nil)
	if n := s.Take(make([]byte, 8)); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
	if s.Len() != 0 || s.Remaining() != 0 {
		t.Errorf("unexpected counters: len=%d remaining=%d", s.Len(), s.Remaining())
	}
}

func TestPayloadSource_AsIOReader(t *testing.T) {
	payload := []byte("request body payload")
	s := NewPayloadSource(payload)

	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("expected %q, got %q", payload, got)
	}

	n, err := s.Read(make([]byte, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("expected EOF after exhaustion, got n=%d err=%v", n, err)
	}
}
