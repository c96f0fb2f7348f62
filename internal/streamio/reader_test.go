package streamio

import (
	"bytes"
	"testing"

	"github.com/nk2go/nk2/internal/nkerr"
)

func TestReadExact(t *testing.T) {
	r := New(bytes.NewReader([]byte{1, 2, 3, 4, 5}))

	got, err := r.ReadExact(3)
	if err != nil {
		t.Fatalf("ReadExact(3): %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("ReadExact(3) = %v, want [1 2 3]", got)
	}
	if r.Offset() != 3 {
		t.Fatalf("Offset() = %d, want 3", r.Offset())
	}

	got, err = r.ReadExact(2)
	if err != nil {
		t.Fatalf("ReadExact(2): %v", err)
	}
	if !bytes.Equal(got, []byte{4, 5}) {
		t.Fatalf("ReadExact(2) = %v, want [4 5]", got)
	}
}

func TestReadExactShort(t *testing.T) {
	r := New(bytes.NewReader([]byte{1, 2}))

	_, err := r.ReadExact(3)
	if !nkerr.Is(err, nkerr.ShortRead) {
		t.Fatalf("ReadExact past EOF = %v, want ShortRead", err)
	}
}

func TestReadExactEmpty(t *testing.T) {
	r := New(bytes.NewReader(nil))

	_, err := r.ReadExact(1)
	if !nkerr.Is(err, nkerr.ShortRead) {
		t.Fatalf("ReadExact on empty reader = %v, want ShortRead", err)
	}
}
