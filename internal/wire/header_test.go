package wire

import (
	"bytes"
	"testing"

	"github.com/nk2go/nk2/internal/nkerr"
	"github.com/nk2go/nk2/internal/streamio"
)

func TestReadHeaderValid(t *testing.T) {
	data := []byte{
		0x0D, 0xF0, 0xAD, 0xBA,
		0x0A, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
	}
	h, err := ReadHeader(streamio.New(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.NumberOfItems != 1 {
		t.Fatalf("NumberOfItems = %d, want 1", h.NumberOfItems)
	}
}

func TestReadHeaderShort(t *testing.T) {
	data := []byte{0x0D, 0xF0, 0xAD, 0xBA, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := ReadHeader(streamio.New(bytes.NewReader(data)))
	if !nkerr.Is(err, nkerr.ShortRead) {
		t.Fatalf("ReadHeader(15 bytes) = %v, want ShortRead", err)
	}
}

func TestReadHeaderBadSignature(t *testing.T) {
	data := []byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	_, err := ReadHeader(streamio.New(bytes.NewReader(data)))
	if !nkerr.Is(err, nkerr.InvalidSignature) {
		t.Fatalf("ReadHeader(bad magic) = %v, want InvalidSignature", err)
	}
}

func TestReadFooterMissing(t *testing.T) {
	_, ok := ReadFooter(streamio.New(bytes.NewReader(nil)))
	if ok {
		t.Fatal("ReadFooter on empty stream reported ok, want false")
	}
}

func TestReadFooterPresent(t *testing.T) {
	data := []byte{
		0, 0, 0, 0,
		0x00, 0x94, 0xFD, 0x13, 0x00, 0x00, 0x00, 0x00,
	}
	f, ok := ReadFooter(streamio.New(bytes.NewReader(data)))
	if !ok {
		t.Fatal("ReadFooter(12 bytes) reported ok=false")
	}
	if f.ModificationTime == 0 {
		t.Fatal("ModificationTime was not decoded")
	}
}
