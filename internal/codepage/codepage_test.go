package codepage

import (
	"testing"

	"github.com/nk2go/nk2/internal/nkerr"
)

func TestIsAcceptedAllowList(t *testing.T) {
	for _, cp := range []uint16{ASCIICode, 874, 932, 936, 949, 950, 1250, 1251, 1258} {
		if !IsAccepted(cp) {
			t.Errorf("IsAccepted(%d) = false, want true", cp)
		}
	}
}

func TestIsAcceptedRejectsISO8859AndKOI8(t *testing.T) {
	for _, cp := range []uint16{28591, 28592, 20866, 21866} {
		if IsAccepted(cp) {
			t.Errorf("IsAccepted(%d) = true, want false (ISO-8859/KOI8 must be rejected)", cp)
		}
	}
}

func TestDecodeUTF7Unsupported(t *testing.T) {
	_, err := Decode([]byte("hi"), UTF7)
	if !nkerr.Is(err, nkerr.UnsupportedCodepage) {
		t.Fatalf("Decode(UTF7) = %v, want UnsupportedCodepage", err)
	}
}

func TestDecodeUTF8Passthrough(t *testing.T) {
	got, err := Decode([]byte("Joachim Metz"), UTF8)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "Joachim Metz" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestDecodeCodepage1200NoZeroBytesPassthrough(t *testing.T) {
	got, err := Decode([]byte("Joachim Metz"), Unicode)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "Joachim Metz" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestDecodeWindows1252(t *testing.T) {
	// 0xE9 in Windows-1252 is 'é'.
	got, err := Decode([]byte{0xE9}, 1252)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "é" {
		t.Fatalf("Decode(0xE9, 1252) = %q, want \"é\"", got)
	}
}

func TestDecodeRejectsUnlistedCodepage(t *testing.T) {
	_, err := Decode([]byte("x"), 28591)
	if !nkerr.Is(err, nkerr.UnsupportedCodepage) {
		t.Fatalf("Decode(ISO-8859-1) = %v, want UnsupportedCodepage", err)
	}
}
