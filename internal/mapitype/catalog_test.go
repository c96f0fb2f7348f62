package mapitype

import "testing"

func TestContainsZeroBytesTrailingRunExcluded(t *testing.T) {
	// "AB" followed by two trailing NUL pad bytes: a zero byte is seen,
	// but no non-zero byte follows it, so this must read as plain ASCII,
	// not as carrying a UTF-16LE payload.
	data := []byte{0x41, 0x42, 0x00, 0x00}
	if ContainsZeroBytes(data) {
		t.Fatalf("ContainsZeroBytes(%v) = true, want false (trailing zero run only)", data)
	}
}

func TestContainsZeroBytesInteriorZeroFollowedByNonZero(t *testing.T) {
	// A zero byte followed later by a non-zero byte is the genuine
	// UTF-16LE signal (e.g. "H\x00i\x00" little-endian).
	data := []byte{'H', 0x00, 'i', 0x00}
	if !ContainsZeroBytes(data) {
		t.Fatalf("ContainsZeroBytes(%v) = false, want true", data)
	}
}

func TestContainsZeroBytesNoZeroBytes(t *testing.T) {
	data := []byte("Joachim")
	if ContainsZeroBytes(data) {
		t.Fatalf("ContainsZeroBytes(%v) = true, want false", data)
	}
}

func TestContainsZeroBytesAllZero(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00}
	if ContainsZeroBytes(data) {
		t.Fatalf("ContainsZeroBytes(%v) = true, want false (zero bytes only, nothing follows)", data)
	}
}

func TestContainsZeroBytesSingleTrailingZero(t *testing.T) {
	data := []byte{'A', 'B', 0x00}
	if ContainsZeroBytes(data) {
		t.Fatalf("ContainsZeroBytes(%v) = true, want false", data)
	}
}

func TestContainsZeroBytesEmpty(t *testing.T) {
	if ContainsZeroBytes(nil) {
		t.Fatal("ContainsZeroBytes(nil) = true, want false")
	}
}
