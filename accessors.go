package nk2

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf16"

	"github.com/nk2go/nk2/internal/codepage"
	"github.com/nk2go/nk2/internal/mapitype"
	"github.com/nk2go/nk2/internal/nkerr"
)

// RecordEntry is a single decoded MAPI property: a type-tag pair plus its
// owned value bytes.
type RecordEntry struct {
	entryType uint16
	valueType uint16
	data      []byte
	codepage  uint16
}

// EntryType returns the property tag's high word (widened to uint32 at
// this boundary, matching the MAPI property tag convention).
func (e *RecordEntry) EntryType() uint32 { return uint32(e.entryType) }

// ValueType returns the property tag's low word.
func (e *RecordEntry) ValueType() uint32 { return uint32(e.valueType) }

// Data returns the entry's raw value bytes.
func (e *RecordEntry) Data() []byte { return e.data }

func (e *RecordEntry) code() mapitype.Code { return mapitype.Code(e.valueType) }

// sizeMismatch reports ValueMissing when the entry carries no data at
// all, and InvalidValueSize when it carries data of the wrong length —
// the spec distinguishes the two outcomes.
func sizeMismatch(fn string, got int) error {
	if got == 0 {
		return nkerr.New(nkerr.ValueMissing, fn, "value data is missing")
	}
	return nkerr.New(nkerr.InvalidValueSize, fn, "value_data_size does not match the accessor's expected size")
}

func typeMismatch(fn string) error {
	return nkerr.New(nkerr.UnsupportedValueType, fn, "value_type is not accepted by this accessor")
}

// AsBool decodes a PT_BOOLEAN (0x000B): 2 bytes little-endian, nonzero is
// true.
func (e *RecordEntry) AsBool() (bool, error) {
	if e.code() != mapitype.Boolean {
		return false, typeMismatch("nk2.RecordEntry.AsBool")
	}
	if len(e.data) != 2 {
		return false, sizeMismatch("nk2.RecordEntry.AsBool", len(e.data))
	}
	return binary.LittleEndian.Uint16(e.data) != 0, nil
}

// AsInt16 decodes a PT_I2 (0x0002).
func (e *RecordEntry) AsInt16() (int16, error) {
	if e.code() != mapitype.Integer16 {
		return 0, typeMismatch("nk2.RecordEntry.AsInt16")
	}
	if len(e.data) != 2 {
		return 0, sizeMismatch("nk2.RecordEntry.AsInt16", len(e.data))
	}
	return int16(binary.LittleEndian.Uint16(e.data)), nil
}

// AsInt32 decodes a PT_LONG (0x0003) or a PT_ERROR (0x000A) code.
func (e *RecordEntry) AsInt32() (int32, error) {
	switch e.code() {
	case mapitype.Integer32, mapitype.ErrorCode:
	default:
		return 0, typeMismatch("nk2.RecordEntry.AsInt32")
	}
	if len(e.data) != 4 {
		return 0, sizeMismatch("nk2.RecordEntry.AsInt32", len(e.data))
	}
	return int32(binary.LittleEndian.Uint32(e.data)), nil
}

// AsInt64 decodes a PT_I8 (0x0014) or PT_CURRENCY (0x0006) value.
func (e *RecordEntry) AsInt64() (int64, error) {
	switch e.code() {
	case mapitype.Integer64, mapitype.Currency:
	default:
		return 0, typeMismatch("nk2.RecordEntry.AsInt64")
	}
	if len(e.data) != 8 {
		return 0, sizeMismatch("nk2.RecordEntry.AsInt64", len(e.data))
	}
	return int64(binary.LittleEndian.Uint64(e.data)), nil
}

// AsFILETIME decodes a PT_SYSTIME (0x0040) raw 64-bit FILETIME value
// (100-ns ticks since 1601-01-01 UTC).
func (e *RecordEntry) AsFILETIME() (uint64, error) {
	if e.code() != mapitype.FILETIME {
		return 0, typeMismatch("nk2.RecordEntry.AsFILETIME")
	}
	if len(e.data) != 8 {
		return 0, sizeMismatch("nk2.RecordEntry.AsFILETIME", len(e.data))
	}
	return binary.LittleEndian.Uint64(e.data), nil
}

// AsFloatingtime decodes a PT_APPTIME (0x0007) OLE date: an IEEE-754
// double counting days since 1899-12-30.
func (e *RecordEntry) AsFloatingtime() (float64, error) {
	if e.code() != mapitype.Floatingtime {
		return 0, typeMismatch("nk2.RecordEntry.AsFloatingtime")
	}
	if len(e.data) != 8 {
		return 0, sizeMismatch("nk2.RecordEntry.AsFloatingtime", len(e.data))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(e.data)), nil
}

// AsSize decodes a PT_LONG (0x0003, widened) or PT_I8 (0x0014) value as
// an unsigned size.
func (e *RecordEntry) AsSize() (uint64, error) {
	switch e.code() {
	case mapitype.Integer32:
		if len(e.data) != 4 {
			return 0, sizeMismatch("nk2.RecordEntry.AsSize", len(e.data))
		}
		return uint64(binary.LittleEndian.Uint32(e.data)), nil
	case mapitype.Integer64:
		if len(e.data) != 8 {
			return 0, sizeMismatch("nk2.RecordEntry.AsSize", len(e.data))
		}
		return binary.LittleEndian.Uint64(e.data), nil
	default:
		return 0, typeMismatch("nk2.RecordEntry.AsSize")
	}
}

// AsFloatingPoint decodes a PT_R4 (0x0004) or PT_DOUBLE (0x0005) value,
// widening a 4-byte float to float64.
func (e *RecordEntry) AsFloatingPoint() (float64, error) {
	switch e.code() {
	case mapitype.Float:
		if len(e.data) != 4 {
			return 0, sizeMismatch("nk2.RecordEntry.AsFloatingPoint", len(e.data))
		}
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(e.data))), nil
	case mapitype.Double:
		if len(e.data) != 8 {
			return 0, sizeMismatch("nk2.RecordEntry.AsFloatingPoint", len(e.data))
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(e.data)), nil
	default:
		return 0, typeMismatch("nk2.RecordEntry.AsFloatingPoint")
	}
}

// AsGUID copies the entry's 16-byte PT_CLSID (0x0048) value into a
// 16-byte array, without reordering.
func (e *RecordEntry) AsGUID() ([16]byte, error) {
	var guid [16]byte
	if e.code() != mapitype.CLSID {
		return guid, typeMismatch("nk2.RecordEntry.AsGUID")
	}
	if len(e.data) != 16 {
		return guid, sizeMismatch("nk2.RecordEntry.AsGUID", len(e.data))
	}
	copy(guid[:], e.data)
	return guid, nil
}

// decodedUTF8String implements the §4.6 string decoding policy for a
// 0x001E (ASCII-tagged) or 0x001F (UTF-16LE) entry, returning the decoded
// Go string. Codepage-decoded text has all trailing NUL bytes stripped;
// UTF-16LE data has a single trailing NUL code unit dropped.
func (e *RecordEntry) decodedUTF8String() (string, error) {
	switch e.code() {
	case mapitype.Unicode:
		return utf16ToString(e.data), nil
	case mapitype.String8:
		if e.codepage == codepage.Unicode && mapitype.ContainsZeroBytes(e.data) {
			// ASCII-tagged but actually carrying a UTF-16LE payload.
			return utf16ToString(e.data), nil
		}
		s, err := codepage.Decode(e.data, e.codepage)
		if err != nil {
			return "", err
		}
		return trimTrailingNUL(s), nil
	default:
		return "", typeMismatch("nk2.RecordEntry.AsUTF8String")
	}
}

// AsUTF8String decodes a string property (0x001E or 0x001F) to UTF-8,
// applying the codepage/Unicode disambiguation rules of §4.6.
func (e *RecordEntry) AsUTF8String() (string, error) {
	if len(e.data) == 0 {
		if e.code() != mapitype.String8 && e.code() != mapitype.Unicode {
			return "", typeMismatch("nk2.RecordEntry.AsUTF8String")
		}
		return "", nil
	}
	return e.decodedUTF8String()
}

// AsUTF8StringSize returns the UTF-8 byte length AsUTF8String would
// produce, plus one trailing NUL byte, matching the spec's "size includes
// the trailing NUL" convention. Empty or missing data returns 0.
func (e *RecordEntry) AsUTF8StringSize() (int, error) {
	s, err := e.AsUTF8String()
	if err != nil {
		return 0, err
	}
	if len(e.data) == 0 {
		return 0, nil
	}
	return len(s) + 1, nil
}

// AsUTF16String decodes a string property (0x001E or 0x001F) to a Go
// string via UTF-16LE code unit decoding (used directly for 0x001F, and
// for a 0x001E entry that ContainsZeroBytes flags as actually Unicode).
func (e *RecordEntry) AsUTF16String() (string, error) {
	switch e.code() {
	case mapitype.Unicode:
		if len(e.data) == 0 {
			return "", nil
		}
		return utf16ToString(e.data), nil
	case mapitype.String8:
		if len(e.data) == 0 {
			return "", nil
		}
		if !(e.codepage == codepage.Unicode && mapitype.ContainsZeroBytes(e.data)) {
			return "", typeMismatch("nk2.RecordEntry.AsUTF16String")
		}
		return utf16ToString(e.data), nil
	default:
		return "", typeMismatch("nk2.RecordEntry.AsUTF16String")
	}
}

// AsUTF16StringSize returns the count of UTF-16 code units
// AsUTF16String's source data represents, including its trailing NUL
// unit (appending one if the on-disk data lacks it).
func (e *RecordEntry) AsUTF16StringSize() (int, error) {
	if e.code() != mapitype.Unicode {
		// Still validate via AsUTF16String for the 0x001E Unicode-in-ASCII case.
		if _, err := e.AsUTF16String(); err != nil {
			return 0, err
		}
	}
	if len(e.data) == 0 {
		return 0, nil
	}
	units := len(e.data) / 2
	if units == 0 {
		// A lone stray byte still needs a terminator unit.
		return 1, nil
	}
	if e.data[2*units-2] == 0 && e.data[2*units-1] == 0 {
		return units, nil
	}
	return units + 1, nil
}

func utf16ToString(data []byte) string {
	n := len(data) / 2
	units := make([]uint16, 0, n)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, binary.LittleEndian.Uint16(data[i:i+2]))
	}
	// Drop a single trailing NUL code unit, matching the on-disk
	// null-terminated string convention.
	if len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return string(utf16.Decode(units))
}

func trimTrailingNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}
