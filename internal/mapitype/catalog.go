// Package mapitype is the static MAPI value-type catalog: the mapping
// from a 16-bit property value-type code to its on-disk fixed size and
// decode rules. The record-entry decoder consults it for the fixed size
// and to know whether to read an out-of-line length. The typed accessors
// in package nk2 use the Code constants but do not read Catalog; each
// accessor checks its own accepted value types and sizes.
package mapitype

// Code is a 16-bit MAPI property value-type, the low word of a MAPI
// property tag.
type Code uint16

// Value-type codes this parser understands. Names describe the MAPI
// PT_* type each code stands for, without the PT_ prefix.
const (
	Integer16      Code = 0x0002
	Integer32      Code = 0x0003
	Float          Code = 0x0004
	Double         Code = 0x0005
	Currency       Code = 0x0006
	Floatingtime   Code = 0x0007
	ErrorCode      Code = 0x000A
	Boolean        Code = 0x000B
	Integer64      Code = 0x0014
	String8        Code = 0x001E
	Unicode        Code = 0x001F
	FILETIME       Code = 0x0040
	CLSID          Code = 0x0048
	Binary         Code = 0x0102
)

// Descriptor describes how a value type's bytes are sized on disk.
type Descriptor struct {
	Code Code
	// FixedSize is the number of value-data bytes that follow the record
	// header inline, or 0 if the type is variable-length (an out-of-line
	// 4-byte length prefixes the data).
	FixedSize int
}

// Catalog maps every value-type code this parser supports to its
// Descriptor. GUID (CLSID) is modeled as fixed-size 16, resolving the
// spec's Open Question in favor of "always 16 bytes on the wire" rather
// than treating it as a general variable-length blob.
var Catalog = map[Code]Descriptor{
	Integer16:    {Code: Integer16, FixedSize: 2},
	Integer32:    {Code: Integer32, FixedSize: 4},
	Float:        {Code: Float, FixedSize: 4},
	Double:       {Code: Double, FixedSize: 8},
	Currency:     {Code: Currency, FixedSize: 8},
	Floatingtime: {Code: Floatingtime, FixedSize: 8},
	ErrorCode:    {Code: ErrorCode, FixedSize: 4},
	Boolean:      {Code: Boolean, FixedSize: 2},
	Integer64:    {Code: Integer64, FixedSize: 8},
	String8:      {Code: String8, FixedSize: 0},
	Unicode:      {Code: Unicode, FixedSize: 0},
	FILETIME:     {Code: FILETIME, FixedSize: 8},
	CLSID:        {Code: CLSID, FixedSize: 16},
	Binary:       {Code: Binary, FixedSize: 0},
}

// IsVariableLength reports whether code's value data is read out-of-line
// (a 4-byte length prefix followed by that many bytes), as opposed to
// living in the record's inline 8-byte slot.
func IsVariableLength(code Code) bool {
	switch code {
	case String8, Unicode, Binary:
		return true
	default:
		return false
	}
}

// Lookup returns code's Descriptor and whether it is recognized.
func Lookup(code Code) (Descriptor, bool) {
	d, ok := Catalog[code]
	return d, ok
}

// ContainsZeroBytes implements the disambiguation predicate used to tell
// apart an ASCII-tagged (0x001E) property that actually carries a
// UTF-16LE payload. Trailing zero bytes are not included: once a zero
// byte has been seen, a later non-zero byte makes this true; a run of
// zero bytes that continues to the end of data does not.
func ContainsZeroBytes(data []byte) bool {
	zeroByteFound := false
	for _, b := range data {
		if !zeroByteFound {
			if b == 0 {
				zeroByteFound = true
			}
			continue
		}
		if b != 0 {
			return true
		}
	}
	return false
}
