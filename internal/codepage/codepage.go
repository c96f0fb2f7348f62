// Package codepage resolves an NK2 file's configured ASCII codepage to a
// concrete text decoder, and validates codepage values against the
// accept-list a File is allowed to be configured with. It generalizes the
// single Windows-1252/ISO-8859-1 case the teacher's extractData handled
// inline across the full MAPI codepage range.
package codepage

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/nk2go/nk2/internal/nkerr"
)

// Special codepage values with meaning beyond "a Windows codepage number".
const (
	Unicode     = 1200  // Microsoft's marker for "Unicode" (UTF-16LE in practice)
	UTF7        = 65000 // documented, rejected as unsupported in string accessors
	UTF8        = 65001
	ASCIICode   = 20127 // plain ASCII
	DefaultCode = 1252  // Windows-1252, the File default
)

// accepted is the codepage allow-list from the spec: ASCII, Windows-874,
// Windows-932/936/949/950, and Windows-1250..1258. ISO-8859 and KOI8
// variants are deliberately absent — they are rejected, not silently
// mapped to a close equivalent.
var accepted = map[uint16]bool{
	ASCIICode: true,
	874:       true,
	932:       true,
	936:       true,
	949:       true,
	950:       true,
	1250:      true,
	1251:      true,
	1252:      true,
	1253:      true,
	1254:      true,
	1255:      true,
	1256:      true,
	1257:      true,
	1258:      true,
}

// IsAccepted reports whether cp is in the configurable codepage
// allow-list. It intentionally uses exact set membership (no "||" chain
// that degrades to always-true) per the spec's resolved Open Question
// about the original setter's buggy comparison.
func IsAccepted(cp uint16) bool {
	return accepted[cp]
}

// encodingFor maps an accepted Windows codepage number to a decoder. Only
// called for codepages that passed IsAccepted, plus the special values
// 1200/65001 handled by the caller before reaching here.
func encodingFor(cp uint16) (encoding.Encoding, bool) {
	switch cp {
	case ASCIICode:
		return encoding.Nop, true
	case 874:
		return charmap.Windows874, true
	case 932:
		return japanese.ShiftJIS, true
	case 936:
		return simplifiedchinese.GBK, true
	case 949:
		return korean.EUCKR, true
	case 950:
		return traditionalchinese.Big5, true
	case 1250:
		return charmap.Windows1250, true
	case 1251:
		return charmap.Windows1251, true
	case 1252:
		return charmap.Windows1252, true
	case 1253:
		return charmap.Windows1253, true
	case 1254:
		return charmap.Windows1254, true
	case 1255:
		return charmap.Windows1255, true
	case 1256:
		return charmap.Windows1256, true
	case 1257:
		return charmap.Windows1257, true
	case 1258:
		return charmap.Windows1258, true
	default:
		return nil, false
	}
}

// Decode converts data from the given codepage to a UTF-8 Go string, per
// the spec's §4.6 string decoding policy:
//
//   - 65000 (UTF-7) is rejected outright.
//   - 65001 and 1200-with-no-zero-bytes decode as UTF-8 passthrough.
//   - any other accepted codepage is decoded via golang.org/x/text.
//
// Callers are responsible for the 0x001E/0x001F value-type dispatch and
// the 1200-with-zero-bytes -> UTF-16LE redirect (see the nk2 package);
// Decode only handles "decode these bytes as this codepage".
func Decode(data []byte, cp uint16) (string, error) {
	switch cp {
	case UTF7:
		return "", nkerr.New(nkerr.UnsupportedCodepage, "codepage.Decode",
			"codepage 65000 (UTF-7) is not supported by the string accessors")
	case UTF8, Unicode:
		return string(data), nil
	}

	if !IsAccepted(cp) {
		return "", nkerr.New(nkerr.UnsupportedCodepage, "codepage.Decode",
			"codepage is not in the accepted list")
	}

	enc, ok := encodingFor(cp)
	if !ok {
		return "", nkerr.New(nkerr.UnsupportedCodepage, "codepage.Decode",
			"codepage has no known decoder")
	}

	reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", nkerr.Wrap(nkerr.UnsupportedCodepage, "codepage.Decode",
			"failed to transcode string data", err)
	}
	return string(decoded), nil
}
