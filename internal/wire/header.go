// Package wire decodes the NK2 on-disk framing: the file header and
// footer, and individual property record entries. It is the direct
// translation of libnk2's file_header, file_footer, and record_entry
// decoders into a pull-mode Go reader.
package wire

import (
	"encoding/binary"

	"github.com/nk2go/nk2/internal/nkerr"
	"github.com/nk2go/nk2/internal/streamio"
)

// Signature is the magic 4 bytes every NK2 file starts with, little-endian
// 0xBAADF00D.
var Signature = [4]byte{0x0D, 0xF0, 0xAD, 0xBA}

const headerSize = 16

// Header is the decoded 16-byte NK2 file header.
type Header struct {
	Unknown1      uint32
	Unknown2      uint32
	NumberOfItems uint32
}

// ReadHeader reads and validates the fixed 16-byte header at the current
// stream position.
func ReadHeader(r *streamio.Reader) (Header, error) {
	data, err := r.ReadExact(headerSize)
	if err != nil {
		return Header{}, err
	}

	if data[0] != Signature[0] || data[1] != Signature[1] ||
		data[2] != Signature[2] || data[3] != Signature[3] {
		return Header{}, nkerr.New(nkerr.InvalidSignature, "wire.ReadHeader",
			"file signature does not match 0xBAADF00D")
	}

	return Header{
		Unknown1:      binary.LittleEndian.Uint32(data[4:8]),
		Unknown2:      binary.LittleEndian.Uint32(data[8:12]),
		NumberOfItems: binary.LittleEndian.Uint32(data[12:16]),
	}, nil
}
