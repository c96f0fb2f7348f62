package wire

import (
	"encoding/binary"

	"github.com/nk2go/nk2/internal/streamio"
)

const footerSize = 12

// Footer is the decoded 12-byte file footer.
type Footer struct {
	Unknown          uint32
	ModificationTime uint64 // raw Windows FILETIME, 100-ns ticks since 1601-01-01 UTC
}

// ReadFooter reads the trailing 12 bytes. A missing or short footer is not
// an error: the caller gets ok == false and should leave
// ModificationTime unset, per the format's "optional tail" rule.
func ReadFooter(r *streamio.Reader) (footer Footer, ok bool) {
	data, err := r.ReadExact(footerSize)
	if err != nil {
		return Footer{}, false
	}
	return Footer{
		Unknown:          binary.LittleEndian.Uint32(data[0:4]),
		ModificationTime: binary.LittleEndian.Uint64(data[4:12]),
	}, true
}
