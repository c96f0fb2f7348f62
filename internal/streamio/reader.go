// Package streamio wraps an external byte source the way the NK2 parser
// needs it: exact-sized sequential reads with an offset-tracking cursor.
// The parser never seeks arbitrarily once past the header — it reads
// forward one buffer at a time.
package streamio

import (
	"io"

	"github.com/nk2go/nk2/internal/nkerr"
)

// Reader adapts an io.Reader into the sequential, offset-tracked source
// the NK2 decoders consume. It owns no file handle; callers that opened
// the underlying source are responsible for closing it.
type Reader struct {
	r      io.Reader
	offset int64
}

// New wraps r for sequential reading starting at its current position.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset reports the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.offset }

// ReadExact reads exactly n bytes, or returns nkerr.ShortRead if the
// source was exhausted first. io.ErrUnexpectedEOF and io.EOF are both
// folded into ShortRead — the parser does not distinguish "no more bytes
// at all" from "fewer bytes than asked for".
func (r *Reader) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	r.offset += int64(read)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, nkerr.New(nkerr.ShortRead, "streamio.ReadExact",
				"short read")
		}
		return nil, nkerr.Wrap(nkerr.IOError, "streamio.ReadExact",
			"underlying read failed", err)
	}
	return buf, nil
}
