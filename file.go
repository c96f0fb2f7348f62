// Package nk2 reads Microsoft Outlook Nickfile (NK2) auto-complete cache
// files and exposes their typed MAPI property entries. It is a pull-mode,
// read-only parser: a File is fully decoded at Open time and is
// immutable afterward except for its configured ASCII codepage.
package nk2

import (
	"encoding/binary"
	"io"
	"os"
	"sync/atomic"

	"github.com/nk2go/nk2/internal/codepage"
	"github.com/nk2go/nk2/internal/nkerr"
	"github.com/nk2go/nk2/internal/streamio"
	"github.com/nk2go/nk2/internal/wire"
)

// Kind re-exports the error taxonomy so callers never need to import the
// internal package directly.
type Kind = nkerr.Kind

const (
	InvalidSignature     = nkerr.InvalidSignature
	ShortRead            = nkerr.ShortRead
	UnsupportedValueType = nkerr.UnsupportedValueType
	InvalidValueSize     = nkerr.InvalidValueSize
	UnsupportedCodepage  = nkerr.UnsupportedCodepage
	ValueMissing         = nkerr.ValueMissing
	IndexOutOfRange      = nkerr.IndexOutOfRange
	OutOfMemory          = nkerr.OutOfMemory
	Aborted              = nkerr.Aborted
	IOError              = nkerr.IOError
	Closed               = nkerr.Closed
)

// Error is the structured error type every exported function returns.
type Error = nkerr.Error

// DefaultASCIICodepage is the codepage a File starts with when not
// otherwise configured.
const DefaultASCIICodepage = codepage.DefaultCode

type fileState uint8

const (
	stateCreated fileState = iota
	stateOpen
	stateClosed
)

// File is a parsed NK2 file: an ordered sequence of Items, an optional
// modification time, and a configurable ASCII codepage used to decode
// 0x001E string properties.
type File struct {
	items      []*Item
	modTime    uint64
	hasModTime bool
	codepage   uint16
	state      fileState
	ownsSource bool
	closer     io.Closer
	abort      *Abort
	logger     Logger
	maxAlloc   int
}

// Abort is a cooperative cancellation flag shared between the goroutine
// parsing a file and any goroutine that wants to stop it. The parser
// consults it between items and between record entries, never mid-read.
type Abort struct {
	flag atomic.Bool
}

// Signal raises the flag. Safe to call from any goroutine, including
// while Open is still running on another one.
func (a *Abort) Signal() { a.flag.Store(true) }

func (a *Abort) signaled() bool { return a.flag.Load() }

// Option configures Open/OpenReader.
type Option func(*config)

type config struct {
	logger   Logger
	maxAlloc int
	abort    *Abort
}

// WithLogger installs a Logger that receives diagnostic messages during
// parsing. The default is a no-op logger.
func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMaxAlloc overrides the allocation bound enforced on out-of-line
// value lengths read from disk. The default is wire.MaxAlloc.
func WithMaxAlloc(n int) Option {
	return func(c *config) { c.maxAlloc = n }
}

// WithAbort wires a caller-held Abort flag into the parse, so a second
// goroutine can cancel an in-progress Open. Without it the File still
// carries its own flag, reachable via SignalAbort once Open has
// returned.
func WithAbort(a *Abort) Option {
	return func(c *config) { c.abort = a }
}

func newConfig(opts []Option) config {
	c := config{logger: noopLogger{}, maxAlloc: wire.MaxAlloc}
	for _, opt := range opts {
		opt(&c)
	}
	if c.abort == nil {
		c.abort = &Abort{}
	}
	return c
}

// Open opens and fully parses the NK2 file at path. The returned File
// owns the underlying os.File and closes it on Close.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nkerr.Wrap(nkerr.IOError, "nk2.Open", "failed to open file", err)
	}
	file, err := openFrom(f, true, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return file, nil
}

// OpenReader parses an NK2 file already available as an io.Reader. The
// returned File does not own r and Close never closes it.
func OpenReader(r io.Reader, opts ...Option) (*File, error) {
	return openFrom(r, false, opts)
}

func openFrom(r io.Reader, owns bool, opts []Option) (*File, error) {
	cfg := newConfig(opts)

	file := &File{
		codepage:   DefaultASCIICodepage,
		ownsSource: owns,
		abort:      cfg.abort,
		logger:     cfg.logger,
		maxAlloc:   cfg.maxAlloc,
	}
	if closer, ok := r.(io.Closer); ok && owns {
		file.closer = closer
	}

	sr := streamio.New(r)

	header, err := wire.ReadHeader(sr)
	if err != nil {
		return nil, err
	}
	file.logger.Debugf("nk2: header number_of_items=%d unknown1=%#x unknown2=%#x",
		header.NumberOfItems, header.Unknown1, header.Unknown2)

	for i := uint32(0); i < header.NumberOfItems; i++ {
		if file.abort.signaled() {
			file.state = stateClosed
			return nil, nkerr.New(nkerr.Aborted, "nk2.Open", "abort signaled during open")
		}

		countBytes, err := sr.ReadExact(4)
		if err != nil {
			return nil, err
		}
		count := binary.LittleEndian.Uint32(countBytes)
		if count == 0 {
			// Documented sentinel: the declared item count is an upper
			// bound, not an exact count. Stop reading items here.
			break
		}

		item, err := file.readItem(sr, int(count))
		if err != nil {
			file.state = stateClosed
			return nil, err
		}
		file.items = append(file.items, item)
	}

	if footer, ok := wire.ReadFooter(sr); ok {
		file.modTime = footer.ModificationTime
		file.hasModTime = true
	}

	file.state = stateOpen
	return file, nil
}

func (f *File) readItem(sr *streamio.Reader, count int) (*Item, error) {
	entries := make([]*RecordEntry, 0, count)
	for i := 0; i < count; i++ {
		if f.abort.signaled() {
			return nil, nkerr.New(nkerr.Aborted, "nk2.readItem", "abort signaled during open")
		}
		rec, err := wire.ReadRecordWithLimit(sr, f.maxAlloc)
		if err != nil {
			return nil, err
		}
		f.logger.Debugf("nk2: record entry_type=%#06x value_type=%#06x unknown=%#x size=%d",
			rec.EntryType, rec.ValueType, rec.Unknown, len(rec.Data()))
		entries = append(entries, &RecordEntry{
			entryType: rec.EntryType,
			valueType: rec.ValueType,
			data:      rec.Data(),
			codepage:  f.codepage,
		})
	}
	return &Item{entries: entries}, nil
}

// Close releases the File's resources. If the File opened its own
// underlying source (via Open), that source is closed too; if the source
// was supplied via OpenReader, the caller retains ownership and Close
// never touches it.
func (f *File) Close() error {
	if f.state == stateClosed {
		return nil
	}
	f.state = stateClosed
	if f.ownsSource && f.closer != nil {
		return f.closer.Close()
	}
	return nil
}

// SignalAbort raises the cooperative abort flag. The parser checks it
// between items and between record entries, never mid-read. It is safe
// to call from any goroutine. To cancel an Open still in progress, share
// the flag up front via WithAbort.
func (f *File) SignalAbort() {
	f.abort.Signal()
}

// ASCIICodepage returns the codepage currently used to decode 0x001E
// string properties.
func (f *File) ASCIICodepage() uint16 {
	return f.codepage
}

// SetASCIICodepage changes the codepage used for subsequent 0x001E string
// decoding. cp must be one of the accepted codepages; anything else
// (including the ISO-8859 and KOI8 families) returns UnsupportedCodepage.
// Unlike SignalAbort, it must be externally synchronized against
// concurrent readers.
func (f *File) SetASCIICodepage(cp uint16) error {
	if f.state == stateClosed {
		return nkerr.New(nkerr.Closed, "nk2.SetASCIICodepage", "file is closed")
	}
	if !codepage.IsAccepted(cp) {
		return nkerr.New(nkerr.UnsupportedCodepage, "nk2.SetASCIICodepage",
			"codepage is not in the accepted list")
	}
	f.codepage = cp
	for _, item := range f.items {
		for _, e := range item.entries {
			e.codepage = cp
		}
	}
	return nil
}

// ModificationTime returns the file's raw FILETIME modification
// timestamp, if the trailing footer was present.
func (f *File) ModificationTime() (uint64, bool) {
	return f.modTime, f.hasModTime
}

// NumberOfItems returns how many items were loaded.
func (f *File) NumberOfItems() int {
	return len(f.items)
}

// Item returns the item at position i in file order.
func (f *File) Item(i int) (*Item, error) {
	if f.state == stateClosed {
		return nil, nkerr.New(nkerr.Closed, "nk2.Item", "file is closed")
	}
	if i < 0 || i >= len(f.items) {
		return nil, nkerr.New(nkerr.IndexOutOfRange, "nk2.Item", "item index out of range")
	}
	return f.items[i], nil
}
