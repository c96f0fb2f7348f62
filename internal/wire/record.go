package wire

import (
	"encoding/binary"

	"github.com/nk2go/nk2/internal/mapitype"
	"github.com/nk2go/nk2/internal/nkerr"
	"github.com/nk2go/nk2/internal/streamio"
)

// MaxAlloc bounds any length field read from disk before it drives an
// allocation. It prevents a malformed or hostile file from requesting an
// unbounded buffer. Overridable per-call via ReadRecordWithLimit for
// embedders with tighter memory budgets.
const MaxAlloc = 1<<31 - 1

const recordHeaderSize = 16

// valueStorage realizes the spec's "dual ownership" pattern: fixed-size
// values small enough to fit the record's inline 8-byte slot are kept
// there with no heap allocation; variable-size values own a separately
// allocated buffer. The two cases are distinguishable without touching
// the bytes, via isHeap.
type valueStorage struct {
	inline    [8]byte
	inlineLen uint8
	heap      []byte
	isHeap    bool
}

func (v valueStorage) bytes() []byte {
	if v.isHeap {
		return v.heap
	}
	return v.inline[:v.inlineLen]
}

// Record is one decoded property record entry: a MAPI property tag split
// into its value-type/entry-type halves, plus its owned value bytes.
type Record struct {
	ValueType uint16
	EntryType uint16
	Unknown   uint32
	storage   valueStorage
}

// Data returns the record's value bytes, whichever storage case produced
// them.
func (r Record) Data() []byte { return r.storage.bytes() }

// ReadRecord decodes one 16-byte-header record entry plus its trailing
// value bytes per the variable/fixed-size dispatch in the value-type
// catalog, using the default MaxAlloc bound.
func ReadRecord(r *streamio.Reader) (Record, error) {
	return ReadRecordWithLimit(r, MaxAlloc)
}

// ReadRecordWithLimit is ReadRecord with a caller-supplied allocation
// bound, for embedders with a tighter memory budget than the default.
func ReadRecordWithLimit(r *streamio.Reader, maxAlloc int) (Record, error) {
	head, err := r.ReadExact(recordHeaderSize)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ValueType: binary.LittleEndian.Uint16(head[0:2]),
		EntryType: binary.LittleEndian.Uint16(head[2:4]),
		Unknown:   binary.LittleEndian.Uint32(head[4:8]),
	}
	var inline [8]byte
	copy(inline[:], head[8:16])

	code := mapitype.Code(rec.ValueType)
	desc, ok := mapitype.Lookup(code)
	if !ok {
		return Record{}, nkerr.New(nkerr.UnsupportedValueType, "wire.ReadRecord",
			"unsupported MAPI value type")
	}

	if !mapitype.IsVariableLength(code) {
		if desc.FixedSize <= 8 {
			rec.storage = valueStorage{inline: inline, inlineLen: uint8(desc.FixedSize)}
			return rec, nil
		}
		// Fixed-size values wider than the inline slot (GUID/CLSID is the
		// only catalog member in this case, per the resolved "promote to
		// fixed-size" reading of the GUID open question) read their
		// remaining bytes directly off the wire, with no out-of-line
		// length prefix, and are heap-stored since they cannot fit inline.
		rest, err := r.ReadExact(desc.FixedSize - 8)
		if err != nil {
			return Record{}, err
		}
		data := make([]byte, 0, desc.FixedSize)
		data = append(data, inline[:]...)
		data = append(data, rest...)
		rec.storage = valueStorage{heap: data, isHeap: true}
		return rec, nil
	}

	lenBytes, err := r.ReadExact(4)
	if err != nil {
		return Record{}, err
	}
	length := binary.LittleEndian.Uint32(lenBytes)
	if length == 0 || length > uint32(maxAlloc) {
		return Record{}, nkerr.New(nkerr.InvalidValueSize, "wire.ReadRecord",
			"declared value length is zero or exceeds the allocation bound")
	}

	data, err := r.ReadExact(int(length))
	if err != nil {
		return Record{}, err
	}
	rec.storage = valueStorage{heap: data, isHeap: true}
	return rec, nil
}
