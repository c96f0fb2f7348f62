package nk2

import "github.com/nk2go/nk2/internal/nkerr"

// EntryMatchFlags controls how Item.EntryByType matches candidates.
type EntryMatchFlags uint8

const (
	// MatchAnyValueType makes EntryByType match on entry_type alone,
	// ignoring the requested value_type.
	MatchAnyValueType EntryMatchFlags = 1 << iota
)

// Item is an ordered, positionally-indexed collection of RecordEntry
// values: one cached recipient in the Nickfile. Entry order is
// file-order and is preserved across all enumerations.
type Item struct {
	entries []*RecordEntry
}

// NumberOfEntries returns how many record entries the item has.
func (it *Item) NumberOfEntries() int {
	return len(it.entries)
}

// Entry returns the entry at position i in file order.
func (it *Item) Entry(i int) (*RecordEntry, error) {
	if i < 0 || i >= len(it.entries) {
		return nil, nkerr.New(nkerr.IndexOutOfRange, "nk2.Item.Entry", "entry index out of range")
	}
	return it.entries[i], nil
}

// EntryByType does a linear, file-order scan for the first entry whose
// entry_type matches, and whose value_type also matches unless
// MatchAnyValueType is set. It returns (nil, nil) — not an error — when
// no entry qualifies: "not found" is a distinct outcome from a decode
// failure.
func (it *Item) EntryByType(entryType, valueType uint32, flags EntryMatchFlags) (*RecordEntry, error) {
	for _, e := range it.entries {
		if uint32(e.entryType) != entryType {
			continue
		}
		if flags&MatchAnyValueType != 0 || uint32(e.valueType) == valueType {
			return e, nil
		}
	}
	return nil, nil
}

// wellKnownDisplayNameTags lists the MAPI property tags (entry_type only,
// any value_type) a recipient's display name is conventionally stored
// under, in preference order. This convenience lookup has no
// original_source equivalent; it is built on top of EntryByType purely as
// a host-side convenience (see DESIGN.md).
var wellKnownDisplayNameTags = []uint32{
	0x3001, // PR_DISPLAY_NAME
	0x3002, // PR_ADDRTYPE-adjacent display alias
	0x39FF, // PR_NICKNAME
	0x3A20, // PR_TRANSMITABLE_DISPLAY_NAME
}

// DisplayName resolves the item's human-readable name by checking each of
// a short list of well-known display-name property tags in order,
// decoding whichever one is present as a string. It returns ok == false
// if none of the candidate tags are present or decodable.
func (it *Item) DisplayName() (name string, ok bool) {
	for _, tag := range wellKnownDisplayNameTags {
		entry, err := it.EntryByType(tag, 0, MatchAnyValueType)
		if err != nil || entry == nil {
			continue
		}
		switch entry.ValueType() {
		case 0x001E:
			if s, err := entry.AsUTF8String(); err == nil {
				return s, true
			}
		case 0x001F:
			if s, err := entry.AsUTF16String(); err == nil {
				return s, true
			}
		}
	}
	return "", false
}
