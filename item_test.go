package nk2

import "testing"

func TestItemEntryByType(t *testing.T) {
	entries := []*RecordEntry{
		entryOf(0x3001, 0x001E, []byte("name"), DefaultASCIICodepage),
		entryOf(0x3001, 0x001F, utf16le("name16"), DefaultASCIICodepage),
	}
	it := &Item{entries: entries}

	e, err := it.EntryByType(0x3001, 0x001E, 0)
	if err != nil {
		t.Fatalf("EntryByType: %v", err)
	}
	if e == nil {
		t.Fatal("EntryByType returned nil, want first string8 entry")
	}

	e, err = it.EntryByType(0x3001, 0x9999, 0)
	if err != nil {
		t.Fatalf("EntryByType: %v", err)
	}
	if e != nil {
		t.Fatal("EntryByType matched a value_type that should not match")
	}

	e, err = it.EntryByType(0x3001, 0x9999, MatchAnyValueType)
	if err != nil {
		t.Fatalf("EntryByType: %v", err)
	}
	if e == nil {
		t.Fatal("EntryByType with MatchAnyValueType returned nil")
	}
}

func TestItemEntryByTypeNotFoundIsNotError(t *testing.T) {
	it := &Item{}
	e, err := it.EntryByType(0x1234, 0, 0)
	if err != nil {
		t.Fatalf("EntryByType on empty item: %v", err)
	}
	if e != nil {
		t.Fatal("EntryByType on empty item returned a non-nil entry")
	}
}

func TestItemDisplayName(t *testing.T) {
	it := &Item{entries: []*RecordEntry{
		entryOf(0x3001, 0x001E, []byte("Joachim Metz"), DefaultASCIICodepage),
	}}
	name, ok := it.DisplayName()
	if !ok {
		t.Fatal("DisplayName() ok = false")
	}
	if name != "Joachim Metz" {
		t.Fatalf("DisplayName() = %q", name)
	}
}

func TestItemDisplayNameAbsent(t *testing.T) {
	it := &Item{}
	if _, ok := it.DisplayName(); ok {
		t.Fatal("DisplayName() ok = true on an item with no candidate tags")
	}
}
