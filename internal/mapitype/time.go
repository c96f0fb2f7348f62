package mapitype

import "time"

// filetimeEpochOffsetMillis is the number of milliseconds between the
// FILETIME epoch (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC),
// the same constant the teacher's PT_SYSTIME conversion uses.
const filetimeEpochOffsetMillis = 11644473600000

// TimeFromFILETIME converts a raw Windows FILETIME (100-ns ticks since
// 1601-01-01 UTC) into a time.Time.
func TimeFromFILETIME(ft uint64) time.Time {
	millis := ft/10000 - filetimeEpochOffsetMillis
	return time.Unix(0, int64(millis)*int64(time.Millisecond)).UTC()
}

// oleEpoch is 1899-12-30, the day OLE/COM "Floatingtime" dates count from.
var oleEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// TimeFromFloatingtime converts an OLE date (days since 1899-12-30, as an
// IEEE-754 double) into a time.Time.
func TimeFromFloatingtime(days float64) time.Time {
	return oleEpoch.Add(time.Duration(days * float64(24*time.Hour)))
}
