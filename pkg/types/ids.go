package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier prefixes per entity kind.
const (
	CustomerIDPrefix = "C"
	RepairIDPrefix   = "R"
)

// idBase is the offset human-readable sequence numbers start from, so the
// first identifiers read C-001001 (online) rather than C-000001.
const idBase = 1000

// NextID returns the identifier for a new entity given the current row count
// reported by the store: {prefix}-{1000+count+1}, zero-padded to six digits.
// Counting is race-prone under concurrent writers: two near-simultaneous
// creations can read the same count and collide. That matches the behavior of
// the backing store's count-then-insert flow and is not guarded against here.
func NextID(prefix string, count int64) string {
	return FormatID(prefix, idBase+count+1)
}

// NextIDFromExisting returns the identifier following the highest numeric
// suffix among existing IDs of the given prefix, or {prefix}-001000 when none
// exist. Unlike NextID this is collision-free within a single process, since
// the local mirror allocates and persists in one step. IDs with a different
// prefix or a non-numeric suffix are ignored.
func NextIDFromExisting(prefix string, ids []string) string {
	max := int64(idBase - 1)
	for _, id := range ids {
		if n, ok := IDNumber(prefix, id); ok && n > max {
			max = n
		}
	}
	return FormatID(prefix, max+1)
}

// FormatID renders an identifier as {prefix}-NNNNNN, zero-padded to six
// digits. Numbers beyond six digits widen the field rather than truncate.
func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s-%06d", prefix, n)
}

// IDNumber extracts the numeric suffix of an identifier with the given
// prefix. The second return is false when the ID does not carry the prefix or
// the suffix is not numeric.
func IDNumber(prefix, id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
