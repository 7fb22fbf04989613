package validation

import (
	"strconv"
	"strings"
)

// PositiveInt parses raw as an integer >= 1. Anything else, including an
// empty string, is treated as absent and yields nil.
func PositiveInt(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return nil
	}
	return &n
}

// IntOr returns the positive integer in raw, or def when raw does not hold one.
func IntOr(raw string, def int) int {
	if n := PositiveInt(raw); n != nil {
		return *n
	}
	return def
}

// IDList parses a comma-separated list of ids. Entries that are not positive
// integers are dropped; nil means no usable id was given.
func IDList(raw string) []uint {
	if raw == "" {
		return nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
