package timeline

import (
	"slices"
	"strings"
)

// Sequence is a date-ordered list of events built from one document.
type Sequence []Event

// NewSequence copies events and stable-sorts the copy by date. Dates compare
// as plain strings, which orders YYYY.MM.DD correctly as long as months and
// days are zero padded the way the game writes them.
func NewSequence(events []Event) Sequence {
	seq := make(Sequence, len(events))
	copy(seq, events)
	slices.SortStableFunc(seq, func(a, b Event) int {
		return strings.Compare(a.Date, b.Date)
	})
	return seq
}

// IsSorted reports whether every date is lexically <= the next.
func (s Sequence) IsSorted() bool {
	return slices.IsSortedFunc(s, func(a, b Event) int {
		return strings.Compare(a.Date, b.Date)
	})
}

// Count returns how many events carry the given definition code.
func (s Sequence) Count(definition string) int {
	n := 0
	for _, ev := range s {
		if ev.Definition == definition {
			n++
		}
	}
	return n
}
