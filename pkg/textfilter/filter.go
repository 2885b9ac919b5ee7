package textfilter

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// MaxNameRunes bounds a cleaned name.
const MaxNameRunes = 40

// NameFilter normalizes names typed by users before they go into a chronicle.
// It is safe for concurrent use.
type NameFilter struct {
	maxRunes int
}

// NewNameFilter creates a filter that keeps at most maxRunes runes. Zero or
// less uses MaxNameRunes.
func NewNameFilter(maxRunes int) *NameFilter {
	if maxRunes <= 0 {
		maxRunes = MaxNameRunes
	}
	return &NameFilter{maxRunes: maxRunes}
}

// Clean normalizes one name: Unicode NFC with full-width Latin folded,
// control characters and template braces removed, whitespace runs collapsed
// to one space, trimmed and truncated.
func (f *NameFilter) Clean(name string) string {
	// full-width Latin typed through an IME becomes plain ASCII
	folded, _, err := transform.String(transform.Chain(width.Fold, norm.NFC), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	space := false
	n := 0
	for _, r := range folded {
		if n == f.maxRunes {
			break
		}
		switch {
		case unicode.IsSpace(r):
			space = b.Len() > 0
			continue
		case unicode.IsControl(r), unicode.Is(unicode.Cf, r), r == '{', r == '}':
			continue
		}
		if space {
			b.WriteByte(' ')
			n++
			space = false
			if n == f.maxRunes {
				break
			}
		}
		b.WriteRune(r)
		n++
	}
	return strings.TrimSpace(b.String())
}

// CleanAll cleans every value of a name table in place. Entries that clean
// to nothing are removed.
func (f *NameFilter) CleanAll(names map[string]string) {
	for k, v := range names {
		if c := f.Clean(v); c != "" {
			names[k] = c
		} else {
			delete(names, k)
		}
	}
}
