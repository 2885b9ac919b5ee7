package timeline

import (
	"strings"
)

// SplitEvents walks a timeline block line by line and calls emit with the
// text of every event sub-block it isolates.
//
// Braces outside quoted strings are first moved onto lines of their own, so
// single-line documents split the same way as the indented saves the game
// writes. An event opens on a line holding only "{" once the running depth
// reaches 2, and closes on a line holding only "}" that brings the depth back
// to exactly 1. Deeper structures inside an event (its data block) are
// accumulated verbatim. A fragment still open at end of input is dropped.
func SplitEvents(block string, emit func(fragment string)) {
	var (
		depth   int
		inEvent bool
		lines   []string
	)

	for _, line := range structuralLines(block) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		depth += countBraces(trimmed)

		switch {
		case !inEvent && trimmed == "{" && depth >= 2:
			inEvent = true
			lines = lines[:0]
		case inEvent:
			lines = append(lines, trimmed)
			if trimmed == "}" && depth == 1 {
				emit(strings.Join(lines, "\n"))
				inEvent = false
			}
		}
	}
}

// Fragments is SplitEvents collecting into a slice.
func Fragments(block string) []string {
	var out []string
	SplitEvents(block, func(fragment string) {
		out = append(out, fragment)
	})
	return out
}

// countBraces returns opened minus closed braces on one line, skipping quoted text.
func countBraces(line string) int {
	var sc braceScanner
	delta := 0
	for i := 0; i < len(line); i++ {
		switch sc.step(line[i]) {
		case tokOpen:
			delta++
		case tokClose:
			delta--
		}
	}
	return delta
}

// structuralLines splits block into lines, additionally breaking before and
// after every brace that is not inside a quoted string.
func structuralLines(block string) []string {
	var (
		out []string
		cur strings.Builder
		sc  braceScanner
	)
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
	}

	for i := 0; i < len(block); i++ {
		c := block[i]
		switch tok := sc.step(c); {
		case c == '\n':
			flush()
		case tok != tokNone:
			flush()
			cur.WriteByte(c)
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return out
}
