package timeline

import (
	"regexp"
)

// scanState is the position of a braceScanner relative to the braces it has seen.
type scanState int

const (
	stateOutside scanState = iota // depth 0, before or after a block
	stateInside                   // inside a block at depth >= 1
	stateQuoted                   // inside a quoted string; braces are literal
)

// token is what a single byte meant to a braceScanner.
type token int

const (
	tokNone token = iota
	tokOpen
	tokClose
)

// braceScanner is a balanced-bracket state machine. Feed it one byte at a
// time with step; it tracks depth and ignores braces inside "quoted" text.
type braceScanner struct {
	state   scanState
	depth   int
	escaped bool
	resume  scanState // state to return to when a quoted string closes
}

// step advances the scanner by one byte.
func (s *braceScanner) step(c byte) token {
	if s.state == stateQuoted {
		switch {
		case s.escaped:
			s.escaped = false
		case c == '\\':
			s.escaped = true
		case c == '"':
			s.state = s.resume
		}
		return tokNone
	}

	switch c {
	case '"':
		s.resume = s.state
		s.state = stateQuoted
	case '{':
		s.depth++
		s.state = stateInside
		return tokOpen
	case '}':
		if s.depth > 0 {
			s.depth--
		}
		if s.depth == 0 {
			s.state = stateOutside
		}
		return tokClose
	}
	return tokNone
}

// ExtractBlock finds the first `marker = {` assignment in text and returns the
// balanced block that follows it, from the opening brace through the brace
// that closes it, both inclusive.
//
// It fails with ErrNotFound when the marker assignment does not occur and with
// ErrMalformed when the input ends before the block is closed.
func ExtractBlock(text, marker string) (string, error) {
	re, err := markerPattern(marker)
	if err != nil {
		return "", err
	}

	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", &ParseError{Kind: KindNotFound, Marker: marker}
	}

	start := loc[1] - 1 // the opening brace is the last byte of the match
	var sc braceScanner
	for i := start; i < len(text); i++ {
		if sc.step(text[i]) == tokClose && sc.depth == 0 {
			return text[start : i+1], nil
		}
	}

	return "", &ParseError{Kind: KindMalformed, Marker: marker, Offset: start}
}

var timelineMarkerRe = regexp.MustCompile(`\b` + regexp.QuoteMeta(TimelineMarker) + `\s*=\s*\{`)

func markerPattern(marker string) (*regexp.Regexp, error) {
	if marker == TimelineMarker {
		return timelineMarkerRe, nil
	}
	return regexp.Compile(`\b` + regexp.QuoteMeta(marker) + `\s*=\s*\{`)
}
