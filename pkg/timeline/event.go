package timeline

import (
	"fmt"
	"regexp"
)

// TimelineMarker is the save-file key holding the timeline event collection.
const TimelineMarker = "timeline_events"

// Event is one decoded timeline record. Events are values; nothing in this
// package mutates one after DecodeEvent returns it.
type Event struct {
	Date       string  `json:"date"`       // YYYY.MM.DD
	Definition string  `json:"definition"` // template key, may be unknown
	Payload    Payload `json:"payload"`
	RawText    string  `json:"raw_text,omitempty"` // original fragment, diagnostics only
}

// Field looks up a value usable for a template placeholder: "date" is always
// available, anything else must be a KeyValueMap field.
func (e Event) Field(name string) (string, bool) {
	if name == "date" {
		return e.Date, true
	}
	return e.Payload.Field(name)
}

var (
	dateFieldRe       = regexp.MustCompile(`\bdate\s*=\s*"([^"]+)"`)
	definitionFieldRe = regexp.MustCompile(`\bdefinition\s*=\s*"([^"]+)"`)
	dataBlockRe       = regexp.MustCompile(`(?s)\bdata\s*=\s*\{([^}]*)\}`)
)

// DecodeEvent parses one event fragment as isolated by SplitEvents.
func DecodeEvent(fragment string) (Event, error) {
	date := dateFieldRe.FindStringSubmatch(fragment)
	if date == nil {
		return Event{}, fmt.Errorf("date: %w", errMissingField)
	}
	def := definitionFieldRe.FindStringSubmatch(fragment)
	if def == nil {
		return Event{}, fmt.Errorf("definition: %w", errMissingField)
	}

	ev := Event{
		Date:       date[1],
		Definition: def[1],
		Payload:    EmptyPayload(),
		RawText:    fragment,
	}

	if data := dataBlockRe.FindStringSubmatch(fragment); data != nil {
		payload, err := ClassifyPayload(data[1])
		if err != nil {
			return Event{}, fmt.Errorf("%s data block: %w", ev.Definition, err)
		}
		ev.Payload = payload
	}

	return ev, nil
}
