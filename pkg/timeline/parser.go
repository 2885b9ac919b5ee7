package timeline

import (
	"io"
	"log/slog"
)

// Parser turns raw save text into a Sequence.
type Parser struct {
	logger *slog.Logger
	marker string
}

// NewParser returns a Parser for the timeline_events block. A nil logger
// discards the per-record warnings.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{
		logger: logger,
		marker: TimelineMarker,
	}
}

// Parse extracts the timeline block, decodes every event in it and returns
// them ordered by date. Only a missing or unbalanced block is an error;
// fragments that fail to decode are logged and skipped.
func (p *Parser) Parse(raw string) (Sequence, error) {
	block, err := ExtractBlock(raw, p.marker)
	if err != nil {
		p.logger.Error("Failed to extract timeline block", "marker", p.marker, "error", err)
		return nil, err
	}

	var (
		events  []Event
		skipped int
	)
	SplitEvents(block, func(fragment string) {
		ev, err := DecodeEvent(fragment)
		if err != nil {
			skipped++
			p.logger.Warn("Skipping timeline event", "error", err, "fragment_bytes", len(fragment))
			return
		}
		events = append(events, ev)
	})

	seq := NewSequence(events)
	p.logger.Info("Timeline parsed", "events", len(seq), "skipped", skipped, "block_bytes", len(block))
	return seq, nil
}

// Parse runs a Parser without logging.
func Parse(raw string) (Sequence, error) {
	return NewParser(nil).Parse(raw)
}
