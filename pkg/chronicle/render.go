package chronicle

import (
	"fmt"
	"strings"
	"time"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// Title heads every chronicle between two rules.
const Title = "群星帝国编年史"

const ruleWidth = 60

// Line is one dated entry of a rendered chronicle.
type Line struct {
	Index      int    `json:"index"`
	Date       string `json:"date"`
	Definition string `json:"definition"`
	Text       string `json:"text"`
}

func (l Line) String() string {
	return l.Date + " - " + l.Text
}

// Result is a rendered chronicle.
type Result struct {
	Text     string `json:"text"`
	Lines    []Line `json:"lines"`
	Filtered int    `json:"filtered"`
	Mode     Mode   `json:"mode"`
}

// Header returns the lines that open every chronicle.
func Header() []string {
	rule := strings.Repeat("=", ruleWidth)
	return []string{rule, Title, rule, ""}
}

// Render produces the chronicle for seq: the header followed by one
// "DATE - TEXT" line per event in sequence order. Year markers are counted in
// Filtered and skipped unless opts.IncludeYearMarkers is set.
func Render(seq timeline.Sequence, registry *Registry, opts Options) Result {
	if opts.Mode == "" {
		opts.Mode = ModeRandom
	}
	r := NewResolver(registry, opts)

	res := Result{
		Lines: make([]Line, 0, len(seq)),
		Mode:  opts.Mode,
	}
	for index, ev := range seq {
		if !opts.IncludeYearMarkers && ev.Definition == YearMarkerCode {
			res.Filtered++
			continue
		}
		res.Lines = append(res.Lines, Line{
			Index:      index,
			Date:       ev.Date,
			Definition: ev.Definition,
			Text:       r.RenderEvent(ev, index),
		})
	}

	out := Header()
	for _, l := range res.Lines {
		out = append(out, l.String())
	}
	res.Text = strings.Join(out, "\n")
	return res
}

// ExportFilename is the file name a chronicle rendered at t is saved under.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("群星编年史_%s.txt", t.Format(time.DateOnly))
}
