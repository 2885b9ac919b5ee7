package chronicle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// EventCategory buckets events for the timeline view.
type EventCategory string

const (
	CategoryMilestone EventCategory = "milestone"
	CategoryCrisis    EventCategory = "crisis"
	CategoryEmpire    EventCategory = "empire"
	CategoryEvent     EventCategory = "event"
)

// TimelineEntry is one event as shown on the visual timeline.
type TimelineEntry struct {
	Index         int           `json:"index"`
	Date          string        `json:"date"`
	FormattedDate string        `json:"formatted_date"`
	Category      EventCategory `json:"category"`
	Icon          string        `json:"icon"`
	Title         string        `json:"title"`
	Text          string        `json:"text"`
}

var eventIcons = map[string]string{
	"timeline_first_robot":               "🤖",
	"timeline_first_colony":              "🌍",
	"timeline_first_contact":             "👽",
	"timeline_first_war_declared":        "⚔️",
	"timeline_first_war_won":             "🏆",
	"timeline_encountered_leviathan":     "🐉",
	"timeline_destroyed_leviathan":       "⚔️",
	"timeline_galactic_community_formed": "🏛️",
	"timeline_become_the_crisis":         "💀",
	"timeline_great_khan":                "👑",
	"timeline_elections":                 "🗳️",
	"timeline_new_colony":                "🌎",
	"timeline_first_gateway":             "🌀",
	"timeline_first_terraforming":        "🔧",
	"timeline_first_ascension_perk":      "⭐",
	"timeline_synthetic_evolution":       "🔄",
	YearMarkerCode:                       "📅",
}

const defaultIcon = "📋"

// BuildTimeline renders the entries of the visual timeline. Year markers are
// never shown there, whatever opts.IncludeYearMarkers says. Index is the
// event's position in seq.
func BuildTimeline(seq timeline.Sequence, registry *Registry, opts Options) []TimelineEntry {
	if opts.Mode == "" {
		opts.Mode = ModeRandom
	}
	r := NewResolver(registry, opts)

	entries := make([]TimelineEntry, 0, len(seq))
	for index, ev := range seq {
		if ev.Definition == YearMarkerCode {
			continue
		}
		entries = append(entries, TimelineEntry{
			Index:         index,
			Date:          ev.Date,
			FormattedDate: FormatDate(ev.Date),
			Category:      CategorizeEvent(ev.Definition),
			Icon:          Icon(ev.Definition),
			Title:         registry.Title(ev.Definition),
			Text:          r.RenderEvent(ev, index),
		})
	}
	return entries
}

// CategorizeEvent derives the timeline category from a definition code.
func CategorizeEvent(code string) EventCategory {
	switch {
	case strings.Contains(code, "first_"):
		return CategoryMilestone
	case strings.Contains(code, "crisis"), strings.Contains(code, "war"):
		return CategoryCrisis
	case strings.Contains(code, "empire"):
		return CategoryEmpire
	default:
		return CategoryEvent
	}
}

// Icon returns the timeline icon for a definition code.
func Icon(code string) string {
	if icon, ok := eventIcons[code]; ok {
		return icon
	}
	return defaultIcon
}

// FormatDate turns "2200.01.01" into "2200年1月1日". Dates of any other
// shape are returned unchanged.
func FormatDate(date string) string {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return date
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return date
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s年%d月%d日", parts[0], month, day)
}
