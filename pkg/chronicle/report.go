package chronicle

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// Report summarizes what a chronicle was generated from.
type Report struct {
	TotalEvents         int  `json:"total_events"`
	KnownEvents         int  `json:"known_events"`
	YearMarkers         int  `json:"year_markers"`
	YearMarkersIncluded bool `json:"year_markers_included"`
	// UnknownCodes counts occurrences of each definition code with no template.
	UnknownCodes map[string]int `json:"unknown_codes,omitempty"`
	// UnknownCreatures lists creature type tags with no display name, sorted.
	UnknownCreatures []string `json:"unknown_creatures,omitempty"`
}

// BuildReport gathers the generation statistics of seq.
func BuildReport(seq timeline.Sequence, registry *Registry, includeYearMarkers bool) Report {
	rep := Report{
		TotalEvents:         len(seq),
		YearMarkersIncluded: includeYearMarkers,
		UnknownCodes:        make(map[string]int),
	}
	creatures := make(map[string]struct{})

	for _, ev := range seq {
		if ev.Definition == YearMarkerCode {
			rep.YearMarkers++
		}
		template, ok := registry.Lookup(ev.Definition)
		if !ok {
			rep.UnknownCodes[ev.Definition]++
			continue
		}
		rep.KnownEvents++
		if !slices.Contains(Placeholders(template), "leviathan_name") {
			continue
		}
		if tag, ok := creatureTag(ev); ok && !KnownCreatureType(tag) {
			creatures[tag] = struct{}{}
		}
	}
	rep.UnknownCreatures = slices.Sorted(maps.Keys(creatures))
	return rep
}

// String renders the report as plain text.
func (r Report) String() string {
	rule := strings.Repeat("=", 40)
	lines := []string{
		rule,
		"群星帝国编年史生成统计",
		rule,
		"",
		fmt.Sprintf("总事件数: %d", r.TotalEvents),
		fmt.Sprintf("已知事件: %d", r.KnownEvents),
		fmt.Sprintf("未知事件: %d", r.TotalEvents-r.KnownEvents),
	}
	if r.YearMarkersIncluded {
		lines = append(lines, fmt.Sprintf("年度标记事件: %d (已包含)", r.YearMarkers))
	} else {
		lines = append(lines, fmt.Sprintf("年度标记事件: %d (已过滤)", r.YearMarkers))
	}

	if len(r.UnknownCodes) > 0 {
		lines = append(lines, "", "未知事件代码:")
		for _, code := range slices.Sorted(maps.Keys(r.UnknownCodes)) {
			lines = append(lines, fmt.Sprintf("- %s (出现%d次)", code, r.UnknownCodes[code]))
		}
	}
	if len(r.UnknownCreatures) > 0 {
		lines = append(lines, "", "发现未知星神兽代码:", strings.Repeat("=", 25))
		for _, tag := range r.UnknownCreatures {
			lines = append(lines, "- "+tag)
		}
		lines = append(lines, "", "这些代码对应的星神兽名称尚未收录，欢迎提交反馈！")
	}
	return strings.Join(lines, "\n") + "\n"
}
