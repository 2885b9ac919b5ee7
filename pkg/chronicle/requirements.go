package chronicle

import (
	"fmt"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// RequirementKind names what a requirement asks for.
type RequirementKind string

const (
	KindColonyName    RequirementKind = "colony_name"
	KindLeviathanName RequirementKind = "leviathan_name"
	KindEmpireName    RequirementKind = "empire_name"
)

// Requirement describes one answer manual mode needs from the user. Key is
// the override table key the answer is stored under.
type Requirement struct {
	Kind             RequirementKind `json:"kind"`
	Key              string          `json:"key"`
	EventDate        string          `json:"event_date"`
	EventDescription string          `json:"event_description"`
	PlaceholderLabel string          `json:"placeholder_label"`
	Hint             string          `json:"hint"`
	Required         bool            `json:"required"`
}

// empireNameRequirement always leads the list and may be left blank.
var empireNameRequirement = Requirement{
	Kind:             KindEmpireName,
	Key:              EmpireNameKey,
	EventDate:        "通用",
	EventDescription: "玩家帝国",
	PlaceholderLabel: "玩家帝国名称",
	Hint:             `您的帝国名称（留空将显示为"玩家帝国"）`,
	Required:         false,
}

// AnalyzeRequirements lists, in first-seen order, every answer a manual-mode
// render of seq would use: one per distinct override key among the colony,
// creature and faction placeholders that the events do not fill themselves.
// The optional player empire name entry is always first.
func AnalyzeRequirements(seq timeline.Sequence, registry *Registry) []Requirement {
	reqs := []Requirement{empireNameRequirement}
	seen := map[string]bool{EmpireNameKey: true}

	for index, ev := range seq {
		template, ok := registry.Lookup(ev.Definition)
		if !ok {
			continue
		}
		for _, name := range Placeholders(template) {
			cat := Classify(name)
			if !cat.NeedsInput() {
				continue
			}
			if _, filled := payloadValue(ev, name); filled {
				continue
			}
			key, _ := OverrideKey(name, ev, index)
			if seen[key] {
				continue
			}
			seen[key] = true
			reqs = append(reqs, describe(cat, name, key, ev, registry))
		}
	}
	return reqs
}

func describe(cat Category, placeholder, key string, ev timeline.Event, registry *Registry) Requirement {
	req := Requirement{
		Key:       key,
		EventDate: ev.Date,
		Required:  true,
	}
	switch cat {
	case CategoryColony:
		req.Kind = KindColonyName
		req.EventDescription = "殖民地建立"
		req.PlaceholderLabel = "新殖民地名称"
		req.Hint = "为这个新建立的殖民地命名"
	case CategoryCreature:
		typeName := "未知"
		if name, ok := leviathanNames[CreatureType(ev)]; ok {
			typeName = name
		}
		req.Kind = KindLeviathanName
		req.EventDescription = "星神兽遭遇"
		req.PlaceholderLabel = "星神兽名称"
		req.Hint = fmt.Sprintf("为这个星神兽命名 (类型: %s)", typeName)
	case CategoryFaction:
		role, ok := empireRoles[placeholder]
		if !ok {
			role = "相关帝国"
		}
		req.Kind = KindEmpireName
		req.EventDescription = registry.Description(ev.Definition)
		req.PlaceholderLabel = "帝国名称"
		req.Hint = fmt.Sprintf("为相关帝国命名 (%s)", role)
	}
	return req
}

// CompletedCount counts the answers that are not blank.
func CompletedCount(overrides Overrides) int {
	n := 0
	for key := range overrides {
		if _, ok := overrides.Lookup(key); ok {
			n++
		}
	}
	return n
}

// Ready reports whether every required requirement has an answer.
func Ready(reqs []Requirement, overrides Overrides) bool {
	for _, req := range reqs {
		if !req.Required {
			continue
		}
		if _, ok := overrides.Lookup(req.Key); !ok {
			return false
		}
	}
	return true
}

// Missing returns the required requirements still unanswered.
func Missing(reqs []Requirement, overrides Overrides) []Requirement {
	var out []Requirement
	for _, req := range reqs {
		if _, ok := overrides.Lookup(req.Key); req.Required && !ok {
			out = append(out, req)
		}
	}
	return out
}
