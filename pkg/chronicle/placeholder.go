package chronicle

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// Category groups placeholders that share an override key scheme and a
// value generator.
type Category int

const (
	CategoryPlain    Category = iota // literal default only
	CategoryColony                   // colony_name
	CategoryCreature                 // leviathan_name
	CategoryFaction                  // other empires
)

// Classify returns the category of a placeholder identifier.
func Classify(placeholder string) Category {
	switch placeholder {
	case "colony_name":
		return CategoryColony
	case "leviathan_name":
		return CategoryCreature
	case "target_empire", "defeated_empire", "subject_empire", "fallen_empire":
		return CategoryFaction
	default:
		return CategoryPlain
	}
}

// NeedsInput reports whether placeholders of this category are asked of the
// user in manual mode.
func (c Category) NeedsInput() bool {
	return c != CategoryPlain
}

// EmpireNameKey is the override key of the player's empire name.
const EmpireNameKey = "empire_name"

const unknownCreatureType = "unknown"

// OverrideKey derives the override table key for a placeholder of event ev at
// position index in its sequence. Colonies are keyed per event, creatures per
// creature type so repeated sightings share one answer, and factions per
// event and role. Plain placeholders have no key.
func OverrideKey(placeholder string, ev timeline.Event, index int) (string, bool) {
	switch Classify(placeholder) {
	case CategoryColony:
		return fmt.Sprintf("colony_%d_%s", index, ev.Date), true
	case CategoryCreature:
		return "leviathan_" + CreatureType(ev), true
	case CategoryFaction:
		return fmt.Sprintf("empire_%s_%d", placeholder, index), true
	default:
		return "", false
	}
}

// CreatureType returns the creature type tag of an event: its leviathan_type
// field, else the first two numbers of a number-list payload, else "unknown".
func CreatureType(ev timeline.Event) string {
	if tag, ok := creatureTag(ev); ok {
		return tag
	}
	return unknownCreatureType
}

func creatureTag(ev timeline.Event) (string, bool) {
	if v, ok := ev.Payload.Field("leviathan_type"); ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	if ev.Payload.Kind == timeline.PayloadNumberList && len(ev.Payload.Numbers) >= 2 {
		return fmt.Sprintf("%d %d", ev.Payload.Numbers[0], ev.Payload.Numbers[1]), true
	}
	return "", false
}

// payloadValue returns the event's own value for a placeholder. A blank
// field counts as absent.
func payloadValue(ev timeline.Event, placeholder string) (string, bool) {
	v, ok := ev.Field(placeholder)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
