package chronicle

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

// slot is one placeholder of one event being resolved.
type slot struct {
	Event       timeline.Event
	Index       int // position of Event in its sequence
	Placeholder string
	Category    Category
}

// strategy proposes a value for a slot, or declines with ok == false.
type strategy func(s slot) (value string, ok bool)

// Resolver fills templates for events. Its strategies run in order and the
// first value wins; the built-in chain is payload field, override, generator,
// literal default.
type Resolver struct {
	registry   *Registry
	opts       Options
	empireName string
	rng        *rand.Rand
	strategies []strategy
}

// NewResolver returns a resolver with the built-in strategy chain.
func NewResolver(registry *Registry, opts Options) *Resolver {
	r := &Resolver{
		registry:   registry,
		opts:       opts,
		empireName: opts.PlayerEmpireName(),
		rng:        opts.rng(),
	}
	r.strategies = []strategy{
		r.fromPayload,
		r.fromOverride,
		r.fromGenerator,
		r.fromLiteralDefault,
	}
	return r
}

// Resolve returns the value for one placeholder. A placeholder no strategy
// can fill resolves to its own "{name}" text so the gap stays visible.
func (r *Resolver) Resolve(ev timeline.Event, index int, placeholder string) string {
	sl := slot{
		Event:       ev,
		Index:       index,
		Placeholder: placeholder,
		Category:    Classify(placeholder),
	}
	for _, next := range r.strategies {
		if v, ok := next(sl); ok {
			return v
		}
	}
	return "{" + placeholder + "}"
}

var substitutionRe = regexp.MustCompile(regexp.QuoteMeta(EmpireMarker) + `|\{(\w+)\}`)

// RenderEvent renders the narrative text of the event at position index.
// Each distinct placeholder is resolved once, in order of first appearance,
// and that value fills every occurrence.
func (r *Resolver) RenderEvent(ev timeline.Event, index int) string {
	template, ok := r.registry.Lookup(ev.Definition)
	if !ok {
		return UnrecognizedText(ev.Definition)
	}

	values := make(map[string]string)
	for _, name := range Placeholders(template) {
		values[name] = r.Resolve(ev, index, name)
	}

	return substitutionRe.ReplaceAllStringFunc(template, func(match string) string {
		if match == EmpireMarker {
			return r.empireName
		}
		return values[match[1:len(match)-1]]
	})
}

// UnrecognizedText is rendered for definition codes with no template.
func UnrecognizedText(code string) string {
	return fmt.Sprintf("未收录事件代码 (%s)，欢迎补充！", code)
}

func (r *Resolver) fromPayload(s slot) (string, bool) {
	return payloadValue(s.Event, s.Placeholder)
}

func (r *Resolver) fromOverride(s slot) (string, bool) {
	if r.opts.Mode != ModeManual {
		return "", false
	}
	key, ok := OverrideKey(s.Placeholder, s.Event, s.Index)
	if !ok {
		return "", false
	}
	return r.opts.Overrides.Lookup(key)
}

func (r *Resolver) fromGenerator(s slot) (string, bool) {
	switch s.Category {
	case CategoryColony:
		return pick(r.rng, planetNames), true
	case CategoryCreature:
		return LeviathanName(s.Event), true
	case CategoryFaction:
		if r.opts.Mode == ModeManual {
			return "", false
		}
		return pick(r.rng, empireNames), true
	default:
		return "", false
	}
}

func (r *Resolver) fromLiteralDefault(s slot) (string, bool) {
	v, ok := literalDefaults[s.Placeholder]
	return v, ok
}

// LeviathanName looks up the display name of an event's creature type.
func LeviathanName(ev timeline.Event) string {
	tag, ok := creatureTag(ev)
	if !ok {
		return untypedLeviathanName
	}
	if name, known := leviathanNames[tag]; known {
		return name
	}
	return unknownLeviathanName
}

// KnownCreatureType reports whether a type tag has a display name.
func KnownCreatureType(tag string) bool {
	_, ok := leviathanNames[tag]
	return ok
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}
