package chronicle

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

const (
	// EmpireMarker stands for the player's empire in every template.
	EmpireMarker = "[玩家帝国]"
	// DefaultEmpireName replaces EmpireMarker when no name was supplied.
	DefaultEmpireName = "玩家帝国"
	// YearMarkerCode is the definition code of the yearly marker events.
	YearMarkerCode = "timeline_event_year"
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Registry is a read-only lookup from definition code to template.
type Registry struct {
	templates map[string]string
}

// NewRegistry builds a registry from a copy of templates.
func NewRegistry(templates map[string]string) *Registry {
	r := &Registry{templates: make(map[string]string, len(templates))}
	maps.Copy(r.templates, templates)
	return r
}

var defaultRegistry = NewRegistry(builtinTemplates)

// DefaultRegistry returns the registry of built-in templates.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup returns the template for a definition code. Unknown codes are normal.
func (r *Registry) Lookup(code string) (string, bool) {
	t, ok := r.templates[code]
	return t, ok
}

func (r *Registry) Len() int {
	return len(r.templates)
}

// Codes returns every known definition code, sorted.
func (r *Registry) Codes() []string {
	return slices.Sorted(maps.Keys(r.templates))
}

// Title is the short event name shown on the timeline: the third
// underscore-separated part of the template with category words removed, or
// the subtitle when nothing is left of it.
func (r *Registry) Title(code string) string {
	t, ok := r.templates[code]
	if !ok {
		return "未知事件"
	}
	parts := strings.Split(t, "_")
	if len(parts) < 3 {
		return "事件"
	}
	if title := categoryWords.Replace(parts[2]); title != "" {
		return title
	}
	return parts[1]
}

// Description is the event label used in requirement entries.
func (r *Registry) Description(code string) string {
	t, ok := r.templates[code]
	if !ok {
		return "未知事件"
	}
	parts := strings.Split(t, "_")
	if len(parts) > 2 {
		return parts[2]
	}
	return "事件"
}

var categoryWords = strings.NewReplacer("里程碑", "", "帝国事件", "", "危机事件", "", "星系事件", "")

// Placeholders returns the distinct {identifier} names in a template in order
// of first appearance.
func Placeholders(template string) []string {
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}
