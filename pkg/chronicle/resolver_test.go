package chronicle

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

func ev(date, code string, payload timeline.Payload) timeline.Event {
	return timeline.Event{Date: date, Definition: code, Payload: payload}
}

func kv(pairs ...string) timeline.Payload {
	m := make(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return timeline.KeyValueMap(m)
}

func TestRenderEvent_PayloadBeatsOverride(t *testing.T) {
	e := ev("2201.03.04", "timeline_new_colony", kv("colony_name", "Earth Prime"))
	r := NewResolver(DefaultRegistry(), Options{
		Mode:      ModeManual,
		Overrides: Overrides{"colony_0_2201.03.04": "Override Town"},
		Rand:      NewRand(1),
	})

	got := r.RenderEvent(e, 0)
	assert.Equal(t, "新殖民地_新殖民地_帝国事件_玩家帝国在Earth Prime设立殖民地", got)
}

func TestRenderEvent_OverrideUsedInManualModeOnly(t *testing.T) {
	e := ev("2201.03.04", "timeline_new_colony", timeline.EmptyPayload())
	overrides := Overrides{"colony_2_2201.03.04": "  新港  "}

	manual := NewResolver(DefaultRegistry(), Options{Mode: ModeManual, Overrides: overrides, Rand: NewRand(1)})
	assert.Contains(t, manual.RenderEvent(e, 2), "在新港设立殖民地")

	random := NewResolver(DefaultRegistry(), Options{Mode: ModeRandom, Overrides: overrides, Rand: NewRand(1)})
	got := random.RenderEvent(e, 2)
	assert.NotContains(t, got, "新港设立")
	assert.True(t, slices.ContainsFunc(planetNames, func(n string) bool {
		return strings.Contains(got, "在"+n+"设立殖民地")
	}), "random colony name should come from the pool: %s", got)
}

func TestRenderEvent_BlankOverrideFallsThrough(t *testing.T) {
	e := ev("2210.01.01", "timeline_war_declared", timeline.EmptyPayload())
	r := NewResolver(DefaultRegistry(), Options{
		Mode:      ModeManual,
		Overrides: Overrides{"empire_target_empire_0": "   "},
		Rand:      NewRand(1),
	})

	// manual mode skips the faction pool and lands on the literal default
	assert.Contains(t, r.RenderEvent(e, 0), "[帝国未知帝国]")
}

func TestRenderEvent_Creature(t *testing.T) {
	tests := []struct {
		name    string
		payload timeline.Payload
		want    string
	}{
		{"named type", kv("leviathan_type", "guardian_dragon"), "以太巨龙"},
		{"numeric type", timeline.NumberList(0, 39, 7), "神秘堡垒"},
		{"unknown type", kv("leviathan_type", "guardian_kraken"), unknownLeviathanName},
		{"no type", timeline.EmptyPayload(), untypedLeviathanName},
	}
	r := NewResolver(DefaultRegistry(), Options{Rand: NewRand(1)})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RenderEvent(ev("2220.01.01", "timeline_encountered_leviathan", tt.payload), 0)
			assert.True(t, strings.HasSuffix(got, "遭遇了"+tt.want), got)
		})
	}
}

func TestRenderEvent_Unrecognized(t *testing.T) {
	r := NewResolver(DefaultRegistry(), Options{Rand: NewRand(1)})
	got := r.RenderEvent(ev("2200.01.01", "timeline_made_up_thing", timeline.EmptyPayload()), 0)
	assert.Contains(t, got, "timeline_made_up_thing")
	assert.Equal(t, UnrecognizedText("timeline_made_up_thing"), got)
}

func TestRenderEvent_RepeatedPlaceholderResolvedOnce(t *testing.T) {
	reg := NewRegistry(map[string]string{
		"twice":   "a_b_c_{colony_name} and {colony_name} again",
		"missing": "a_b_c_{no_such_thing}",
		"year":    "年度标记_{date}_{date}年",
	})
	r := NewResolver(reg, Options{Rand: NewRand(7)})

	got := r.RenderEvent(ev("2200.01.01", "twice", timeline.EmptyPayload()), 0)
	var name string
	for _, n := range planetNames {
		if strings.HasPrefix(got, "a_b_c_"+n+" and ") {
			name = n
		}
	}
	require.NotEmpty(t, name, got)
	assert.Equal(t, "a_b_c_"+name+" and "+name+" again", got)

	assert.Equal(t, "a_b_c_{no_such_thing}", r.RenderEvent(ev("2200.01.01", "missing", timeline.EmptyPayload()), 0))
	assert.Equal(t, "年度标记_2231.01.01_2231.01.01年", r.RenderEvent(ev("2231.01.01", "year", timeline.EmptyPayload()), 0))
}

func TestPlayerEmpireName(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", Options{}, DefaultEmpireName},
		{"caller name", Options{EmpireName: " 人类联邦 "}, "人类联邦"},
		{"manual override wins", Options{Mode: ModeManual, EmpireName: "人类联邦", Overrides: Overrides{EmpireNameKey: "地球共和国"}}, "地球共和国"},
		{"override ignored in random", Options{Mode: ModeRandom, Overrides: Overrides{EmpireNameKey: "地球共和国"}}, DefaultEmpireName},
		{"blank override", Options{Mode: ModeManual, EmpireName: "人类联邦", Overrides: Overrides{EmpireNameKey: " "}}, "人类联邦"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.PlayerEmpireName())
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeRandom, m)

	m, err = ParseMode(" Manual ")
	require.NoError(t, err)
	assert.Equal(t, ModeManual, m)

	_, err = ParseMode("lucky")
	assert.Error(t, err)
}

func TestOverrideKey(t *testing.T) {
	e := ev("2205.06.07", "x", kv("leviathan_type", "guardian_sphere"))

	key, ok := OverrideKey("colony_name", e, 3)
	assert.True(t, ok)
	assert.Equal(t, "colony_3_2205.06.07", key)

	key, _ = OverrideKey("leviathan_name", e, 3)
	assert.Equal(t, "leviathan_guardian_sphere", key)

	key, _ = OverrideKey("leviathan_name", ev("2205.06.07", "x", timeline.EmptyPayload()), 3)
	assert.Equal(t, "leviathan_unknown", key)

	key, _ = OverrideKey("target_empire", e, 3)
	assert.Equal(t, "empire_target_empire_3", key)

	_, ok = OverrideKey("location", e, 3)
	assert.False(t, ok)
}
