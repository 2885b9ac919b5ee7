package chronicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

func keys(reqs []Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Key
	}
	return out
}

func TestAnalyzeRequirements_EmpireNameFirst(t *testing.T) {
	reqs := AnalyzeRequirements(nil, DefaultRegistry())
	require.Len(t, reqs, 1)
	assert.Equal(t, EmpireNameKey, reqs[0].Key)
	assert.Equal(t, KindEmpireName, reqs[0].Kind)
	assert.False(t, reqs[0].Required)
}

func TestAnalyzeRequirements_Dedup(t *testing.T) {
	seq := timeline.NewSequence([]timeline.Event{
		ev("2201.01.01", "timeline_new_colony", timeline.EmptyPayload()),
		ev("2202.01.01", "timeline_new_colony", timeline.EmptyPayload()),
		ev("2203.01.01", "timeline_encountered_leviathan", kv("leviathan_type", "guardian_dragon")),
		ev("2204.01.01", "timeline_destroyed_leviathan", kv("leviathan_type", "guardian_dragon")),
		ev("2205.01.01", "timeline_new_colony", kv("colony_name", "已命名")),
		ev("2206.01.01", "timeline_war_declared", timeline.EmptyPayload()),
		ev("2207.01.01", "timeline_mystery", timeline.EmptyPayload()),
		ev("2208.01.01", "timeline_first_robot", timeline.EmptyPayload()),
	})

	reqs := AnalyzeRequirements(seq, DefaultRegistry())
	assert.Equal(t, []string{
		EmpireNameKey,
		"colony_0_2201.01.01",
		"colony_1_2202.01.01",
		"leviathan_guardian_dragon",
		"empire_target_empire_5",
	}, keys(reqs))

	colony := reqs[1]
	assert.Equal(t, KindColonyName, colony.Kind)
	assert.Equal(t, "2201.01.01", colony.EventDate)
	assert.Equal(t, "新殖民地名称", colony.PlaceholderLabel)
	assert.True(t, colony.Required)

	creature := reqs[3]
	assert.Equal(t, KindLeviathanName, creature.Kind)
	assert.Equal(t, "为这个星神兽命名 (类型: 以太巨龙)", creature.Hint)

	faction := reqs[4]
	assert.Equal(t, KindEmpireName, faction.Kind)
	assert.Equal(t, "为相关帝国命名 (目标帝国)", faction.Hint)
	assert.Equal(t, "帝国事件", faction.EventDescription)
}

func TestAnalyzeRequirements_UnknownCreatureHint(t *testing.T) {
	seq := timeline.NewSequence([]timeline.Event{
		ev("2203.01.01", "timeline_encountered_leviathan", timeline.EmptyPayload()),
	})
	reqs := AnalyzeRequirements(seq, DefaultRegistry())
	require.Len(t, reqs, 2)
	assert.Equal(t, "leviathan_unknown", reqs[1].Key)
	assert.Equal(t, "为这个星神兽命名 (类型: 未知)", reqs[1].Hint)
}

func TestAnalyzeRequirements_KeysMatchResolver(t *testing.T) {
	seq := timeline.NewSequence([]timeline.Event{
		ev("2201.01.01", "timeline_new_colony", timeline.EmptyPayload()),
		ev("2203.01.01", "timeline_encountered_leviathan", timeline.NumberList(0, 134217816)),
		ev("2206.01.01", "timeline_first_war_won", timeline.EmptyPayload()),
	})
	reqs := AnalyzeRequirements(seq, DefaultRegistry())

	overrides := Overrides{}
	for _, r := range reqs {
		overrides.Set(r.Key, "答案"+r.Key)
	}
	assert.True(t, Ready(reqs, overrides))

	res := Render(seq, DefaultRegistry(), Options{Mode: ModeManual, Overrides: overrides, Rand: NewRand(3)})
	require.Len(t, res.Lines, 3)
	assert.Contains(t, res.Lines[0].Text, "答案colony_0_2201.01.01")
	assert.Contains(t, res.Lines[1].Text, "答案leviathan_0 134217816")
	assert.Contains(t, res.Lines[2].Text, "答案empire_defeated_empire_2")
	assert.Contains(t, res.Lines[0].Text, "答案empire_name")
}

func TestReadyAndCompletedCount(t *testing.T) {
	reqs := []Requirement{
		empireNameRequirement,
		{Key: "colony_0_2201.01.01", Required: true},
		{Key: "leviathan_unknown", Required: true},
	}
	overrides := Overrides{}
	assert.False(t, Ready(reqs, overrides))
	assert.Len(t, Missing(reqs, overrides), 2)
	assert.Equal(t, 0, CompletedCount(overrides))

	overrides.Set("colony_0_2201.01.01", "新港")
	overrides["leviathan_unknown"] = "  "
	assert.False(t, Ready(reqs, overrides))
	assert.Equal(t, 1, CompletedCount(overrides))

	overrides.Set("leviathan_unknown", "巨兽")
	assert.True(t, Ready(reqs, overrides))
	assert.Empty(t, Missing(reqs, overrides))
	assert.Equal(t, 2, CompletedCount(overrides))

	overrides.Set("leviathan_unknown", "")
	_, ok := overrides["leviathan_unknown"]
	assert.False(t, ok)
}
