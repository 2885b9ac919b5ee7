package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/chronicle-engine/internal/handlers"
	"github.com/jwebster45206/chronicle-engine/internal/logger"
	"github.com/jwebster45206/chronicle-engine/internal/storage"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
)

const consoleSave = `timeline_events={
	{
		date="2200.02.10"
		definition="timeline_new_colony"
	}
	{
		date="2201.05.20"
		definition="timeline_encountered_leviathan"
		data={ 0 39 }
	}
}`

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	log := logger.Discard()
	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(nil, log))
	th := handlers.NewTimelineHandler(log, storage.NewMockStorage(), nil, chronicle.DefaultRegistry(), handlers.TimelineOptions{
		MaxUploadBytes: 1 << 20,
	})
	mux.Handle("/v1/timelines", th)
	mux.Handle("/v1/timelines/", th)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &apiClient{client: srv.Client(), baseURL: srv.URL}
}

func TestAPIClient_ManualFlow(t *testing.T) {
	api := newTestAPI(t)
	require.True(t, testConnection(api.client, api.baseURL))

	created, err := api.uploadSave("my save.sav", []byte(consoleSave))
	require.NoError(t, err)
	assert.Equal(t, 2, created.EventCount)
	assert.Equal(t, "my save.sav", created.SourceName)

	reqs, err := api.getRequirements(created.ID)
	require.NoError(t, err)
	require.Len(t, reqs.Requirements, 3)
	assert.False(t, reqs.Ready)

	ui := NewConsoleUI(&ConsoleConfig{}, api, created.ID)
	ui.requirements = reqs.Requirements
	ui.inputs = newInputs(reqs.Requirements, reqs.Overrides)
	ui.inputs[0].SetValue("Terra")
	ui.inputs[1].SetValue("New Haven")
	ui.inputs[2].SetValue("Old Guard")

	updated, err := api.putOverrides(created.ID, ui.answers())
	require.NoError(t, err)
	assert.True(t, updated.Ready)

	resp, err := api.renderChronicle(created.ID, handlers.ChronicleRequest{Mode: string(chronicle.ModeManual)})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)
	assert.Contains(t, resp.Lines[0].Text, "Terra在New Haven设立殖民地")
	assert.Contains(t, resp.Lines[1].Text, "遭遇了Old Guard")
	assert.Empty(t, resp.Missing)
}

func TestAPIClient_Errors(t *testing.T) {
	api := newTestAPI(t)

	_, err := api.uploadSave("empty.sav", []byte(`name="x"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")

	created, err := api.uploadSave("ok.sav", []byte(consoleSave))
	require.NoError(t, err)
	_, err = api.renderChronicle(created.ID, handlers.ChronicleRequest{Mode: "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generation mode")

	offline := &apiClient{client: http.DefaultClient, baseURL: "http://127.0.0.1:1"}
	assert.False(t, testConnection(offline.client, offline.baseURL))
}

func TestFormatChronicle(t *testing.T) {
	lines := []chronicle.Line{
		{Date: "2200.01.01", Text: "short"},
		{Date: "2201.01.01", Text: "one two three four five six seven eight nine ten"},
	}
	out := formatChronicle(lines, 30)
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Greater(t, len(rows), 2)
	assert.Contains(t, rows[0], "short")
	assert.True(t, strings.HasPrefix(rows[len(rows)-1], strings.Repeat(" ", len("2201.01.01 - "))))

	assert.Contains(t, formatChronicle(nil, 30), "No events")
}

func TestNewInputs_PrefillAndFocus(t *testing.T) {
	reqs := []chronicle.Requirement{
		{Key: chronicle.EmpireNameKey, Hint: "name"},
		{Key: "colony_0_2200.01.01", Required: true},
	}
	inputs := newInputs(reqs, chronicle.Overrides{"colony_0_2200.01.01": " Nova "})
	require.Len(t, inputs, 2)
	assert.True(t, inputs[0].Focused())
	assert.False(t, inputs[1].Focused())
	assert.Equal(t, "Nova", inputs[1].Value())
	assert.Equal(t, "name", inputs[0].Placeholder)
}
