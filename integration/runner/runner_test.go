package runner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/chronicle-engine/internal/handlers"
	"github.com/jwebster45206/chronicle-engine/internal/logger"
	"github.com/jwebster45206/chronicle-engine/internal/storage"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
)

// newTestRunner points a Runner at an in-process API backed by MockStorage.
func newTestRunner(t *testing.T) (*Runner, *storage.MockStorage) {
	t.Helper()
	log := logger.Discard()
	store := storage.NewMockStorage()

	mux := http.NewServeMux()
	th := handlers.NewTimelineHandler(log, store, nil, chronicle.DefaultRegistry(), handlers.TimelineOptions{
		MaxUploadBytes: 1 << 20,
	})
	mux.Handle("/v1/timelines", th)
	mux.Handle("/v1/timelines/", th)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	r := NewRunner(srv.URL + "/")
	r.Client = srv.Client()
	r.Logger = t.Logf
	return r, store
}

func TestRunner_Cases(t *testing.T) {
	for _, name := range []string{"manual_mode.json", "random_mode.json"} {
		t.Run(name, func(t *testing.T) {
			r, store := newTestRunner(t)
			jobs, err := LoadTestSuiteWithExpansion(filepath.Join("..", "cases", name), filepath.Join("..", "cases"))
			require.NoError(t, err)
			require.Len(t, jobs, 1)

			result, err := r.RunSuite(context.Background(), jobs[0].Suite)
			require.NoError(t, err)
			for _, step := range result.Results {
				assert.True(t, step.Success, "%s: %v", step.StepName, step.Error)
			}

			// sessions are cleaned up after the run
			session, err := store.LoadSession(context.Background(), result.Session)
			require.NoError(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestRunner_ReportsFailedExpectations(t *testing.T) {
	r, _ := newTestRunner(t)
	wrong := 99
	suite := TestSuite{
		Name: "wrong_count",
		Save: "early_game.txt",
		dir:  filepath.Join("..", "cases", "saves"),
		Steps: []TestStep{
			{Name: "bad count", Action: ActionChronicle, Expectations: Expectations{LineCount: &wrong}},
			{Name: "still runs", Action: ActionRequirements},
		},
	}

	result, err := r.RunSuite(context.Background(), suite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 99 lines")
	require.Len(t, result.Results, 2)
	assert.False(t, result.Results[0].Success)
	assert.True(t, result.Results[1].Success)

	r.ErrorHandlingMode = ErrorHandlingExit
	result, err = r.RunSuite(context.Background(), suite)
	require.Error(t, err)
	assert.Len(t, result.Results, 1)
}

func TestCheckExpectations(t *testing.T) {
	yes := true
	obs := observed{
		text: "2200.01.01 - 人类联邦首先遭遇智慧生命",
		requirements: &handlers.RequirementsResponse{
			Requirements: []chronicle.Requirement{{Key: chronicle.EmpireNameKey}},
			Ready:        true,
		},
	}

	assert.NoError(t, checkExpectations(Expectations{
		RequirementKeys:  []string{chronicle.EmpireNameKey},
		Ready:            &yes,
		ResponseContains: []string{"人类联邦"},
		ResponseRegex:    `^\d{4}\.\d{2}\.\d{2} - `,
	}, obs))

	assert.Error(t, checkExpectations(Expectations{ResponseNotContains: []string{"智慧生命"}}, obs))
	assert.Error(t, checkExpectations(Expectations{ResponseRegex: `(`}, obs))
	assert.Error(t, checkExpectations(Expectations{RequirementKeys: []string{"x"}}, obs))
	assert.Error(t, checkExpectations(Expectations{Ready: &yes}, observed{}))
}
