package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/chronicle-engine/internal/handlers"
	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes integration tests against a running chronicle-engine API
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Timeout           time.Duration
	Logger            func(format string, args ...any)
	ErrorHandlingMode ErrorHandlingMode
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 60 * time.Second},
		Timeout:           30 * time.Second,
		Logger:            func(string, ...any) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}
	suite.dir = filepath.Dir(filename)

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite uploads the suite's save and executes every step against the
// resulting session. The session is deleted afterwards.
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	save, err := os.ReadFile(filepath.Join(suite.dir, suite.Save))
	if err != nil {
		result.Error = fmt.Errorf("failed to read save: %w", err)
		result.Duration = time.Since(start)
		return result, result.Error
	}

	sessionID, err := r.upload(ctx, suite.Name, save)
	if err != nil {
		result.Error = fmt.Errorf("failed to upload save: %w", err)
		result.Duration = time.Since(start)
		return result, result.Error
	}
	result.Session = sessionID

	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)

		var stepResult TestResult
		if step.Action == ActionReset {
			stepResult = r.resetSession(ctx, &sessionID, suite.Name, save, step)
			result.Session = sessionID
		} else {
			stepResult = r.executeStep(ctx, sessionID, step)
		}
		stepResult.TestName = suite.Name
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			// Break only if error handling mode is "exit"
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	if err := r.deleteSession(ctx, result.Session); err != nil {
		r.Logger("    Warning: failed to delete session %s: %v", result.Session, err)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

// upload posts a save and returns the new session ID
func (r *Runner) upload(ctx context.Context, name string, save []byte) (uuid.UUID, error) {
	status, body, err := r.call(ctx, http.MethodPost, "/v1/timelines?name="+url.QueryEscape(name), save)
	if err != nil {
		return uuid.UUID{}, err
	}
	if status != http.StatusCreated {
		return uuid.UUID{}, fmt.Errorf("upload returned %d: %s", status, string(body))
	}

	var created handlers.CreateTimelineResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to decode created session: %w", err)
	}
	return created.ID, nil
}

// resetSession replaces the session with a fresh upload of the same save
func (r *Runner) resetSession(ctx context.Context, sessionID *uuid.UUID, name string, save []byte, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{StepName: step.Name, IsReset: true}

	if err := r.deleteSession(ctx, *sessionID); err != nil {
		result.Error = fmt.Errorf("failed to delete session: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	id, err := r.upload(ctx, name, save)
	if err != nil {
		result.Error = fmt.Errorf("failed to reset session: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	*sessionID = id
	result.Success = true
	result.ResponseText = "[SESSION RESET]"
	result.Duration = time.Since(start)
	return result
}

func (r *Runner) deleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return nil
	}
	status, body, err := r.call(ctx, http.MethodDelete, "/v1/timelines/"+sessionID.String(), nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("delete returned %d: %s", status, string(body))
	}
	return nil
}

// call sends one request; body is sent as JSON unless it is already bytes
func (r *Runner) call(ctx context.Context, method, path string, body any) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to execute %s request: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// observed is what a step saw, normalized across endpoints
type observed struct {
	text         string
	requirements *handlers.RequirementsResponse
	lineCount    int
	filtered     *int
	missing      []string
}

// executeStep performs the actual step execution
func (r *Runner) executeStep(ctx context.Context, sessionID uuid.UUID, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{
		StepName: step.Name,
	}
	fail := func(err error) TestResult {
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}

	base := "/v1/timelines/" + sessionID.String()
	var (
		method = http.MethodGet
		path   string
		body   any
	)
	switch step.Action {
	case ActionRequirements:
		path = base + "/requirements"
	case ActionOverrides:
		method, path, body = http.MethodPut, base+"/overrides", step.Overrides
	case ActionChronicle:
		req := handlers.ChronicleRequest{}
		if step.Chronicle != nil {
			req = *step.Chronicle
		}
		method, path, body = http.MethodPost, base+"/chronicle", req
	case ActionTimeline:
		path = base + "/timeline" + query(step.Query)
	case ActionReport:
		path = base + "/report" + query(step.Query)
	default:
		return fail(fmt.Errorf("unknown step action %q", step.Action))
	}

	status, data, err := r.call(ctx, method, path, body)
	if err != nil {
		return fail(err)
	}

	wantStatus := http.StatusOK
	if step.Expectations.Status != nil {
		wantStatus = *step.Expectations.Status
	}
	if status != wantStatus {
		return fail(fmt.Errorf("expected status %d, got %d: %s", wantStatus, status, string(data)))
	}

	obs, err := decodeObserved(step.Action, status, data)
	if err != nil {
		return fail(err)
	}
	result.ResponseText = obs.text

	if err := checkExpectations(step.Expectations, obs); err != nil {
		return fail(fmt.Errorf("expectation failed: %w", err))
	}

	result.Success = true
	result.Duration = time.Since(start)
	return result
}

func decodeObserved(action StepAction, status int, data []byte) (observed, error) {
	obs := observed{text: string(data)}
	if status != http.StatusOK {
		return obs, nil
	}

	switch action {
	case ActionRequirements, ActionOverrides:
		var resp handlers.RequirementsResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return obs, fmt.Errorf("failed to decode requirements: %w", err)
		}
		obs.requirements = &resp
	case ActionChronicle:
		var resp handlers.ChronicleResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return obs, fmt.Errorf("failed to decode chronicle: %w", err)
		}
		obs.text = resp.Text
		obs.lineCount = len(resp.Lines)
		obs.filtered = &resp.Filtered
		obs.missing = resp.Missing
	case ActionTimeline:
		var entries []chronicle.TimelineEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return obs, fmt.Errorf("failed to decode timeline: %w", err)
		}
		texts := make([]string, len(entries))
		for i, e := range entries {
			texts[i] = e.FormattedDate + " " + e.Title + " " + e.Text
		}
		obs.text = strings.Join(texts, "\n")
		obs.lineCount = len(entries)
	case ActionReport:
		var rep chronicle.Report
		if err := json.Unmarshal(data, &rep); err != nil {
			return obs, fmt.Errorf("failed to decode report: %w", err)
		}
		obs.text = rep.String()
	}
	return obs, nil
}

// checkExpectations validates the test expectations against what the step observed
func checkExpectations(exp Expectations, obs observed) error {
	if exp.RequirementKeys != nil || exp.Ready != nil || exp.CompletedCount != nil {
		if obs.requirements == nil {
			return fmt.Errorf("requirement expectations need a requirements or overrides step")
		}
		if exp.RequirementKeys != nil {
			keys := make([]string, len(obs.requirements.Requirements))
			for i, req := range obs.requirements.Requirements {
				keys[i] = req.Key
			}
			if !slices.Equal(keys, exp.RequirementKeys) {
				return fmt.Errorf("expected requirement keys %v, got %v", exp.RequirementKeys, keys)
			}
		}
		if exp.Ready != nil && obs.requirements.Ready != *exp.Ready {
			return fmt.Errorf("expected ready to be %t, got %t", *exp.Ready, obs.requirements.Ready)
		}
		if exp.CompletedCount != nil && obs.requirements.CompletedCount != *exp.CompletedCount {
			return fmt.Errorf("expected completed_count to be %d, got %d", *exp.CompletedCount, obs.requirements.CompletedCount)
		}
	}

	if exp.LineCount != nil && obs.lineCount != *exp.LineCount {
		return fmt.Errorf("expected %d lines, got %d", *exp.LineCount, obs.lineCount)
	}

	if exp.Filtered != nil {
		if obs.filtered == nil {
			return fmt.Errorf("filtered expectation needs a chronicle step")
		}
		if *obs.filtered != *exp.Filtered {
			return fmt.Errorf("expected %d filtered year markers, got %d", *exp.Filtered, *obs.filtered)
		}
	}

	if exp.Missing != nil && !slices.Equal(obs.missing, exp.Missing) {
		return fmt.Errorf("expected missing keys %v, got %v", exp.Missing, obs.missing)
	}

	for _, expectedText := range exp.ResponseContains {
		if !strings.Contains(obs.text, expectedText) {
			return fmt.Errorf("expected response to contain '%s', but it didn't", expectedText)
		}
	}

	for _, unexpectedText := range exp.ResponseNotContains {
		if strings.Contains(obs.text, unexpectedText) {
			return fmt.Errorf("expected response to NOT contain '%s', but it did", unexpectedText)
		}
	}

	if exp.ResponseRegex != "" {
		matched, err := regexp.MatchString(exp.ResponseRegex, obs.text)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		if !matched {
			return fmt.Errorf("response didn't match regex pattern: %s", exp.ResponseRegex)
		}
	}

	return nil
}

func query(q string) string {
	if q == "" || strings.HasPrefix(q, "?") {
		return q
	}
	return "?" + q
}
