package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/chronicle-engine/internal/handlers"
)

// StepAction selects the endpoint a step calls.
type StepAction string

const (
	ActionRequirements StepAction = "requirements"
	ActionOverrides    StepAction = "overrides"
	ActionChronicle    StepAction = "chronicle"
	ActionTimeline     StepAction = "timeline"
	ActionReport       StepAction = "report"
	// ActionReset uploads the save again and continues on the new session.
	ActionReset StepAction = "reset"
)

// TestSuite defines a complete integration test scenario
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string     `json:"name"`
	Save  string     `json:"save,omitempty"`  // Save file, relative to the case file
	Steps []TestStep `json:"steps,omitempty"` // Used for regular tests
	Cases []string   `json:"cases,omitempty"` // Used for suite tests (list of case files)

	dir string
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep defines a single API call and its expected outcomes
type TestStep struct {
	Name         string                     `json:"name,omitempty"`
	Action       StepAction                 `json:"action"`
	Overrides    map[string]string          `json:"overrides,omitempty"` // ActionOverrides body
	Chronicle    *handlers.ChronicleRequest `json:"chronicle,omitempty"` // ActionChronicle body
	Query        string                     `json:"query,omitempty"`     // ActionTimeline and ActionReport query string
	Expectations Expectations               `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	Status *int `json:"status,omitempty"` // Defaults to 200

	// Requirement state, for requirements and overrides steps
	RequirementKeys []string `json:"requirement_keys,omitempty"` // Exact, in order
	Ready           *bool    `json:"ready,omitempty"`
	CompletedCount  *int     `json:"completed_count,omitempty"`

	// Chronicle and timeline results
	LineCount *int     `json:"line_count,omitempty"`
	Filtered  *int     `json:"filtered,omitempty"`
	Missing   []string `json:"missing,omitempty"`

	// Response Analysis
	ResponseContains    []string `json:"response_contains,omitempty"`
	ResponseNotContains []string `json:"response_not_contains,omitempty"`
	ResponseRegex       string   `json:"response_regex,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName     string
	StepName     string
	Success      bool
	Error        error
	Duration     time.Duration
	ResponseText string
	IsReset      bool // True if this was a reset step (should not count toward pass/fail metrics)
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job      TestJob
	Results  []TestResult
	Error    error
	Duration time.Duration
	Session  uuid.UUID // ID of the timeline session used for this test
}
