package timeline

import (
	"errors"
	"testing"
)

func TestExtractBlock(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		wantErr  error
	}{
		{
			name:     "single line block",
			text:     `version="3.0" timeline_events = { {date="2200.01.01" definition="x"} } galaxy={}`,
			expected: `{ {date="2200.01.01" definition="x"} }`,
		},
		{
			name:     "no spaces around equals",
			text:     "timeline_events={\n\t{\n\t}\n}\nflags={ }",
			expected: "{\n\t{\n\t}\n}",
		},
		{
			name:     "first occurrence wins",
			text:     `timeline_events={ a } timeline_events={ b }`,
			expected: `{ a }`,
		},
		{
			name:     "braces inside quoted strings are literal",
			text:     `timeline_events={ { name="}{" } }`,
			expected: `{ { name="}{" } }`,
		},
		{
			name:    "marker absent",
			text:    `galaxy={ timeline={ } }`,
			wantErr: ErrNotFound,
		},
		{
			name:    "marker must be a whole key",
			text:    `old_timeline_events={ }`,
			wantErr: ErrNotFound,
		},
		{
			name:    "unbalanced braces",
			text:    `timeline_events = { { }`,
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBlock(tt.text, TimelineMarker)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractBlock() error = %v, want %v", err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("ExtractBlock() returned partial block %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBlock() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ExtractBlock() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractBlock_CustomMarker(t *testing.T) {
	got, err := ExtractBlock(`player={ name="x" } country={ 0={ } }`, "country")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "{ 0={ } }" {
		t.Errorf("got %q", got)
	}
}

func TestParseError_Kinds(t *testing.T) {
	_, err := ExtractBlock("nothing here", TimelineMarker)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Kind != KindNotFound {
		t.Errorf("Kind = %s, want %s", perr.Kind, KindNotFound)
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("NotFound error should not match ErrMalformed")
	}

	_, err = ExtractBlock("xx timeline_events={ {", TimelineMarker)
	if !errors.As(err, &perr) || perr.Kind != KindMalformed {
		t.Fatalf("expected malformed ParseError, got %v", err)
	}
	if perr.Offset != 19 {
		t.Errorf("Offset = %d, want 19", perr.Offset)
	}
}

func TestBraceScanner_Depth(t *testing.T) {
	var sc braceScanner
	input := `{ a={ "x}" } }`
	maxDepth := 0
	for i := 0; i < len(input); i++ {
		sc.step(input[i])
		if sc.depth > maxDepth {
			maxDepth = sc.depth
		}
	}
	if maxDepth != 2 {
		t.Errorf("max depth = %d, want 2", maxDepth)
	}
	if sc.depth != 0 || sc.state != stateOutside {
		t.Errorf("scanner should end outside at depth 0, got state %d depth %d", sc.state, sc.depth)
	}
}
