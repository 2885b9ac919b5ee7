package textfilter

import (
	"testing"
)

func TestNameFilter_Clean(t *testing.T) {
	filter := NewNameFilter(0)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean",
			input:    "新伊甸",
			expected: "新伊甸",
		},
		{
			name:     "trims and collapses whitespace",
			input:    "  Terra \t  Nova\n",
			expected: "Terra Nova",
		},
		{
			name:     "ideographic space",
			input:    "银河　共和国",
			expected: "银河 共和国",
		},
		{
			name:     "full-width latin folded",
			input:    "ＵＮＥ　Ｆｌｅｅｔ",
			expected: "UNE Fleet",
		},
		{
			name:     "control and format characters dropped",
			input:    "Sol\u0007 Sys\u200btem",
			expected: "Sol System",
		},
		{
			name:     "template braces dropped",
			input:    "{colony_name}",
			expected: "colony_name",
		},
		{
			name:     "decomposed accents composed",
			input:    "Cafe\u0301",
			expected: "Caf\u00e9",
		},
		{
			name:     "blank",
			input:    " \t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.Clean(tt.input)
			if result != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNameFilter_Truncates(t *testing.T) {
	filter := NewNameFilter(3)

	tests := map[string]string{
		"abcdef":   "abc",
		"ab cd":    "ab",
		"星辰联邦共和国": "星辰联",
	}
	for input, expected := range tests {
		if got := filter.Clean(input); got != expected {
			t.Errorf("Clean(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestNameFilter_CleanAll(t *testing.T) {
	filter := NewNameFilter(0)
	names := map[string]string{
		"colony_0_2200.01.01": "  新港 ",
		"leviathan_unknown":   "\u200b",
	}

	filter.CleanAll(names)

	if len(names) != 1 {
		t.Fatalf("expected 1 name left, got %d: %v", len(names), names)
	}
	if names["colony_0_2200.01.01"] != "新港" {
		t.Errorf("unexpected cleaned value %q", names["colony_0_2200.01.01"])
	}
}
