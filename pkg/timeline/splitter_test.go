package timeline

import (
	"reflect"
	"testing"
)

const indentedBlock = `{
	{
		date="2200.01.01"
		definition="timeline_origin_default"
	}
	{
		date="2203.05.12"
		definition="timeline_first_colony"
		data={
			colony_name="Nova"
		}
	}
}`

func TestSplitEvents(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		expected []string
	}{
		{
			name:  "indented save layout",
			block: indentedBlock,
			expected: []string{
				"date=\"2200.01.01\"\ndefinition=\"timeline_origin_default\"\n}",
				"date=\"2203.05.12\"\ndefinition=\"timeline_first_colony\"\ndata=\n{\ncolony_name=\"Nova\"\n}\n}",
			},
		},
		{
			name:     "single line block",
			block:    `{ {date="2200.01.01" definition="x"} }`,
			expected: []string{"date=\"2200.01.01\" definition=\"x\"\n}"},
		},
		{
			name:  "blank lines are skipped",
			block: "{\n\n\t{\n\n\t\tdate=\"2200.01.01\"\n\n\t}\n}",
			expected: []string{
				"date=\"2200.01.01\"\n}",
			},
		},
		{
			name:     "unterminated fragment is dropped",
			block:    "{\n\t{\n\t\tdate=\"2200.01.01\"\n\t}\n\t{\n\t\tdate=\"2201.01.01\"\n",
			expected: []string{"date=\"2200.01.01\"\n}"},
		},
		{
			name:     "empty collection",
			block:    "{ }",
			expected: nil,
		},
		{
			name:     "braces in quoted values do not move depth",
			block:    `{ { date="2200.01.01" definition="x" data={ name="{weird}" } } }`,
			expected: []string{"date=\"2200.01.01\" definition=\"x\" data=\n{\nname=\"{weird}\"\n}\n}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fragments(tt.block)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Fragments() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCountBraces(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"{", 1},
		{"}", -1},
		{"data={ 1 2 3 }", 0},
		{"{ {", 2},
		{`name="{"`, 0},
		{"} }", -2},
	}
	for _, tt := range tests {
		if got := countBraces(tt.line); got != tt.expected {
			t.Errorf("countBraces(%q) = %d, want %d", tt.line, got, tt.expected)
		}
	}
}
