package interact

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm_Piped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y accepts", "y\n", true},
		{"yes accepts", "yes\n", true},
		{"uppercase accepts", "YES\n", true},
		{"n declines", "n\n", false},
		{"empty line declines", "\n", false},
		{"garbage declines", "maybe\n", false},
		{"eof declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			if got := p.Confirm("Delete prompt \"capital\"?"); got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt output = %q, want [y/N] hint", out.String())
			}
		})
	}
}

func TestCollectLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "sentinel terminates",
			input: "first line\nsecond line\nEOF\nignored\n",
			want:  []string{"first line", "second line"},
		},
		{
			name:  "sentinel with surrounding spaces",
			input: "body\n  EOF  \n",
			want:  []string{"body"},
		},
		{
			name:  "eof without sentinel keeps lines",
			input: "only line\n",
			want:  []string{"only line"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			got, err := p.CollectLines("Enter content. Type 'EOF' to finish.")
			if err != nil {
				t.Fatalf("CollectLines() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CollectLines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if !strings.Contains(out.String(), "Enter content") {
				t.Errorf("intro missing from output: %q", out.String())
			}
		})
	}
}
