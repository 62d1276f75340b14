package interaction

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"full yes", "yes\n", true},
		{"mixed case word", "Yeah\n", true},
		{"lowercase n", "n\n", false},
		{"full no", "no\n", false},
		{"empty line defaults to no", "\n", false},
		{"whitespace only", "   \n", false},
		{"unrelated input", "maybe\n", false},
		{"eof without newline", "y", true},
		{"immediate eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &StdinPrompter{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.Confirm("Recreate environment?")
			if err != nil {
				t.Fatalf("Confirm error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}

			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("Prompt should show [y/N], got: %s", out.String())
			}
		})
	}
}

func TestIsTerminal_NilFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) should be false")
	}
}
