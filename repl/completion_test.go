package repl

import (
	"testing"
)

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		words    []string
		expected string
	}{
		{[]string{"sin"}, "sin"},
		{[]string{"sin", "sinh"}, "sin"},
		{[]string{"cos", "cosh", "cbrt"}, "c"},
		{[]string{"min", "max"}, "m"},
		{[]string{"pi", "tau"}, ""},
	}
	for _, tt := range tests {
		if got := commonPrefix(tt.words); got != tt.expected {
			t.Errorf("commonPrefix(%v) got %q, want %q", tt.words, got, tt.expected)
		}
	}
}

func TestCompletionWordBoundary(t *testing.T) {
	ac := NewCompletion()
	ac.Words.Add("sqrt")
	ac.Words.Add("sin")

	// Completes only the identifier under the cursor.
	line := "1 + sq"
	newLine, newPos, ok := ac.autoCompleteCallback(nil, line, len(line))
	if !ok {
		t.Fatalf("no completion for %q", line)
	}
	if newLine != "1 + sqrt" || newPos != len("1 + sqrt") {
		t.Errorf("got %q pos %d", newLine, newPos)
	}

	// No identifier started: nothing to do.
	if _, _, ok = ac.autoCompleteCallback(nil, "1 + ", 4); ok {
		t.Errorf("completed with empty prefix")
	}

	// Unknown prefix.
	if _, _, ok = ac.autoCompleteCallback(nil, "zz", 2); ok {
		t.Errorf("completed unknown prefix")
	}
}
