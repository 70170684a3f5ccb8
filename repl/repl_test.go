package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"kalc.io/kalc/ast"
	"kalc.io/kalc/repl"
	"kalc.io/kalc/symbol"
)

func evalToString(t *testing.T, st *symbol.Table, input string, options repl.Options) (string, int) {
	t.Helper()
	buf := bytes.Buffer{}
	n := repl.EvalOne(st, input, &buf, options)
	return buf.String(), n
}

func TestEvalOne(t *testing.T) {
	options := repl.Options{ShowEval: true, Unit: ast.Radians}
	st := symbol.NewTable()

	out, n := evalToString(t, st, "2 + 3", options)
	if n != 0 {
		t.Fatalf("errors: %d", n)
	}
	if strings.TrimSpace(out) != "5" {
		t.Errorf("got %q, want 5", out)
	}

	// Declarations print nothing but persist in the table.
	out, n = evalToString(t, st, "x = 7", options)
	if n != 0 || strings.TrimSpace(out) != "" {
		t.Errorf("declaration got %q, %d errors", out, n)
	}
	out, _ = evalToString(t, st, "x * 2", options)
	if strings.TrimSpace(out) != "14" {
		t.Errorf("got %q, want 14", out)
	}
}

func TestEvalOneError(t *testing.T) {
	options := repl.Options{ShowEval: true, Unit: ast.Radians}
	out, n := evalToString(t, symbol.NewTable(), "nope", options)
	if n != 1 {
		t.Errorf("error count got %d", n)
	}
	if !strings.Contains(out, "Undefined variable: 'nope'.") {
		t.Errorf("got %q", out)
	}
}

func TestEvalOneParseError(t *testing.T) {
	options := repl.Options{ShowEval: true, Unit: ast.Radians}
	_, n := evalToString(t, symbol.NewTable(), "1 +", options)
	if n == 0 {
		t.Errorf("parse error not counted")
	}
}

func TestShowParse(t *testing.T) {
	options := repl.Options{ShowParse: true, ShowEval: true, Unit: ast.Radians}
	out, _ := evalToString(t, symbol.NewTable(), "1 + 2 * 3", options)
	if !strings.Contains(out, "== Parse ==> (1 + (2 * 3))") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "7") {
		t.Errorf("got %q", out)
	}
}

func TestEvalAll(t *testing.T) {
	options := repl.Options{ShowEval: true, Unit: ast.Degrees}
	buf := bytes.Buffer{}
	in := strings.NewReader("x = 30\nsin(x * 3)")
	n := repl.EvalAll(symbol.NewTable(), in, &buf, options)
	if n != 0 {
		t.Fatalf("errors: %d", n)
	}
	if strings.TrimSpace(buf.String()) != "1" {
		t.Errorf("got %q, want 1", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{5, "5"},
		{3.5, "3.5"},
		{0.1, "0.1"},
		{1e21, "1e+21"},
	}
	for _, tt := range tests {
		if got := repl.FormatValue(tt.in); got != tt.expected {
			t.Errorf("FormatValue(%v) got %q, want %q", tt.in, got, tt.expected)
		}
	}
}
