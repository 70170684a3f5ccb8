package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"kalc.io/kalc/ast"
	"kalc.io/kalc/eval"
	"kalc.io/kalc/lexer"
	"kalc.io/kalc/parser"
	"kalc.io/kalc/prelude"
	"kalc.io/kalc/symbol"
	"kalc.io/kalc/token"
)

const PROMPT = "> "

type Options struct {
	ShowParse   bool
	ShowEval    bool
	Unit        ast.Unit
	HistoryFile string
	MaxHistory  int
}

func logParserErrors(p *parser.Parser) bool {
	errs := p.Errors()
	if len(errs) == 0 {
		return false
	}

	log.Critf("parser has %d error(s)", len(errs))
	for _, msg := range errs {
		log.Errf("parser error: %s", msg)
	}
	return true
}

// FormatValue renders a result the way the repl prints it (shortest
// round-trippable form, so `2 + 3` prints as just `5`).
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EvalOne parses and interprets one input (a line, or a whole file) against
// st. The table accumulates declarations across calls, the eval context does
// not survive this one. Returns the number of errors (0 or 1 plus parser
// errors) so callers can use it as an exit code.
func EvalOne(st *symbol.Table, what string, out io.Writer, options Options) int {
	l := lexer.New(what)
	p := parser.New(l, st)
	program := p.ParseProgram()
	if logParserErrors(p) {
		return len(p.Errors())
	}
	if options.ShowParse {
		fmt.Fprint(out, "== Parse ==> ")
		fmt.Fprintln(out, program.String())
	}
	c := eval.NewContext(options.Unit, st)
	value, hasValue, err := c.Interpret(program)
	if err != nil {
		if options.ShowEval {
			fmt.Fprint(out, log.Colors.Red)
			fmt.Fprintln(out, err.Error())
			fmt.Fprint(out, log.ANSIColors.Reset)
		}
		return 1
	}
	if options.ShowEval && hasValue {
		fmt.Fprint(out, log.Colors.Green)
		fmt.Fprintln(out, FormatValue(value))
		fmt.Fprint(out, log.ANSIColors.Reset)
	}
	return 0
}

// EvalAll reads all of in and interprets it as one program.
func EvalAll(st *symbol.Table, in io.Reader, out io.Writer, options Options) int {
	b, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return EvalOne(st, string(b), out, options)
}

// Interactive runs the terminal repl until EOF (^D) or "exit".
func Interactive(options Options) int {
	st := symbol.NewTable()
	ac := NewCompletion()
	for k := range token.Info().Keywords {
		ac.Words.Add(k)
	}
	for name := range prelude.Names() {
		ac.Words.Add(name)
	}
	term, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error creating readline: %v", err)
	}
	defer term.Close()
	term.SetPrompt(PROMPT)
	term.NewHistory(options.MaxHistory)
	if options.HistoryFile != "" {
		term.SetHistoryFile(options.HistoryFile)
	}
	term.SetAutoCompleteCallback(ac.AutoComplete())
	lastNumSet := st.NumSet()
	for {
		rd, err := term.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("Exit requested")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		line := strings.TrimSpace(rd)
		if line == "" {
			continue
		}
		if line == "exit" || line == "q" {
			return 0
		}
		EvalOne(st, line, term.Out, options)
		// Newly declared names become completable.
		if n := st.NumSet(); n != lastNumSet {
			lastNumSet = n
			for _, name := range st.Names() {
				ac.Words.Add(symbol.BaseName(name))
			}
		}
	}
}
