package repl

import (
	"fmt"
	"strings"

	"fortio.org/sets"
	"fortio.org/terminal"
)

// AutoComplete completes the identifier being typed from a set of known
// names (keywords, prelude names, declared variables and functions). The
// vocabulary is a few dozen words so a plain prefix scan over a sorted set
// is all that is needed.
type AutoComplete struct {
	Words sets.Set[string]
}

func NewCompletion() *AutoComplete {
	return &AutoComplete{Words: sets.New[string]()}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		return a.autoCompleteCallback(t, line, pos)
	}
}

func isWordChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}

func (a *AutoComplete) autoCompleteCallback(t *terminal.Terminal, line string, pos int) (newLine string, newPos int, ok bool) {
	start := pos
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	prefix := line[start:pos]
	if prefix == "" {
		return
	}
	var matches []string
	for _, w := range sets.Sort(a.Words) {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		return
	}
	if len(matches) > 1 {
		fmt.Fprint(t.Out, "One of: ")
		for _, m := range matches {
			fmt.Fprint(t.Out, m, " ")
		}
		fmt.Fprintln(t.Out)
	}
	completed := commonPrefix(matches)
	newLine = line[:start] + completed + line[pos:]
	return newLine, start + len(completed), true
}

func commonPrefix(words []string) string {
	first := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, first) {
			first = first[:len(first)-1]
		}
	}
	return first
}
