// Package symbol is the declaration store shared across one interpretation
// session. It is a single flat map: there is no scoping, function parameters
// are bound as ordinary globals and the last write wins. That is the
// language's (documented) semantic, not an implementation shortcut.
package symbol

import (
	"strings"

	"fortio.org/log"
	"kalc.io/kalc/ast"
)

// Functions are stored under FuncKey(name) so `f` the variable and `f` the
// function can coexist.
const funcSuffix = "()"

func FuncKey(name string) string {
	return name + funcSuffix
}

// IsFuncKey tells whether a stored key names a function declaration.
func IsFuncKey(key string) bool {
	return strings.HasSuffix(key, funcSuffix)
}

// BaseName strips the function key suffix, if any.
func BaseName(key string) string {
	return strings.TrimSuffix(key, funcSuffix)
}

type Table struct {
	store  map[string]ast.Node
	numSet int64
}

func NewTable() *Table {
	return &Table{store: make(map[string]ast.Node)}
}

func (t *Table) Len() int {
	return len(t.store)
}

// NumSet returns the cumulative number of inserts, to let callers detect changes cheaply.
func (t *Table) NumSet() int64 {
	return t.numSet
}

func (t *Table) Insert(name string, decl ast.Node) {
	log.Debugf("symbol.Insert(%s) = %s", name, decl.String())
	t.store[name] = decl
	t.numSet++
}

func (t *Table) Get(name string) (ast.Node, bool) {
	decl, ok := t.store[name]
	return decl, ok
}

// Names returns all stored keys (function names carry their "()" suffix).
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.store))
	for k := range t.store {
		names = append(names, k)
	}
	return names
}
