package token

import "fortio.org/sets"

// Info enables introspection of known keywords, for completion in the repl.
type KalcInfo struct {
	// Keywords is the set of reserved words (the unit suffixes).
	Keywords sets.Set[string]
}

var info = KalcInfo{Keywords: sets.New[string]()}

func init() {
	for k := range keywords {
		info.Keywords.Add(k)
	}
}

func Info() KalcInfo {
	return info
}
