package selector

import (
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// IsIdent reports whether s lexes as exactly one CSS identifier. The
// builder itself never enforces this - fragments are taken verbatim -
// but recipe compilation uses it to warn about suspicious part values.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	l := css.NewLexer(parse.NewInputString(s))
	tt, data := l.Next()
	if tt != css.IdentToken || len(data) != len(s) {
		return false
	}
	tt, _ = l.Next()
	return tt == css.ErrorToken
}
