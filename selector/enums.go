// Package selector builds CSS compound and complex selectors part by part,
// enforcing part cardinality and canonical ordering, and serializes the
// result to selector text.
package selector

import "fmt"

// Kind of a single part inside a compound selector. Declaration order is
// the canonical CSS order the builder validates against.
// ENUM(element, id, class, attribute, pseudoClass, pseudoElement)
type PartKind int

// Singular reports whether the kind may occur at most once per selector.
func (k PartKind) Singular() bool {
	switch k {
	case PartKindElement, PartKindId, PartKindPseudoElement:
		return true
	default:
		return false
	}
}

// Combinator is a literal CSS token joining two selector expressions into
// one complex selector.
type Combinator string

const (
	Descendant        Combinator = " "
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
	Child             Combinator = ">"
)

// IsValid reports whether c is one of the four supported combinator tokens.
func (c Combinator) IsValid() bool {
	switch c {
	case Descendant, NextSibling, SubsequentSibling, Child:
		return true
	default:
		return false
	}
}

// ParseCombinator converts a combinator token to a Combinator. It accepts
// the literal tokens and the "descendant", "next-sibling",
// "subsequent-sibling" and "child" aliases used by recipe files.
func ParseCombinator(s string) (Combinator, error) {
	switch s {
	case " ", "descendant":
		return Descendant, nil
	case "+", "next-sibling":
		return NextSibling, nil
	case "~", "subsequent-sibling":
		return SubsequentSibling, nil
	case ">", "child":
		return Child, nil
	default:
		return "", fmt.Errorf("%q is not a valid combinator", s)
	}
}
