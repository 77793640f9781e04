package selector

import (
	"slices"
	"strings"
)

// Expr is any value that serializes to CSS selector text. Both *Selector
// and *Combined implement it.
type Expr interface {
	String() string
}

// Selector accumulates the parts of a single compound selector. Fragments
// are stored already rendered with their sigils and serialized in
// canonical kind order regardless of append order.
//
// Appends return the instance to continue the chain on. The first append
// on a value splits off a copy and mutates that, so several chains may be
// started from one freshly created value without observing each other.
// Later appends mutate the split-off instance in place. A value must not
// be mutated from multiple goroutines.
type Selector struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	last        PartKind // highest kind appended so far
	specialized bool     // instance already split off from its origin
}

// New returns a fresh empty builder. Every call returns an independent
// value, there is no shared template.
func New() *Selector {
	return &Selector{}
}

// Element sets the type part (element name, no sigil).
func (s *Selector) Element(name string) (*Selector, error) {
	return s.append(PartKindElement, func(c *Selector) { c.element = name })
}

// ID sets the id part, rendered as #name.
func (s *Selector) ID(name string) (*Selector, error) {
	return s.append(PartKindId, func(c *Selector) { c.id = "#" + name })
}

// Class adds a class part, rendered as .name. Classes accumulate in
// append order.
func (s *Selector) Class(name string) (*Selector, error) {
	return s.append(PartKindClass, func(c *Selector) { c.classes = append(c.classes, "."+name) })
}

// Attribute adds an attribute descriptor in "key=value" form, where key
// may carry a comparison operator (e.g. "href$"). All descriptors of one
// selector share a single bracket pair and are joined by a single space:
// [k1=v1 k2=v2]. This is intentionally not the standard [k1=v1][k2=v2]
// form, output compatibility matters more here than grammar purity.
func (s *Selector) Attribute(descriptor string) (*Selector, error) {
	frag := descriptor
	if key, value, found := strings.Cut(descriptor, "="); found {
		frag = key + "=" + value
	}
	return s.append(PartKindAttribute, func(c *Selector) { c.attributes = append(c.attributes, frag) })
}

// PseudoClass adds a pseudo-class part, rendered as :name.
func (s *Selector) PseudoClass(name string) (*Selector, error) {
	return s.append(PartKindPseudoClass, func(c *Selector) { c.pseudoClasses = append(c.pseudoClasses, ":"+name) })
}

// PseudoElement sets the pseudo-element part, rendered as ::name.
func (s *Selector) PseudoElement(name string) (*Selector, error) {
	return s.append(PartKindPseudoElement, func(c *Selector) { c.pseudoElement = "::" + name })
}

// append validates cardinality and ordering, then applies the fragment.
// Validation runs before any mutation so a failed append leaves the
// receiver exactly as it was.
func (s *Selector) append(kind PartKind, apply func(*Selector)) (*Selector, error) {
	if kind.Singular() && s.occupied(kind) {
		return nil, ErrDuplicateSingularPart
	}
	if kind < s.last {
		return nil, ErrOutOfOrderPart
	}
	if !s.specialized {
		s = s.clone()
		s.specialized = true
	}
	apply(s)
	s.last = kind
	return s, nil
}

func (s *Selector) occupied(kind PartKind) bool {
	switch kind {
	case PartKindElement:
		return s.element != ""
	case PartKindId:
		return s.id != ""
	case PartKindPseudoElement:
		return s.pseudoElement != ""
	default:
		return false
	}
}

func (s *Selector) clone() *Selector {
	c := *s
	c.classes = slices.Clone(s.classes)
	c.attributes = slices.Clone(s.attributes)
	c.pseudoClasses = slices.Clone(s.pseudoClasses)
	return &c
}

// String renders the compound selector in canonical part order. Kinds
// that were never appended contribute nothing, an empty builder renders
// to an empty string.
func (s *Selector) String() string {
	var b strings.Builder
	b.WriteString(s.element)
	b.WriteString(s.id)
	for _, c := range s.classes {
		b.WriteString(c)
	}
	if len(s.attributes) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(s.attributes, " "))
		b.WriteByte(']')
	}
	for _, p := range s.pseudoClasses {
		b.WriteString(p)
	}
	b.WriteString(s.pseudoElement)
	return b.String()
}
