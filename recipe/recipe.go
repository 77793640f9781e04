// Package recipe loads declarative selector definitions from YAML and
// compiles them through the selector builder.
package recipe

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"csb/selector"
)

// Part is one fragment of a compound selector recipe. Kind names follow
// the PartKind enum: element, id, class, attribute, pseudoClass,
// pseudoElement.
type Part struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// Join references two other recipes by name and the combinator to join
// them with. Combinator accepts the literal token or its alias
// (descendant, next-sibling, subsequent-sibling, child).
type Join struct {
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Recipe describes one named selector, either a compound one built from
// parts or a complex one joining two other recipes. Exactly one of Parts
// and Join must be set.
type Recipe struct {
	Name       string            `yaml:"name"`
	Slugify    bool              `yaml:"slugify,omitempty"`
	Parts      []Part            `yaml:"parts,omitempty"`
	Join       *Join             `yaml:"join,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// File is a parsed recipes document.
type File struct {
	Version   int      `yaml:"version"`
	Selectors []Recipe `yaml:"selectors"`
}

// Parse decodes a recipes document. Unknown fields are rejected so typos
// in recipe files surface immediately.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported recipes version %d", f.Version)
	}
	if len(f.Selectors) == 0 {
		return nil, fmt.Errorf("recipes file defines no selectors")
	}
	return &f, nil
}

// Load reads and parses a recipes file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Built is a compiled recipe, ready to be serialized.
type Built struct {
	Name       string // recipe name, slugified when requested
	Expr       selector.Expr
	Properties map[string]string
}

// Compile builds every recipe in the file through the selector builder.
// Join references are resolved by name, reference cycles and unknown
// names are errors. Failures are accumulated per recipe so one bad
// recipe does not hide the rest of the diagnostics. Results come back in
// natural name order.
func Compile(f *File, log *zap.Logger) ([]Built, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c := &compiler{
		log:      log.Named("recipes"),
		recipes:  make(map[string]*Recipe, len(f.Selectors)),
		built:    make(map[string]selector.Expr, len(f.Selectors)),
		visiting: make(map[string]bool),
	}

	var err error
	names := make([]string, 0, len(f.Selectors))
	for i := range f.Selectors {
		r := &f.Selectors[i]
		if r.Name == "" {
			err = multierr.Append(err, fmt.Errorf("selector %d has no name", i))
			continue
		}
		if _, dup := c.recipes[r.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("duplicate selector name %q", r.Name))
			continue
		}
		c.recipes[r.Name] = r
		names = append(names, r.Name)
	}
	if err != nil {
		return nil, err
	}

	sort.Sort(natural.StringSlice(names))

	result := make([]Built, 0, len(names))
	for _, name := range names {
		expr, er := c.expr(name)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("selector %q: %w", name, er))
			continue
		}
		r := c.recipes[name]
		outName := name
		if r.Slugify {
			outName = slug.Make(name)
		}
		result = append(result, Built{Name: outName, Expr: expr, Properties: r.Properties})
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

type compiler struct {
	log      *zap.Logger
	recipes  map[string]*Recipe
	built    map[string]selector.Expr
	visiting map[string]bool
}

// expr compiles one recipe by name, memoizing results and detecting
// reference cycles through join operands.
func (c *compiler) expr(name string) (selector.Expr, error) {
	if e, ok := c.built[name]; ok {
		return e, nil
	}
	if c.visiting[name] {
		return nil, fmt.Errorf("join reference cycle through %q", name)
	}

	r, ok := c.recipes[name]
	if !ok {
		return nil, fmt.Errorf("unknown selector %q", name)
	}

	c.visiting[name] = true
	defer delete(c.visiting, name)

	var (
		e   selector.Expr
		err error
	)
	switch {
	case len(r.Parts) > 0 && r.Join != nil:
		return nil, fmt.Errorf("both parts and join are set")
	case r.Join != nil:
		e, err = c.join(r.Join)
	case len(r.Parts) > 0:
		e, err = c.compound(r)
	default:
		return nil, fmt.Errorf("neither parts nor join are set")
	}
	if err != nil {
		return nil, err
	}

	c.built[name] = e
	return e, nil
}

func (c *compiler) join(j *Join) (selector.Expr, error) {
	op, err := selector.ParseCombinator(j.Combinator)
	if err != nil {
		return nil, err
	}
	left, err := c.expr(j.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.expr(j.Right)
	if err != nil {
		return nil, err
	}
	return selector.Join(left, op, right), nil
}

func (c *compiler) compound(r *Recipe) (selector.Expr, error) {
	sel := selector.New()
	for i, part := range r.Parts {
		kind, err := selector.ParsePartKind(part.Kind)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		c.lint(r.Name, kind, part.Value)

		if sel, err = appendPart(sel, kind, part.Value); err != nil {
			return nil, fmt.Errorf("part %d (%s %q): %w", i, kind, part.Value, err)
		}
	}
	return sel, nil
}

// lint warns about part values that are not plain CSS identifiers. The
// builder takes fragments verbatim, so this never fails the build.
func (c *compiler) lint(name string, kind selector.PartKind, value string) {
	if kind == selector.PartKindAttribute {
		// attribute descriptors carry operators and quoted values
		return
	}
	if !selector.IsIdent(value) {
		c.log.Warn("Part value is not a plain CSS identifier",
			zap.String("selector", name), zap.Stringer("kind", kind), zap.String("value", value))
	}
}

func appendPart(sel *selector.Selector, kind selector.PartKind, value string) (*selector.Selector, error) {
	switch kind {
	case selector.PartKindElement:
		return sel.Element(value)
	case selector.PartKindId:
		return sel.ID(value)
	case selector.PartKindClass:
		return sel.Class(value)
	case selector.PartKindAttribute:
		return sel.Attribute(value)
	case selector.PartKindPseudoClass:
		return sel.PseudoClass(value)
	case selector.PartKindPseudoElement:
		return sel.PseudoElement(value)
	default:
		// ParsePartKind already rejected anything else
		panic("unsupported part kind")
	}
}
