// Package sheet assembles CSS rules from built selectors and writes them
// out in a deterministic textual form.
package sheet

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Rule is a single CSS rule: serialized selector text plus its
// declarations.
type Rule struct {
	Selector   string
	Properties map[string]string
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Add appends a rule. A nil property map is allowed and produces a rule
// with an empty body.
func (s *Stylesheet) Add(selector string, props map[string]string) {
	s.Rules = append(s.Rules, Rule{Selector: selector, Properties: props})
}

// WriteTo writes the stylesheet in rule order, implementing io.WriterTo.
// Properties within a rule are sorted alphabetically so output is stable.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, rule := range s.Rules {
		n, err := writeRule(w, rule)
		total += int64(n)
		if err != nil {
			return total, err
		}

		// blank line between rules, none after the last
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}

	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.Properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
