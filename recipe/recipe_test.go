package recipe_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"csb/recipe"
)

const sample = `version: 1
selectors:
  - name: main
    parts:
      - kind: id
        value: main
      - kind: class
        value: container
    properties:
      margin: "0 auto"
  - name: link
    parts:
      - kind: element
        value: a
      - kind: attribute
        value: href$=".png"
      - kind: pseudoClass
        value: focus
  - name: pair
    join:
      left: main
      combinator: ">"
      right: link
`

func compile(t *testing.T, doc string) []recipe.Built {
	t.Helper()
	f, err := recipe.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	built, err := recipe.Compile(f, zap.NewNop())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return built
}

func find(t *testing.T, built []recipe.Built, name string) recipe.Built {
	t.Helper()
	for _, b := range built {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("selector %q not found", name)
	return recipe.Built{}
}

func TestCompile(t *testing.T) {
	built := compile(t, sample)

	if len(built) != 3 {
		t.Fatalf("expected 3 built selectors, got %d", len(built))
	}

	if got, want := find(t, built, "main").Expr.String(), "#main.container"; got != want {
		t.Errorf("main = %q, want %q", got, want)
	}
	if got, want := find(t, built, "link").Expr.String(), `a[href$=".png"]:focus`; got != want {
		t.Errorf("link = %q, want %q", got, want)
	}
	if got, want := find(t, built, "pair").Expr.String(), `#main.container > a[href$=".png"]:focus`; got != want {
		t.Errorf("pair = %q, want %q", got, want)
	}

	if props := find(t, built, "main").Properties; props["margin"] != "0 auto" {
		t.Errorf("main properties = %v", props)
	}
}

func TestCompile_NaturalOrder(t *testing.T) {
	doc := `version: 1
selectors:
  - name: s10
    parts: [{kind: class, value: ten}]
  - name: s2
    parts: [{kind: class, value: two}]
  - name: s1
    parts: [{kind: class, value: one}]
`
	built := compile(t, doc)
	got := make([]string, 0, len(built))
	for _, b := range built {
		got = append(got, b.Name)
	}
	want := "s1 s2 s10"
	if strings.Join(got, " ") != want {
		t.Errorf("order = %v, want %q", got, want)
	}
}

func TestCompile_Slugify(t *testing.T) {
	doc := `version: 1
selectors:
  - name: Main Block
    slugify: true
    parts: [{kind: id, value: main}]
`
	built := compile(t, doc)
	if built[0].Name != "main-block" {
		t.Errorf("slugified name = %q, want %q", built[0].Name, "main-block")
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown join reference",
			doc: `version: 1
selectors:
  - name: pair
    join: {left: missing, combinator: "+", right: missing}
`,
			want: "unknown selector",
		},
		{
			name: "reference cycle",
			doc: `version: 1
selectors:
  - name: a
    join: {left: b, combinator: "+", right: b}
  - name: b
    join: {left: a, combinator: "+", right: a}
`,
			want: "cycle",
		},
		{
			name: "duplicate names",
			doc: `version: 1
selectors:
  - name: x
    parts: [{kind: class, value: a}]
  - name: x
    parts: [{kind: class, value: b}]
`,
			want: "duplicate",
		},
		{
			name: "both parts and join",
			doc: `version: 1
selectors:
  - name: x
    parts: [{kind: class, value: a}]
    join: {left: x, combinator: "+", right: x}
`,
			want: "both parts and join",
		},
		{
			name: "neither parts nor join",
			doc: `version: 1
selectors:
  - name: x
`,
			want: "neither parts nor join",
		},
		{
			name: "bad kind",
			doc: `version: 1
selectors:
  - name: x
    parts: [{kind: classes, value: a}]
`,
			want: "not a valid PartKind",
		},
		{
			name: "bad combinator",
			doc: `version: 1
selectors:
  - name: a
    parts: [{kind: class, value: a}]
  - name: x
    join: {left: a, combinator: ">>", right: a}
`,
			want: "not a valid combinator",
		},
		{
			name: "out of order parts",
			doc: `version: 1
selectors:
  - name: x
    parts:
      - {kind: class, value: a}
      - {kind: element, value: div}
`,
			want: "arranged in the following order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := recipe.Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if _, err = recipe.Compile(f, zap.NewNop()); err == nil {
				t.Fatal("Compile() succeeded, expected error")
			} else if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCompile_MultipleFailuresReported(t *testing.T) {
	doc := `version: 1
selectors:
  - name: one
    parts: [{kind: nope, value: a}]
  - name: two
    join: {left: missing, combinator: "+", right: missing}
`
	f, err := recipe.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	_, err = recipe.Compile(f, zap.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"one"`) || !strings.Contains(msg, `"two"`) {
		t.Errorf("expected both failures in %q", msg)
	}
}

func TestParse_Strict(t *testing.T) {
	if _, err := recipe.Parse([]byte("version: 1\nselectors: []\nextra: true\n")); err == nil {
		t.Error("unknown top-level field accepted")
	}
	if _, err := recipe.Parse([]byte("version: 2\nselectors: [{name: x}]\n")); err == nil {
		t.Error("unsupported version accepted")
	}
	if _, err := recipe.Parse([]byte("version: 1\nselectors: []\n")); err == nil {
		t.Error("empty selector list accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := recipe.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(f.Selectors) != 3 {
		t.Errorf("loaded %d selectors, want 3", len(f.Selectors))
	}

	if _, err := recipe.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

// guard against accidental reuse of one builder value across recipes
func TestCompile_IndependentBuilders(t *testing.T) {
	doc := `version: 1
selectors:
  - name: a
    parts: [{kind: element, value: p}]
  - name: b
    parts: [{kind: element, value: div}]
`
	built := compile(t, doc)
	if got := find(t, built, "a").Expr.String(); got != "p" {
		t.Errorf("a = %q", got)
	}
	if got := find(t, built, "b").Expr.String(); got != "div" {
		t.Errorf("b = %q", got)
	}
}
