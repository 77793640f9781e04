package sheet_test

import (
	"strings"
	"testing"

	"csb/sheet"
)

func TestStylesheet_String(t *testing.T) {
	var s sheet.Stylesheet
	s.Add("#main.container", map[string]string{
		"margin":    "0 auto",
		"color":     "black",
		"max-width": "40em",
	})
	s.Add("a:hover", map[string]string{"text-decoration": "underline"})

	want := `#main.container {
  color: black;
  margin: 0 auto;
  max-width: 40em;
}

a:hover {
  text-decoration: underline;
}
`
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_EmptyBody(t *testing.T) {
	var s sheet.Stylesheet
	s.Add("p::first-line", nil)

	want := "p::first-line {\n}\n"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	var s sheet.Stylesheet
	s.Add("div", map[string]string{"display": "block"})

	var sb strings.Builder
	n, err := s.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if int(n) != sb.Len() {
		t.Errorf("WriteTo() reported %d bytes, wrote %d", n, sb.Len())
	}
}

func TestStylesheet_Empty(t *testing.T) {
	var s sheet.Stylesheet
	if got := s.String(); got != "" {
		t.Errorf("empty stylesheet String() = %q", got)
	}
}
