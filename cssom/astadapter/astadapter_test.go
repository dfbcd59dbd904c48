package astadapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/csskit/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestWrapStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.parser")
	defer teardown()
	//
	sheet, errs := parser.Parse(`
		p { margin-top: 15px; color: red !important }
		@media print { }
	`)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	styles := Wrap(sheet)
	if styles.Empty() {
		t.Fatal("stylesheet should not be empty")
	}
	rules := styles.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 style rule, got %d", len(rules))
	}
	rule := rules[0]
	if rule.Selector() != "p" {
		t.Errorf("expected selector 'p', got %q", rule.Selector())
	}
	props := rule.Properties()
	if len(props) != 2 || props[0] != "margin-top" || props[1] != "color" {
		t.Errorf("unexpected properties %v", props)
	}
	if v := rule.Value("margin-top"); v.String() != "15px" {
		t.Errorf("expected value '15px', got %q", v)
	}
	if v := rule.Value("border"); !v.IsEmpty() {
		t.Errorf("expected empty value for unset key, got %q", v)
	}
	if rule.IsImportant("margin-top") {
		t.Error("margin-top should not be important")
	}
	if !rule.IsImportant("color") {
		t.Error("color should be important")
	}
	if v := rule.Value("color"); v.String() != "red" {
		t.Errorf("'!important' must not leak into the value, got %q", v)
	}
	if len(styles.AtRules()) != 1 {
		t.Errorf("expected 1 at-rule, got %d", len(styles.AtRules()))
	}
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t)
	defer teardown()
	//
	first, _ := parser.Parse("p { color: red }")
	second, _ := parser.Parse("q { color: blue }")
	styles := Wrap(first)
	styles.AppendRules(Wrap(second))
	if len(styles.Rules()) != 2 {
		t.Errorf("expected 2 rules after append, got %d", len(styles.Rules()))
	}
}

const myhtml = `
<html><head>
<style>
  body { border: none }
</style>
</head><body>
<p>The quick brown fox jumps over the lazy dog.</p>
<style>
  p { font-size: 12pt }
</style>
</body></html>
`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.parser")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(myhtml))
	if err != nil {
		t.Fatalf("HTML parsing failed: %v", err)
	}
	styles := ExtractStyleElements(doc)
	if len(styles) != 2 {
		t.Fatalf("expected 2 embedded stylesheets, got %d", len(styles))
	}
	if v := styles[0].Rules()[0].Value("border"); v.String() != "none" {
		t.Errorf("expected border value 'none', got %q", v)
	}
	if v := styles[1].Rules()[0].Value("font-size"); v.String() != "12pt" {
		t.Errorf("expected font-size value '12pt', got %q", v)
	}
}
