/*
Package astadapter is a concrete implementation of interface cssom.StyleSheet,
backed by the stylesheet ASTs of this module's parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package astadapter

import (
	"strings"

	"github.com/npillmayer/csskit/ast"
	"github.com/npillmayer/csskit/cssom"
	"github.com/npillmayer/csskit/parser"
	"github.com/npillmayer/csskit/scanner"
	"github.com/npillmayer/csskit/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Styles is an adapter for interface cssom.StyleSheet. Style rules are
// exposed through the interface; at-rules are kept aside for a
// caller-supplied interpreter.
type Styles struct {
	sheet *ast.Stylesheet
}

// Wrap a parsed stylesheet into Styles. The stylesheet is now managed by
// the wrapper and must not be mutated by the caller.
func Wrap(sheet *ast.Stylesheet) *Styles {
	return &Styles{sheet: sheet}
}

// Empty checks if this stylesheet contains any style rules.
//
// Interface cssom.StyleSheet
func (s *Styles) Empty() bool {
	return len(s.sheet.StyleRules()) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (s *Styles) AppendRules(other cssom.StyleSheet) {
	o := other.(*Styles)
	s.sheet.Rules = append(s.sheet.Rules, o.sheet.Rules...)
}

// Rules returns all the style rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (s *Styles) Rules() []cssom.Rule {
	styleRules := s.sheet.StyleRules()
	rules := make([]cssom.Rule, len(styleRules))
	for i, r := range styleRules {
		rules[i] = Rule{r}
	}
	return rules
}

// AtRules returns the at-rules of the wrapped stylesheet, in order. Their
// headers and bodies are raw token runs; interpreting them is up to the
// caller.
func (s *Styles) AtRules() []*ast.AtRule {
	return s.sheet.AtRules()
}

var _ cssom.StyleSheet = &Styles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *ast.StyleRule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Selectors.String()
}

// Properties returns the property keys of a rule, e.g. "margin-top".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for the given key within this rule,
// e.g. "15px". A trailing '!important' marker is not part of the value.
func (r Rule) Value(key string) style.Property {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			terms, _ := splitImportant(d.Terms)
			return style.Property(strings.TrimSpace(ast.TokensText(terms)))
		}
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			_, important := splitImportant(d.Terms)
			return important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// splitImportant splits a trailing '! important' marker off a raw term
// run. The tokenizer delivers the marker as a '!' delimiter followed by
// an identifier, possibly with whitespace in between.
func splitImportant(terms []scanner.Token) ([]scanner.Token, bool) {
	i := len(terms) - 1
	for i >= 0 && terms[i].Type == scanner.S {
		i--
	}
	if i < 1 || terms[i].Type != scanner.Ident || !strings.EqualFold(terms[i].Value, "important") {
		return terms, false
	}
	j := i - 1
	for j >= 0 && terms[j].Type == scanner.S {
		j--
	}
	if j < 0 || terms[j].Type != scanner.Delim || terms[j].Value != "!" {
		return terms, false
	}
	return terms[:j], true
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Parsing is error-resilient; rules which
// could not be parsed are silently dropped here.
func ExtractStyleElements(htmldoc *html.Node) []*Styles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*Styles {
	if h == nil {
		return nil
	}
	var css []*Styles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, _ := parser.Parse(ch.FirstChild.Data)
		css = append(css, Wrap(sheet))
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
