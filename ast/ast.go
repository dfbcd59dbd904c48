package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/csskit/scanner"
)

// Stylesheet is the root of a parsed stylesheet: an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// StyleRules returns the style rules of a stylesheet, in order, skipping
// at-rules.
func (sheet *Stylesheet) StyleRules() []*StyleRule {
	var rules []*StyleRule
	for _, r := range sheet.Rules {
		if sr, ok := r.(*StyleRule); ok {
			rules = append(rules, sr)
		}
	}
	return rules
}

// AtRules returns the at-rules of a stylesheet, in order.
func (sheet *Stylesheet) AtRules() []*AtRule {
	var rules []*AtRule
	for _, r := range sheet.Rules {
		if ar, ok := r.(*AtRule); ok {
			rules = append(rules, ar)
		}
	}
	return rules
}

// Rule is either an *AtRule or a *StyleRule.
type Rule interface {
	isRule()
	String() string
}

// AtRule is a directive-style rule '@keyword … ;' or '@keyword … { … }'.
// Header holds everything between the keyword and the terminating '{' or
// ';'. Body holds the balanced contents of the curly block verbatim, with
// the braces stripped, or nothing for a semicolon-terminated at-rule.
// At-rule bodies are not parsed into nested rules here; they are handed to
// a caller-supplied interpreter.
type AtRule struct {
	Keyword string
	Header  []scanner.Token
	Body    []scanner.Token
}

func (r *AtRule) isRule() {}

func (r *AtRule) String() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(r.Keyword)
	for _, t := range r.Header {
		b.WriteString(" ")
		b.WriteString(t.String())
	}
	if r.Body == nil {
		b.WriteString(";")
		return b.String()
	}
	b.WriteString(" {")
	b.WriteString(TokensText(r.Body))
	b.WriteString("}")
	return b.String()
}

// StyleRule is a selector group together with a list of declarations.
type StyleRule struct {
	Selectors    SelectorGroup
	Declarations []Declaration
}

func (r *StyleRule) isRule() {}

func (r *StyleRule) String() string {
	var b strings.Builder
	b.WriteString(r.Selectors.String())
	b.WriteString(" { ")
	for _, d := range r.Declarations {
		b.WriteString(d.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// SelectorGroup is a non-empty list of comma-separated selector
// alternatives. Alternatives combine as a logical OR; their order is
// irrelevant for matching but preserved for diagnostics.
type SelectorGroup struct {
	Selectors []Selector
}

func (g SelectorGroup) String() string {
	parts := make([]string, len(g.Selectors))
	for i, sel := range g.Selectors {
		parts[i] = sel.String()
	}
	return strings.Join(parts, ", ")
}

// Declaration is a single 'property: value' entry of a style rule. Terms
// holds the raw token run of the value: flat but bracket-aware. '{…}' and
// '[…]' sub-runs appear as contiguous open/contents/close sequences, never
// with an unmatched bracket. Interpretation of terms into typed values is
// the job of the value-conversion collaborator.
//
// Start and End delimit the declaration within the source, from the first
// character of the property name to the end of the last term.
type Declaration struct {
	Property string
	Terms    []scanner.Token
	Start    int
	End      int
}

func (d Declaration) String() string {
	return d.Property + ": " + strings.TrimSpace(TokensText(d.Terms))
}

// TokensText reconstructs the CSS text of a preserved token run.
func TokensText(tokens []scanner.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
