package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// TreeString produces an indented tree rendering of a stylesheet for
// debugging; selector trees are shown with one branch per combinator.
func TreeString(sheet *Stylesheet) string {
	printer := tp.New()
	for _, r := range sheet.Rules {
		switch rule := r.(type) {
		case *AtRule:
			branch := printer.AddBranch("@" + rule.Keyword)
			branch.AddNode(fmt.Sprintf("header %q", TokensText(rule.Header)))
			if rule.Body != nil {
				branch.AddNode(fmt.Sprintf("body %q", TokensText(rule.Body)))
			}
		case *StyleRule:
			branch := printer.AddBranch("rule")
			sels := branch.AddBranch("selectors")
			for _, sel := range rule.Selectors.Selectors {
				addSelector(sels, sel)
			}
			decls := branch.AddBranch("declarations")
			for _, d := range rule.Declarations {
				decls.AddNode(d.String())
			}
		}
	}
	return printer.String()
}

func addSelector(branch tp.Tree, sel Selector) {
	switch s := sel.(type) {
	case And:
		addCombinator(branch, "and", s.Left, s.Right)
	case Descendant:
		addCombinator(branch, "descendant", s.Left, s.Right)
	case Child:
		addCombinator(branch, "child", s.Left, s.Right)
	case AdjacentSibling:
		addCombinator(branch, "adjacent-sibling", s.Left, s.Right)
	case GeneralSibling:
		addCombinator(branch, "general-sibling", s.Left, s.Right)
	case Negation:
		b := branch.AddBranch("not")
		addSelector(b, s.Inner)
	default:
		branch.AddNode(sel.String())
	}
}

func addCombinator(branch tp.Tree, name string, left, right Selector) {
	b := branch.AddBranch(name)
	addSelector(b, left)
	addSelector(b, right)
}
