package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Selector is a node of a selector tree. Simple selectors form the leaves;
// combinators join a simple selector on the left with a full selector on
// the right, producing a right-leaning binary tree: 'a > b > c' parses as
// Child(a, Child(b, c)). Matching engines must not re-associate this shape.
type Selector interface {
	isSelector()
	String() string
}

// SimpleSelector is a selector matching on a single criterion, without any
// combinator.
type SimpleSelector interface {
	Selector
	isSimpleSelector()
}

// --- Simple selectors ------------------------------------------------------

// Universal is the selector '*', matching every element.
type Universal struct{}

// Type matches elements by their tag/type name, e.g. 'circle'.
type Type struct {
	Name string
}

// ID matches the element carrying the given id, e.g. '#id1'.
type ID struct {
	Name string
}

// Class matches elements belonging to a style class, e.g. '.warning'.
type Class struct {
	Name string
}

// AttributeOp is the comparison operator of an attribute selector.
type AttributeOp int8

// Attribute selector operators.
const (
	AttrExists    AttributeOp = iota // [attr]
	AttrEquals                       // [attr=value]
	AttrIncludes                     // [attr~=value]
	AttrDashMatch                    // [attr|=value]
	AttrPrefix                       // [attr^=value]
	AttrSuffix                       // [attr$=value]
	AttrSubstring                    // [attr*=value]
)

var attrOpText = [...]string{"", "=", "~=", "|=", "^=", "$=", "*="}

func (op AttributeOp) String() string {
	if op < 0 || int(op) >= len(attrOpText) {
		return "?"
	}
	return attrOpText[op]
}

// Attribute matches elements by an attribute value, e.g. '[href^="http"]'.
// Value is empty for AttrExists.
type Attribute struct {
	Name  string
	Op    AttributeOp
	Value string
}

// PseudoClass is a non-functional pseudo-class selector, e.g. ':hover'.
type PseudoClass struct {
	Name string
}

// PseudoClassFunction is a functional pseudo-class selector other than
// ':not(…)'. Its argument tokens are scanned for balance but not
// interpreted.
type PseudoClassFunction struct {
	Name string
}

// Negation is the ':not(…)' selector with exactly one nested simple
// selector as its argument.
type Negation struct {
	Inner SimpleSelector
}

// SelectNothing is the recovery sentinel substituted for an unparsable
// simple selector. It keeps the enclosing selector tree well-typed and
// never matches anything.
type SelectNothing struct{}

func (Universal) isSelector()           {}
func (Universal) isSimpleSelector()     {}
func (Type) isSelector()                {}
func (Type) isSimpleSelector()          {}
func (ID) isSelector()                  {}
func (ID) isSimpleSelector()            {}
func (Class) isSelector()               {}
func (Class) isSimpleSelector()         {}
func (Attribute) isSelector()           {}
func (Attribute) isSimpleSelector()     {}
func (PseudoClass) isSelector()         {}
func (PseudoClass) isSimpleSelector()   {}
func (PseudoClassFunction) isSelector() {}
func (PseudoClassFunction) isSimpleSelector() {}
func (Negation) isSelector()            {}
func (Negation) isSimpleSelector()      {}
func (SelectNothing) isSelector()       {}
func (SelectNothing) isSimpleSelector() {}

func (Universal) String() string { return "*" }

func (s Type) String() string { return s.Name }

func (s ID) String() string { return "#" + s.Name }

func (s Class) String() string { return "." + s.Name }

func (s Attribute) String() string {
	if s.Op == AttrExists {
		return "[" + s.Name + "]"
	}
	return "[" + s.Name + s.Op.String() + s.Value + "]"
}

func (s PseudoClass) String() string { return ":" + s.Name }

func (s PseudoClassFunction) String() string { return ":" + s.Name + "()" }

func (s Negation) String() string { return ":not(" + s.Inner.String() + ")" }

func (SelectNothing) String() string { return "<nothing>" }

// --- Combinators -----------------------------------------------------------

// And joins two selectors which constrain the same element, without a
// combinator token in the source: 'a.b' means And(Type(a), Class(b)).
type And struct {
	Left  Selector
	Right Selector
}

// Descendant is the whitespace combinator: 'a b' matches b anywhere below
// an a.
type Descendant struct {
	Left  Selector
	Right Selector
}

// Child is the '>' combinator, matching direct children only.
type Child struct {
	Left  Selector
	Right Selector
}

// AdjacentSibling is the '+' combinator, matching the immediately
// following sibling.
type AdjacentSibling struct {
	Left  Selector
	Right Selector
}

// GeneralSibling is the '~' combinator, matching any following sibling.
type GeneralSibling struct {
	Left  Selector
	Right Selector
}

func (And) isSelector()             {}
func (Descendant) isSelector()      {}
func (Child) isSelector()           {}
func (AdjacentSibling) isSelector() {}
func (GeneralSibling) isSelector()  {}

func (c And) String() string { return c.Left.String() + c.Right.String() }

func (c Descendant) String() string { return c.Left.String() + " " + c.Right.String() }

func (c Child) String() string { return c.Left.String() + ">" + c.Right.String() }

func (c AdjacentSibling) String() string { return c.Left.String() + "+" + c.Right.String() }

func (c GeneralSibling) String() string { return c.Left.String() + "~" + c.Right.String() }
