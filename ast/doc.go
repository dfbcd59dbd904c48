/*
Package ast defines the abstract syntax tree for parsed stylesheets.

A stylesheet is an ordered sequence of rules. Order is significant: later
rules with the same subject override earlier ones downstream; this package
preserves order and leaves the override semantics to the cascade engine.
Rules are either at-rules, whose bodies are kept as raw balanced token
runs, or style rules consisting of a selector group and a declaration list.

Each AST category is a closed sum type: Rule, Selector and SimpleSelector
are sealed interfaces whose variants live in this package, so consumers can
switch exhaustively. The recovery sentinel SelectNothing is a first-class
selector variant: it is substituted for unparsable simple selectors so that
surrounding combinator trees remain well-typed, and it simply never matches.

All nodes are immutable after parsing and owned by their Stylesheet root.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
