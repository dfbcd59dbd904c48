/*
Package cssom abstracts stylesheets for consumption by styling engines.

To de-couple stylesheet implementations from the engines applying them to
a tree of visual elements, styling engines program against the StyleSheet
and Rule interfaces of this package. A concrete implementation backed by
the parser of this module lives in package astadapter; clients may provide
others.

Having this interface imposes a performance hit. This module will never
trade modularity and clarity for performance; clients in need of a
production-grade engine should opt for one of the headless browser
projects.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import "github.com/npillmayer/csskit/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consist of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}
