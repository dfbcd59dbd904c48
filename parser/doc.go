/*
Package parser builds stylesheet ASTs from CSS text.

The parser is a recursive-descent implementation over the token stream of
package scanner, covering the following subset of CSS:

   stylesheet   = { S | CDO | CDC | at_rule | style_rule } ;
   at_rule      = AT_KEYWORD , { component_value } , ( curly_block | ';' ) ;
   style_rule   = [ selector_group ] , '{' , declaration_list , '}' ;
   selector_group
                = selector , { ',' , selector } ;
   selector     = simple_selector ,
                  { ( combinator , selector | { S } , [ selector ] ) } ;
   combinator   = '>' | '+' | '~' ;
   simple_selector
                = '*' | IDENT | HASH | '.' IDENT | pseudoclass_selector
                | attribute_selector ;
   declaration_list
                = { S } , [ declaration ] , [ ';' , declaration_list ] ;
   declaration  = IDENT , { S } , ':' , { term } ;

Chained combinators associate to the right: 'a > b > c' produces
Child(a, Child(b, c)), and the declaration grammar preserves value tokens
verbatim rather than interpreting them.

Parsing is error-resilient: a malformed construct never aborts the whole
stylesheet. Errors are contained at three recovery points: an unparsable
simple selector is replaced by the SelectNothing sentinel, an unparsable
declaration is dropped from its rule, and any other error aborts just the
current top-level rule. All diagnostics are collected per parse call and
returned alongside the (possibly partial) AST; only a failure to read the
input source is reported as a hard error.

Status

API is stable, the accepted grammar subset may still grow.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.parser'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.parser")
}
