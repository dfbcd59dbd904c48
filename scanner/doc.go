/*
Package scanner turns a stream of characters into a stream of CSS tokens.

The scanner classifies input according to the lexical rules of CSS
(identifiers, hash tokens, numbers with optional units, quoted strings,
functions, at-keywords, comments, CDO/CDC markers) and knows nothing about
the grammar built on top of these tokens. Malformed constructs on the
lexical level, like an unterminated string or a broken url(…), do not abort
scanning; they are reported as tokens of kind BadString or BadURI, leaving
the decision of how to react to the parser.

A Scanner supports exactly one token of pushback, held in an explicit
pushed-back slot which the next call to Next or NextNoSkip consumes.
After the end of input has been reached, the scanner will repeatedly
return EOF tokens.

Status

Work in progress, but the token classification is stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csskit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("csskit.scanner")
}
