package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// TokenType classifies a token. The set of token types is closed; clients
// should switch exhaustively over it.
type TokenType int8

// Token types emitted by the scanner.
const (
	EOF TokenType = iota // end of input, returned repeatedly
	S                    // run of whitespace, collapsed into a single token
	Comment              // '/* … */', payload is the comment text
	CDO                  // '<!--'
	CDC                  // '-->'
	Ident                // identifier
	AtKeyword            // '@' + identifier
	String               // quoted string, payload is the unquoted content
	BadString            // unterminated quoted string
	URI                  // 'url(…)', payload is the URL
	BadURI               // malformed 'url(…)'
	Function             // identifier + '('
	Number               // numeric value without unit
	Percentage           // numeric value + '%'
	Dimension            // numeric value + unit identifier
	Hash                 // '#' + name
	IncludeMatch         // '~='
	DashMatch            // '|='
	PrefixMatch          // '^='
	SuffixMatch          // '$='
	SubstringMatch       // '*='
	LeftBrace            // '{'
	RightBrace           // '}'
	LeftParen            // '('
	RightParen           // ')'
	LeftBracket          // '['
	RightBracket         // ']'
	Colon                // ':'
	Semicolon            // ';'
	Comma                // ','
	GreaterThan          // '>'
	Plus                 // '+'
	Tilde                // '~'
	Dot                  // '.'
	Asterisk             // '*'
	Equals               // '='
	Delim                // any other single character, payload carries it
)

var tokenNames = [...]string{
	"EOF", "whitespace", "comment", "'<!--'", "'-->'", "identifier",
	"at-keyword", "string", "bad string", "URI", "bad URI", "function",
	"number", "percentage", "dimension", "hash", "'~='", "'|='", "'^='",
	"'$='", "'*='", "'{'", "'}'", "'('", "')'", "'['", "']'", "':'", "';'",
	"','", "'>'", "'+'", "'~'", "'.'", "'*'", "'='", "delimiter",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "unknown"
	}
	return tokenNames[t]
}

// Token is a single classified span of input. Tokens are immutable values;
// the parser stores them verbatim wherever the grammar preserves raw token
// runs (at-rule bodies, declaration values).
//
// Start and End are character positions within the input, with End ≥ Start.
// Positions are monotonically non-decreasing over a single scan.
type Token struct {
	Type   TokenType
	Value  string  // string payload: name, content, raw run, …
	Number float64 // numeric payload for Number, Percentage and Dimension
	Unit   string  // unit identifier for Dimension tokens
	Line   int     // 1-based line of the token start
	Start  int     // character offset of the first character
	End    int     // character offset just past the last character
}

var typeText = map[TokenType]string{
	CDO: "<!--", CDC: "-->", IncludeMatch: "~=", DashMatch: "|=",
	PrefixMatch: "^=", SuffixMatch: "$=", SubstringMatch: "*=",
	LeftBrace: "{", RightBrace: "}", LeftParen: "(", RightParen: ")",
	LeftBracket: "[", RightBracket: "]", Colon: ":", Semicolon: ";",
	Comma: ",", GreaterThan: ">", Plus: "+", Tilde: "~", Dot: ".",
	Asterisk: "*", Equals: "=",
}

// String reconstructs the CSS text of a token. Re-scanning the
// concatenation of preserved tokens yields an equivalent token sequence.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return ""
	case Ident, S, Number, Percentage, Dimension, Delim:
		return t.Value
	case Comment:
		return "/*" + t.Value + "*/"
	case AtKeyword:
		return "@" + t.Value
	case Hash:
		return "#" + t.Value
	case String:
		return "\"" + t.Value + "\""
	case BadString:
		return "\"" + t.Value
	case URI:
		return "url(" + t.Value + ")"
	case BadURI:
		return "url(" + t.Value
	case Function:
		return t.Value + "("
	}
	return typeText[t.Type]
}
