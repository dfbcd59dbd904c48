package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// eof is the sentinel code point for end of input.
const eof rune = -1

// Scanner scans CSS tokens from a character source. The zero value is not
// usable; create instances with New.
//
// Scanners carry no I/O: the complete input has been acquired by the caller
// before scanning starts. A Scanner must not be used concurrently.
type Scanner struct {
	input  []rune
	pos    int   // index of the next code point
	line   int   // current line, 1-based
	tok    Token // most recently returned token
	pushed bool  // tok has been pushed back and is pending
}

// preprocessor normalizes line endings and NULs before scanning, following
// the input preprocessing rules of CSS Syntax Level 3, §3.3.
var preprocessor = strings.NewReplacer(
	"\r\n", "\n", "\r", "\n", "\f", "\n", "\x00", "�",
)

// New creates a scanner for the given input text.
func New(input string) *Scanner {
	return &Scanner{
		input: []rune(preprocessor.Replace(input)),
		line:  1,
	}
}

// Next returns the next token, silently skipping whitespace and comments.
func (s *Scanner) Next() Token {
	for {
		t := s.NextNoSkip()
		if t.Type != S && t.Type != Comment {
			return t
		}
	}
}

// NextNoSkip returns the next token, including whitespace and comment
// tokens. Some grammar positions have to distinguish "no token here" from
// "whitespace here", e.g. to decide between a descendant combinator and the
// end of a selector.
func (s *Scanner) NextNoSkip() Token {
	if s.pushed {
		s.pushed = false
		return s.tok
	}
	s.tok = s.scan()
	return s.tok
}

// PushBack un-consumes the most recently returned token. Only a single
// token of pushback is supported; calling PushBack twice without an
// intervening Next/NextNoSkip has no additional effect.
func (s *Scanner) PushBack() {
	s.pushed = true
}

// --- Token scanning --------------------------------------------------------

func (s *Scanner) scan() Token {
	start, line := s.pos, s.line
	ch := s.at(0)
	switch {
	case ch == eof:
		return s.token(EOF, "", start, line)
	case isSpace(ch):
		return s.scanWhitespace(start, line)
	case ch == '"' || ch == '\'':
		return s.scanString(start, line)
	case ch == '#':
		if isName(s.at(1)) || s.validEscape(1) {
			s.advance(1)
			return s.token(Hash, s.scanName(), start, line)
		}
		s.advance(1)
		return s.token(Delim, "#", start, line)
	case ch == '@':
		if s.identAt(1) {
			s.advance(1)
			return s.token(AtKeyword, s.scanName(), start, line)
		}
		s.advance(1)
		return s.token(Delim, "@", start, line)
	case ch == '/':
		if s.at(1) == '*' {
			return s.scanComment(start, line)
		}
		s.advance(1)
		return s.token(Delim, "/", start, line)
	case ch == '<':
		if s.at(1) == '!' && s.at(2) == '-' && s.at(3) == '-' {
			s.advance(4)
			return s.token(CDO, "", start, line)
		}
		s.advance(1)
		return s.token(Delim, "<", start, line)
	case ch == '-':
		if isDigit(s.at(1)) || (s.at(1) == '.' && isDigit(s.at(2))) {
			return s.scanNumeric(start, line)
		}
		if s.at(1) == '-' && s.at(2) == '>' {
			s.advance(3)
			return s.token(CDC, "", start, line)
		}
		if isNameStart(s.at(1)) || s.validEscape(1) {
			return s.scanIdentLike(start, line)
		}
		s.advance(1)
		return s.token(Delim, "-", start, line)
	case ch == '+':
		if isDigit(s.at(1)) || (s.at(1) == '.' && isDigit(s.at(2))) {
			return s.scanNumeric(start, line)
		}
		s.advance(1)
		return s.token(Plus, "", start, line)
	case ch == '.':
		if isDigit(s.at(1)) {
			return s.scanNumeric(start, line)
		}
		s.advance(1)
		return s.token(Dot, "", start, line)
	case isDigit(ch):
		return s.scanNumeric(start, line)
	case isNameStart(ch) || s.validEscape(0):
		return s.scanIdentLike(start, line)
	case ch == '~':
		return s.matchOrDelim(IncludeMatch, Tilde, start, line)
	case ch == '|':
		if s.at(1) == '=' {
			s.advance(2)
			return s.token(DashMatch, "", start, line)
		}
		s.advance(1)
		return s.token(Delim, "|", start, line)
	case ch == '^':
		if s.at(1) == '=' {
			s.advance(2)
			return s.token(PrefixMatch, "", start, line)
		}
		s.advance(1)
		return s.token(Delim, "^", start, line)
	case ch == '$':
		if s.at(1) == '=' {
			s.advance(2)
			return s.token(SuffixMatch, "", start, line)
		}
		s.advance(1)
		return s.token(Delim, "$", start, line)
	case ch == '*':
		return s.matchOrDelim(SubstringMatch, Asterisk, start, line)
	}
	if typ, ok := singleCharTokens[ch]; ok {
		s.advance(1)
		return s.token(typ, "", start, line)
	}
	s.advance(1)
	return s.token(Delim, string(ch), start, line)
}

var singleCharTokens = map[rune]TokenType{
	'{': LeftBrace, '}': RightBrace, '(': LeftParen, ')': RightParen,
	'[': LeftBracket, ']': RightBracket, ':': Colon, ';': Semicolon,
	',': Comma, '>': GreaterThan, '=': Equals,
}

// matchOrDelim scans a two-character match operator ('~=', '*=') or falls
// back to the single-character token type.
func (s *Scanner) matchOrDelim(match, single TokenType, start, line int) Token {
	if s.at(1) == '=' {
		s.advance(2)
		return s.token(match, "", start, line)
	}
	s.advance(1)
	return s.token(single, "", start, line)
}

// scanWhitespace collapses a run of whitespace into a single S token,
// preserving the raw run as the payload.
func (s *Scanner) scanWhitespace(start, line int) Token {
	var b strings.Builder
	for isSpace(s.at(0)) {
		b.WriteRune(s.at(0))
		s.advance(1)
	}
	return s.token(S, b.String(), start, line)
}

// scanComment consumes '/* … */' up to and including the closing marker.
// A comment left open at end of input is closed there.
func (s *Scanner) scanComment(start, line int) Token {
	s.advance(2)
	var b strings.Builder
	for {
		ch := s.at(0)
		if ch == eof {
			break
		}
		if ch == '*' && s.at(1) == '/' {
			s.advance(2)
			break
		}
		b.WriteRune(ch)
		s.advance(1)
	}
	return s.token(Comment, b.String(), start, line)
}

// scanString consumes a quoted string. An unescaped newline or the end of
// input before the closing quote yields a BadString token; the parser
// decides how to react.
func (s *Scanner) scanString(start, line int) Token {
	ending := s.at(0)
	s.advance(1)
	var b strings.Builder
	for {
		ch := s.at(0)
		switch {
		case ch == eof, ch == '\n':
			tracer().Debugf("unterminated string at line %d", line)
			return s.token(BadString, b.String(), start, line)
		case ch == ending:
			s.advance(1)
			return s.token(String, b.String(), start, line)
		case ch == '\\':
			if s.at(1) == '\n' { // escaped newline: line continuation
				s.advance(2)
			} else if s.validEscape(0) {
				s.advance(1)
				b.WriteRune(s.scanEscape())
			} else {
				s.advance(1)
			}
		default:
			b.WriteRune(ch)
			s.advance(1)
		}
	}
}

// scanNumeric consumes a number together with an optional '%' or unit
// suffix, producing a Number, Percentage or Dimension token.
func (s *Scanner) scanNumeric(start, line int) Token {
	repr, num := s.scanNumber()
	if s.identAt(0) {
		unit := s.scanName()
		t := s.token(Dimension, repr+unit, start, line)
		t.Number, t.Unit = num, unit
		return t
	}
	if s.at(0) == '%' {
		s.advance(1)
		t := s.token(Percentage, repr+"%", start, line)
		t.Number = num
		return t
	}
	t := s.token(Number, repr, start, line)
	t.Number = num
	return t
}

// scanNumber consumes sign, integer part, fraction and exponent.
func (s *Scanner) scanNumber() (string, float64) {
	var b strings.Builder
	if ch := s.at(0); ch == '+' || ch == '-' {
		b.WriteRune(ch)
		s.advance(1)
	}
	s.scanDigits(&b)
	if s.at(0) == '.' && isDigit(s.at(1)) {
		b.WriteRune('.')
		s.advance(1)
		s.scanDigits(&b)
	}
	if ch := s.at(0); ch == 'e' || ch == 'E' {
		if isDigit(s.at(1)) {
			b.WriteRune(ch)
			s.advance(1)
			s.scanDigits(&b)
		} else if (s.at(1) == '+' || s.at(1) == '-') && isDigit(s.at(2)) {
			b.WriteRune(ch)
			b.WriteRune(s.at(1))
			s.advance(2)
			s.scanDigits(&b)
		}
	}
	num, _ := strconv.ParseFloat(b.String(), 64)
	return b.String(), num
}

func (s *Scanner) scanDigits(b *strings.Builder) {
	for isDigit(s.at(0)) {
		b.WriteRune(s.at(0))
		s.advance(1)
	}
}

// scanIdentLike consumes a name and decides between an identifier, a
// function token and a URI.
func (s *Scanner) scanIdentLike(start, line int) Token {
	name := s.scanName()
	if s.at(0) == '(' {
		s.advance(1)
		if strings.EqualFold(name, "url") {
			return s.scanURL(start, line)
		}
		return s.token(Function, name, start, line)
	}
	return s.token(Ident, name, start, line)
}

// scanName consumes contiguous name code points and escaped code points.
func (s *Scanner) scanName() string {
	var b strings.Builder
	for {
		if ch := s.at(0); isName(ch) {
			b.WriteRune(ch)
			s.advance(1)
		} else if s.validEscape(0) {
			s.advance(1)
			b.WriteRune(s.scanEscape())
		} else {
			return b.String()
		}
	}
}

// scanEscape consumes an escaped code point; the backslash has already been
// consumed.
func (s *Scanner) scanEscape() rune {
	ch := s.at(0)
	if ch == eof {
		return '�'
	}
	if !isHexDigit(ch) {
		s.advance(1)
		return ch
	}
	var b strings.Builder
	for i := 0; i < 6 && isHexDigit(s.at(0)); i++ {
		b.WriteRune(s.at(0))
		s.advance(1)
	}
	if isSpace(s.at(0)) { // a single whitespace terminates the escape
		s.advance(1)
	}
	v, _ := strconv.ParseInt(b.String(), 16, 32)
	return rune(v)
}

// scanURL consumes the contents of 'url(…)'; the opening 'url(' has already
// been consumed. Malformed contents produce a BadURI token after skipping
// ahead to the closing parenthesis.
func (s *Scanner) scanURL(start, line int) Token {
	s.skipSpace()
	if ch := s.at(0); ch == '"' || ch == '\'' {
		str := s.scanString(s.pos, s.line)
		if str.Type == BadString {
			s.consumeBadURL()
			return s.token(BadURI, str.Value, start, line)
		}
		s.skipSpace()
		if ch := s.at(0); ch == ')' || ch == eof {
			s.advance(1)
			return s.token(URI, str.Value, start, line)
		}
		s.consumeBadURL()
		return s.token(BadURI, str.Value, start, line)
	}
	var b strings.Builder
	for {
		ch := s.at(0)
		switch {
		case ch == ')' || ch == eof:
			s.advance(1)
			return s.token(URI, b.String(), start, line)
		case isSpace(ch):
			s.skipSpace()
			if ch := s.at(0); ch == ')' || ch == eof {
				s.advance(1)
				return s.token(URI, b.String(), start, line)
			}
			s.consumeBadURL()
			return s.token(BadURI, b.String(), start, line)
		case ch == '"' || ch == '\'' || ch == '(' || isNonPrintable(ch):
			s.consumeBadURL()
			return s.token(BadURI, b.String(), start, line)
		case ch == '\\':
			if s.validEscape(0) {
				s.advance(1)
				b.WriteRune(s.scanEscape())
			} else {
				s.consumeBadURL()
				return s.token(BadURI, b.String(), start, line)
			}
		default:
			b.WriteRune(ch)
			s.advance(1)
		}
	}
}

// consumeBadURL recovers from a malformed URL by consuming everything up to
// the closing parenthesis or the end of input.
func (s *Scanner) consumeBadURL() {
	tracer().Debugf("malformed url(…) at line %d", s.line)
	for {
		ch := s.at(0)
		if ch == ')' || ch == eof {
			s.advance(1)
			return
		}
		if s.validEscape(0) {
			s.advance(1)
			s.scanEscape()
			continue
		}
		s.advance(1)
	}
}

// --- Low-level input access ------------------------------------------------

// at peeks at the code point i positions ahead, without consuming.
func (s *Scanner) at(i int) rune {
	if s.pos+i >= len(s.input) {
		return eof
	}
	return s.input[s.pos+i]
}

// advance consumes n code points, tracking line numbers.
func (s *Scanner) advance(n int) {
	for i := 0; i < n && s.pos < len(s.input); i++ {
		if s.input[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
}

func (s *Scanner) skipSpace() {
	for isSpace(s.at(0)) {
		s.advance(1)
	}
}

// validEscape reports whether the code points at offset i start a valid
// escape sequence.
func (s *Scanner) validEscape(i int) bool {
	return s.at(i) == '\\' && s.at(i+1) != '\n' && s.at(i+1) != eof
}

// identAt reports whether an identifier starts at offset i.
func (s *Scanner) identAt(i int) bool {
	switch {
	case s.at(i) == '-':
		return isNameStart(s.at(i+1)) || s.validEscape(i+1)
	case isNameStart(s.at(i)):
		return true
	}
	return s.validEscape(i)
}

func (s *Scanner) token(typ TokenType, value string, start, line int) Token {
	return Token{
		Type:  typ,
		Value: value,
		Line:  line,
		Start: start,
		End:   s.pos,
	}
}

// --- Character classes -----------------------------------------------------

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameStart(ch rune) bool {
	return isLetter(ch) || ch == '_' || ch >= '\u0080'
}

func isName(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}

func isNonPrintable(ch rune) bool {
	return (ch >= '\u0000' && ch <= '\u0008') || ch == '\u000B' ||
		(ch >= '\u000E' && ch <= '\u001F') || ch == '\u007F'
}
