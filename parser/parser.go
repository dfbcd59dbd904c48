package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/csskit/ast"
	"github.com/npillmayer/csskit/scanner"
)

// Parse parses a stylesheet. It always returns a usable AST: rules which
// could not be parsed are dropped or repaired, with a diagnostic appended
// to the returned error list for each problem. An empty list signals a
// clean parse.
func Parse(css string) (*ast.Stylesheet, ErrorList) {
	p := newParser(css)
	sheet := p.parseStylesheet()
	return sheet, p.errors
}

// ParseReader parses a stylesheet read from r. The reader is drained
// completely before parsing starts. Read failures and input which is not
// valid UTF-8 are reported as a hard error, with a nil AST.
func ParseReader(r io.Reader) (*ast.Stylesheet, ErrorList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	if !utf8.Valid(data) {
		return nil, nil, fmt.Errorf("stylesheet input is not valid UTF-8")
	}
	sheet, errs := Parse(string(data))
	return sheet, errs, nil
}

// ParseLocation parses a stylesheet from loc, which is either an HTTP(S)
// URL or a file system path.
func ParseLocation(loc string) (*ast.Stylesheet, ErrorList, error) {
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		resp, err := http.Get(loc)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, nil, fmt.Errorf("fetching stylesheet from %s: %s", loc, resp.Status)
		}
		return ParseReader(resp.Body)
	}
	f, err := os.Open(loc)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseDeclarations parses a bare declaration list, as found in an inline
// style attribute, i.e. without enclosing braces.
func ParseDeclarations(css string) ([]ast.Declaration, ErrorList) {
	p := newParser(css)
	decls, err := p.parseDeclarationList()
	if err != nil {
		p.recover(err)
	}
	return decls, p.errors
}

// --- Parser context --------------------------------------------------------

// parser holds the state of a single parse call: the token source, the
// accumulated diagnostics and a buffer of the comments encountered. A
// fresh parser is created per entry point; nothing is shared between
// calls.
type parser struct {
	sc       *scanner.Scanner
	errors   ErrorList
	comments []string
}

func newParser(css string) *parser {
	return &parser{sc: scanner.New(css)}
}

// recover records err and lets parsing continue at the enclosing recovery
// point.
func (p *parser) recover(err *Error) {
	tracer().Debugf("recovering from parse error: %v", err)
	p.errors = append(p.errors, err)
}

// next returns the next token which is neither whitespace nor a comment.
// Comments are collected into the comment buffer.
func (p *parser) next() scanner.Token {
	for {
		tok := p.sc.NextNoSkip()
		switch tok.Type {
		case scanner.S:
		case scanner.Comment:
			p.comments = append(p.comments, tok.Value)
		default:
			return tok
		}
	}
}

// skipSpace skips over whitespace, comments and stray CDO/CDC markers,
// starting with tok.
func (p *parser) skipSpace(tok scanner.Token) scanner.Token {
	for {
		switch tok.Type {
		case scanner.S, scanner.CDO, scanner.CDC:
		case scanner.Comment:
			p.comments = append(p.comments, tok.Value)
		default:
			return tok
		}
		tok = p.sc.NextNoSkip()
	}
}

func (p *parser) nextSignificant() scanner.Token {
	return p.skipSpace(p.sc.NextNoSkip())
}

// --- Rules -----------------------------------------------------------------

// parseStylesheet is the top-level loop. Each top-level rule is a recovery
// point: a failed rule is dropped and parsing resumes with the token
// stream wherever the failure left it.
func (p *parser) parseStylesheet() *ast.Stylesheet {
	var rules []ast.Rule
	for {
		tok := p.sc.NextNoSkip()
		if tok.Type == scanner.EOF {
			break
		}
		switch tok.Type {
		case scanner.S, scanner.CDO, scanner.CDC:
		case scanner.Comment:
			p.comments = append(p.comments, tok.Value)
		case scanner.AtKeyword:
			p.sc.PushBack()
			if rule, err := p.parseAtRule(); err != nil {
				p.recover(err)
			} else {
				rules = append(rules, rule)
			}
		default:
			p.sc.PushBack()
			if rule, err := p.parseStyleRule(); err != nil {
				p.recover(err)
			} else {
				rules = append(rules, rule)
			}
		}
	}
	tracer().Debugf("parsed stylesheet with %d rule(s), %d error(s)", len(rules), len(p.errors))
	return &ast.Stylesheet{Rules: rules}
}

// parseAtRule parses '@keyword header ;' or '@keyword header { body }'.
// Header and body are preserved as raw token runs; the body keeps every
// token between the braces verbatim, the header drops whitespace between
// its component values.
func (p *parser) parseAtRule() (*ast.AtRule, *Error) {
	tok := p.sc.NextNoSkip()
	if tok.Type != scanner.AtKeyword {
		return nil, expected(tok, "at-rule", "at-keyword")
	}
	keyword := tok.Value
	var header []scanner.Token
	tok = p.next()
	for tok.Type != scanner.EOF && tok.Type != scanner.LeftBrace && tok.Type != scanner.Semicolon {
		p.sc.PushBack()
		if err := p.parseComponentValue(&header); err != nil {
			return nil, err
		}
		tok = p.next()
	}
	if tok.Type != scanner.LeftBrace {
		// semicolon-terminated or cut off at EOF
		return &ast.AtRule{Keyword: keyword, Header: header}, nil
	}
	p.sc.PushBack()
	var body []scanner.Token
	if err := p.parseBlock(scanner.LeftBrace, scanner.RightBrace, &body); err != nil {
		return nil, err
	}
	body = body[1 : len(body)-1] // strip the braces
	tracer().Debugf("parsed at-rule @%s with %d body token(s)", keyword, len(body))
	return &ast.AtRule{Keyword: keyword, Header: header, Body: body}, nil
}

// parseComponentValue appends a single preserved token, or a complete
// balanced block, to run.
func (p *parser) parseComponentValue(run *[]scanner.Token) *Error {
	tok := p.sc.NextNoSkip()
	switch tok.Type {
	case scanner.LeftBrace:
		p.sc.PushBack()
		return p.parseBlock(scanner.LeftBrace, scanner.RightBrace, run)
	case scanner.LeftParen:
		p.sc.PushBack()
		return p.parseBlock(scanner.LeftParen, scanner.RightParen, run)
	case scanner.LeftBracket:
		p.sc.PushBack()
		return p.parseBlock(scanner.LeftBracket, scanner.RightBracket, run)
	case scanner.EOF:
		return expected(tok, "component value", "token")
	}
	*run = append(*run, tok)
	return nil
}

// parseBlock appends a balanced 'open … close' run to run, including the
// delimiters. Nested blocks of any bracket kind are consumed recursively,
// all other tokens are preserved verbatim. An EOF before the closing
// delimiter is an error.
func (p *parser) parseBlock(open, close scanner.TokenType, run *[]scanner.Token) *Error {
	tok := p.sc.NextNoSkip()
	if tok.Type != open {
		return expected(tok, "block", open.String())
	}
	*run = append(*run, tok)
	for {
		tok = p.sc.NextNoSkip()
		switch tok.Type {
		case scanner.EOF:
			return expected(tok, "block", close.String())
		case close:
			*run = append(*run, tok)
			return nil
		case scanner.LeftBrace:
			p.sc.PushBack()
			if err := p.parseBlock(scanner.LeftBrace, scanner.RightBrace, run); err != nil {
				return err
			}
		case scanner.LeftParen:
			p.sc.PushBack()
			if err := p.parseBlock(scanner.LeftParen, scanner.RightParen, run); err != nil {
				return err
			}
		case scanner.LeftBracket:
			p.sc.PushBack()
			if err := p.parseBlock(scanner.LeftBracket, scanner.RightBracket, run); err != nil {
				return err
			}
		default:
			*run = append(*run, tok)
		}
	}
}

// parseStyleRule parses 'selector_group { declarations }'. A rule starting
// directly with '{' selects everything, i.e. gets the universal selector.
func (p *parser) parseStyleRule() (*ast.StyleRule, *Error) {
	tok := p.nextSignificant()
	p.sc.PushBack()
	var group ast.SelectorGroup
	if tok.Type == scanner.LeftBrace {
		group = ast.SelectorGroup{Selectors: []ast.Selector{ast.Universal{}}}
	} else {
		g, err := p.parseSelectorGroup()
		if err != nil {
			return nil, err
		}
		group = g
	}
	tok = p.nextSignificant()
	if tok.Type != scanner.LeftBrace {
		return nil, expected(tok, "style rule", "'{'")
	}
	declarations, err := p.parseDeclarationList()
	if err != nil {
		return nil, err
	}
	tok = p.nextSignificant()
	if tok.Type != scanner.RightBrace {
		return nil, expected(tok, "style rule", "'}'")
	}
	tracer().Debugf("parsed style rule '%s' with %d declaration(s)", group, len(declarations))
	return &ast.StyleRule{Selectors: group, Declarations: declarations}, nil
}

// --- Selectors -------------------------------------------------------------

func (p *parser) parseSelectorGroup() (ast.SelectorGroup, *Error) {
	selectors := []ast.Selector{p.parseSelector()}
	for {
		tok := p.sc.NextNoSkip()
		if tok.Type == scanner.EOF || tok.Type == scanner.LeftBrace {
			p.sc.PushBack()
			return ast.SelectorGroup{Selectors: selectors}, nil
		}
		tok = p.skipSpace(tok)
		if tok.Type != scanner.Comma {
			return ast.SelectorGroup{}, expected(tok, "selector group", "','")
		}
		selectors = append(selectors, p.parseSelector())
	}
}

// parseSelector parses one selector alternative as a right-leaning tree:
// after the leading simple selector, any combinator hands the rest of the
// input to a recursive parseSelector call, so 'a > b > c' comes out as
// Child(a, Child(b, c)). Whitespace is a combinator only when it is not
// followed by an explicit one and not by the end of the selector.
func (p *parser) parseSelector() ast.Selector {
	var sel ast.Selector = p.parseSimpleSelector()
	for {
		tok := p.sc.NextNoSkip()
		if selectorEnd(tok) {
			break
		}
		potentialDescendant := false
		if tok.Type == scanner.S {
			potentialDescendant = true
			tok = p.skipSpace(tok)
			if selectorEnd(tok) {
				break
			}
		}
		switch tok.Type {
		case scanner.GreaterThan:
			sel = ast.Child{Left: sel, Right: p.parseSelector()}
		case scanner.Plus:
			sel = ast.AdjacentSibling{Left: sel, Right: p.parseSelector()}
		case scanner.Tilde:
			sel = ast.GeneralSibling{Left: sel, Right: p.parseSelector()}
		default:
			p.sc.PushBack()
			if potentialDescendant {
				sel = ast.Descendant{Left: sel, Right: p.parseSelector()}
			} else {
				sel = ast.And{Left: sel, Right: p.parseSelector()}
			}
		}
	}
	p.sc.PushBack()
	return sel
}

func selectorEnd(tok scanner.Token) bool {
	return tok.Type == scanner.EOF || tok.Type == scanner.LeftBrace || tok.Type == scanner.Comma
}

// failAt reports an unexpected token inside a simple selector. Braces are
// pushed back so that the style-rule level can resynchronize on them.
func (p *parser) failAt(tok scanner.Token, context, what string) *Error {
	if tok.Type == scanner.LeftBrace || tok.Type == scanner.RightBrace {
		p.sc.PushBack()
	}
	return expected(tok, context, what)
}

// parseSimpleSelector is a recovery point: an unparsable simple selector
// is recorded and replaced by the SelectNothing sentinel, keeping the
// enclosing selector tree intact.
func (p *parser) parseSimpleSelector() ast.SimpleSelector {
	tok := p.nextSignificant()
	sel, err := p.simpleSelector(tok)
	if err != nil {
		p.recover(err)
		return ast.SelectNothing{}
	}
	return sel
}

func (p *parser) simpleSelector(tok scanner.Token) (ast.SimpleSelector, *Error) {
	switch tok.Type {
	case scanner.Asterisk:
		return ast.Universal{}, nil
	case scanner.Ident:
		return ast.Type{Name: tok.Value}, nil
	case scanner.Hash:
		return ast.ID{Name: tok.Value}, nil
	case scanner.Dot:
		tok = p.sc.NextNoSkip()
		if tok.Type != scanner.Ident {
			return nil, p.failAt(tok, "class selector", "identifier")
		}
		return ast.Class{Name: tok.Value}, nil
	case scanner.Colon:
		p.sc.PushBack()
		return p.parsePseudoClassSelector()
	case scanner.LeftBracket:
		p.sc.PushBack()
		return p.parseAttributeSelector()
	case scanner.LeftBrace:
		// leave the brace for the style-rule recovery
		p.sc.PushBack()
	}
	return nil, expected(tok, "simple selector", "selector")
}

func (p *parser) parsePseudoClassSelector() (ast.SimpleSelector, *Error) {
	tok := p.sc.NextNoSkip()
	if tok.Type != scanner.Colon {
		return nil, expected(tok, "pseudo-class selector", "':'")
	}
	tok = p.sc.NextNoSkip()
	switch tok.Type {
	case scanner.Ident:
		return ast.PseudoClass{Name: tok.Value}, nil
	case scanner.Function:
		p.sc.PushBack()
		return p.parseFunctionPseudoClass()
	}
	return nil, p.failAt(tok, "pseudo-class selector", "identifier or function")
}

// parseFunctionPseudoClass parses ':not(simple_selector)' into a Negation
// node. Any other functional pseudo-class is scanned over up to its closing
// parenthesis without interpreting the arguments; a brace inside the
// arguments is an error, with the brace left in the stream for recovery.
func (p *parser) parseFunctionPseudoClass() (ast.SimpleSelector, *Error) {
	tok := p.sc.NextNoSkip()
	if tok.Type != scanner.Function {
		return nil, expected(tok, "pseudo-class selector", "function")
	}
	name := tok.Value
	if name == "not" {
		inner := p.parseSimpleSelector()
		tok = p.next()
		if tok.Type != scanner.RightParen {
			return nil, expected(tok, ":not() selector", "')'")
		}
		return ast.Negation{Inner: inner}, nil
	}
	for {
		tok = p.next()
		switch tok.Type {
		case scanner.RightParen:
			return ast.PseudoClassFunction{Name: name}, nil
		case scanner.EOF:
			return nil, expected(tok, ":"+name+"() selector", "')'")
		case scanner.LeftBrace, scanner.RightBrace:
			p.sc.PushBack()
			return nil, expected(tok, ":"+name+"() selector", "')'")
		}
	}
}

// parseAttributeSelector parses '[name]' or '[name op operand]', with op
// one of the six match operators and operand an identifier, string or
// number. Whitespace around the parts is permitted.
func (p *parser) parseAttributeSelector() (ast.SimpleSelector, *Error) {
	tok := p.sc.NextNoSkip()
	if tok.Type != scanner.LeftBracket {
		return nil, expected(tok, "attribute selector", "'['")
	}
	tok = p.next()
	if tok.Type != scanner.Ident {
		return nil, p.failAt(tok, "attribute selector", "attribute name")
	}
	name := tok.Value
	var op ast.AttributeOp
	tok = p.next()
	switch tok.Type {
	case scanner.RightBracket:
		return ast.Attribute{Name: name, Op: ast.AttrExists}, nil
	case scanner.Equals:
		op = ast.AttrEquals
	case scanner.IncludeMatch:
		op = ast.AttrIncludes
	case scanner.DashMatch:
		op = ast.AttrDashMatch
	case scanner.PrefixMatch:
		op = ast.AttrPrefix
	case scanner.SuffixMatch:
		op = ast.AttrSuffix
	case scanner.SubstringMatch:
		op = ast.AttrSubstring
	default:
		return nil, p.failAt(tok, "attribute selector", "']' or match operator")
	}
	tok = p.next()
	switch tok.Type {
	case scanner.Ident, scanner.String, scanner.Number:
	default:
		return nil, p.failAt(tok, "attribute selector", "identifier, string or number")
	}
	value := tok.Value
	tok = p.next()
	if tok.Type != scanner.RightBracket {
		return nil, p.failAt(tok, "attribute selector", "']'")
	}
	return ast.Attribute{Name: name, Op: op, Value: value}, nil
}

// --- Declarations ----------------------------------------------------------

// parseDeclarationList parses declarations up to (but excluding) a closing
// '}' or EOF. Each declaration is a recovery point: a malformed one is
// skipped with a diagnostic, its siblings survive. Stray semicolons are
// ignored.
func (p *parser) parseDeclarationList() ([]ast.Declaration, *Error) {
	var decls []ast.Declaration
	for {
		tok := p.next()
		switch tok.Type {
		case scanner.EOF, scanner.RightBrace:
			p.sc.PushBack()
			return decls, nil
		case scanner.Ident:
			p.sc.PushBack()
			if d, err := p.parseDeclaration(); err != nil {
				p.recover(err)
			} else {
				decls = append(decls, d)
			}
		case scanner.Semicolon:
		default:
			return decls, expected(tok, "declaration list", "declaration")
		}
	}
}

func (p *parser) parseDeclaration() (ast.Declaration, *Error) {
	tok := p.sc.NextNoSkip()
	if tok.Type != scanner.Ident {
		return ast.Declaration{}, expected(tok, "declaration", "property name")
	}
	property, start := tok.Value, tok.Start
	tok = p.nextSignificant()
	if tok.Type != scanner.Colon {
		return ast.Declaration{}, p.failAt(tok, "declaration", "':'")
	}
	end := tok.End
	terms, err := p.parseTerms()
	if err != nil {
		return ast.Declaration{}, err
	}
	if len(terms) > 0 {
		end = terms[len(terms)-1].End
	}
	return ast.Declaration{Property: property, Terms: terms, Start: start, End: end}, nil
}

// parseTerms collects the value tokens of a declaration up to the next
// ';', '}' or EOF, which is left in the stream. Terms stay a flat run, but
// '{…}' and '[…]' sub-runs are consumed as balanced blocks, so the result
// never contains an unmatched bracket. Bad strings and bad URIs are hard
// errors which discard the declaration.
func (p *parser) parseTerms() ([]scanner.Token, *Error) {
	p.nextSignificant() // drop leading whitespace, comments, CDO/CDC
	p.sc.PushBack()
	var terms []scanner.Token
	for {
		tok := p.sc.NextNoSkip()
		if tok.Type == scanner.EOF || tok.Type == scanner.Semicolon || tok.Type == scanner.RightBrace {
			break
		}
		switch tok.Type {
		case scanner.CDO, scanner.CDC:
		case scanner.BadString:
			return nil, errorAt(tok, "terms: unterminated string")
		case scanner.BadURI:
			return nil, errorAt(tok, "terms: malformed URI")
		case scanner.LeftBrace:
			p.sc.PushBack()
			if err := p.parseBlock(scanner.LeftBrace, scanner.RightBrace, &terms); err != nil {
				return nil, err
			}
		case scanner.LeftBracket:
			p.sc.PushBack()
			if err := p.parseBlock(scanner.LeftBracket, scanner.RightBracket, &terms); err != nil {
				return nil, err
			}
		default:
			terms = append(terms, tok)
		}
	}
	p.sc.PushBack()
	for len(terms) > 0 && terms[len(terms)-1].Type == scanner.S {
		terms = terms[:len(terms)-1]
	}
	return terms, nil
}
