package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanSingleTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	tests := []struct {
		input string
		typ   TokenType
		value string
	}{
		{"foo", Ident, "foo"},
		{"-moz-box", Ident, "-moz-box"},
		{"#id1", Hash, "id1"},
		{"@media", AtKeyword, "media"},
		{"\"hello\"", String, "hello"},
		{"'hello'", String, "hello"},
		{"rgb(", Function, "rgb"},
		{"url(foo.css)", URI, "foo.css"},
		{"url( 'foo.css' )", URI, "foo.css"},
		{"/* note */", Comment, " note "},
		{"<!--", CDO, ""},
		{"-->", CDC, ""},
		{"   \t\n", S, "   \t\n"},
		{"{", LeftBrace, ""},
		{"}", RightBrace, ""},
		{"[", LeftBracket, ""},
		{"]", RightBracket, ""},
		{"(", LeftParen, ""},
		{")", RightParen, ""},
		{":", Colon, ""},
		{";", Semicolon, ""},
		{",", Comma, ""},
		{">", GreaterThan, ""},
		{"+", Plus, ""},
		{"~", Tilde, ""},
		{".", Dot, ""},
		{"*", Asterisk, ""},
		{"=", Equals, ""},
		{"~=", IncludeMatch, ""},
		{"|=", DashMatch, ""},
		{"^=", PrefixMatch, ""},
		{"$=", SuffixMatch, ""},
		{"*=", SubstringMatch, ""},
		{"!", Delim, "!"},
		{"|", Delim, "|"},
	}
	for _, test := range tests {
		s := New(test.input)
		tok := s.NextNoSkip()
		if tok.Type != test.typ {
			t.Errorf("input %q: expected token type %s, got %s", test.input, test.typ, tok.Type)
		}
		if tok.Value != test.value {
			t.Errorf("input %q: expected payload %q, got %q", test.input, test.value, tok.Value)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	tests := []struct {
		input  string
		typ    TokenType
		number float64
		unit   string
	}{
		{"12", Number, 12, ""},
		{"-3.5", Number, -3.5, ""},
		{"+.5", Number, 0.5, ""},
		{"1e3", Number, 1000, ""},
		{"50%", Percentage, 50, ""},
		{"12pt", Dimension, 12, "pt"},
		{"1.5em", Dimension, 1.5, "em"},
		{"-4px", Dimension, -4, "px"},
	}
	for _, test := range tests {
		s := New(test.input)
		tok := s.NextNoSkip()
		if tok.Type != test.typ {
			t.Errorf("input %q: expected %s, got %s", test.input, test.typ, tok.Type)
			continue
		}
		if tok.Number != test.number {
			t.Errorf("input %q: expected numeric payload %v, got %v", test.input, test.number, tok.Number)
		}
		if tok.Unit != test.unit {
			t.Errorf("input %q: expected unit %q, got %q", test.input, test.unit, tok.Unit)
		}
	}
}

func TestScanBadTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New("\"unterminated")
	if tok := s.NextNoSkip(); tok.Type != BadString {
		t.Errorf("expected unterminated string to scan as bad string, got %s", tok.Type)
	}
	s = New("\"broken\nrest")
	if tok := s.NextNoSkip(); tok.Type != BadString {
		t.Errorf("expected string broken by newline to scan as bad string, got %s", tok.Type)
	}
	if tok := s.NextNoSkip(); tok.Type != S {
		t.Errorf("expected scanning to continue after bad string, got %s", tok.Type)
	}
	s = New("url(fo o.css)")
	if tok := s.NextNoSkip(); tok.Type != BadURI {
		t.Errorf("expected malformed url to scan as bad URI, got %s", tok.Type)
	}
	if tok := s.NextNoSkip(); tok.Type != EOF {
		t.Errorf("expected bad-URI recovery to consume up to ')', got %s", tok.Type)
	}
}

func TestScanPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New("a {\n  b: 1;\n}")
	var last Token
	end := 0
	for {
		tok := s.NextNoSkip()
		if tok.End < tok.Start {
			t.Errorf("token %s: end position %d < start position %d", tok.Type, tok.End, tok.Start)
		}
		if tok.Start < end {
			t.Errorf("token %s: start position %d overlaps previous token end %d", tok.Type, tok.Start, end)
		}
		end = tok.End
		if tok.Type == EOF {
			last = tok
			break
		}
		last = tok
	}
	if last.Line != 3 {
		t.Errorf("expected EOF on line 3, got line %d", last.Line)
	}
	s = New("a\nb\nc")
	s.NextNoSkip()
	s.NextNoSkip()
	if tok := s.NextNoSkip(); tok.Line != 2 {
		t.Errorf("expected 'b' on line 2, is on %d", tok.Line)
	}
}

func TestScanPushBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New("a b")
	tok := s.NextNoSkip()
	s.PushBack()
	again := s.NextNoSkip()
	if tok != again {
		t.Errorf("expected pushed-back token to be returned again, got %v and %v", tok, again)
	}
	if tok := s.Next(); tok.Type != Ident || tok.Value != "b" {
		t.Errorf("expected scanning to resume with 'b', got %v", tok)
	}
}

func TestScanEOFIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New("a")
	s.NextNoSkip()
	for i := 0; i < 3; i++ {
		if tok := s.NextNoSkip(); tok.Type != EOF {
			t.Fatalf("expected repeated EOF tokens at end of input, got %s", tok.Type)
		}
	}
}

func TestScanWhitespaceCollapsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New("a   \t  b")
	s.NextNoSkip()
	ws := s.NextNoSkip()
	if ws.Type != S {
		t.Fatalf("expected single whitespace token, got %s", ws.Type)
	}
	if tok := s.NextNoSkip(); tok.Type != Ident || tok.Value != "b" {
		t.Errorf("expected whitespace run to collapse into one token, next is %v", tok)
	}
}

func TestScanNextSkipsTrivia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New("  /* hi */  color")
	if tok := s.Next(); tok.Type != Ident || tok.Value != "color" {
		t.Errorf("expected Next to skip whitespace and comments, got %v", tok)
	}
}

func TestScanEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csskit.scanner")
	defer teardown()
	//
	s := New(`\66 oo`)
	if tok := s.NextNoSkip(); tok.Type != Ident || tok.Value != "foo" {
		t.Errorf("expected hex escape to decode into 'foo', got %q", tok.Value)
	}
	s = New(`"a\"b"`)
	if tok := s.NextNoSkip(); tok.Type != String || tok.Value != `a"b` {
		t.Errorf("expected escaped quote inside string, got %q", tok.Value)
	}
}
