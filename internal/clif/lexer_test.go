package clif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestLexerKeywords(t *testing.T) {
	l := NewLexer("not and or exists forall if iff cl-text cl-comment cl-imports")
	got := kinds(l.Tokenize())
	want := []TokenType{NOT, AND, OR, EXISTS, FORALL, IF, IFF, CLTEXT, CLCOMMENT, CLIMPORTS, EOF}
	assert.Equal(t, want, got)
	assert.Empty(t, l.Diagnostics)
}

func TestLexerKeywordNeverPrefixMatches(t *testing.T) {
	l := NewLexer("notation orbit iffy forall-x")
	tokens := l.Tokenize()
	require.Len(t, tokens, 5)
	for _, tok := range tokens[:4] {
		assert.Equal(t, NAME, tok.Type, "token %q", tok.Literal)
	}
}

func TestLexerNames(t *testing.T) {
	l := NewLexer("(P x_1 some-name <= >= =)")
	tokens := l.Tokenize()
	want := []TokenType{LPAREN, NAME, NAME, NAME, NAME, NAME, NAME, RPAREN, EOF}
	assert.Equal(t, want, kinds(tokens))
	assert.Equal(t, "<=", tokens[4].Literal)
	assert.Equal(t, "=", tokens[6].Literal)
}

func TestLexerURI(t *testing.T) {
	l := NewLexer("(cl-imports http://example.org/onto/time.clif)")
	tokens := l.Tokenize()
	require.Equal(t, []TokenType{LPAREN, CLIMPORTS, URI, RPAREN, EOF}, kinds(tokens))
	assert.Equal(t, "http://example.org/onto/time.clif", tokens[2].Literal)

	l = NewLexer("https://example.org/x")
	tokens = l.Tokenize()
	require.Equal(t, URI, tokens[0].Type)
	assert.Equal(t, "https://example.org/x", tokens[0].Literal)
}

func TestLexerHTTPNameIsNotURI(t *testing.T) {
	l := NewLexer("http httpx")
	tokens := l.Tokenize()
	assert.Equal(t, []TokenType{NAME, NAME, EOF}, kinds(tokens))
}

func TestLexerString(t *testing.T) {
	l := NewLexer("(cl-comment 'a remark')")
	tokens := l.Tokenize()
	require.Equal(t, []TokenType{LPAREN, CLCOMMENT, STRING, RPAREN, EOF}, kinds(tokens))
	assert.Equal(t, "a remark", tokens[2].Literal)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer("'oops")
	tokens := l.Tokenize()
	assert.Equal(t, []TokenType{EOF}, kinds(tokens))
	require.Len(t, l.Diagnostics, 1)
	assert.Contains(t, l.Diagnostics[0].Error(), "unterminated string")
}

func TestLexerComment(t *testing.T) {
	l := NewLexer("/* header\ncomment */ (A x)")
	tokens := l.Tokenize()
	require.Equal(t, []TokenType{COMMENT, LPAREN, NAME, NAME, RPAREN, EOF}, kinds(tokens))
	assert.Equal(t, "/* header\ncomment */", tokens[0].Literal)
}

func TestLexerLineNumbers(t *testing.T) {
	l := NewLexer("(A x)\n(B y)\n(C z)")
	tokens := l.Tokenize()
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 2, tokens[4].Pos.Line)
	assert.Equal(t, 3, tokens[8].Pos.Line)
}

func TestLexerRecoversFromUnknownCharacter(t *testing.T) {
	l := NewLexer("(A #x)")
	tokens := l.Tokenize()
	assert.Equal(t, []TokenType{LPAREN, NAME, NAME, RPAREN, EOF}, kinds(tokens))
	require.Len(t, l.Diagnostics, 1)
	assert.Contains(t, l.Diagnostics[0].Message, "#")
}
