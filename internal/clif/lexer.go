package clif

import (
	"strings"
	"unicode"
)

// Lexer tokenizes CLIF input. Unrecognized characters are reported as
// diagnostics and skipped one at a time; the lexer itself never fails.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// Diagnostics collected during lexing.
	Diagnostics []*LexError
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token, recovering over unrecognized input.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		pos := l.currentPos()

		switch {
		case l.ch == 0:
			return Token{Type: EOF, Literal: "", Pos: pos}
		case l.ch == '(':
			l.readChar()
			return Token{Type: LPAREN, Literal: "(", Pos: pos}
		case l.ch == ')':
			l.readChar()
			return Token{Type: RPAREN, Literal: ")", Pos: pos}
		case l.ch == '\'':
			tok, ok := l.readString(pos)
			if !ok {
				continue
			}
			return tok
		case l.ch == '/' && l.peekChar() == '*':
			tok, ok := l.readComment(pos)
			if !ok {
				continue
			}
			return tok
		case l.hasURIPrefix():
			return Token{Type: URI, Literal: l.readURI(), Pos: pos}
		case isNameChar(l.ch):
			name := l.readName()
			return Token{Type: LookupName(name), Literal: name, Pos: pos}
		default:
			l.Diagnostics = append(l.Diagnostics, &LexError{
				Pos:     pos,
				Message: "unknown character " + string(l.ch),
			})
			l.readChar()
		}
	}
}

// Tokenize returns all tokens from the input, ending with an EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a single-quoted string literal. There is no escape
// syntax; the first closing quote ends the string.
func (l *Lexer) readString(pos Position) (Token, bool) {
	l.readChar() // skip opening quote

	start := l.pos
	for l.ch != '\'' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		l.Diagnostics = append(l.Diagnostics, &LexError{
			Pos:     pos,
			Message: "unterminated string literal",
		})
		return Token{}, false
	}
	literal := l.input[start:l.pos]
	l.readChar() // skip closing quote
	return Token{Type: STRING, Literal: literal, Pos: pos}, true
}

// readComment reads a /* ... */ block comment.
func (l *Lexer) readComment(pos Position) (Token, bool) {
	start := l.pos
	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			return Token{Type: COMMENT, Literal: l.input[start:l.pos], Pos: pos}, true
		}
		l.readChar()
	}

	l.Diagnostics = append(l.Diagnostics, &LexError{
		Pos:     pos,
		Message: "unterminated comment",
	})
	return Token{}, false
}

// hasURIPrefix reports whether the input at the current position starts a
// http:// or https:// URI. Checked before the generic name pattern since
// the scheme characters are also valid name characters.
func (l *Lexer) hasURIPrefix() bool {
	if l.ch != 'h' {
		return false
	}
	rest := l.input[l.pos:]
	return strings.HasPrefix(rest, "http://") || strings.HasPrefix(rest, "https://")
}

// readURI reads a URI token. The scheme prefix is consumed literally, then
// the URI character set until it runs out.
func (l *Lexer) readURI() string {
	start := l.pos
	scheme := "http://"
	if strings.HasPrefix(l.input[l.pos:], "https://") {
		scheme = "https://"
	}
	for range scheme {
		l.readChar()
	}
	for isURIChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readName reads an identifier.
func (l *Lexer) readName() string {
	start := l.pos
	for isNameChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// isNameChar returns true for characters of the identifier pattern:
// letters, digits, and <>=_-.
func isNameChar(ch byte) bool {
	switch ch {
	case '<', '>', '=', '_', '-':
		return true
	}
	return isLetter(ch) || isDigit(ch)
}

// isURIChar returns true for characters accepted inside a URI token.
func isURIChar(ch byte) bool {
	switch ch {
	case '$', '=', '?', '/', '%', '-', '_', '@', '.', '&', '+', '!', '*', ',':
		return true
	}
	return isLetter(ch) || isDigit(ch)
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
