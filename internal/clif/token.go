// Package clif implements lexing and parsing of Common Logic Interchange
// Format (CLIF) text into the logical node model. Conditionals and
// biconditionals are desugared during parsing, so the parser only ever
// emits the seven core term variants.
package clif

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota

	// Structure
	LPAREN // (
	RPAREN // )

	// Keywords
	NOT
	AND
	OR
	EXISTS
	FORALL
	IF
	IFF
	CLTEXT    // cl-text
	CLCOMMENT // cl-comment
	CLIMPORTS // cl-imports

	// Literals
	URI     // http(s)://...
	STRING  // '...'
	COMMENT // /* ... */
	NAME    // identifier: letters, digits, <>=_-
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	LPAREN:    "(",
	RPAREN:    ")",
	NOT:       "not",
	AND:       "and",
	OR:        "or",
	EXISTS:    "exists",
	FORALL:    "forall",
	IF:        "if",
	IFF:       "iff",
	CLTEXT:    "cl-text",
	CLCOMMENT: "cl-comment",
	CLIMPORTS: "cl-imports",
	URI:       "URI",
	STRING:    "STRING",
	COMMENT:   "COMMENT",
	NAME:      "NAME",
}

// keywords maps reserved CLIF words to their token types. Lookup happens
// after a full identifier is scanned, so keywords always win over NAME but
// never match a mere prefix of a longer identifier.
var keywords = map[string]TokenType{
	"not":        NOT,
	"and":        AND,
	"or":         OR,
	"exists":     EXISTS,
	"forall":     FORALL,
	"if":         IF,
	"iff":        IFF,
	"cl-text":    CLTEXT,
	"cl-comment": CLCOMMENT,
	"cl-imports": CLIMPORTS,
}

// LookupName returns the token type for a scanned identifier.
func LookupName(name string) TokenType {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return NAME
}

// Position is a location in the input text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// Token is one lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
