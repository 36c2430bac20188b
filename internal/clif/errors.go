package clif

import "fmt"

// LexError reports an unrecognized piece of input. The lexer recovers
// locally after emitting one, so a single pass collects every lexical
// problem in the file.
type LexError struct {
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// GrammarError reports a malformed construct. It aborts parsing of the
// current file; Context holds a best-effort reconstruction of the enclosing
// axiom around the offending token.
type GrammarError struct {
	Line    int
	Token   Token
	Context string
	Message string
}

func (e *GrammarError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("grammar error at line %d near %q: %s", e.Line, e.Token.Literal, e.Message)
	}
	return fmt.Sprintf("grammar error at line %d near %q: %s\n\tin: %s", e.Line, e.Token.Literal, e.Message, e.Context)
}
