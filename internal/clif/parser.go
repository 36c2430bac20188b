package clif

import (
	"fmt"
	"strings"

	"github.com/colog-labs/colog/internal/logical"
)

// Result is the outcome of parsing one CLIF source: the top-level
// sentences in order, the import URIs in order, and any lexical
// diagnostics recovered along the way. Comments are parsed and dropped.
type Result struct {
	Sentences   []logical.Term
	Imports     []string
	Diagnostics []*LexError
}

// Parse parses a complete CLIF source. Empty input yields (nil, nil): no
// result and no error. A malformed construct aborts the whole parse with a
// GrammarError; a partially built result is never returned.
func Parse(input string) (*Result, error) {
	if input == "" {
		return nil, nil
	}

	lexer := NewLexer(input)
	p := &parser{tokens: lexer.Tokenize()}

	result, err := p.parseSource()
	if err != nil {
		return nil, err
	}
	result.Diagnostics = lexer.Diagnostics
	return result, nil
}

// parser is a recursive-descent parser over a pre-lexed token slice. The
// full slice is kept so error reporting can reconstruct the enclosing
// axiom by balanced-parenthesis lookahead.
type parser struct {
	tokens []Token
	pos    int

	// Indexes of the opening parens of axioms currently being parsed,
	// innermost last. Used only for diagnostic reconstruction.
	axiomStarts []int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

// peekAt returns the token n positions ahead without advancing.
func (p *parser) peekAt(n int) Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) expect(t TokenType) (Token, error) {
	tok := p.next()
	if tok.Type != t {
		return tok, p.errorf(tok, "expected %s, found %s", t, tok.Type)
	}
	return tok, nil
}

// parseSource handles the top level: an optional leading comment, an
// optional (cl-text URI ...) wrapper, and the statement sequence.
func (p *parser) parseSource() (*Result, error) {
	if p.peek().Type == COMMENT {
		p.next()
	}

	result := &Result{}

	wrapped := false
	if p.peek().Type == LPAREN && p.peekAt(1).Type == CLTEXT {
		p.next() // (
		p.next() // cl-text
		if _, err := p.expect(URI); err != nil {
			return nil, err
		}
		wrapped = true
	}

	if err := p.parseStatements(result); err != nil {
		return nil, err
	}

	if wrapped {
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
	}

	if tok := p.peek(); tok.Type != EOF {
		return nil, p.errorf(tok, "unexpected %s after statements", tok.Type)
	}
	return result, nil
}

// parseStatements consumes a non-empty sequence of axioms, imports, and
// comments.
func (p *parser) parseStatements(result *Result) error {
	count := 0
	for p.peek().Type == LPAREN {
		switch p.peekAt(1).Type {
		case CLIMPORTS:
			p.next() // (
			p.next() // cl-imports
			uri, err := p.expect(URI)
			if err != nil {
				return err
			}
			if _, err := p.expect(RPAREN); err != nil {
				return err
			}
			result.Imports = append(result.Imports, uri.Literal)
		case CLCOMMENT:
			p.next() // (
			p.next() // cl-comment
			if _, err := p.expect(STRING); err != nil {
				return err
			}
			if _, err := p.expect(RPAREN); err != nil {
				return err
			}
		case CLTEXT:
			// A nested cl-text is the enclosing wrapper's closer territory.
			return p.errorf(p.peekAt(1), "cl-text may only appear at the top level")
		default:
			sentence, err := p.parseAxiom()
			if err != nil {
				return err
			}
			result.Sentences = append(result.Sentences, sentence)
		}
		count++
	}

	if count == 0 {
		return p.errorf(p.peek(), "expected a statement, found %s", p.peek().Type)
	}
	return nil
}

// parseAxiom parses one axiom form. Conditionals and biconditionals are
// desugared here rather than carried as node variants.
func (p *parser) parseAxiom() (logical.Term, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	p.axiomStarts = append(p.axiomStarts, p.pos-1)
	defer func() { p.axiomStarts = p.axiomStarts[:len(p.axiomStarts)-1] }()

	switch tok := p.next(); tok.Type {
	case NOT:
		body, err := p.parseAxiom()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return &logical.Negation{Term: body}, nil

	case AND:
		terms, err := p.parseAxiomList()
		if err != nil {
			return nil, err
		}
		return &logical.Conjunction{Terms: terms}, nil

	case OR:
		terms, err := p.parseAxiomList()
		if err != nil {
			return nil, err
		}
		return &logical.Disjunction{Terms: terms}, nil

	case FORALL:
		vars, body, err := p.parseQuantifier()
		if err != nil {
			return nil, err
		}
		return &logical.Universal{Vars: vars, Body: body}, nil

	case EXISTS:
		vars, body, err := p.parseQuantifier()
		if err != nil {
			return nil, err
		}
		return &logical.Existential{Vars: vars, Body: body}, nil

	case IF:
		antecedent, consequent, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		return &logical.Disjunction{Terms: []logical.Term{
			&logical.Negation{Term: antecedent},
			consequent,
		}}, nil

	case IFF:
		left, right, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		return &logical.Conjunction{Terms: []logical.Term{
			&logical.Disjunction{Terms: []logical.Term{&logical.Negation{Term: left.Copy()}, right.Copy()}},
			&logical.Disjunction{Terms: []logical.Term{&logical.Negation{Term: right}, left}},
		}}, nil

	case NAME:
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &logical.Predicate{Name: tok.Literal, Args: args}, nil

	default:
		return nil, p.errorf(tok, "expected an axiom, found %s", tok.Type)
	}
}

// parseAxiomList parses one or more axioms followed by the closing paren
// of the enclosing connective.
func (p *parser) parseAxiomList() ([]logical.Term, error) {
	var terms []logical.Term
	for {
		term, err := p.parseAxiom()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		if p.peek().Type == RPAREN {
			p.next()
			return terms, nil
		}
	}
}

// parsePair parses exactly two axioms and the closing paren, for the
// if/iff forms.
func (p *parser) parsePair() (logical.Term, logical.Term, error) {
	first, err := p.parseAxiom()
	if err != nil {
		return nil, nil, err
	}
	second, err := p.parseAxiom()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// parseQuantifier parses the (v...) variable list and body shared by the
// forall and exists forms.
func (p *parser) parseQuantifier() ([]string, logical.Term, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, nil, err
	}
	var vars []string
	for p.peek().Type == NAME {
		vars = append(vars, p.next().Literal)
	}
	if len(vars) == 0 {
		return nil, nil, p.errorf(p.peek(), "expected at least one variable, found %s", p.peek().Type)
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, nil, err
	}
	body, err := p.parseAxiom()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, nil, err
	}
	return vars, body, nil
}

// parseArgs parses one or more predicate/function arguments: plain names
// or nested function applications, up to the closing paren.
func (p *parser) parseArgs() ([]logical.Arg, error) {
	var args []logical.Arg
	for {
		switch tok := p.peek(); tok.Type {
		case NAME:
			p.next()
			args = append(args, logical.Var(tok.Literal))
		case LPAREN:
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			args = append(args, fn)
		case RPAREN:
			if len(args) == 0 {
				return nil, p.errorf(tok, "expected an argument, found %s", tok.Type)
			}
			p.next()
			return args, nil
		default:
			return nil, p.errorf(tok, "expected an argument, found %s", tok.Type)
		}
	}
}

// parseFunction parses a nested function application argument.
func (p *parser) parseFunction() (*logical.Function, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	name, err := p.expect(NAME)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &logical.Function{Name: name.Literal, Args: args}, nil
}

// errorf builds a GrammarError for tok, reconstructing the enclosing
// axiom's text for context.
func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &GrammarError{
		Line:    tok.Pos.Line,
		Token:   tok,
		Context: p.reconstructContext(),
		Message: fmt.Sprintf(format, args...),
	}
}

// reconstructContext captures the tokens of the innermost axiom being
// parsed: back to its opening paren, then forward through
// balanced-parenthesis lookahead until depth returns to zero or the
// tokens run out. Best effort only; used purely for diagnostics.
func (p *parser) reconstructContext() string {
	start := p.pos
	if n := len(p.axiomStarts); n > 0 {
		start = p.axiomStarts[n-1]
	}
	if start >= len(p.tokens) {
		return ""
	}

	depth := 0
	var parts []string
	for i := start; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		if tok.Type == EOF {
			break
		}
		parts = append(parts, tok.Literal)
		switch tok.Type {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth <= 0 {
				return strings.Join(parts, " ")
			}
		}
	}
	return strings.Join(parts, " ")
}
