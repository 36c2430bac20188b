// Package logical implements the first-order logic node model used by the
// CLIF front-end, the axiom normalization pipeline that rewrites formulas
// into function-free prenex conjunctive normal form (FF-PCNF), and the
// TPTP and LADR serializers consumed by external reasoners.
package logical

import (
	"fmt"
	"strings"
)

// Term is the interface for all formula nodes. The variant set is closed:
// Predicate, Function, Negation, Conjunction, Disjunction, Universal and
// Existential are the only implementations.
type Term interface {
	fmt.Stringer
	// Copy returns a structural deep copy sharing no nodes with the receiver.
	Copy() Term
	term() // marker method to restrict implementation
}

// Arg is a predicate or function argument: either a Var or a *Function.
type Arg interface {
	fmt.Stringer
	CopyArg() Arg
	arg() // marker method to restrict implementation
}

// Var is a variable or constant name appearing as an argument.
type Var string

func (v Var) arg()           {}
func (v Var) CopyArg() Arg   { return v }
func (v Var) String() string { return string(v) }

// Function is a function application. It may appear nested as a predicate
// or function argument; the normalization pipeline eliminates every
// occurrence before serialization.
type Function struct {
	Name string
	Args []Arg
}

func (f *Function) arg()  {}
func (f *Function) term() {}

func (f *Function) CopyArg() Arg { return f.copyFn() }

// Copy implements Term.
func (f *Function) Copy() Term { return f.copyFn() }

func (f *Function) copyFn() *Function {
	return &Function{Name: f.Name, Args: copyArgs(f.Args)}
}

func (f *Function) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, joinArgs(f.Args))
}

// Predicate is an atomic formula. A Name of "=" marks an equality
// predicate, which the TPTP serializer renders infix.
type Predicate struct {
	Name string
	Args []Arg
}

// EqualityName is the predicate name reserved for equality.
const EqualityName = "="

func (p *Predicate) term() {}

// IsEquality reports whether p is the equality predicate.
func (p *Predicate) IsEquality() bool { return p.Name == EqualityName }

// HasFunctions reports whether any argument, at any nesting depth, is a
// function application.
func (p *Predicate) HasFunctions() bool {
	for _, a := range p.Args {
		if _, ok := a.(*Function); ok {
			return true
		}
	}
	return false
}

func (p *Predicate) Copy() Term {
	return &Predicate{Name: p.Name, Args: copyArgs(p.Args)}
}

func (p *Predicate) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, joinArgs(p.Args))
}

// Negation negates exactly one subformula.
type Negation struct {
	Term Term
}

func (n *Negation) term() {}

func (n *Negation) Copy() Term { return &Negation{Term: n.Term.Copy()} }

func (n *Negation) String() string { return "~" + n.Term.String() }

// Conjunction is an ordered sequence of conjoined subformulas. Order is
// semantically insignificant but preserved for deterministic output.
type Conjunction struct {
	Terms []Term
}

func (c *Conjunction) term() {}

func (c *Conjunction) Copy() Term { return &Conjunction{Terms: copyTerms(c.Terms)} }

func (c *Conjunction) String() string { return joinTerms(c.Terms, " & ") }

// Disjunction is an ordered sequence of disjoined subformulas.
type Disjunction struct {
	Terms []Term
}

func (d *Disjunction) term() {}

func (d *Disjunction) Copy() Term { return &Disjunction{Terms: copyTerms(d.Terms)} }

func (d *Disjunction) String() string { return joinTerms(d.Terms, " | ") }

// Universal binds an ordered sequence of distinct variable names over a
// single body.
type Universal struct {
	Vars []string
	Body Term
}

func (u *Universal) term() {}

func (u *Universal) Copy() Term {
	return &Universal{Vars: append([]string(nil), u.Vars...), Body: u.Body.Copy()}
}

func (u *Universal) String() string {
	return fmt.Sprintf("∀(%s)[%s]", strings.Join(u.Vars, ","), u.Body)
}

// Existential binds an ordered sequence of distinct variable names over a
// single body.
type Existential struct {
	Vars []string
	Body Term
}

func (e *Existential) term() {}

func (e *Existential) Copy() Term {
	return &Existential{Vars: append([]string(nil), e.Vars...), Body: e.Body.Copy()}
}

func (e *Existential) String() string {
	return fmt.Sprintf("∃(%s)[%s]", strings.Join(e.Vars, ","), e.Body)
}

// Children returns the immediate subformulas of t. Predicates and
// functions are leaves at the formula level.
func Children(t Term) []Term {
	switch n := t.(type) {
	case *Negation:
		return []Term{n.Term}
	case *Conjunction:
		return append([]Term(nil), n.Terms...)
	case *Disjunction:
		return append([]Term(nil), n.Terms...)
	case *Universal:
		return []Term{n.Body}
	case *Existential:
		return []Term{n.Body}
	default:
		return nil
	}
}

func copyTerms(ts []Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = t.Copy()
	}
	return out
}

func copyArgs(as []Arg) []Arg {
	out := make([]Arg, len(as))
	for i, a := range as {
		out[i] = a.CopyArg()
	}
	return out
}

func joinArgs(as []Arg) string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

func joinTerms(ts []Term, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}
