package logical

import (
	"fmt"
	"sync/atomic"
)

// Sequence is a monotonically increasing counter safe for concurrent use.
// Fresh-variable and axiom-id generation share Sequences through a Factory
// so that pipelines for independent axioms may run in parallel.
type Sequence struct {
	n atomic.Int64
}

// Next returns the next value, starting at 1.
func (s *Sequence) Next() int64 { return s.n.Add(1) }

// Factory owns the counters used during parsing and normalization: one for
// axiom identifiers and one for the fresh variables introduced by function
// substitution. Both are process-wide per factory and never reset, so names
// and ids are unique across every axiom produced by the same factory.
type Factory struct {
	axiomIDs  Sequence
	freshVars Sequence
}

// NewFactory returns a factory with both counters at zero.
func NewFactory() *Factory { return &Factory{} }

// NewAxiom wraps a sentence in an Axiom carrying the next axiom id.
func (f *Factory) NewAxiom(sentence Term) *Axiom {
	return &Axiom{ID: f.axiomIDs.Next(), Sentence: sentence, factory: f}
}

// freshName returns a globally unique variable name derived from base.
func (f *Factory) freshName(base string) string {
	return fmt.Sprintf("%s%d", base, f.freshVars.Next())
}

// Axiom wraps one top-level sentence of an ontology. Axioms are immutable:
// every pipeline stage deep-copies its input and produces a brand-new Axiom
// with a fresh id, so ids are disambiguating labels for serialized output,
// not content identity.
type Axiom struct {
	ID       int64
	Sentence Term

	factory *Factory
}

// SubstituteFunctions replaces every nested function application appearing
// as a predicate or function argument with a fresh variable, wrapping the
// affected predicate in a quantifier that relates the fresh variables to
// the original applications. Innermost applications are replaced first so
// nested functions receive distinct fresh names.
func (a *Axiom) SubstituteFunctions() *Axiom {
	return a.factory.NewAxiom(substituteFunctions(a.Sentence.Copy(), a.factory))
}

// StandardizeVariables renames every bound variable so that no two
// quantifiers in the axiom share a name. Fresh names are drawn from a
// deterministic reverse-alphabetic sequence, assigned in depth-first order.
func (a *Axiom) StandardizeVariables() *Axiom {
	return a.factory.NewAxiom(standardize(a.Sentence.Copy(), newNameSequence(), nil))
}

// PushNegation rewrites the sentence into negation normal form using
// De Morgan's laws and quantifier duality. Afterwards negation appears
// only immediately above predicates.
func (a *Axiom) PushNegation() *Axiom {
	return a.factory.NewAxiom(pushNegation(a.Sentence.Copy()))
}

// CreatePrenex pulls every quantifier to the front of the sentence,
// preserving left-to-right relative order. Valid only once bound names are
// unique within the axiom (see StandardizeVariables).
func (a *Axiom) CreatePrenex() *Axiom {
	return a.factory.NewAxiom(Simplify(prenex(a.Sentence.Copy())))
}

// DistributeDisjunctions applies the distribution law recursively until the
// quantifier-free matrix is a conjunction of disjunctions of literals.
func (a *Axiom) DistributeDisjunctions() *Axiom {
	return a.factory.NewAxiom(distributeTerm(a.Sentence.Copy()))
}

// FFPCNF runs the five normalization stages in order and returns the
// function-free prenex conjunctive normal form of the axiom. The result
// contains no Function nodes, all quantifiers are outermost, and the
// matrix is a conjunction of disjunctions of (possibly negated) atoms.
//
// Because function substitution and standardization draw from different
// counters, re-running the pipeline on its own output changes names even
// though the normal-form shape is stable; run it exactly once per axiom.
func (a *Axiom) FFPCNF() *Axiom {
	return a.SubstituteFunctions().
		StandardizeVariables().
		PushNegation().
		CreatePrenex().
		DistributeDisjunctions()
}

func (a *Axiom) String() string { return a.Sentence.String() }
