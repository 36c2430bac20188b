package logical

import "fmt"

// This file implements the five rewrite stages behind Axiom.FFPCNF. Every
// stage is a pure function over a tree it owns: callers pass a deep copy
// and each rewrite builds new nodes bottom-up, never aliasing subtrees
// between branches.

// ---------------------------------------------------------------------------
// Stage 1: function substitution

func substituteFunctions(t Term, f *Factory) Term {
	switch n := t.(type) {
	case *Predicate:
		if n.HasFunctions() {
			return expandPredicate(n, f, false)
		}
		return n
	case *Negation:
		if p, ok := n.Term.(*Predicate); ok && p.HasFunctions() {
			// The expansion of a negated predicate is itself negated,
			// leaving a double negation that only the serializers collapse.
			return &Negation{Term: expandPredicate(p, f, true)}
		}
		return &Negation{Term: substituteFunctions(n.Term, f)}
	case *Conjunction:
		return &Conjunction{Terms: substituteEach(n.Terms, f)}
	case *Disjunction:
		return &Disjunction{Terms: substituteEach(n.Terms, f)}
	case *Universal:
		return &Universal{Vars: n.Vars, Body: substituteFunctions(n.Body, f)}
	case *Existential:
		return &Existential{Vars: n.Vars, Body: substituteFunctions(n.Body, f)}
	default:
		return t
	}
}

func substituteEach(ts []Term, f *Factory) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = substituteFunctions(t, f)
	}
	return out
}

// expandPredicate rewrites a predicate containing function arguments into a
// quantified clause relating fresh variables to the original applications.
// Every argument of the predicate is replaced by a fresh variable; each
// function application contributes one defining atom f(args..., v) whose
// arguments are mapped through the same substitution. Fresh names are
// assigned pre-order (arguments left to right, then descending into
// function arguments) while defining atoms are emitted innermost-first.
//
// For a positive occurrence the result is ∀(v..)[~P(v..) | defs]; under a
// negation it is ~∀(v..)[P(v..) | defs].
func expandPredicate(p *Predicate, f *Factory, negated bool) Term {
	var quantVars []string
	fnFresh := make(map[*Function]string)
	varFresh := make(map[string]string)

	var assign func(a Arg, topLevel bool)
	assign = func(a Arg, topLevel bool) {
		switch x := a.(type) {
		case Var:
			if topLevel {
				if _, ok := varFresh[string(x)]; !ok {
					name := f.freshName(string(x))
					varFresh[string(x)] = name
					quantVars = append(quantVars, name)
				}
			}
		case *Function:
			name := f.freshName(x.Name)
			fnFresh[x] = name
			quantVars = append(quantVars, name)
			for _, sub := range x.Args {
				assign(sub, false)
			}
		}
	}
	for _, a := range p.Args {
		assign(a, true)
	}

	mapArg := func(a Arg) Arg {
		switch x := a.(type) {
		case Var:
			if fresh, ok := varFresh[string(x)]; ok {
				return Var(fresh)
			}
			return x
		case *Function:
			return Var(fnFresh[x])
		}
		return a
	}

	var defs []Term
	var collect func(a Arg)
	collect = func(a Arg) {
		fn, ok := a.(*Function)
		if !ok {
			return
		}
		for _, sub := range fn.Args {
			collect(sub)
		}
		args := make([]Arg, 0, len(fn.Args)+1)
		for _, sub := range fn.Args {
			args = append(args, mapArg(sub))
		}
		args = append(args, Var(fnFresh[fn]))
		defs = append(defs, &Predicate{Name: fn.Name, Args: args})
	}
	for _, a := range p.Args {
		collect(a)
	}

	newArgs := make([]Arg, len(p.Args))
	for i, a := range p.Args {
		newArgs[i] = mapArg(a)
	}
	atom := &Predicate{Name: p.Name, Args: newArgs}

	var defTerm Term
	if len(defs) == 1 {
		defTerm = defs[0]
	} else {
		defTerm = &Conjunction{Terms: defs}
	}

	if negated {
		return &Negation{Term: &Universal{
			Vars: quantVars,
			Body: &Disjunction{Terms: []Term{atom, defTerm}},
		}}
	}
	return &Universal{
		Vars: quantVars,
		Body: &Disjunction{Terms: []Term{&Negation{Term: atom}, defTerm}},
	}
}

// ---------------------------------------------------------------------------
// Stage 2: variable standardization

// nameSequence yields the deterministic reverse-alphabetic sequence used to
// standardize bound variables: z..a, then z1..a1, z2..a2 and so on.
type nameSequence struct {
	i int
}

func newNameSequence() *nameSequence { return &nameSequence{} }

func (s *nameSequence) next() string {
	letter := 'z' - rune(s.i%26)
	cycle := s.i / 26
	s.i++
	if cycle == 0 {
		return string(letter)
	}
	return fmt.Sprintf("%c%d", letter, cycle)
}

// standardize renames every bound variable to a fresh name in depth-first
// order. Names not bound by an enclosing quantifier are ontology constants
// and pass through untouched.
func standardize(t Term, seq *nameSequence, scope map[string]string) Term {
	switch n := t.(type) {
	case *Predicate:
		return &Predicate{Name: n.Name, Args: renameArgs(n.Args, scope)}
	case *Function:
		return &Function{Name: n.Name, Args: renameArgs(n.Args, scope)}
	case *Negation:
		return &Negation{Term: standardize(n.Term, seq, scope)}
	case *Conjunction:
		return &Conjunction{Terms: standardizeEach(n.Terms, seq, scope)}
	case *Disjunction:
		return &Disjunction{Terms: standardizeEach(n.Terms, seq, scope)}
	case *Universal:
		vars, inner := bindFresh(n.Vars, seq, scope)
		return &Universal{Vars: vars, Body: standardize(n.Body, seq, inner)}
	case *Existential:
		vars, inner := bindFresh(n.Vars, seq, scope)
		return &Existential{Vars: vars, Body: standardize(n.Body, seq, inner)}
	default:
		return t
	}
}

func standardizeEach(ts []Term, seq *nameSequence, scope map[string]string) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = standardize(t, seq, scope)
	}
	return out
}

func bindFresh(vars []string, seq *nameSequence, scope map[string]string) ([]string, map[string]string) {
	inner := make(map[string]string, len(scope)+len(vars))
	for k, v := range scope {
		inner[k] = v
	}
	fresh := make([]string, len(vars))
	for i, v := range vars {
		fresh[i] = seq.next()
		inner[v] = fresh[i]
	}
	return fresh, inner
}

func renameArgs(args []Arg, scope map[string]string) []Arg {
	out := make([]Arg, len(args))
	for i, a := range args {
		switch x := a.(type) {
		case Var:
			if fresh, ok := scope[string(x)]; ok {
				out[i] = Var(fresh)
			} else {
				out[i] = x
			}
		case *Function:
			out[i] = &Function{Name: x.Name, Args: renameArgs(x.Args, scope)}
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Stage 3: negation pushing

// pushNegation rewrites to negation normal form: De Morgan over the
// connectives, duality over the quantifiers, and double negation removed.
func pushNegation(t Term) Term {
	switch n := t.(type) {
	case *Negation:
		switch c := n.Term.(type) {
		case *Negation:
			return pushNegation(c.Term)
		case *Conjunction:
			out := make([]Term, len(c.Terms))
			for i, s := range c.Terms {
				out[i] = pushNegation(&Negation{Term: s})
			}
			return &Disjunction{Terms: out}
		case *Disjunction:
			out := make([]Term, len(c.Terms))
			for i, s := range c.Terms {
				out[i] = pushNegation(&Negation{Term: s})
			}
			return &Conjunction{Terms: out}
		case *Universal:
			return &Existential{Vars: c.Vars, Body: pushNegation(&Negation{Term: c.Body})}
		case *Existential:
			return &Universal{Vars: c.Vars, Body: pushNegation(&Negation{Term: c.Body})}
		default:
			return &Negation{Term: n.Term}
		}
	case *Conjunction:
		return &Conjunction{Terms: pushEach(n.Terms)}
	case *Disjunction:
		return &Disjunction{Terms: pushEach(n.Terms)}
	case *Universal:
		return &Universal{Vars: n.Vars, Body: pushNegation(n.Body)}
	case *Existential:
		return &Existential{Vars: n.Vars, Body: pushNegation(n.Body)}
	default:
		return t
	}
}

func pushEach(ts []Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = pushNegation(t)
	}
	return out
}

// ---------------------------------------------------------------------------
// Stage 4: prenexing

// qblock is one run of identically-kinded quantifiers in a prenex prefix.
type qblock struct {
	universal bool
	vars      []string
}

// stripPrefix peels the quantifier chain off the front of a term.
func stripPrefix(t Term) ([]qblock, Term) {
	var blocks []qblock
	for {
		switch q := t.(type) {
		case *Universal:
			blocks = append(blocks, qblock{universal: true, vars: q.Vars})
			t = q.Body
		case *Existential:
			blocks = append(blocks, qblock{universal: false, vars: q.Vars})
			t = q.Body
		default:
			return blocks, t
		}
	}
}

// mergeBlocks coalesces adjacent same-kind blocks, concatenating their
// variable lists in order.
func mergeBlocks(blocks []qblock) []qblock {
	var out []qblock
	for _, b := range blocks {
		if len(out) > 0 && out[len(out)-1].universal == b.universal {
			last := &out[len(out)-1]
			last.vars = append(append([]string(nil), last.vars...), b.vars...)
			continue
		}
		out = append(out, qblock{universal: b.universal, vars: append([]string(nil), b.vars...)})
	}
	return out
}

// wrapBlocks rebuilds the quantifier chain around a matrix, first block
// outermost.
func wrapBlocks(blocks []qblock, matrix Term) Term {
	t := matrix
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if b.universal {
			t = &Universal{Vars: b.vars, Body: t}
		} else {
			t = &Existential{Vars: b.vars, Body: t}
		}
	}
	return t
}

// prenex pulls every quantifier to the front, children before parents so a
// quantifier's subtree is already prenex before the quantifier itself is
// rescoped past its enclosing connective. Quantifier blocks keep their
// left-to-right relative order. When a connective loses quantifier
// children, the rebuilt connective orders the freed bodies first, then the
// atomic children, then the remaining connective children; this matches
// the reference conjunct ordering relied on by downstream distribution.
func prenex(t Term) Term {
	switch n := t.(type) {
	case *Universal:
		blocks, matrix := stripPrefix(prenex(n.Body))
		blocks = append([]qblock{{universal: true, vars: n.Vars}}, blocks...)
		return wrapBlocks(mergeBlocks(blocks), matrix)
	case *Existential:
		blocks, matrix := stripPrefix(prenex(n.Body))
		blocks = append([]qblock{{universal: false, vars: n.Vars}}, blocks...)
		return wrapBlocks(mergeBlocks(blocks), matrix)
	case *Conjunction:
		blocks, terms := rescopeChildren(n.Terms)
		matrix := Term(&Conjunction{Terms: terms})
		if len(blocks) == 0 {
			return matrix
		}
		return wrapBlocks(mergeBlocks(blocks), matrix)
	case *Disjunction:
		blocks, terms := rescopeChildren(n.Terms)
		matrix := Term(&Disjunction{Terms: terms})
		if len(blocks) == 0 {
			return matrix
		}
		return wrapBlocks(mergeBlocks(blocks), matrix)
	default:
		return t
	}
}

// rescopeChildren prenexes each child of a connective and moves the
// children's quantifier prefixes outward past the connective.
func rescopeChildren(children []Term) ([]qblock, []Term) {
	var blocks []qblock
	var freed, atoms, conns []Term
	for _, c := range children {
		bs, matrix := stripPrefix(prenex(c))
		if len(bs) > 0 {
			blocks = append(blocks, bs...)
			freed = append(freed, matrix)
			continue
		}
		switch matrix.(type) {
		case *Conjunction, *Disjunction:
			conns = append(conns, matrix)
		default:
			atoms = append(atoms, matrix)
		}
	}
	ordered := make([]Term, 0, len(children))
	ordered = append(ordered, freed...)
	ordered = append(ordered, atoms...)
	ordered = append(ordered, conns...)
	return blocks, ordered
}

// Coalesce merges a quantifier with an immediately nested quantifier of the
// same kind into a single node with concatenated variable lists. Other
// terms are returned unchanged.
func Coalesce(t Term) Term {
	switch q := t.(type) {
	case *Universal:
		if inner, ok := q.Body.(*Universal); ok {
			return &Universal{Vars: append(append([]string(nil), q.Vars...), inner.Vars...), Body: inner.Body}
		}
	case *Existential:
		if inner, ok := q.Body.(*Existential); ok {
			return &Existential{Vars: append(append([]string(nil), q.Vars...), inner.Vars...), Body: inner.Body}
		}
	}
	return t
}

// Simplify collapses duplicate adjacent quantifier wrappers left over from
// coalescing during prenexing.
func Simplify(t Term) Term {
	blocks, matrix := stripPrefix(t)
	if len(blocks) == 0 {
		return t
	}
	return wrapBlocks(mergeBlocks(blocks), matrix)
}

// ---------------------------------------------------------------------------
// Stage 5: disjunction distribution

// DistributeOverDisjunction applies A | (B & C) = (A | B) & (A | C)
// recursively until no disjunction has a conjunction as an immediate
// argument, flattening nested same-kind connectives along the way.
func DistributeOverDisjunction(t Term) Term {
	return distributeTerm(t)
}

func distributeTerm(t Term) Term {
	switch n := t.(type) {
	case *Universal:
		return &Universal{Vars: n.Vars, Body: distributeTerm(n.Body)}
	case *Existential:
		return &Existential{Vars: n.Vars, Body: distributeTerm(n.Body)}
	case *Conjunction:
		return &Conjunction{Terms: flattenConjuncts(n.Terms)}
	case *Disjunction:
		var flat []Term
		for _, c := range n.Terms {
			d := distributeTerm(c)
			if dd, ok := d.(*Disjunction); ok {
				flat = append(flat, dd.Terms...)
			} else {
				flat = append(flat, d)
			}
		}
		idx := -1
		for i, c := range flat {
			if _, ok := c.(*Conjunction); ok {
				idx = i
				break
			}
		}
		if idx < 0 {
			return &Disjunction{Terms: flat}
		}
		conj := flat[idx].(*Conjunction)
		others := append(append([]Term{}, flat[:idx]...), flat[idx+1:]...)
		conjuncts := make([]Term, 0, len(conj.Terms))
		for _, c := range conj.Terms {
			disj := append(copyTerms(others), c)
			conjuncts = append(conjuncts, distributeTerm(&Disjunction{Terms: disj}))
		}
		return &Conjunction{Terms: flattenConjuncts(conjuncts)}
	default:
		return t
	}
}

func flattenConjuncts(ts []Term) []Term {
	var out []Term
	for _, c := range ts {
		d := distributeTerm(c)
		if dc, ok := d.(*Conjunction); ok {
			out = append(out, dc.Terms...)
		} else {
			out = append(out, d)
		}
	}
	return out
}
