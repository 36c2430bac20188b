package logical

import (
	"fmt"
	"strings"
)

// ToTPTP renders the axiom as a single TPTP first-order formula:
//
//	fof(axiom<id*10>, axiom, <sentence>).
//
// Variables are upper-cased, predicate and function names lower-cased, and
// equality is rendered infix. Double negation is collapsed during
// rendering.
func (a *Axiom) ToTPTP() (string, error) {
	body, err := tptpTerm(a.Sentence)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("fof(axiom%d, axiom, %s).", a.ID*10, body), nil
}

func tptpTerm(t Term) (string, error) {
	switch n := t.(type) {
	case *Predicate:
		if n.IsEquality() && len(n.Args) == 2 {
			left, err := tptpArg(n.Args[0])
			if err != nil {
				return "", err
			}
			right, err := tptpArg(n.Args[1])
			if err != nil {
				return "", err
			}
			return left + n.Name + right, nil
		}
		args, err := tptpArgs(n.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", strings.ToLower(n.Name), args), nil
	case *Function:
		args, err := tptpArgs(n.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", strings.ToLower(n.Name), args), nil
	case *Negation:
		switch inner := n.Term.(type) {
		case *Negation:
			return tptpTerm(inner.Term)
		case *Predicate:
			// Parenthesized so special-symbol predicates stay unambiguous.
			body, err := tptpTerm(inner)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("~(%s)", body), nil
		default:
			body, err := tptpTerm(n.Term)
			if err != nil {
				return "", err
			}
			return "~" + body, nil
		}
	case *Conjunction:
		return tptpJoin(n.Terms, " & ")
	case *Disjunction:
		return tptpJoin(n.Terms, " | ")
	case *Universal:
		return tptpQuantifier("! [%s] : ", n.Vars, n.Body)
	case *Existential:
		return tptpQuantifier("? [%s] : ", n.Vars, n.Body)
	default:
		return "", &SerializationError{Format: "TPTP", Message: fmt.Sprintf("unsupported term %T", t)}
	}
}

func tptpQuantifier(format string, vars []string, body Term) (string, error) {
	var prefix strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&prefix, format, strings.ToUpper(v))
	}
	inner, err := tptpTerm(body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s (%s))", prefix.String(), inner), nil
}

func tptpJoin(ts []Term, sep string) (string, error) {
	parts := make([]string, len(ts))
	for i, t := range ts {
		s, err := tptpTerm(t)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func tptpArgs(args []Arg) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		s, err := tptpArg(a)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ","), nil
}

func tptpArg(a Arg) (string, error) {
	switch x := a.(type) {
	case Var:
		return strings.ToUpper(string(x)), nil
	case *Function:
		return tptpTerm(x)
	default:
		return "", &SerializationError{Format: "TPTP", Message: fmt.Sprintf("unsupported argument %T", a)}
	}
}
