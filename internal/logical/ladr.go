package logical

import (
	"fmt"
	"strings"
)

// ToLADR renders the axiom as a single LADR (prover9/mace4) sentence
// terminated by a period. Names keep their original case, negation is
// rendered with a leading dash, and equality stays prefix. Double negation
// is collapsed during rendering.
func (a *Axiom) ToLADR() (string, error) {
	body, err := ladrTerm(a.Sentence)
	if err != nil {
		return "", err
	}
	return body + ".", nil
}

func ladrTerm(t Term) (string, error) {
	switch n := t.(type) {
	case *Predicate:
		args, err := ladrArgs(n.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", n.Name, args), nil
	case *Function:
		args, err := ladrArgs(n.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", n.Name, args), nil
	case *Negation:
		switch inner := n.Term.(type) {
		case *Negation:
			return ladrTerm(inner.Term)
		case *Predicate:
			body, err := ladrTerm(inner)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("-(%s)", body), nil
		default:
			body, err := ladrTerm(n.Term)
			if err != nil {
				return "", err
			}
			return "-" + body, nil
		}
	case *Conjunction:
		return ladrJoin(n.Terms, " & ")
	case *Disjunction:
		return ladrJoin(n.Terms, " | ")
	case *Universal:
		return ladrQuantifier("all %s ", n.Vars, n.Body)
	case *Existential:
		return ladrQuantifier("exists %s ", n.Vars, n.Body)
	default:
		return "", &SerializationError{Format: "LADR", Message: fmt.Sprintf("unsupported term %T", t)}
	}
}

func ladrQuantifier(format string, vars []string, body Term) (string, error) {
	var prefix strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&prefix, format, v)
	}
	inner, err := ladrTerm(body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s)", prefix.String(), inner), nil
}

func ladrJoin(ts []Term, sep string) (string, error) {
	parts := make([]string, len(ts))
	for i, t := range ts {
		s, err := ladrTerm(t)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func ladrArgs(args []Arg) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		switch x := a.(type) {
		case Var:
			parts[i] = string(x)
		case *Function:
			s, err := ladrTerm(x)
			if err != nil {
				return "", err
			}
			parts[i] = s
		default:
			return "", &SerializationError{Format: "LADR", Message: fmt.Sprintf("unsupported argument %T", a)}
		}
	}
	return strings.Join(parts, ","), nil
}
