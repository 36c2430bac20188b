package reasoner

import "strings"

// Classify maps raw reasoner output onto a Status using the grammar of the
// named reasoner. Unrecognized reasoner names yield Unknown.
func Classify(name, output string) Status {
	switch name {
	case "prover9":
		return classifyProver9(output)
	case "vampire":
		return classifyVampire(output)
	case "paradox":
		return classifyParadox(output)
	case "mace4":
		return classifyMace4(output)
	default:
		return Unknown
	}
}

func outputLines(output string) []string {
	return strings.Split(output, "\n")
}

func linesWithPrefix(output, prefix string) []string {
	var matched []string
	for _, line := range outputLines(output) {
		if strings.HasPrefix(line, prefix) {
			matched = append(matched, line)
		}
	}
	return matched
}

// classifyProver9 looks for the success line; prover9 reports nothing
// machine-checkable on failure.
func classifyProver9(output string) Status {
	if len(linesWithPrefix(output, "THEOREM PROVED")) > 0 {
		return Proof
	}
	return Unknown
}

// classifyVampire examines the last termination reason, since vampire in
// competition mode restarts several times and earlier lines are
// intermediate. A parser exception forces Error when no verdict was
// reached.
func classifyVampire(output string) Status {
	terminations := linesWithPrefix(output, "Termination reason:")
	if len(terminations) == 0 {
		return Unknown
	}

	status := vampireStatus(terminations[len(terminations)-1])
	if status == Unknown && len(linesWithPrefix(output, "Parser exception:")) > 0 {
		return Error
	}
	return status
}

func vampireStatus(line string) Status {
	switch {
	case strings.Contains(line, "Refutation not found"):
		return Unknown
	case strings.Contains(line, "Refutation"):
		return Proof
	case strings.Contains(line, "Unsatisfiable"):
		return Inconsistent
	case strings.Contains(line, "CounterSatisfiable"):
		return Counterexample
	case strings.Contains(line, "Satisfiable"):
		return Consistent
	default:
		// Timeout, GaveUp
		return Unknown
	}
}

// classifyParadox requires exactly one result line; anything else is an
// Error if paradox flagged something unexpected, otherwise Unknown.
func classifyParadox(output string) Status {
	results := linesWithPrefix(output, "+++ RESULT:")
	if len(results) != 1 {
		if len(linesWithPrefix(output, "*** Unexpected:")) > 0 {
			return Error
		}
		return Unknown
	}
	return paradoxStatus(results[0])
}

func paradoxStatus(line string) Status {
	switch {
	case strings.Contains(line, "Theorem"):
		return Proof
	case strings.Contains(line, "Unsatisfiable"):
		return Inconsistent
	case strings.Contains(line, "CounterSatisfiable"):
		return Counterexample
	case strings.Contains(line, "Satisfiable"):
		return Consistent
	default:
		// Timeout, GaveUp
		return Unknown
	}
}

// classifyMace4 looks for the literal model count line.
func classifyMace4(output string) Status {
	if len(linesWithPrefix(output, "Exiting with 1 model.")) > 0 {
		return Consistent
	}
	return Unknown
}
