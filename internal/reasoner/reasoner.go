// Package reasoner invokes external theorem provers and model finders on
// translated ontologies and classifies their textual output onto a closed
// status set.
package reasoner

import "time"

// Status is the verdict extracted from a reasoner's output.
type Status int

const (
	Unknown Status = iota
	Proof
	Inconsistent
	Counterexample
	Consistent
	Error
)

// String returns the conventional upper-case status name.
func (s Status) String() string {
	switch s {
	case Proof:
		return "PROOF"
	case Inconsistent:
		return "INCONSISTENT"
	case Counterexample:
		return "COUNTEREXAMPLE"
	case Consistent:
		return "CONSISTENT"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Definitive reports whether the status is a conclusive verdict rather
// than a timeout, give-up, or failure.
func (s Status) Definitive() bool {
	switch s {
	case Proof, Inconsistent, Counterexample, Consistent:
		return true
	default:
		return false
	}
}

// Kind distinguishes provers from model finders.
type Kind string

const (
	Prover      Kind = "prover"
	ModelFinder Kind = "model-finder"
)

// Definition describes one configured reasoner. Args is an argument
// template; the placeholders {input} and {output} are substituted with
// the translated ontology file and the captured output file at run time.
type Definition struct {
	Name    string        `koanf:"name"`
	Kind    Kind          `koanf:"kind"`
	Exec    string        `koanf:"exec"`
	Args    []string      `koanf:"args"`
	Timeout time.Duration `koanf:"timeout"`
	// Format selects which translation the reasoner consumes: tptp or ladr.
	Format string `koanf:"format"`
}
