package logical

import "fmt"

// SerializationError reports a term that cannot be rendered in the target
// prover syntax.
type SerializationError struct {
	Format  string
	Message string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s serialization error: %s", e.Format, e.Message)
}
