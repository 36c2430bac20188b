package clif

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, input string) string {
	t.Helper()
	result, err := Parse(input)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Sentences, 1)
	return result.Sentences[0].String()
}

func TestParsePredicate(t *testing.T) {
	assert.Equal(t, "A(x,y)", parseOne(t, "(A x y)"))
}

func TestParseEquality(t *testing.T) {
	assert.Equal(t, "=(x,y)", parseOne(t, "(= x y)"))
}

func TestParseNestedFunction(t *testing.T) {
	assert.Equal(t, "A(f(x),y)", parseOne(t, "(A (f x) y)"))
	assert.Equal(t, "C(f(g(h(x))))", parseOne(t, "(C (f (g (h x))))"))
}

func TestParseConnectives(t *testing.T) {
	assert.Equal(t, "(A(x) & B(y) & C(z))", parseOne(t, "(and (A x) (B y) (C z))"))
	assert.Equal(t, "(A(x) | B(y))", parseOne(t, "(or (A x) (B y))"))
	assert.Equal(t, "~A(x)", parseOne(t, "(not (A x))"))
}

func TestParseQuantifiers(t *testing.T) {
	assert.Equal(t, "∀(x,y)[B(x,y)]", parseOne(t, "(forall (x y) (B x y))"))
	assert.Equal(t, "∃(x)[A(x)]", parseOne(t, "(exists (x) (A x))"))
	assert.Equal(t,
		"∀(x)[∃(y)[R(x,y)]]",
		parseOne(t, "(forall (x) (exists (y) (R x y)))"))
}

func TestParseConditionalDesugars(t *testing.T) {
	assert.Equal(t, "(~A(x) | B(x))", parseOne(t, "(if (A x) (B x))"))
}

func TestParseBiconditionalDesugars(t *testing.T) {
	assert.Equal(t,
		"((~A(x) | B(x)) & (~B(x) | A(x)))",
		parseOne(t, "(iff (A x) (B x))"))
}

func TestParseLeadingCommentDiscarded(t *testing.T) {
	assert.Equal(t, "A(x)", parseOne(t, "/* provenance header */ (A x)"))
}

func TestParseClTextWrapper(t *testing.T) {
	result, err := Parse("(cl-text http://example.org/onto (A x) (B y))")
	require.NoError(t, err)
	require.Len(t, result.Sentences, 2)
	assert.Equal(t, "A(x)", result.Sentences[0].String())
	assert.Equal(t, "B(y)", result.Sentences[1].String())
}

func TestParseImportsAndComments(t *testing.T) {
	input := `(cl-comment 'upper ontology')
(cl-imports http://example.org/onto/time.clif)
(forall (x) (A x))
(cl-imports http://example.org/onto/space.clif)`

	result, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://example.org/onto/time.clif",
		"http://example.org/onto/space.clif",
	}, result.Imports)
	require.Len(t, result.Sentences, 1)
	assert.Equal(t, "∀(x)[A(x)]", result.Sentences[0].String())
}

func TestParseEmptyInput(t *testing.T) {
	result, err := Parse("")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestParseGrammarErrorAbortsFile(t *testing.T) {
	// Second statement malformed: quantifier missing its variable list.
	result, err := Parse("(A x)\n(forall (B x))")
	assert.Nil(t, result)

	var gerr *GrammarError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, 2, gerr.Line)
	assert.NotEmpty(t, gerr.Context)
}

func TestParseGrammarErrorUnterminated(t *testing.T) {
	result, err := Parse("(and (A x) (B y)")
	assert.Nil(t, result)

	var gerr *GrammarError
	require.ErrorAs(t, err, &gerr)
}

func TestParseGrammarErrorContext(t *testing.T) {
	_, err := Parse("(forall (x) (and (A x) (or)))")
	var gerr *GrammarError
	require.True(t, errors.As(err, &gerr))
	assert.Contains(t, gerr.Context, "or")
}

func TestParseBadImportURI(t *testing.T) {
	_, err := Parse("(cl-imports not-a-uri)")
	var gerr *GrammarError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, gerr.Message, "URI")
}

func TestParseLexDiagnosticsSurvive(t *testing.T) {
	result, err := Parse("(A #x)")
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "A(x)", result.Sentences[0].String())
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := Parse("(A x) stray")
	var gerr *GrammarError
	require.ErrorAs(t, err, &gerr)
}
