package logical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTPTP(t *testing.T) {
	tests := []struct {
		name string
		in   Term
		want string
	}{
		{
			name: "single universal",
			in:   forall([]string{"x"}, disj(pred("A", "x"), pred("B", "x"))),
			want: "fof(axiom10, axiom, (! [X] :  ((a(X) | b(X))))).",
		},
		{
			name: "multiple variables repeat the quantifier",
			in:   forall([]string{"x", "y"}, pred("B", "y", "x")),
			want: "fof(axiom10, axiom, (! [X] : ! [Y] :  (b(Y,X)))).",
		},
		{
			name: "existential",
			in:   exists([]string{"x"}, pred("A", "x")),
			want: "fof(axiom10, axiom, (? [X] :  (a(X)))).",
		},
		{
			name: "equality rendered infix",
			in:   forall([]string{"x", "y"}, pred(EqualityName, "x", "y")),
			want: "fof(axiom10, axiom, (! [X] : ! [Y] :  (X=Y))).",
		},
		{
			name: "negated predicate parenthesized",
			in:   forall([]string{"x"}, not(pred("A", "x"))),
			want: "fof(axiom10, axiom, (! [X] :  (~(a(X))))).",
		},
		{
			name: "double negation collapsed",
			in:   forall([]string{"x"}, not(not(pred("A", "x")))),
			want: "fof(axiom10, axiom, (! [X] :  (a(X)))).",
		},
		{
			name: "negated connective",
			in:   not(conj(pred("A", "x"), pred("B", "x"))),
			want: "fof(axiom10, axiom, ~(a(X) & b(X))).",
		},
		{
			name: "names lowered, variables raised",
			in:   forall([]string{"elem"}, pred("InSet", "elem", "s")),
			want: "fof(axiom10, axiom, (! [ELEM] :  (inset(ELEM,S)))).",
		},
		{
			name: "function argument lowered",
			in: forall([]string{"x"},
				&Predicate{Name: "A", Args: []Arg{fn("Succ", Var("x"))}}),
			want: "fof(axiom10, axiom, (! [X] :  (a(succ(X))))).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory()
			got, err := f.NewAxiom(tt.in).ToTPTP()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToTPTPIDScaling(t *testing.T) {
	f := NewFactory()
	_ = f.NewAxiom(pred("A", "x"))
	second := f.NewAxiom(pred("B", "x"))

	got, err := second.ToTPTP()
	require.NoError(t, err)
	assert.Equal(t, "fof(axiom20, axiom, b(X)).", got)
}

func TestToLADR(t *testing.T) {
	tests := []struct {
		name string
		in   Term
		want string
	}{
		{
			name: "single universal",
			in:   forall([]string{"x"}, disj(pred("A", "x"), pred("B", "x"))),
			want: "(all x  (A(x) | B(x))).",
		},
		{
			name: "multiple variables repeat the quantifier",
			in:   forall([]string{"x", "y"}, pred("B", "y", "x")),
			want: "(all x all y  B(y,x)).",
		},
		{
			name: "existential",
			in:   exists([]string{"x"}, pred("A", "x")),
			want: "(exists x  A(x)).",
		},
		{
			name: "case preserved",
			in:   forall([]string{"Elem"}, pred("InSet", "Elem", "s")),
			want: "(all Elem  InSet(Elem,s)).",
		},
		{
			name: "negated predicate parenthesized",
			in:   forall([]string{"x"}, not(pred("A", "x"))),
			want: "(all x  -(A(x))).",
		},
		{
			name: "double negation collapsed",
			in:   not(not(pred("A", "x"))),
			want: "A(x).",
		},
		{
			name: "negated connective",
			in:   not(disj(pred("A", "x"), pred("B", "x"))),
			want: "-(A(x) | B(x)).",
		},
		{
			name: "equality stays prefix",
			in:   forall([]string{"x", "y"}, pred(EqualityName, "x", "y")),
			want: "(all x all y  =(x,y)).",
		},
		{
			name: "conjunction",
			in:   conj(pred("A", "x"), pred("B", "y")),
			want: "(A(x) & B(y)).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory()
			got, err := f.NewAxiom(tt.in).ToLADR()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializationErrorMessage(t *testing.T) {
	err := &SerializationError{Format: "TPTP", Message: "unsupported term"}
	assert.Equal(t, "TPTP serialization error: unsupported term", err.Error())
}

func TestFFPCNFSerializesCleanly(t *testing.T) {
	f := NewFactory()
	a := f.NewAxiom(forall([]string{"x"},
		&Predicate{Name: "C", Args: []Arg{fn("f", Var("x"))}}))

	normalized := a.FFPCNF()

	tptp, err := normalized.ToTPTP()
	require.NoError(t, err)
	assert.Contains(t, tptp, "fof(")
	assert.NotContains(t, tptp, "f(X)")

	ladr, err := normalized.ToLADR()
	require.NoError(t, err)
	assert.Contains(t, ladr, "all")
}
