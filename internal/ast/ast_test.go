package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	tests := []struct {
		e    Exp
		want string
	}{
		{&Var{Name: "x"}, "x"},
		{&Int{Value: -42}, "-42"},
		{&Bool{Value: true}, "true"},
		{&Str{Value: ""}, "''"},
		{&Str{Value: "hi"}, "'hi'"},
		{&Not{Exp: &Var{Name: "x"}}, "!x"},
		{
			&Not{Exp: &Or{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}},
			"!(a | b)",
		},
		{
			&Let{Var: &Var{Name: "x"}, Bound: &Int{Value: 1}, Body: &Var{Name: "x"}},
			"x = 1 x",
		},
		{
			&Select{Vars: []*Var{{Name: "a"}, {Name: "b"}}, From: &Var{Name: "t"}},
			"a, b <- t",
		},
		{
			&Where{
				From: &Var{Name: "s"},
				Pred: &Equals{Left: &Var{Name: "n"}, Right: &Str{Value: "B"}},
			},
			"s ? (n == 'B')",
		},
		{&Cell{Key: &Var{Name: "k"}, Value: &Str{Value: "v"}}, "k: 'v'"},
		{&Table{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}, "a; b"},
		{&Row{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}, "a, b"},
		{
			&Difference{
				Left:  &Var{Name: "a"},
				Right: &Difference{Left: &Var{Name: "b"}, Right: &Var{Name: "c"}},
			},
			"a - (b - c)",
		},
		{&Product{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}, "a * b"},
		{&Union{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}, "a + b"},
		{&And{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}, "a & b"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, Source(test.e))
	}
}

func TestTree(t *testing.T) {
	e := &Let{
		Var: &Var{Name: "x"},
		Bound: &Where{
			From: &Var{Name: "t"},
			Pred: &Equals{Left: &Var{Name: "n"}, Right: &Str{Value: "B"}},
		},
		Body: &Var{Name: "x"},
	}
	want := `Let x
  Where
    Var t
    Equals
      Var n
      Str "B"
  Var x
`
	require.Equal(t, want, Tree(e))

	sel := &Select{
		Vars: []*Var{{Name: "a"}, {Name: "b"}},
		From: &Not{Exp: &Bool{Value: false}},
	}
	want = `Select a, b
  Not
    Bool false
`
	require.Equal(t, want, Tree(sel))
}

type errWriter struct {
	err error
}

func (w errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestPrintError(t *testing.T) {
	boom := errors.New("boom")
	e := &Or{Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}
	require.ErrorIs(t, e.Print(errWriter{err: boom}), boom)
}
