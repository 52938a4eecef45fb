//Package ast defines the expression tree of the sdb query language.
//
//Every node is built once by the parser and never mutated afterwards:
//each node owns its children exclusively and the tree holds no
//back-references.
package ast

import "io"

//Exp is a node in the expression tree.
type Exp interface {
	//Print renders the node as concrete syntax that parses back to an
	//identical tree.
	Print(io.Writer) error
	exp()
}

//Var is an identifier reference.
type Var struct {
	Name string
}

var _ Exp = (*Var)(nil)

func (*Var) exp() {}

//Int is a 64-bit integer literal.
type Int struct {
	Value int64
}

var _ Exp = (*Int)(nil)

func (*Int) exp() {}

//Bool is a boolean literal.
type Bool struct {
	Value bool
}

var _ Exp = (*Bool)(nil)

func (*Bool) exp() {}

//Str is a string literal.
//
//Value is the body between the quotes, verbatim: the language has no
//escape sequences, so a string can never contain an apostrophe.
type Str struct {
	Value string
}

var _ Exp = (*Str)(nil)

func (*Str) exp() {}

//Let binds the result of Bound to Var and continues as Body.
type Let struct {
	Var   *Var
	Bound Exp
	Body  Exp
}

var _ Exp = (*Let)(nil)

func (*Let) exp() {}

//Select projects the named columns out of From.
//
//Vars has at least one element and preserves source order.
type Select struct {
	Vars []*Var
	From Exp
}

var _ Exp = (*Select)(nil)

func (*Select) exp() {}

//Where filters From by Pred.
type Where struct {
	From Exp
	Pred Exp
}

var _ Exp = (*Where)(nil)

func (*Where) exp() {}

//Union is the set union of two relations.
type Union struct {
	Left, Right Exp
}

var _ Exp = (*Union)(nil)

func (*Union) exp() {}

//Difference is the set difference of two relations.
type Difference struct {
	Left, Right Exp
}

var _ Exp = (*Difference)(nil)

func (*Difference) exp() {}

//Product is the cartesian product of two relations.
type Product struct {
	Left, Right Exp
}

var _ Exp = (*Product)(nil)

func (*Product) exp() {}

//Table concatenates rows. Chains are right-associated.
type Table struct {
	Left, Right Exp
}

var _ Exp = (*Table)(nil)

func (*Table) exp() {}

//Row concatenates cells. Chains are right-associated.
type Row struct {
	Left, Right Exp
}

var _ Exp = (*Row)(nil)

func (*Row) exp() {}

//Cell is one table field: a key and its value.
type Cell struct {
	Key   *Var
	Value Exp
}

var _ Exp = (*Cell)(nil)

func (*Cell) exp() {}

//Equals compares two expressions.
type Equals struct {
	Left, Right Exp
}

var _ Exp = (*Equals)(nil)

func (*Equals) exp() {}

//Or is boolean disjunction.
type Or struct {
	Left, Right Exp
}

var _ Exp = (*Or)(nil)

func (*Or) exp() {}

//And is boolean conjunction.
type And struct {
	Left, Right Exp
}

var _ Exp = (*And)(nil)

func (*And) exp() {}

//Not is boolean negation.
type Not struct {
	Exp Exp
}

var _ Exp = (*Not)(nil)

func (*Not) exp() {}
