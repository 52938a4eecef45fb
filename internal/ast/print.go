package ast

import (
	"io"
	"strconv"
	"strings"

	"github.com/willmcpherson2/sdb/internal/ast/internal/writer"
)

//Source renders e as concrete syntax.
func Source(e Exp) string {
	var sb strings.Builder
	_ = e.Print(&sb) //strings.Builder never errors
	return sb.String()
}

//child renders e, parenthesized unless it is a leaf.
//Parentheses admit any expression, so this is always safe to re-parse.
func child(w *writer.Writer, e Exp) {
	switch e.(type) {
	case *Var, *Int, *Bool, *Str:
		_ = e.Print(w)
	default:
		w.Str("(")
		_ = e.Print(w)
		w.Str(")")
	}
}

func printInfix(to io.Writer, l Exp, op string, r Exp) error {
	w := writer.New(to)
	child(w, l)
	w.Sp().Str(op).Sp()
	child(w, r)
	return w.Err()
}

//Print stringifies to a writer.
func (v *Var) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str(v.Name)
	return w.Err()
}

//Print stringifies to a writer.
func (i *Int) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str(strconv.FormatInt(i.Value, 10))
	return w.Err()
}

//Print stringifies to a writer.
func (b *Bool) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str(strconv.FormatBool(b.Value))
	return w.Err()
}

//Print stringifies to a writer.
func (s *Str) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str("'").Str(s.Value).Str("'")
	return w.Err()
}

//Print stringifies to a writer.
func (l *Let) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str(l.Var.Name).Str(" = ")
	child(w, l.Bound)
	w.Sp()
	child(w, l.Body)
	return w.Err()
}

//Print stringifies to a writer.
func (s *Select) Print(to io.Writer) error {
	w := writer.New(to)
	for i, v := range s.Vars {
		if i > 0 {
			w.Str(", ")
		}
		w.Str(v.Name)
	}
	w.Str(" <- ")
	child(w, s.From)
	return w.Err()
}

//Print stringifies to a writer.
func (wh *Where) Print(to io.Writer) error {
	return printInfix(to, wh.From, "?", wh.Pred)
}

//Print stringifies to a writer.
func (u *Union) Print(to io.Writer) error {
	return printInfix(to, u.Left, "+", u.Right)
}

//Print stringifies to a writer.
func (d *Difference) Print(to io.Writer) error {
	return printInfix(to, d.Left, "-", d.Right)
}

//Print stringifies to a writer.
func (p *Product) Print(to io.Writer) error {
	return printInfix(to, p.Left, "*", p.Right)
}

//Print stringifies to a writer.
func (t *Table) Print(to io.Writer) error {
	w := writer.New(to)
	child(w, t.Left)
	w.Str("; ")
	child(w, t.Right)
	return w.Err()
}

//Print stringifies to a writer.
func (r *Row) Print(to io.Writer) error {
	w := writer.New(to)
	child(w, r.Left)
	w.Str(", ")
	child(w, r.Right)
	return w.Err()
}

//Print stringifies to a writer.
func (c *Cell) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str(c.Key.Name).Str(": ")
	child(w, c.Value)
	return w.Err()
}

//Print stringifies to a writer.
func (e *Equals) Print(to io.Writer) error {
	return printInfix(to, e.Left, "==", e.Right)
}

//Print stringifies to a writer.
func (o *Or) Print(to io.Writer) error {
	return printInfix(to, o.Left, "|", o.Right)
}

//Print stringifies to a writer.
func (a *And) Print(to io.Writer) error {
	return printInfix(to, a.Left, "&", a.Right)
}

//Print stringifies to a writer.
func (n *Not) Print(to io.Writer) error {
	w := writer.New(to)
	w.Str("!")
	child(w, n.Exp)
	return w.Err()
}
