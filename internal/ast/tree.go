package ast

import (
	"fmt"
	"strings"
)

//Tree renders an indented structural dump of e, one node per line.
func Tree(e Exp) string {
	var sb strings.Builder
	tree(&sb, e, "")
	return sb.String()
}

func tree(sb *strings.Builder, e Exp, indent string) {
	branch := func(label string, l, r Exp) {
		fmt.Fprintf(sb, "%s%s\n", indent, label)
		tree(sb, l, indent+"  ")
		tree(sb, r, indent+"  ")
	}

	switch e := e.(type) {
	case *Var:
		fmt.Fprintf(sb, "%sVar %s\n", indent, e.Name)
	case *Int:
		fmt.Fprintf(sb, "%sInt %d\n", indent, e.Value)
	case *Bool:
		fmt.Fprintf(sb, "%sBool %t\n", indent, e.Value)
	case *Str:
		fmt.Fprintf(sb, "%sStr %q\n", indent, e.Value)
	case *Let:
		fmt.Fprintf(sb, "%sLet %s\n", indent, e.Var.Name)
		tree(sb, e.Bound, indent+"  ")
		tree(sb, e.Body, indent+"  ")
	case *Select:
		names := make([]string, len(e.Vars))
		for i, v := range e.Vars {
			names[i] = v.Name
		}
		fmt.Fprintf(sb, "%sSelect %s\n", indent, strings.Join(names, ", "))
		tree(sb, e.From, indent+"  ")
	case *Where:
		branch("Where", e.From, e.Pred)
	case *Union:
		branch("Union", e.Left, e.Right)
	case *Difference:
		branch("Difference", e.Left, e.Right)
	case *Product:
		branch("Product", e.Left, e.Right)
	case *Table:
		branch("Table", e.Left, e.Right)
	case *Row:
		branch("Row", e.Left, e.Right)
	case *Cell:
		fmt.Fprintf(sb, "%sCell %s\n", indent, e.Key.Name)
		tree(sb, e.Value, indent+"  ")
	case *Equals:
		branch("Equals", e.Left, e.Right)
	case *Or:
		branch("Or", e.Left, e.Right)
	case *And:
		branch("And", e.Left, e.Right)
	case *Not:
		fmt.Fprintf(sb, "%sNot\n", indent)
		tree(sb, e.Exp, indent+"  ")
	}
}
