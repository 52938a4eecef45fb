package parse

import "github.com/willmcpherson2/sdb/internal/ast"

//The precedence cascade, loosest binding first. Each layer defers to the
//next-tighter layer when its operator is absent.

func parseLet(in input) (ast.Exp, input, *failure) {
	return ternaryOp(in, func(v *ast.Var, bound, body ast.Exp) ast.Exp {
		return &ast.Let{Var: v, Bound: bound, Body: body}
	}, "=", parseLet, "", parseLet, parseSelect)
}

func parseSelect(in input) (ast.Exp, input, *failure) {
	if vars, from, rest, err := selectArrow(in); err == nil {
		return &ast.Select{Vars: vars, From: from}, rest, nil
	}
	return parseWhere(in)
}

//selectArrow matches var-list junk "<-" junk select-expr.
func selectArrow(in input) (vars []*ast.Var, from ast.Exp, rest input, err *failure) {
	vars, rest, err = parseSelectVars(in)
	if err != nil {
		return nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, in, err
	}
	if rest, err = tag(rest, "<-"); err != nil {
		return nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, in, err
	}
	if from, rest, err = parseSelect(rest); err != nil {
		return nil, nil, in, err
	}
	return vars, from, rest, nil
}

//parseSelectVars matches one or more comma-separated identifiers,
//preserving source order.
func parseSelectVars(in input) ([]*ast.Var, input, *failure) {
	v, rest, err := parseVar(in)
	if err != nil {
		return nil, in, err
	}
	if vs, rest2, err := selectVarsTail(rest); err == nil {
		return append([]*ast.Var{v}, vs...), rest2, nil
	}
	//no comma: a single-variable list, with nothing after the var consumed
	return []*ast.Var{v}, rest, nil
}

//selectVarsTail matches junk "," junk var-list.
func selectVarsTail(in input) ([]*ast.Var, input, *failure) {
	rest, err := junk(in)
	if err != nil {
		return nil, in, err
	}
	if rest, err = tag(rest, ","); err != nil {
		return nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, in, err
	}
	return parseSelectVars(rest)
}

func parseWhere(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Where{From: l, Pred: r}
	}, parseUnion, "?", parseWhere, parseUnion)
}

func parseUnion(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Union{Left: l, Right: r}
	}, parseDifference, "+", parseUnion, parseDifference)
}

func parseDifference(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Difference{Left: l, Right: r}
	}, parseProduct, "-", parseDifference, parseProduct)
}

func parseProduct(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Product{Left: l, Right: r}
	}, parseTable, "*", parseProduct, parseTable)
}

func parseTable(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Table{Left: l, Right: r}
	}, parseRow, ";", parseTable, parseRow)
}

func parseRow(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Row{Left: l, Right: r}
	}, parseCell, ",", parseRow, parseCell)
}

func parseCell(in input) (ast.Exp, input, *failure) {
	if key, rest, err := parseVar(in); err == nil {
		if value, rest2, err2 := cellValue(rest); err2 == nil {
			return &ast.Cell{Key: key, Value: value}, rest2, nil
		}
	}
	return parseEquals(in)
}

//cellValue matches junk ":" junk cell-expr.
func cellValue(in input) (ast.Exp, input, *failure) {
	rest, err := junk(in)
	if err != nil {
		return nil, in, err
	}
	if rest, err = tag(rest, ":"); err != nil {
		return nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, in, err
	}
	return parseCell(rest)
}

func parseEquals(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Equals{Left: l, Right: r}
	}, parseOr, "==", parseEquals, parseOr)
}

func parseOr(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.Or{Left: l, Right: r}
	}, parseAnd, "|", parseOr, parseAnd)
}

func parseAnd(in input) (ast.Exp, input, *failure) {
	return binaryOp(in, func(l, r ast.Exp) ast.Exp {
		return &ast.And{Left: l, Right: r}
	}, parseNot, "&", parseAnd, parseNot)
}

func parseNot(in input) (ast.Exp, input, *failure) {
	return unaryOp(in, func(e ast.Exp) ast.Exp {
		return &ast.Not{Exp: e}
	}, "!", parseNot, parseAtom)
}

//parseAtom is the tightest layer: a parenthesized expression or a
//literal, tried in a fixed order. The bool rule runs before the
//identifier rule; see parseBool for the consequence.
func parseAtom(in input) (ast.Exp, input, *failure) {
	if e, rest, err := parseParens(in); err == nil {
		return e, rest, nil
	}
	if b, rest, err := parseBool(in); err == nil {
		return b, rest, nil
	}
	if i, rest, err := parseInt(in); err == nil {
		return i, rest, nil
	}
	if s, rest, err := parseStr(in); err == nil {
		return s, rest, nil
	}
	v, rest, err := parseVar(in)
	if err != nil {
		return nil, in, err
	}
	return v, rest, nil
}

//parseParens matches "(" exp ")", delegating to the entry-level rule so
//any expression, including further lets, can appear inside.
func parseParens(in input) (ast.Exp, input, *failure) {
	rest, err := tag(in, "(")
	if err != nil {
		return nil, in, err
	}
	e, rest, err := parseExp(rest)
	if err != nil {
		return nil, in, err
	}
	if rest, err = tag(rest, ")"); err != nil {
		return nil, in, err
	}
	return e, rest, nil
}

//parseExp matches junk let-expr junk: one complete expression with its
//surrounding incidental text.
func parseExp(in input) (ast.Exp, input, *failure) {
	rest, err := junk(in)
	if err != nil {
		return nil, in, err
	}
	e, rest, err := parseLet(rest)
	if err != nil {
		return nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, in, err
	}
	return e, rest, nil
}
