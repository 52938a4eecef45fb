package parse

import "github.com/willmcpherson2/sdb/internal/ast"

//expRule is one precedence layer: it matches a complete expression at
//the cursor, or fails without consuming input.
type expRule func(input) (ast.Exp, input, *failure)

//binaryOp assembles one binary-infix layer: left junk op junk right,
//where right re-invokes the layer itself so repeated operators nest to
//the right. Any failure in that sequence, including one after the
//operator token has matched, falls through to next, the tighter layer,
//from the original cursor; there is no retry with a different split of
//the left operand.
func binaryOp(in input, mk func(l, r ast.Exp) ast.Exp, left expRule, op string, right, next expRule) (ast.Exp, input, *failure) {
	if l, r, rest, err := infix(in, left, op, right); err == nil {
		return mk(l, r), rest, nil
	}
	return next(in)
}

//infix matches left junk op junk right.
func infix(in input, left expRule, op string, right expRule) (l, r ast.Exp, rest input, err *failure) {
	l, rest, err = left(in)
	if err != nil {
		return nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, in, err
	}
	if rest, err = tag(rest, op); err != nil {
		return nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, in, err
	}
	if r, rest, err = right(rest); err != nil {
		return nil, nil, in, err
	}
	return l, r, rest, nil
}

//unaryOp assembles a unary-prefix layer: op junk operand, where the
//operand re-invokes the layer itself; otherwise next is tried from the
//original cursor with nothing consumed.
func unaryOp(in input, mk func(ast.Exp) ast.Exp, op string, operand, next expRule) (ast.Exp, input, *failure) {
	rest, err := tag(in, op)
	if err == nil {
		if rest, err = junk(rest); err == nil {
			if e, rest, err := operand(rest); err == nil {
				return mk(e), rest, nil
			}
		}
	}
	return next(in)
}

//ternaryOp assembles the one ternary-infix layer:
//var junk opLeft junk middle junk opRight junk right.
//opRight may be the empty token, in which case nothing separates the
//middle and right operands and the split is resolved by how far the
//recursive middle parse extends. Failures fall through to next from the
//original cursor.
func ternaryOp(in input, mk func(v *ast.Var, m, r ast.Exp) ast.Exp, opLeft string, middle expRule, opRight string, right, next expRule) (ast.Exp, input, *failure) {
	if v, m, r, rest, err := ternary(in, opLeft, middle, opRight, right); err == nil {
		return mk(v, m, r), rest, nil
	}
	return next(in)
}

//ternary matches var junk opLeft junk middle junk opRight junk right.
func ternary(in input, opLeft string, middle expRule, opRight string, right expRule) (v *ast.Var, m, r ast.Exp, rest input, err *failure) {
	v, rest, err = parseVar(in)
	if err != nil {
		return nil, nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, nil, in, err
	}
	if rest, err = tag(rest, opLeft); err != nil {
		return nil, nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, nil, in, err
	}
	if m, rest, err = middle(rest); err != nil {
		return nil, nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, nil, in, err
	}
	if rest, err = tag(rest, opRight); err != nil {
		return nil, nil, nil, in, err
	}
	if rest, err = junk(rest); err != nil {
		return nil, nil, nil, in, err
	}
	if r, rest, err = right(rest); err != nil {
		return nil, nil, nil, in, err
	}
	return v, m, r, rest, nil
}
