//Package parse turns sdb source text into an ast.Exp.
//
//The grammar is a fixed cascade of precedence layers, loosest first:
//let, select, where, union, difference, product, table, row, cell,
//equals, or, and, not, atom. Each layer is a pure function from a cursor
//to a matched expression and an advanced cursor, or a failure that
//consumes nothing. Repeated operators nest to the right, and chain
//splits are resolved by how far the recursive right-hand parse extends,
//with no lookahead.
//
//Recursion depth grows with expression nesting times the number of
//layers an expression touches, so pathologically deep chains or
//parenthesization can exhaust the call stack.
package parse
