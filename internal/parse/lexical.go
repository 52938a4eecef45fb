package parse

import (
	"strconv"
	"strings"

	"github.com/willmcpherson2/sdb/internal/ast"
)

//parseVar matches an identifier: an ASCII letter or underscore followed
//by letters, digits, or underscores. Identifiers are case-sensitive and
//there are no reserved words.
func parseVar(in input) (*ast.Var, input, *failure) {
	r := in.rest()
	if r == "" || !idStart(rune(r[0])) {
		return nil, in, in.fail("expected identifier")
	}
	n := 1 + span(r[1:], idCont)
	return &ast.Var{Name: r[:n]}, in.skip(n), nil
}

//parseBool matches the exact spelling true or false.
//
//The spelling is matched as a raw prefix, with no check that the next
//rune could not extend an identifier, so an identifier beginning with
//true or false lexes as the bool plus a leftover token (see the atom
//ordering quirk in the parser tests).
func parseBool(in input) (*ast.Bool, input, *failure) {
	if rest, err := tag(in, "true"); err == nil {
		return &ast.Bool{Value: true}, rest, nil
	}
	if rest, err := tag(in, "false"); err == nil {
		return &ast.Bool{Value: false}, rest, nil
	}
	return nil, in, in.fail("expected true or false")
}

//parseInt matches an optional - followed by one or more decimal digits.
//A digit run that overflows a 64-bit signed integer is a failure, not a
//panic.
func parseInt(in input) (*ast.Int, input, *failure) {
	r := in.rest()
	digits := strings.TrimPrefix(r, "-")
	n := span(digits, digit)
	if n == 0 {
		return nil, in, in.fail("expected integer")
	}
	lit := r[:len(r)-len(digits)+n]
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, in, in.failf("integer %s does not fit in 64 bits", lit)
	}
	return &ast.Int{Value: v}, in.skip(len(lit)), nil
}

//parseStr matches '…': any run of characters other than an apostrophe,
//taken verbatim. There are no escape sequences, so a string cannot
//contain an apostrophe and the empty string '' is valid.
func parseStr(in input) (*ast.Str, input, *failure) {
	r := in.rest()
	if !strings.HasPrefix(r, "'") {
		return nil, in, in.fail("expected string")
	}
	body := r[1:]
	end := strings.IndexByte(body, '\'')
	if end < 0 {
		return nil, in, in.fail("unterminated string")
	}
	return &ast.Str{Value: body[:end]}, in.skip(1 + end + 1), nil
}
