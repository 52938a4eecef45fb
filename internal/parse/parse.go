package parse

import (
	"github.com/willmcpherson2/sdb/internal/ast"
	"github.com/willmcpherson2/sdb/internal/token"
)

//Error reports the position at which no grammar alternative matched.
type Error struct {
	Position token.Position
	Msg      string
}

//Pos reports the position of the failure in input.
func (e *Error) Pos() token.Position {
	return e.Position
}

func (e *Error) Error() string {
	return e.Position.String() + ": " + e.Msg
}

//Parse parses a complete program, using name to identify src in errors.
//
//The whole of src must be consumed: anything left after the expression
//and its trailing whitespace or comments is an error, not a warning. On
//failure no partial tree is returned.
func Parse(name, src string) (ast.Exp, error) {
	e, rest, err := parseExp(input{src: src})
	if err != nil {
		return nil, &Error{
			Position: token.Locate(name, src, err.off),
			Msg:      err.msg,
		}
	}
	if !rest.eof() {
		return nil, &Error{
			Position: token.Locate(name, src, rest.off),
			Msg:      "unexpected trailing input",
		}
	}
	return e, nil
}
