//Package token defines source positions for diagnostics.
package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

//Posers can report their Position.
type Poser interface {
	Pos() Position
}

//Position of a point in input.
type Position struct {
	Name       string
	Line, Rune int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Rune)
}

func (p Position) Pos() Position {
	return p
}

//Locate converts a byte offset into src to a 1-based line/rune Position,
//using name to identify the input.
//
//Offsets past the end of src locate the end of input.
func Locate(name, src string, off int) Position {
	if off > len(src) {
		off = len(src)
	}
	before := src[:off]
	nl := strings.LastIndexByte(before, '\n')
	return Position{
		Name: name,
		Line: 1 + strings.Count(before, "\n"),
		Rune: 1 + utf8.RuneCountInString(before[nl+1:]),
	}
}
