package parse

import (
	"fmt"
	"strings"
)

//input is an immutable cursor over the source buffer.
//Every rule takes an input and returns the value it matched together with
//an advanced cursor, or a *failure without consuming anything.
type input struct {
	src string
	off int
}

func (in input) rest() string {
	return in.src[in.off:]
}

func (in input) eof() bool {
	return in.off >= len(in.src)
}

//skip advances the cursor n bytes.
func (in input) skip(n int) input {
	return input{src: in.src, off: in.off + n}
}

//failure records why a rule did not match and where.
//
//Failures are plain values: alternatives discard them silently, so the
//one a caller finally sees belongs to whichever alternative ran last.
type failure struct {
	off int
	msg string
}

func (in input) fail(msg string) *failure {
	return &failure{off: in.off, msg: msg}
}

func (in input) failf(spec string, vs ...interface{}) *failure {
	return in.fail(fmt.Sprintf(spec, vs...))
}

//tag matches the exact text op at the cursor.
//The empty op always matches without consuming input.
func tag(in input, op string) (input, *failure) {
	if strings.HasPrefix(in.rest(), op) {
		return in.skip(len(op)), nil
	}
	return in, in.failf("expected %q", op)
}

//junk skips a maximal run of whitespace, -- line comments, and
//non-nesting /* */ block comments. It matches the empty run.
//
//A /* with no closing */ is reported as a failure at the /*.
func junk(in input) (input, *failure) {
	for {
		r := in.rest()
		switch {
		case r == "":
			return in, nil
		case space(rune(r[0])):
			in = in.skip(1)
		case strings.HasPrefix(r, "--"):
			body := r[2:]
			n := strings.IndexByte(body, '\n')
			if n < 0 {
				n = len(body)
			}
			if n == 0 {
				//-- immediately followed by a newline is not a comment
				return in, nil
			}
			//the newline itself is left for the whitespace case
			in = in.skip(2 + n)
		case strings.HasPrefix(r, "/*"):
			n := strings.Index(r[2:], "*/")
			if n < 0 {
				return in, in.fail("unterminated /* */ comment")
			}
			//no nesting: the first */ closes the comment
			in = in.skip(2 + n + 2)
		default:
			return in, nil
		}
	}
}
