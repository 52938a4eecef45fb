package parse

type pred func(rune) bool

func is(r rune) pred {
	return func(s rune) bool {
		return s == r
	}
}

//inRange returns a pred that reports whether a <= r <= b.
func inRange(a, b rune) pred {
	return func(r rune) bool {
		return a <= r && r <= b
	}
}

func or(ps ...pred) pred {
	return func(r rune) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

func any(runes string) pred {
	return func(r rune) bool {
		for _, rune := range runes {
			if rune == r {
				return true
			}
		}
		return false
	}
}

var (
	space   = any(" \t\r\n")
	digit   = inRange('0', '9')
	alpha   = or(inRange('a', 'z'), inRange('A', 'Z'))
	idStart = or(alpha, is('_'))
	idCont  = or(alpha, digit, is('_'))
)

//span returns the length in bytes of the leading run of s satisfying p.
func span(s string, p pred) int {
	for i, r := range s {
		if !p(r) {
			return i
		}
	}
	return len(s)
}
