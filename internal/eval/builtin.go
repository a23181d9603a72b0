package eval

import "nickandperla.net/lazycalc/internal/lazy"

// builtins returns the arithmetic rules every Registry starts with.
// Each forces left once, then right once.
func builtins() map[rune]lazy.Rule {
	return map[rune]lazy.Rule{
		'+': add,
		'-': subtract,
		'*': multiply,
		'/': divide,
	}
}

func add(left, right lazy.Lazy) int      { return left.Force() + right.Force() }
func subtract(left, right lazy.Lazy) int { return left.Force() - right.Force() }
func multiply(left, right lazy.Lazy) int { return left.Force() * right.Force() }

// divide keeps Go integer division semantics: truncation toward zero,
// run-time panic on a zero divisor.
func divide(left, right lazy.Lazy) int { return left.Force() / right.Force() }

// Extensions returns the optional combinator set: ',' sequences two
// computations, '?' short-circuits on a zero left operand, '$' repeats
// its right operand a forced-left number of times, and '!' joins two
// values as decimal digits. Callers opt in by defining each entry.
func Extensions() map[rune]lazy.Rule {
	return map[rune]lazy.Rule{
		',': lazy.Seq,
		'?': lazy.If,
		'$': lazy.Repeat,
		'!': lazy.Join,
	}
}
