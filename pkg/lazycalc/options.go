// Package lazycalc provides the public API for the lazycalc engine.
package lazycalc

import (
	"nickandperla.net/lazycalc/internal/eval"
	"nickandperla.net/lazycalc/internal/lazy"
	"nickandperla.net/lazycalc/internal/token"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithExtensions pre-registers the conventional extension operators:
// ',' (sequence), '?' (condition), '$' (repeat) and '!' (digit join).
func WithExtensions() Option {
	return func(c *Calculator) {
		for sym, rule := range eval.Extensions() {
			c.evaluator.Define(sym, rule)
		}
	}
}

// WithOperators pre-registers caller-supplied rules. Symbols already
// taken are skipped; Define them explicitly to see the error.
func WithOperators(rules map[rune]Rule) Option {
	return func(c *Calculator) {
		for sym, rule := range rules {
			c.evaluator.Define(sym, rule)
		}
	}
}

// Lazy is a deferred integer computation.
type Lazy = lazy.Lazy

// Rule is a binary operator evaluation rule.
type Rule = lazy.Rule

// Calculation errors, for errors.Is classification.
var (
	ErrSyntax          = eval.ErrSyntax
	ErrUnknownOperator = eval.ErrUnknownOperator
	ErrAlreadyDefined  = eval.ErrAlreadyDefined
)

// Const returns a computation that always yields n.
func Const(n int) Lazy { return lazy.Const(n) }

// Seq forces left, discards its value and returns the forced right.
func Seq(left, right Lazy) int { return lazy.Seq(left, right) }

// If forces left; when it is nonzero the forced right is returned,
// otherwise 0 without right ever being forced.
func If(left, right Lazy) int { return lazy.If(left, right) }

// Repeat forces left once for a count, forces right that many times and
// returns 0.
func Repeat(left, right Lazy) int { return lazy.Repeat(left, right) }

// Join is the forced left times ten plus the forced right.
func Join(left, right Lazy) int { return lazy.Join(left, right) }

// Literals returns the literal alphabet in value order.
func Literals() string { return token.Literals() }
