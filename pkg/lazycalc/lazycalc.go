package lazycalc

import (
	"io"

	"nickandperla.net/lazycalc/internal/eval"
)

// Calculator is the lazycalc engine with its operator registry.
type Calculator struct {
	evaluator *eval.Evaluator
}

// New creates a new calculator with the given options. Without options
// only the four arithmetic operators are registered.
func New(opts ...Option) *Calculator {
	c := &Calculator{evaluator: eval.New()}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Define registers rule under sym for every later parse. Computations
// already parsed keep the rules they were bound to.
func (c *Calculator) Define(sym rune, rule Rule) error {
	return c.evaluator.Define(sym, rule)
}

// Parse compiles a postfix expression into a deferred computation
// without forcing anything.
func (c *Calculator) Parse(input string) (Lazy, error) {
	return c.evaluator.Parse(input)
}

// ParseReader is Parse over a stream.
func (c *Calculator) ParseReader(r io.Reader) (Lazy, error) {
	return c.evaluator.ParseReader(r)
}

// Calculate parses input and forces the result once.
func (c *Calculator) Calculate(input string) (int, error) {
	return c.evaluator.Calculate(input)
}

// CalculateReader is Calculate over a stream.
func (c *Calculator) CalculateReader(r io.Reader) (int, error) {
	return c.evaluator.CalculateReader(r)
}

// Defined returns true if sym carries a rule.
func (c *Calculator) Defined(sym rune) bool {
	return c.evaluator.Registry().Defined(sym)
}

// Symbols returns every registered operator symbol in rune order.
func (c *Calculator) Symbols() []rune {
	return c.evaluator.Registry().Symbols()
}
