package eval

import (
	"fmt"
	"io"

	"nickandperla.net/lazycalc/internal/lazy"
	"nickandperla.net/lazycalc/internal/scanner"
	"nickandperla.net/lazycalc/internal/token"
)

// Evaluator parses postfix expressions against an operator registry.
type Evaluator struct {
	registry *Registry
}

// New creates an Evaluator carrying only the built-in arithmetic
// operators.
func New() *Evaluator {
	return &Evaluator{registry: NewRegistry()}
}

// Registry returns the evaluator's operator registry.
func (ev *Evaluator) Registry() *Registry {
	return ev.registry
}

// Define registers rule under sym for every later parse. Expressions
// already parsed keep the rules they were bound to.
func (ev *Evaluator) Define(sym rune, rule lazy.Rule) error {
	return ev.registry.Define(sym, rule)
}

// Parse compiles a postfix expression into one deferred computation.
// Nothing is forced and no rule body runs; side effects wait until the
// caller forces the result.
func (ev *Evaluator) Parse(input string) (lazy.Lazy, error) {
	return ev.parse(scanner.NewFromString(input))
}

// ParseReader is Parse over a stream.
func (ev *Evaluator) ParseReader(r io.Reader) (lazy.Lazy, error) {
	return ev.parse(scanner.New(r))
}

func (ev *Evaluator) parse(scan *scanner.Scanner) (lazy.Lazy, error) {
	var stack []lazy.Lazy
	for {
		item, err := scan.Next()
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		switch item.Kind {
		case token.EOF:
			switch len(stack) {
			case 1:
				return stack[0], nil
			case 0:
				return nil, fmt.Errorf("empty expression: %w", ErrSyntax)
			default:
				return nil, fmt.Errorf("%d operands left over: %w", len(stack), ErrSyntax)
			}
		case token.LITERAL:
			value, _ := token.LiteralValue(item.Rune)
			stack = append(stack, lazy.Const(value))
		default:
			// The operator must resolve before operand arity is judged.
			rule, ok := ev.registry.Lookup(item.Rune)
			if !ok {
				return nil, fmt.Errorf("%q at position %d: %w", item.Rune, item.Pos, ErrUnknownOperator)
			}
			if len(stack) < 2 {
				return nil, fmt.Errorf("operator %q at position %d wants two operands, have %d: %w",
					item.Rune, item.Pos, len(stack), ErrSyntax)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, rule.Apply(left, right))
		}
	}
}

// Calculate parses input and forces the result.
func (ev *Evaluator) Calculate(input string) (int, error) {
	result, err := ev.Parse(input)
	if err != nil {
		return 0, err
	}
	return result.Force(), nil
}

// CalculateReader is Calculate over a stream.
func (ev *Evaluator) CalculateReader(r io.Reader) (int, error) {
	result, err := ev.ParseReader(r)
	if err != nil {
		return 0, err
	}
	return result.Force(), nil
}
