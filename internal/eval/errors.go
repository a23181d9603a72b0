// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "errors"

// The three failure kinds of the calculator. Every error returned from
// this package wraps exactly one of them, so callers classify with
// errors.Is and read the message for position detail.
var (
	// ErrSyntax reports a malformed token sequence: empty input, operand
	// shortfall under an operator, or leftover operands at end of scan.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownOperator reports a non-literal rune with no registered rule.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrAlreadyDefined reports a Define against a symbol that is already
	// an operator or is reserved for a literal.
	ErrAlreadyDefined = errors.New("operator already defined")
)
