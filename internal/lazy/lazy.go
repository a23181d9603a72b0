// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package lazy defines lazycalc deferred computations and operator rules.
package lazy

// Lazy is a deferred integer computation. Forcing it runs whatever side
// effects the computation carries; it may be forced zero or many times,
// and every force re-runs those effects.
type Lazy func() int

// Force evaluates the computation.
func (l Lazy) Force() int { return l() }

// Const returns a computation that always yields n and has no effects.
func Const(n int) Lazy {
	return func() int { return n }
}

// Rule is a binary operator evaluation rule. A rule decides which of its
// operands to force, how often, and in what order; the rules shipped in
// this package force left before right unless documented otherwise.
type Rule func(left, right Lazy) int

// Apply composes a deferred application of the rule. Neither operand is
// forced until the result is.
func (r Rule) Apply(left, right Lazy) Lazy {
	return func() int { return r(left, right) }
}
