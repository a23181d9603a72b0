// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package lazy

// Combinator rules. Each has the Rule signature so it can be passed
// straight to Define.

// Seq forces left, discards its value and returns the forced right.
func Seq(left, right Lazy) int {
	left.Force()
	return right.Force()
}

// If forces left; when it is nonzero the forced right is returned,
// otherwise 0 without right ever being forced.
func If(left, right Lazy) int {
	if left.Force() != 0 {
		return right.Force()
	}
	return 0
}

// Repeat forces left once to obtain a count, forces right that many times
// and returns 0. A non-positive count never forces right.
func Repeat(left, right Lazy) int {
	n := left.Force()
	for i := 0; i < n; i++ {
		right.Force()
	}
	return 0
}

// Join is the forced left times ten plus the forced right. Joining treats
// left as the higher decimal digits, which is how an alphabet of three
// literals spells every other number.
func Join(left, right Lazy) int {
	return left.Force()*10 + right.Force()
}
