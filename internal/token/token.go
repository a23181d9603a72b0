// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token classifies lazycalc input runes.
package token

// Kind represents a lazycalc token kind.
type Kind int

const (
	EOF Kind = iota
	LITERAL // fixed-value literal symbol
	SYMBOL  // anything else; resolved against the operator registry
)

// The literal alphabet. Three symbols, fixed at design time; literal
// runes can never be claimed by an operator definition.
const (
	RuneZero = '0' // value 0
	RuneTwo  = '2' // value 2
	RuneFour = '4' // value 4
)

// IsLiteral returns true if the rune is a literal symbol.
func IsLiteral(r rune) bool {
	switch r {
	case RuneZero, RuneTwo, RuneFour:
		return true
	}
	return false
}

// LiteralValue returns the fixed integer value of a literal rune.
// The second result is false when r is not a literal.
func LiteralValue(r rune) (int, bool) {
	switch r {
	case RuneZero:
		return 0, true
	case RuneTwo:
		return 2, true
	case RuneFour:
		return 4, true
	}
	return 0, false
}

// Literals returns the literal alphabet in value order.
func Literals() string {
	return string([]rune{RuneZero, RuneTwo, RuneFour})
}

// Classify returns the token kind for a rune.
func Classify(r rune) Kind {
	if IsLiteral(r) {
		return LITERAL
	}
	return SYMBOL
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case LITERAL:
		return "LITERAL"
	case SYMBOL:
		return "SYMBOL"
	}
	return "UNKNOWN"
}
