// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming Unicode-aware scanner for lazycalc
// expressions. Every rune is exactly one token; whitespace is not special.
package scanner

import (
	"bufio"
	"io"
	"strings"

	"nickandperla.net/lazycalc/internal/token"
)

// Scanner reads a lazycalc expression rune by rune.
type Scanner struct {
	reader *bufio.Reader
	pos    int // Rune offset of the next token (0-based)
}

// Item represents a scanned token.
type Item struct {
	Kind token.Kind
	Rune rune
	Pos  int // Rune offset where this token appeared
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Next returns the next token from the input.
func (s *Scanner) Next() (*Item, error) {
	r, _, err := s.reader.ReadRune()
	if err == io.EOF {
		return &Item{Kind: token.EOF, Pos: s.pos}, nil
	}
	if err != nil {
		return nil, err
	}
	item := &Item{Kind: token.Classify(r), Rune: r, Pos: s.pos}
	s.pos++
	return item, nil
}
