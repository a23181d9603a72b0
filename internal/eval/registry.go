// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the lazycalc postfix evaluator and its
// operator registry.
package eval

import (
	"fmt"
	"sort"
	"sync"

	"nickandperla.net/lazycalc/internal/lazy"
	"nickandperla.net/lazycalc/internal/token"
)

// Registry maps operator symbols to their evaluation rules. Built-in
// arithmetic and caller definitions share the one namespace; literal
// runes are reserved and can never appear in it.
type Registry struct {
	rules map[rune]lazy.Rule
	mu    sync.RWMutex
}

// NewRegistry creates a Registry seeded with the built-in arithmetic
// operators.
func NewRegistry() *Registry {
	reg := &Registry{rules: make(map[rune]lazy.Rule)}
	for sym, rule := range builtins() {
		if err := reg.Define(sym, rule); err != nil {
			panic(err)
		}
	}
	return reg
}

// Define registers rule under sym. It fails without touching the
// registry when sym is a literal rune or already carries a rule.
func (reg *Registry) Define(sym rune, rule lazy.Rule) error {
	if token.IsLiteral(sym) {
		return fmt.Errorf("%q is reserved for a literal: %w", sym, ErrAlreadyDefined)
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, dup := reg.rules[sym]; dup {
		return fmt.Errorf("%q: %w", sym, ErrAlreadyDefined)
	}
	reg.rules[sym] = rule
	return nil
}

// Lookup returns the rule registered under sym.
func (reg *Registry) Lookup(sym rune) (lazy.Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rule, ok := reg.rules[sym]
	return rule, ok
}

// Defined returns true if sym carries a rule.
func (reg *Registry) Defined(sym rune) bool {
	_, ok := reg.Lookup(sym)
	return ok
}

// Symbols returns every registered operator symbol in rune order.
func (reg *Registry) Symbols() []rune {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	syms := make([]rune, 0, len(reg.rules))
	for sym := range reg.rules {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
