// Package inventory is a tiny package used by the packages lesson to show
// a real package boundary: exported API, unexported state, a constructor
// and an interface the caller depends on.
package inventory

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownItem   = errors.New("unknown item")
	ErrInsufficient  = errors.New("insufficient stock")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Store is what callers program against.
type Store interface {
	Add(sku string, qty int) error
	Remove(sku string, qty int) error
	Quantity(sku string) int
	SKUs() []string
}

// memory is unexported; callers only ever see it as a Store.
type memory struct {
	items map[string]int
}

// New returns an empty in-memory Store.
func New() Store {
	return &memory{items: make(map[string]int)}
}

func (m *memory) Add(sku string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("add %s: %w", sku, ErrInvalidAmount)
	}
	m.items[sku] += qty
	return nil
}

func (m *memory) Remove(sku string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("remove %s: %w", sku, ErrInvalidAmount)
	}
	have, ok := m.items[sku]
	if !ok {
		return fmt.Errorf("remove %s: %w", sku, ErrUnknownItem)
	}
	if have < qty {
		return fmt.Errorf("remove %d of %s (have %d): %w", qty, sku, have, ErrInsufficient)
	}
	m.items[sku] = have - qty
	return nil
}

func (m *memory) Quantity(sku string) int { return m.items[sku] }

// SKUs returns the known item codes in sorted order.
func (m *memory) SKUs() []string {
	out := make([]string, 0, len(m.items))
	for k := range m.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
