// Package cart is the in-memory cart engine: one Cart per browsing session,
// lines keyed by their configuration identity, totals always recomputed.
package cart

import (
	"sync"

	"babylone/pkg/money"
)

// Line is one row in the cart: a specific item configuration and its quantity.
type Line struct {
	LineID         string      `json:"cartLineId"`
	ItemID         string      `json:"itemId"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	UnitBasePrice  money.Cents `json:"unitBasePrice"`
	SelectedAddons []AddonView `json:"selectedAddons"`
	UnitPrice      money.Cents `json:"unitPrice"`
	Qty            int         `json:"qty"`
}

func (l Line) Total() money.Cents {
	return l.UnitPrice.Mul(l.Qty)
}

// Cart holds the session's lines in insertion order. Every mutating method
// holds the lock for its whole read-modify-write, so interleaved handler
// callbacks never observe a half-applied transition.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add merges the line into the cart: an existing line with the same identity
// key gets qty+1 (its price fields are already correct and invariant under
// quantity), otherwise the line is appended with qty 1.
func (c *Cart) Add(line Line) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == line.LineID {
			c.lines[i].Qty++
			return
		}
	}
	line.Qty = 1
	c.lines = append(c.lines, line)
}

// UpdateQuantity replaces the line's quantity; qty <= 0 removes the line.
// An unknown id is a no-op: double-clicks and stale UI state are expected.
func (c *Cart) UpdateQuantity(lineID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeLocked(lineID)
		return
	}
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines[i].Qty = qty
			return
		}
	}
}

// Remove deletes the line; no-op when absent.
func (c *Cart) Remove(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(lineID)
}

func (c *Cart) removeLocked(lineID string) {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Totals walks the current lines once. Recomputed on every call; lines mutate
// in place so a cached value would go stale.
func (c *Cart) Totals() (itemCount int, amount money.Cents) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		itemCount += c.lines[i].Qty
		amount += c.lines[i].Total()
	}
	return itemCount, amount
}

// Lines returns a copy in insertion order, safe for the caller to hold.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
