// Package sequence issues process-wide numeric identifiers.
package sequence

import "sync/atomic"

// Generator hands out strictly increasing int64 identifiers starting at 1.
// Identifiers are never reused, even when the caller fails to use one.
// The zero value is ready to use.
type Generator struct {
	last atomic.Int64
}

// New returns a generator whose first identifier is 1.
func New() *Generator {
	return &Generator{}
}

// Next returns the next identifier. Safe for concurrent use.
func (g *Generator) Next() int64 {
	return g.last.Add(1)
}
