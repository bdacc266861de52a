package store

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out record identifiers such as "guest_<id>".
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator appends a random UUID to the prefix.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// SequenceGenerator appends a counter that increases with every id this
// generator hands out. Handy in tests where ids must be predictable.
type SequenceGenerator struct {
	n atomic.Uint64
}

func (g *SequenceGenerator) NewID(prefix string) string {
	return prefix + strconv.FormatUint(g.n.Add(1), 10)
}
