package ordernum

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Prefix that makes order identifiers human-legible.
const Prefix = "ORD"

// Generator issues order identifiers unique within a process lifetime.
// Bare wall-clock milliseconds can collide under rapid successive
// checkouts, so a process-wide counter supplies the distinct suffix.
type Generator struct {
	seq atomic.Uint64
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns an identifier like "ORD-20240115-000001".
func (g *Generator) Next(now time.Time) string {
	n := g.seq.Add(1)
	return fmt.Sprintf("%s-%s-%06d", Prefix, now.UTC().Format("20060102"), n)
}
