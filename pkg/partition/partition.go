package partition

import (
	"encoding/binary"
	"math"
	"strconv"
)

// DefaultPartitions is the number of shards keys are spread over.
const DefaultPartitions = 20

// Option configures a Generator.
type Option func(*Generator)

// WithHash sets the hash function. Nil is ignored.
func WithHash(fn HashFunc) Option {
	return func(g *Generator) {
		if fn != nil {
			g.hash = fn
		}
	}
}

// WithPartitions sets the number of shards.
// Panics if n is not positive: a zero shard count cannot produce any key.
func WithPartitions(n int) Option {
	if n <= 0 {
		panic("partition: number of partitions must be > 0")
	}
	return func(g *Generator) { g.partitions = n }
}

// Generator builds partition keys. It holds no mutable state and is safe for concurrent use.
type Generator struct {
	hash       HashFunc
	partitions int
}

// New returns a generator using MD5 over DefaultPartitions shards.
func New(opts ...Option) *Generator {
	g := &Generator{
		hash:       MD5,
		partitions: DefaultPartitions,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GeneratePartitionKey returns applicationName followed by the shard index of sessionID.
func (g *Generator) GeneratePartitionKey(applicationName, sessionID string) string {
	return applicationName + strconv.Itoa(g.Suffix(sessionID))
}

// Suffix returns the shard index of sessionID in [0, partitions).
func (g *Generator) Suffix(sessionID string) int {
	sum := g.hash([]byte(sessionID))
	v := int32(binary.LittleEndian.Uint32(sum[:4]))
	return shard(v, g.partitions)
}

func shard(v int32, partitions int) int {
	// MinInt32 has no positive counterpart.
	if v == math.MinInt32 {
		v++
	}
	if v < 0 {
		v = -v
	}
	return int(v) % partitions
}
