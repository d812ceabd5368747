package xxh32

import (
	"github.com/OneOfOne/xxhash"
	"github.com/tutils/xxrand/accum"
)

var _ accum.Accumulator = (*xxh32)(nil)

// xxh32 chains XXH32 digests: each digest becomes the seed of the next one.
type xxh32 struct {
	h *xxhash.XXHash32
}

// New create a new XXH32 accumulator
func New(seed uint32) accum.Accumulator {
	return &xxh32{h: xxhash.NewS32(seed)}
}

// Init implements accum.Accumulator.
func (x *xxh32) Init(seed uint32) {
	x.h = xxhash.NewS32(seed)
}

// Update implements accum.Accumulator.
func (x *xxh32) Update(p []byte) {
	x.h.Write(p)
}

// Digest implements accum.Accumulator.
func (x *xxh32) Digest() uint32 {
	d := x.h.Sum32()
	x.Init(d)
	return d
}
