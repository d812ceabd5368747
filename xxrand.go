// Package xxrand is a deterministic pseudo-random number generator driven by
// a chained non-cryptographic hash. It is not suitable for secrets.
package xxrand

import (
	"github.com/spf13/cast"
	"github.com/tutils/xxrand/accum"
)

// maxUint32 is the divisor of Random: the largest digest maps to exactly 1.0.
const maxUint32 = 1<<32 - 1

// Generator produces a reproducible sequence for a (seed, offset) pair.
// A Generator must not be used by several goroutines at once.
type Generator struct {
	seed   []byte
	offset int64
	acc    accum.Accumulator
}

// New create a new Generator absorbing raw seed bytes
func New(seed []byte, offset int64, opts ...Option) *Generator {
	opt := newOptions(opts...)
	g := &Generator{
		seed:   append([]byte(nil), seed...),
		offset: offset,
		acc:    opt.newer(uint32(offset)),
	}
	g.acc.Update(g.seed)
	return g
}

// NewString create a new Generator absorbing a text seed
func NewString(seed string, offset int64, opts ...Option) *Generator {
	return New([]byte(seed), offset, opts...)
}

// NewValue create a new Generator from any value with a text representation.
// Byte slices and strings are used verbatim.
func NewValue(seed interface{}, offset int64, opts ...Option) (*Generator, error) {
	switch s := seed.(type) {
	case []byte:
		return New(s, offset, opts...), nil
	case string:
		return NewString(s, offset, opts...), nil
	}
	s, err := cast.ToStringE(seed)
	if err != nil {
		return nil, err
	}
	return NewString(s, offset, opts...), nil
}

// Seed returns a copy of the seed bytes
func (g *Generator) Seed() []byte {
	return append([]byte(nil), g.seed...)
}

// Offset returns the chain selector
func (g *Generator) Offset() int64 {
	return g.offset
}

// RandomBits draws the next digest reinterpreted as a signed integer
func (g *Generator) RandomBits() int32 {
	return int32(g.acc.Digest())
}

// RandomBitsN draws n values in order. It panics if n is negative.
func (g *Generator) RandomBitsN(n int) []int32 {
	vs := make([]int32, n)
	for i := range vs {
		vs[i] = g.RandomBits()
	}
	return vs
}

// Random draws the next value in [0, 1]. Only the largest digest yields 1.
func (g *Generator) Random() float64 {
	return toFloat(g.RandomBits())
}

// RandomN draws n floats in order. It panics if n is negative.
func (g *Generator) RandomN(n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = g.Random()
	}
	return vs
}

// Reset rewinds the generator to the state right after construction
func (g *Generator) Reset() *Generator {
	g.acc.Init(uint32(g.offset))
	g.acc.Update(g.seed)
	return g
}

func toFloat(bits int32) float64 {
	return float64(uint32(bits)) / maxUint32
}

// RandomBits draws one value from a throwaway generator.
// Reusing a Generator is faster than calling this repeatedly.
func RandomBits(seed string, offset int64) int32 {
	return NewString(seed, offset).RandomBits()
}

// RandomBitsN draws n values from a throwaway generator.
func RandomBitsN(seed string, offset int64, n int) []int32 {
	return NewString(seed, offset).RandomBitsN(n)
}

// Random draws one float from a throwaway generator.
// Reusing a Generator is faster than calling this repeatedly.
func Random(seed string, offset int64) float64 {
	return NewString(seed, offset).Random()
}

// RandomN draws n floats from a throwaway generator.
func RandomN(seed string, offset int64, n int) []float64 {
	return NewString(seed, offset).RandomN(n)
}
