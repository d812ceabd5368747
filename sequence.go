package xxrand

import "iter"

// BitsSequence is an infinite, restartable source of RandomBits values
type BitsSequence struct {
	g *Generator
}

// NewBitsSequence create a new BitsSequence over its own Generator
func NewBitsSequence(seed string, offset int64, opts ...Option) *BitsSequence {
	return &BitsSequence{g: NewString(seed, offset, opts...)}
}

// Next returns the next value. If reset is set the generator is rewound
// first, so the first value of the sequence is returned.
func (s *BitsSequence) Next(reset bool) int32 {
	if reset {
		s.g.Reset()
	}
	return s.g.RandomBits()
}

// All yields values until the consumer stops ranging
func (s *BitsSequence) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for yield(s.Next(false)) {
		}
	}
}

// RandomSequence is an infinite, restartable source of Random values
type RandomSequence struct {
	g *Generator
}

// NewRandomSequence create a new RandomSequence over its own Generator
func NewRandomSequence(seed string, offset int64, opts ...Option) *RandomSequence {
	return &RandomSequence{g: NewString(seed, offset, opts...)}
}

// Next returns the next value. If reset is set the generator is rewound
// first, so the first value of the sequence is returned.
func (s *RandomSequence) Next(reset bool) float64 {
	if reset {
		s.g.Reset()
	}
	return s.g.Random()
}

// All yields values until the consumer stops ranging
func (s *RandomSequence) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for yield(s.Next(false)) {
		}
	}
}
