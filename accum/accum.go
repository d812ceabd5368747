package accum

// Accumulator is a stateful non-cryptographic hash that can be queried for
// a digest repeatedly. Every Digest call advances the state, so successive
// calls yield a deterministic stream of values.
type Accumulator interface {
	// Init (re)initializes the accumulator with seed, dropping any input.
	Init(seed uint32)
	Update(p []byte)
	Digest() uint32
}

// Newer creates an initialized Accumulator
type Newer func(seed uint32) Accumulator
