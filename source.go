package xxrand

import (
	"encoding/binary"
	"io"
	"math/rand"
)

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Generator to math/rand
type Source struct {
	g    *Generator
	opts []Option
}

// NewSource create a new Source; the rand seed selects the offset
func NewSource(seed []byte, offset int64, opts ...Option) *Source {
	return &Source{g: New(seed, offset, opts...), opts: opts}
}

// Seed restarts the chain at offset seed with the same seed bytes
func (s *Source) Seed(seed int64) {
	s.g = New(s.g.seed, seed, s.opts...)
}

// Uint64 joins two draws, high word first
func (s *Source) Uint64() uint64 {
	hi := uint64(uint32(s.g.RandomBits()))
	lo := uint64(uint32(s.g.RandomBits()))
	return hi<<32 | lo
}

// Int63 implements rand.Source
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

var _ io.Reader = (*Reader)(nil)

// Reader is a keystream of little-endian draws. It never returns an error.
type Reader struct {
	g    *Generator
	buf  [4]byte
	left int
}

// NewReader create a new keystream Reader over g
func NewReader(g *Generator) *Reader {
	return &Reader{g: g}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.left == 0 {
			binary.LittleEndian.PutUint32(r.buf[:], uint32(r.g.RandomBits()))
			r.left = len(r.buf)
		}
		c := copy(p[n:], r.buf[len(r.buf)-r.left:])
		r.left -= c
		n += c
	}
	return n, nil
}
