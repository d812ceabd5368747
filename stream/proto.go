package stream

import (
	"errors"
	"fmt"

	"github.com/tutils/xxrand"
)

// Kind selects which sequence a connection pulls from
type Kind string

const (
	KindBits  Kind = "bits"
	KindFloat Kind = "float"
)

// DefaultMaxBatch bounds the number of values a single request may pull
const DefaultMaxBatch = 4096

var (
	ErrKind      = errors.New("unknown sequence kind")
	ErrBatchSize = errors.New("batch size out of range")
)

// ParseKind validates a kind name; empty means KindFloat
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindFloat:
		return KindFloat, nil
	case KindBits:
		return KindBits, nil
	}
	return "", fmt.Errorf("%w: %q", ErrKind, s)
}

// Request pulls N values; Reset rewinds the sequence before the first of them
type Request struct {
	N     int  `json:"n"`
	Reset bool `json:"reset,omitempty"`
}

// Response carries either the pulled values or an error message
type Response struct {
	Session string    `json:"session"`
	Kind    Kind      `json:"kind"`
	Bits    []int32   `json:"bits,omitempty"`
	Floats  []float64 `json:"floats,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// session owns the single sequence of one connection
type session struct {
	id       string
	kind     Kind
	maxBatch int
	bits     *xxrand.BitsSequence
	floats   *xxrand.RandomSequence
}

func newSession(id string, kind Kind, seed string, offset int64, maxBatch int) *session {
	s := &session{id: id, kind: kind, maxBatch: maxBatch}
	switch kind {
	case KindBits:
		s.bits = xxrand.NewBitsSequence(seed, offset)
	default:
		s.floats = xxrand.NewRandomSequence(seed, offset)
	}
	return s
}

func (s *session) pull(req Request) (Response, error) {
	resp := Response{Session: s.id, Kind: s.kind}
	if req.N < 1 || req.N > s.maxBatch {
		return resp, fmt.Errorf("%w: %d not in [1, %d]", ErrBatchSize, req.N, s.maxBatch)
	}
	switch s.kind {
	case KindBits:
		resp.Bits = make([]int32, req.N)
		for i := range resp.Bits {
			resp.Bits[i] = s.bits.Next(req.Reset && i == 0)
		}
	default:
		resp.Floats = make([]float64, req.N)
		for i := range resp.Floats {
			resp.Floats[i] = s.floats.Next(req.Reset && i == 0)
		}
	}
	return resp, nil
}
