package xxrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSequence(t *testing.T) {
	s := NewRandomSequence("foo", 0)
	for i, want := range golden {
		require.Equalf(t, want, s.Next(false), "pull %d", i)
	}
	require.Equal(t, golden[0], s.Next(true))
	require.Equal(t, golden[1], s.Next(false))
}

func TestBitsSequenceResetMidway(t *testing.T) {
	want := NewString("bits", 4).RandomBitsN(8)
	s := NewBitsSequence("bits", 4)
	for i := 0; i < 3; i++ {
		require.Equal(t, want[i], s.Next(false))
	}
	for i := 0; i < 8; i++ {
		require.Equal(t, want[i], s.Next(i == 0))
	}
}

func TestSequenceAll(t *testing.T) {
	var got []float64
	for v := range NewRandomSequence("foo", 0).All() {
		got = append(got, v)
		if len(got) == len(golden) {
			break
		}
	}
	require.Equal(t, golden, got)

	var bits []int32
	for v := range NewBitsSequence("foo", 0).All() {
		bits = append(bits, v)
		if len(bits) == 3 {
			break
		}
	}
	require.Equal(t, RandomBitsN("foo", 0, 3), bits)
}
