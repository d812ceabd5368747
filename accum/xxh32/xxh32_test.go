package xxh32

import (
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/stretchr/testify/require"
)

func TestDigestKnownVector(t *testing.T) {
	a := New(0)
	a.Update([]byte("foo"))
	require.Equal(t, uint32(0xe20f0dd9), a.Digest())
}

func TestDigestChains(t *testing.T) {
	a := New(0)
	a.Update([]byte("foo"))
	want := []uint32{0xe20f0dd9, 0x63b9e19e, 0x15ca0c36, 0x0b3bb7ae, 0xa882cd63}
	for i, w := range want {
		require.Equalf(t, w, a.Digest(), "digest %d", i)
	}
}

func TestDigestReseedsWithPreviousDigest(t *testing.T) {
	a := New(7)
	a.Update([]byte("bar"))
	d := a.Digest()
	require.Equal(t, xxhash.Checksum32S([]byte("bar"), 7), d)
	require.Equal(t, xxhash.Checksum32S(nil, d), a.Digest())
}

func TestInitDropsInput(t *testing.T) {
	a := New(3)
	a.Update([]byte("foo"))
	a.Digest()
	a.Digest()

	a.Init(3)
	a.Update([]byte("foo"))
	b := New(3)
	b.Update([]byte("foo"))
	for i := 0; i < 10; i++ {
		require.Equal(t, b.Digest(), a.Digest())
	}
}
