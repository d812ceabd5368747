package xor

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCrypt(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt("544141")
	en := c.NewEncoder(buf)
	de := c.NewDecoder(buf)

	_, err := en.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = en.Write([]byte("defg"))
	require.NoError(t, err)
	require.NotEqual(t, []byte("abcdefg"), buf.Bytes())

	bs, err := io.ReadAll(de)
	require.NoError(t, err)
	require.Equal(t, "abcdefg", string(bs))
}

func TestOffsetMismatch(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt("key")
	en := c.NewEncoder(buf, WithEncoderOffset(1))
	_, err := en.Write([]byte("payload"))
	require.NoError(t, err)
	enc := append([]byte(nil), buf.Bytes()...)

	bs, err := io.ReadAll(c.NewDecoder(bytes.NewReader(enc), WithDecoderOffset(1)))
	require.NoError(t, err)
	require.Equal(t, "payload", string(bs))

	bs, err = io.ReadAll(c.NewDecoder(bytes.NewReader(enc)))
	require.NoError(t, err)
	require.NotEqual(t, "payload", string(bs))
}
