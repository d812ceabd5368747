// Package xor obfuscates streams with an xxrand keystream. It is not
// encryption: the keystream is predictable from the key.
package xor

import (
	"io"

	"github.com/tutils/xxrand"
	"github.com/tutils/xxrand/crypt"
)

var _ crypt.Crypt = &xorCrypt{}

type xorCrypt struct {
	key string
}

func (c *xorCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newXorEncoderOptions(opts...)
	return &xorEncoder{
		w:   w,
		rnd: xxrand.NewReader(xxrand.NewString(c.key, opt.offset)),
	}
}

func (c *xorCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newXorDecoderOptions(opts...)
	return &xorDecoder{
		r:   r,
		rnd: xxrand.NewReader(xxrand.NewString(c.key, opt.offset)),
	}
}

// NewCrypt create a new Crypt
func NewCrypt(key string) crypt.Crypt {
	return &xorCrypt{
		key: key,
	}
}

type xorEncoder struct {
	w   io.Writer
	rnd io.Reader
	buf []byte
}

func (e *xorEncoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}

	e.rnd.Read(e.buf)
	for i, b := range p {
		e.buf[i] ^= b
	}

	return e.w.Write(e.buf)
}

type xorDecoder struct {
	r   io.Reader
	rnd io.Reader
	buf []byte
}

func (d *xorDecoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n == 0 {
		return n, err
	}
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	} else {
		d.buf = d.buf[:n]
	}

	d.rnd.Read(d.buf)
	for i, b := range d.buf {
		p[i] ^= b
	}

	return n, err
}
