package xor

import (
	"github.com/tutils/xxrand/crypt"
)

type xorEncoderOptions struct {
	offset int64
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	return &opt
}

// WithEncoderOffset selects the keystream chain for the key
func WithEncoderOffset(offset int64) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.offset = offset
		}
	}
}

type xorDecoderOptions struct {
	offset int64
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	return &opt
}

// WithDecoderOffset selects the keystream chain for the key
func WithDecoderOffset(offset int64) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.offset = offset
		}
	}
}
