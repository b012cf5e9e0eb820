package gxgl

import (
	"encoding/binary"
	"log/slog"

	"github.com/gogpu/gxgl/internal/texconv"
)

// DefaultMaxTextureSize is the largest texture edge the hardware samples.
const DefaultMaxTextureSize = 1024

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx, err := gxgl.NewContext(dev, disp,
//	    gxgl.WithErrorHandler(gxgl.FatalErrorHandler),
//	    gxgl.WithLogger(logger))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	strictness     Strictness
	errorHandler   ErrorHandler
	logger         *slog.Logger
	byteOrder      binary.ByteOrder
	maxTextureSize int

	textureCacheSize int
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		strictness:     StrictnessStrict,
		byteOrder:      binary.BigEndian,
		maxTextureSize: DefaultMaxTextureSize,

		textureCacheSize: texconv.DefaultCacheSize,
	}
}

// WithStrictness sets how invalid calls are treated.
func WithStrictness(s Strictness) ContextOption {
	return func(o *contextOptions) {
		o.strictness = s
	}
}

// WithErrorHandler installs a handler invoked once per failed call.
// FatalErrorHandler restores the terminate-on-error behavior of a strict
// GL driver.
func WithErrorHandler(h ErrorHandler) ContextOption {
	return func(o *contextOptions) {
		o.errorHandler = h
	}
}

// WithLogger overrides the package logger for one Context.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithByteOrder sets the byte order used to read 16-bit client index data
// and to encode IndexBytes. The default is big-endian, the order of the
// console CPU.
func WithByteOrder(order binary.ByteOrder) ContextOption {
	return func(o *contextOptions) {
		if order != nil {
			o.byteOrder = order
		}
	}
}

// WithMaxTextureSize sets the largest accepted texture edge. Values below
// one are ignored.
func WithMaxTextureSize(n int) ContextOption {
	return func(o *contextOptions) {
		if n > 0 {
			o.maxTextureSize = n
		}
	}
}

// WithTextureCacheSize sets how many converted texture images are kept for
// reuse by later uploads of the same pixels. Values below one are ignored.
func WithTextureCacheSize(n int) ContextOption {
	return func(o *contextOptions) {
		if n > 0 {
			o.textureCacheSize = n
		}
	}
}
