package thumbor

import (
	"hash"

	"github.com/cshum/thumbor/thumborpath"
	"go.uber.org/zap"
)

// Option Builder option
type Option func(b *Builder)

// WithSecurityKey signs URLs with HMAC of the key
func WithSecurityKey(key string) Option {
	return func(b *Builder) {
		b.config = b.config.WithSecurityKey(key)
	}
}

// WithImagePath sets the source image path
func WithImagePath(path string) Option {
	return func(b *Builder) {
		b.config = b.config.WithImagePath(path)
	}
}

// WithCatalog replaces the operation catalog
func WithCatalog(catalog thumborpath.Catalog) Option {
	return func(b *Builder) {
		if catalog != nil {
			b.catalog = catalog
		}
	}
}

// WithLogger with logger option
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithHashAlg HMAC hash algorithm for signing, sha1 by default
func WithHashAlg(alg func() hash.Hash) Option {
	return func(b *Builder) {
		if alg != nil {
			b.alg = alg
		}
	}
}

// WithSignerTruncate truncates signatures at length
func WithSignerTruncate(truncate int) Option {
	return func(b *Builder) {
		if truncate > 0 {
			b.truncate = truncate
		}
	}
}
