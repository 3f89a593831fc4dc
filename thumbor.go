package thumbor

import (
	"crypto/sha1"
	"hash"

	"github.com/cshum/thumbor/thumborpath"
	"go.uber.org/zap"
)

// Version thumbor version
const Version = "0.3.1"

// BuildErrorString returned by String when the URL cannot be built
const BuildErrorString = "Error building url. No path set"

// Builder fluent thumbor URL builder.
// Builder is a value, every method returns a new Builder and never modifies
// state reachable from a previously returned one, so Builders derived from a
// common ancestor can be used from multiple goroutines.
type Builder struct {
	config   Configuration
	catalog  thumborpath.Catalog
	alg      func() hash.Hash
	truncate int
	logger   *zap.Logger
}

// New creates Builder for thumbor server URL
func New(serverURL string, options ...Option) Builder {
	b := Builder{
		config:  NewConfiguration(serverURL),
		catalog: thumborpath.Default,
		alg:     sha1.New,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

// Configuration current configuration
func (b Builder) Configuration() Configuration {
	return b.config
}

// Catalog operation catalog of the Builder
func (b Builder) Catalog() thumborpath.Catalog {
	return b.catalog
}

// SetPath sets path of image, a single leading slash is stripped
func (b Builder) SetPath(path string) Builder {
	b.config = b.config.WithImagePath(path)
	return b
}

// SetSecurityKey sets security key, empty key generates unsafe URLs
func (b Builder) SetSecurityKey(key string) Builder {
	b.config = b.config.WithSecurityKey(key)
	return b
}

// Apply catalog operation by name.
// Unknown names and arguments rejected by the entry guard leave the Builder unchanged
func (b Builder) Apply(name string, args ...interface{}) Builder {
	entry, ok := b.catalog.Lookup(name)
	if !ok {
		b.logger.Warn("unknown operation", zap.String("name", name))
		return b
	}
	if !entry.Accept(args...) {
		b.logger.Debug("operation ignored", zap.String("name", name), zap.Any("args", args))
		return b
	}
	token := entry.Format(args...)
	if entry.Kind == thumborpath.Filter {
		b.config = b.config.WithFilter(token)
	} else {
		b.config = b.config.WithPart(entry.Kind, token)
	}
	return b
}

// Operation operation path segment between signature and image path
func (b Builder) Operation() string {
	return b.config.Operation()
}

// Signer URL signer from the security key, nil if no key is set
func (b Builder) Signer() thumborpath.Signer {
	if b.config.securityKey == "" {
		return nil
	}
	return thumborpath.NewHMACSigner(b.alg, b.truncate, b.config.securityKey)
}

// BuildURL combines server URL, signature, operations and image path
func (b Builder) BuildURL() (string, error) {
	if b.config.imagePath == "" {
		b.logger.Error("cannot build url, set the image path with SetPath",
			zap.String("server_url", b.config.serverURL),
			zap.Error(ErrImagePathNotSet))
		return "", ErrImagePathNotSet
	}
	return thumborpath.Generate(
		b.config.serverURL, b.Operation(), b.config.imagePath, b.Signer()), nil
}

// String implements fmt.Stringer
func (b Builder) String() string {
	u, err := b.BuildURL()
	if err != nil {
		return BuildErrorString
	}
	return u
}
