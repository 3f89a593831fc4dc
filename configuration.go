package thumbor

import (
	"strings"

	"github.com/cshum/thumbor/thumborpath"
)

type part struct {
	kind  thumborpath.Kind
	token string
}

// Configuration immutable state of a thumbor URL.
// Every transition returns a new Configuration, the receiver is left untouched
type Configuration struct {
	serverURL   string
	imagePath   string
	securityKey string
	parts       []part
	filters     []string
}

// NewConfiguration creates Configuration for server URL with empty image path and no security key
func NewConfiguration(serverURL string) Configuration {
	return Configuration{serverURL: serverURL}
}

// ServerURL thumbor server URL
func (c Configuration) ServerURL() string {
	return c.serverURL
}

// ImagePath source image path
func (c Configuration) ImagePath() string {
	return c.imagePath
}

// SecurityKey security key, empty if URLs are unsafe
func (c Configuration) SecurityKey() string {
	return c.securityKey
}

// Parts structural tokens in order
func (c Configuration) Parts() []string {
	tokens := make([]string, 0, len(c.parts))
	for _, p := range c.parts {
		tokens = append(tokens, p.token)
	}
	return tokens
}

// Filters filter tokens in order
func (c Configuration) Filters() []string {
	return append([]string(nil), c.filters...)
}

// Operation operation path segment of the configuration
func (c Configuration) Operation() string {
	return thumborpath.Encode(c.Parts(), c.filters)
}

// WithImagePath strips a single leading slash
func (c Configuration) WithImagePath(path string) Configuration {
	c.imagePath = strings.TrimPrefix(path, "/")
	return c
}

func (c Configuration) WithSecurityKey(key string) Configuration {
	c.securityKey = key
	return c
}

// WithPart appends the token, or replaces the active one for Geometry
func (c Configuration) WithPart(kind thumborpath.Kind, token string) Configuration {
	p := part{kind: kind, token: token}
	if kind == thumborpath.Geometry {
		for i, existing := range c.parts {
			if existing.kind == thumborpath.Geometry {
				parts := make([]part, len(c.parts))
				copy(parts, c.parts)
				parts[i] = p
				c.parts = parts
				return c
			}
		}
	}
	// capped slice forces append to copy rather than write into a shared array
	c.parts = append(c.parts[:len(c.parts):len(c.parts)], p)
	return c
}

// WithFilter appends the token unless already present
func (c Configuration) WithFilter(token string) Configuration {
	for _, f := range c.filters {
		if f == token {
			return c
		}
	}
	c.filters = append(c.filters[:len(c.filters):len(c.filters)], token)
	return c
}
