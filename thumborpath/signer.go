package thumborpath

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"hash"
)

// Unsafe signature placeholder used when no security key is configured
const Unsafe = "unsafe"

// Signer thumbor URL signature signer
type Signer interface {
	Sign(operation, image string) string
}

// NewDefaultSigner default signer using SHA1 with security key
func NewDefaultSigner(key string) Signer {
	return NewHMACSigner(sha1.New, 0, key)
}

// NewHMACSigner custom HMAC alg signer with security key and string length based truncate
func NewHMACSigner(alg func() hash.Hash, truncate int, key string) *HMACSigner {
	return &HMACSigner{
		alg:      alg,
		truncate: truncate,
		key:      []byte(key),
	}
}

// HMACSigner signs operation and image path with HMAC
type HMACSigner struct {
	alg      func() hash.Hash
	truncate int
	key      []byte
}

// Sign implements Signer.
// operation and image are concatenated without separator
func (s *HMACSigner) Sign(operation, image string) string {
	h := hmac.New(s.alg, s.key)
	h.Write([]byte(operation + image))
	sig := SanitizeBase64(base64.StdEncoding.EncodeToString(h.Sum(nil)))
	if s.truncate > 0 && len(sig) > s.truncate {
		return sig[:s.truncate]
	}
	return sig
}

// Sign returns the signature of operation and image, or Unsafe if signer is nil
func Sign(signer Signer, operation, image string) string {
	if signer == nil {
		return Unsafe
	}
	return signer.Sign(operation, image)
}
