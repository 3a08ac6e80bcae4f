package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 4096
	hashKeyLen     = 32
)

// Hasher derives a deterministic one-way digest from a plaintext password
// and the server-held secret. The same plaintext always yields the same
// digest, so verification is rehash-and-compare. There is no per-user
// salt; the secret is the only key material.
type Hasher struct {
	secret []byte
}

func NewHasher(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

func (h *Hasher) Hash(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), h.secret, hashIterations, hashKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

func (h *Hasher) Verify(plaintext, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(plaintext)), []byte(digest)) == 1
}
