// Package credential stores passwords as salted one-way hashes and verifies
// candidates against them in constant time.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"golang.org/x/crypto/argon2"
)

type Scheme string

const (
	SchemeArgon2id Scheme = constants.HashArgon2id
	SchemeSHA256   Scheme = constants.HashSHA256
)

const DefaultSaltBytes = 32

var ErrUnknownScheme = errors.New("unknown hash scheme")

// Hasher derives H(salt ‖ password).
type Hasher interface {
	Scheme() Scheme
	Hash(salt, password []byte) []byte
}

// Argon2id is the default scheme. The zero value uses the RFC 9106 second
// recommended parameter set.
type Argon2id struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

func (a Argon2id) Scheme() Scheme { return SchemeArgon2id }

func (a Argon2id) Hash(salt, password []byte) []byte {
	a = a.withDefaults()
	return argon2.IDKey(password, salt, a.Time, a.Memory, a.Threads, a.KeyLen)
}

func (a Argon2id) withDefaults() Argon2id {
	if a.Time == 0 {
		a.Time = 1
	}
	if a.Memory == 0 {
		a.Memory = 64 * 1024
	}
	if a.Threads == 0 {
		a.Threads = 4
	}
	if a.KeyLen == 0 {
		a.KeyLen = 32
	}
	return a
}

// SHA256 hashes sha256(salt ‖ password) in a single pass. It exists for
// compatibility with the legacy construction and is not the default.
type SHA256 struct{}

func (SHA256) Scheme() Scheme { return SchemeSHA256 }

func (SHA256) Hash(salt, password []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write(password)
	return h.Sum(nil)
}

// NewHasher maps a configured scheme name to its Hasher.
func NewHasher(scheme string, params Argon2id) (Hasher, error) {
	switch Scheme(scheme) {
	case SchemeArgon2id, "":
		return params.withDefaults(), nil
	case SchemeSHA256:
		return SHA256{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Credential never holds the raw password. The Hasher is kept so that
// verification uses the same scheme and parameters the hash was made with.
type Credential struct {
	hasher Hasher
	salt   []byte
	hash   []byte
}

// New hashes password under a freshly generated salt of saltBytes bytes.
func New(password string, hasher Hasher, saltBytes int) (Credential, error) {
	if hasher == nil {
		hasher = Argon2id{}.withDefaults()
	}
	if saltBytes == 0 {
		saltBytes = DefaultSaltBytes
	}
	if saltBytes < constants.MinSaltBytes {
		return Credential{}, fmt.Errorf("salt must be at least %d bytes, got %d", constants.MinSaltBytes, saltBytes)
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	return Credential{
		hasher: hasher,
		salt:   salt,
		hash:   hasher.Hash(salt, []byte(password)),
	}, nil
}

// Verify recomputes the hash of candidate and compares it in constant time.
func Verify(c Credential, candidate string) bool {
	if c.IsZero() {
		return false
	}
	return Equal(c.hasher.Hash(c.salt, []byte(candidate)), c.hash)
}

// Equal reports whether a and b hold the same bytes without short-circuiting
// on the first differing byte.
func Equal(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

func (c Credential) IsZero() bool {
	return c.hasher == nil || len(c.hash) == 0
}

func (c Credential) Scheme() Scheme {
	if c.hasher == nil {
		return ""
	}
	return c.hasher.Scheme()
}

// Key returns a copy of the stored hash. It is the credential-derived
// material accounts are keyed with; it never leaves the bank package.
func (c Credential) Key() []byte {
	out := make([]byte, len(c.hash))
	copy(out, c.hash)
	return out
}

// Salt returns a copy of the salt.
func (c Credential) Salt() []byte {
	out := make([]byte, len(c.salt))
	copy(out, c.salt)
	return out
}
