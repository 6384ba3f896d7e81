package combolock

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// Validator decides whether a presented credential opens a lock.
//
// Seal is applied once to the credential the lock stores; Matches compares a
// candidate against that sealed form. Implementations must be deterministic
// for a given sealed value.
type Validator interface {
	Seal(credential string) (string, error)
	Matches(candidate, sealed string) bool
}

// HashFunc is a one-way transform used by [HashedEquality].
type HashFunc func(credential string) string

// PlainEquality stores the credential as given and compares bytes.
type PlainEquality struct{}

// Seal returns credential unchanged.
func (PlainEquality) Seal(credential string) (string, error) {
	return credential, nil
}

// Matches reports whether candidate equals sealed.
func (PlainEquality) Matches(candidate, sealed string) bool {
	return candidate == sealed
}

// HashedEquality stores Hash(credential) and hashes candidates at comparison
// time. A nil Hash falls back to [SHA1Hex].
type HashedEquality struct {
	Hash HashFunc
}

// NewHashedEquality returns a HashedEquality using fn.
func NewHashedEquality(fn HashFunc) HashedEquality {
	return HashedEquality{Hash: fn}
}

func (h HashedEquality) hash(credential string) string {
	if h.Hash == nil {
		return SHA1Hex(credential)
	}
	return h.Hash(credential)
}

// Seal returns the hashed credential.
func (h HashedEquality) Seal(credential string) (string, error) {
	return h.hash(credential), nil
}

// Matches reports whether the hashed candidate equals sealed.
func (h HashedEquality) Matches(candidate, sealed string) bool {
	return h.hash(candidate) == sealed
}

// SHA1Hex returns the lowercase hex SHA-1 digest of credential.
//
// The digest is unsalted and fast. It exists to reproduce the hashed lock
// behavior, not to protect real secrets; use password.Argon2 for that.
func SHA1Hex(credential string) string {
	sum := sha1.Sum([]byte(credential))
	return hex.EncodeToString(sum[:])
}

// Equivalent reports whether v accepts candidate for a lock keyed with stored.
// A stored credential that cannot be sealed never matches.
func Equivalent(v Validator, candidate, stored string) bool {
	if v == nil {
		return false
	}
	sealed, err := v.Seal(stored)
	if err != nil {
		return false
	}
	return v.Matches(candidate, sealed)
}

const (
	// ValidatorPlain names [PlainEquality].
	ValidatorPlain = "plain"
	// ValidatorSHA1 names [HashedEquality] with [SHA1Hex].
	ValidatorSHA1 = "sha1"
)

// ValidatorByName resolves one of the built-in validator names.
func ValidatorByName(name string) (Validator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ValidatorPlain:
		return PlainEquality{}, nil
	case ValidatorSHA1:
		return HashedEquality{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
}
