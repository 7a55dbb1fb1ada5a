// Package utils holds small shared helpers that do not belong to a
// specific animation concern.
package utils

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand"
)

// IDGenerator produces identifiers for animation instances. The choice
// of generator is made explicitly at construction time, never probed
// from the environment.
type IDGenerator interface {
	Next() string
}

// SecureIDGenerator derives random UUIDs from crypto/rand.
type SecureIDGenerator struct{}

// NewSecureIDGenerator returns the default, cryptographically strong
// generator.
func NewSecureIDGenerator() SecureIDGenerator {
	return SecureIDGenerator{}
}

// Next returns a version-4 UUID string.
func (SecureIDGenerator) Next() string {
	var b [16]byte
	// rand.Read never returns an error on supported platforms; it
	// crashes the program instead of degrading silently.
	_, _ = rand.Read(b[:])
	return formatUUID(b)
}

// PseudoIDGenerator derives UUID-shaped identifiers from math/rand.
// The IDs are NOT unpredictable; use it only where IDs are cosmetic,
// such as deterministic tests or tooling.
type PseudoIDGenerator struct {
	rng *mrand.Rand
}

// NewPseudoIDGenerator returns a non-secure generator seeded with the
// given value.
func NewPseudoIDGenerator(seed int64) *PseudoIDGenerator {
	return &PseudoIDGenerator{rng: mrand.New(mrand.NewSource(seed))}
}

// Next returns a UUID-shaped identifier.
func (g *PseudoIDGenerator) Next() string {
	var b [16]byte
	g.rng.Read(b[:])
	return formatUUID(b)
}

func formatUUID(b [16]byte) string {
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
