// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a fresh-salted, self-describing encoded hash from a
	// plaintext password. Passwords are opaque byte sequences; no strength
	// policy is enforced here. It fails only on catastrophic internal error.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded hash. Wrong password,
	// malformed hash and unsupported algorithm are all reported as a plain
	// false so callers cannot distinguish the failure reason.
	Check(password, encodedHash string) bool
}
