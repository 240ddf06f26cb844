// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"passport/config"
	"passport/internal/domain/service"
)

// Defaults follow OWASP recommendations for argon2id.
const (
	defaultArgon2Time    = 1
	defaultArgon2Memory  = 64 * 1024
	defaultArgon2Threads = 4

	argon2KeyLen  = 32
	argon2SaltLen = 16
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id with a PHC-encoded, self-describing output.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8

	// sem caps concurrent argon2 computations. Each computation pins
	// `memory` KiB and `threads` OS threads; without the cap a burst of
	// logins could exhaust process memory.
	sem chan struct{}
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		time:    defaultArgon2Time,
		memory:  defaultArgon2Memory,
		threads: defaultArgon2Threads,
	}

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2Time > 0 {
			h.time = cfg.Auth.Argon2Time
		}
		if cfg.Auth.Argon2Memory > 0 {
			h.memory = cfg.Auth.Argon2Memory
		}
		if cfg.Auth.Argon2Threads > 0 {
			h.threads = cfg.Auth.Argon2Threads
		}
	}

	maxConcurrent := 2 * int(h.threads)
	if cfg != nil && cfg.Auth != nil && cfg.Auth.MaxConcurrentHashes > 0 {
		maxConcurrent = cfg.Auth.MaxConcurrentHashes
	}
	h.sem = make(chan struct{}, maxConcurrent)

	return h
}

// Hash derives an argon2id digest from the password with a fresh random salt.
// Passwords are opaque byte sequences; any length or encoding is accepted.
// The result encodes algorithm, version, cost parameters, salt and digest:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 digest>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	digest := h.derive([]byte(password), salt)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check recomputes the digest with the parameters and salt embedded in the
// encoded hash and compares in constant time. Wrong password, malformed
// encoding and unsupported algorithm all return false; the reasons must not
// be observable to the caller.
func (h *argon2Hasher) Check(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if memory == 0 || time == 0 || threads == 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false
	}

	stored := argon2Hasher{time: time, memory: memory, threads: threads, sem: h.sem}
	actual := stored.deriveLen([]byte(password), salt, uint32(len(expected)))

	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func (h *argon2Hasher) derive(password, salt []byte) []byte {
	return h.deriveLen(password, salt, argon2KeyLen)
}

func (h *argon2Hasher) deriveLen(password, salt []byte, keyLen uint32) []byte {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return argon2.IDKey(password, salt, h.time, h.memory, h.threads, keyLen)
}
