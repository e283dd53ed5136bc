package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16

	// Upper bound accepted when verifying a stored hash, well above
	// anything this service ever writes.
	maxArgonMemory = 1 << 21 // 2 GiB in KiB
)

// HashPassword derives an argon2id hash with a fresh random salt and encodes
// it in the standard $argon2id$... form.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// VerifyPassword reports whether the plaintext matches the encoded hash.
// A malformed hash yields false, never an error or panic. The comparison
// is constant time.
func VerifyPassword(password, encodedHash string) bool {
	salt, key, time, memory, threads, err := decodeHash(encodedHash)
	if err != nil {
		return false
	}
	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeHash(encoded string) (salt, key []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, err
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, errors.New("unsupported argon2 version")
	}
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, err
	}

	// argon2.IDKey panics on zero rounds or parallelism, and a huge memory
	// parameter is an allocation bomb; a hostile hash string must yield
	// false, not a crash.
	if time < 1 || threads < 1 || memory > maxArgonMemory {
		return nil, nil, 0, 0, 0, errors.New("argon2 parameters out of range")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, err
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, err
	}
	if len(salt) < 8 || len(key) < 16 {
		return nil, nil, 0, 0, 0, errors.New("salt or derived key too short")
	}
	return salt, key, time, memory, threads, nil
}
