package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"photo-backend/internal/utils"
)

var (
	// ErrPasswordMismatch means the hash is well-formed but the password is wrong.
	ErrPasswordMismatch = errors.New("password does not match hash")
	// ErrInvalidHash means the stored hash could not be parsed. This is a
	// system error, not an authentication failure.
	ErrInvalidHash = errors.New("malformed password hash")
)

const saltLength = 16

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

func defaultParams() argonParams {
	return argonParams{
		memory:  uint32(utils.GetEnvInt("ARGON2_MEMORY_KIB", 65536)),
		time:    uint32(utils.GetEnvInt("ARGON2_TIME", 3)),
		threads: uint8(utils.GetEnvInt("ARGON2_THREADS", 4)),
		keyLen:  32,
	}
}

// HashPassword hashes a plaintext password with argon2id and a fresh random
// salt, returning the PHC-encoded string. Hashing the same password twice
// yields different strings.
func HashPassword(password string) (string, error) {
	p := defaultParams()

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// VerifyPassword re-derives the key with the parameters embedded in the
// encoded hash and compares in constant time. Returns nil on match,
// ErrPasswordMismatch on a clean mismatch, ErrInvalidHash otherwise.
func VerifyPassword(encodedHash, password string) error {
	salt, key, p, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	derived := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, derived) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

func decodeHash(encodedHash string) ([]byte, []byte, argonParams, error) {
	var p argonParams

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, p, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, p, ErrInvalidHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, nil, p, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return nil, nil, p, ErrInvalidHash
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, p, ErrInvalidHash
	}

	return salt, key, p, nil
}
