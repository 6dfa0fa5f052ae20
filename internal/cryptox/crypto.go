// Package cryptox derives and verifies argon2id password digests and offers
// constant-time comparison helpers for credential checks.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Memory is in KiB.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

// MaxCompareSize bounds values passed to EqualStrings.
const MaxCompareSize = 128

var ErrMalformedDigest = errors.New("malformed password digest")

var b64 = base64.RawStdEncoding

// HashPassword returns an encoded argon2id digest of password in the usual
// $argon2id$v=19$m=...,t=...,p=...$salt$hash form.
func HashPassword(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)
	key := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches the encoded digest. The
// parameters embedded in the digest are honoured, so digests made with older
// settings keep verifying.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedDigest
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, ErrMalformedDigest
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedDigest
	}
	want, err := b64.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedDigest
	}

	got := argon2.IDKey(password, salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// EqualStrings compares a and b in time independent of where they differ.
// Both values are copied into fixed MaxCompareSize buffers first, so the
// length of the stored value does not leak either; values longer than
// MaxCompareSize never match.
func EqualStrings(a, b string) bool {
	if len(a) > MaxCompareSize || len(b) > MaxCompareSize {
		return false
	}
	var x, y [MaxCompareSize]byte
	copy(x[:], a)
	copy(y[:], b)
	same := subtle.ConstantTimeCompare(x[:], y[:])
	sameLen := subtle.ConstantTimeEq(int32(len(a)), int32(len(b)))
	return same&sameLen == 1
}
