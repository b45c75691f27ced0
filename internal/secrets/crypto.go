package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/gistenv/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// EncryptedPrefix marks a value as an encrypted token.
	EncryptedPrefix = "ENC:"

	// MinKeyLength is the shortest key accepted as usable.
	MinKeyLength = 16

	saltSize   = 64
	nonceSize  = 12 // standard GCM nonce size
	tagSize    = 16
	keySize    = 32 // AES-256
	iterations = 100000

	headerSize = saltSize + nonceSize + tagSize
)

// Codec encrypts and decrypts single values with a configured key.
type Codec struct {
	key string
}

// NewCodec returns a Codec for the given key material. An empty or short key
// yields a Codec that reports itself unavailable.
func NewCodec(key string) Codec {
	return Codec{key: key}
}

// Available reports whether the configured key is long enough to be used.
func (c Codec) Available() bool {
	return IsKeyUsable(c.key)
}

// Encrypt encrypts plaintext with the configured key.
func (c Codec) Encrypt(plaintext string) (string, error) {
	return EncryptValue(plaintext, c.key)
}

// Decrypt decrypts token with the configured key.
func (c Codec) Decrypt(token string) (string, error) {
	return DecryptValue(token, c.key)
}

// IsKeyUsable reports whether key has at least MinKeyLength characters.
func IsKeyUsable(key string) bool {
	return utf8.RuneCountInString(key) >= MinKeyLength
}

// IsEncrypted reports whether value carries the encrypted-value prefix.
func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, EncryptedPrefix)
}

// EncryptValue encrypts plaintext with AES-256-GCM under a key derived from
// key and a fresh salt. The result is EncryptedPrefix followed by
// base64(salt || nonce || tag || ciphertext). Empty input returns empty output.
func EncryptValue(plaintext, key string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: generating salt: %v", kerrors.ErrEncryptFailed, err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generating nonce: %v", kerrors.ErrEncryptFailed, err)
	}

	gcm, err := newGCM(deriveKey(key, salt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}

	// Seal appends the tag after the ciphertext; the token stores it first.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	combined := make([]byte, 0, headerSize+len(ciphertext))
	combined = append(combined, salt...)
	combined = append(combined, nonce...)
	combined = append(combined, tag...)
	combined = append(combined, ciphertext...)

	return EncryptedPrefix + base64.StdEncoding.EncodeToString(combined), nil
}

// DecryptValue reverses EncryptValue. Values without EncryptedPrefix are
// returned unchanged. Any failure is reported as a *errors.DecryptionError.
func DecryptValue(token, key string) (string, error) {
	if !IsEncrypted(token) {
		return token, nil
	}

	combined, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(token, EncryptedPrefix))
	if err != nil {
		return "", &kerrors.DecryptionError{Err: fmt.Errorf("decoding base64: %w", err)}
	}

	if len(combined) < headerSize {
		return "", &kerrors.DecryptionError{
			Err: fmt.Errorf("token too short: got %d bytes, need at least %d", len(combined), headerSize),
		}
	}

	salt := combined[:saltSize]
	nonce := combined[saltSize : saltSize+nonceSize]
	tag := combined[saltSize+nonceSize : headerSize]
	ciphertext := combined[headerSize:]

	gcm, err := newGCM(deriveKey(key, salt))
	if err != nil {
		return "", &kerrors.DecryptionError{Err: err}
	}

	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", &kerrors.DecryptionError{Err: fmt.Errorf("wrong key or corrupted data: %w", err)}
	}

	return string(plaintext), nil
}

func deriveKey(key string, salt []byte) []byte {
	return pbkdf2.Key([]byte(key), salt, iterations, keySize, sha512.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating aes block cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating gcm cipher: %w", err)
	}
	return gcm, nil
}
