// Package secrets provides the value-level encryption used by gistenv.
//
// Individual values in an env document can be replaced by an encrypted
// token. Keys, comments, and section headers are never encrypted, so an
// encrypted document keeps its structure and stays diffable.
//
// # Token Format
//
//	ENC:<base64(salt || nonce || tag || ciphertext)>
//
//   - salt: 64 random bytes, fresh per value
//   - nonce: 12 random bytes, fresh per value
//   - tag: 16-byte GCM authentication tag
//
// The AES-256 key is derived from the configured passphrase and the salt
// with PBKDF2-HMAC-SHA512 at 100,000 iterations. Because salt and nonce are
// fresh on every call, encrypting the same value twice produces different
// tokens (non-deterministic encryption).
//
// # Compatibility
//
// DecryptValue returns values without the ENC: prefix unchanged, so
// documents can mix plaintext and encrypted values.
//
// # Key Availability
//
// A key shorter than 16 characters is treated as not configured. Callers
// check Codec.Available before bulk operations.
package secrets
