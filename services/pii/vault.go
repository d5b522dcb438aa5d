package pii

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF info labels keep the encryption key and the index key in separate
// domains even if the same raw secret were configured for both.
const (
	encKeyInfo   = "gasthaus/reservation-enc"
	indexKeyInfo = "gasthaus/reservation-index"
)

// Vault performs authenticated encryption of reservation PII and keyed
// hashing of searchable fields. Key material is loaded once at startup and
// never logged.
type Vault struct {
	aead    cipher.AEAD
	hmacKey []byte
}

// NewVault derives the working keys from the configured master key and index
// secret. Both inputs must be at least 32 bytes.
func NewVault(masterKey, indexSecret []byte) (*Vault, error) {
	if len(masterKey) < 32 {
		return nil, &CryptoError{Code: "weakKey", Message: "master key shorter than 32 bytes"}
	}
	if len(indexSecret) < 32 {
		return nil, &CryptoError{Code: "weakKey", Message: "index secret shorter than 32 bytes"}
	}

	encKey := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, []byte(encKeyInfo)), encKey); err != nil {
		return nil, &CryptoError{Code: "keyDerivation", Message: fmt.Sprintf("failed to derive encryption key: %v", err)}
	}
	hmacKey := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, indexSecret, nil, []byte(indexKeyInfo)), hmacKey); err != nil {
		return nil, &CryptoError{Code: "keyDerivation", Message: fmt.Sprintf("failed to derive index key: %v", err)}
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, &CryptoError{Code: "cipherInit", Message: fmt.Sprintf("failed to create AES cipher: %v", err)}
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, &CryptoError{Code: "cipherInit", Message: fmt.Sprintf("failed to create GCM: %v", err)}
	}

	return &Vault{aead: gcm, hmacKey: hmacKey}, nil
}

// Encrypt marshals record to JSON and seals it with a fresh random nonce.
// The blob layout is nonce | authTag | ciphertext, base64-encoded.
func (v *Vault) Encrypt(record interface{}) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", &CryptoError{Code: "encode", Message: fmt.Sprintf("failed to marshal record: %v", err)}
	}

	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", &CryptoError{Code: "nonce", Message: fmt.Sprintf("failed to generate nonce: %v", err)}
	}

	sealed := v.aead.Seal(nil, nonce, plaintext, nil)
	tagAt := len(sealed) - v.aead.Overhead()

	blob := make([]byte, 0, len(nonce)+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, sealed[tagAt:]...)
	blob = append(blob, sealed[:tagAt]...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt into out. Any tampering with the blob fails the
// tag verification and surfaces as a CryptoError, never as garbage output.
func (v *Vault) Decrypt(blob string, out interface{}) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return &CryptoError{Code: "decode", Message: "blob is not valid base64"}
	}

	nonceLen := v.aead.NonceSize()
	tagLen := v.aead.Overhead()
	if len(raw) < nonceLen+tagLen {
		return &CryptoError{Code: "decode", Message: "blob too short"}
	}
	nonce := raw[:nonceLen]
	tag := raw[nonceLen : nonceLen+tagLen]
	ciphertext := raw[nonceLen+tagLen:]

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return &CryptoError{Code: "authFailure", Message: "ciphertext authentication failed"}
	}
	if err := json.Unmarshal(plaintext, out); err != nil {
		return &CryptoError{Code: "decode", Message: fmt.Sprintf("failed to unmarshal record: %v", err)}
	}
	return nil
}

// HashValue produces a stable keyed hash of value for equality lookup
// without storing the plaintext outside the encrypted blob.
func (v *Vault) HashValue(value string) string {
	mac := hmac.New(sha256.New, v.hmacKey)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

// DateIndex returns the plaintext date index for range queries. Dates are
// operational data, not PII, so they are indexed as-is.
func DateIndex(date string) string {
	return date
}
