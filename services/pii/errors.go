package pii

import "fmt"

// CryptoError covers missing key material, derivation failures and tag
// verification failures. Never recoverable, never masked.
type CryptoError struct {
	Code    string
	Message string
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
