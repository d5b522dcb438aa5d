package config

import "errors"

var (
	errMissingKey   = errors.New("key material is not set")
	errMalformedKey = errors.New("key material is neither valid base64 nor hex")
	errShortKey     = errors.New("key material is shorter than 32 bytes")
)
