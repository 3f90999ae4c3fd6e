package service

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// minSigningKeyBytes is the minimum key strength HS256 signing requires.
const minSigningKeyBytes = 32

// ResolveSigningKey turns the configured secret into HMAC key material.
// The secret is interpreted as standard base64 first, URL-safe base64 second,
// and raw UTF-8 bytes last; each stage is a fallback only on decode failure.
// Keys shorter than 32 bytes are stretched by repeating the original bytes
// cyclically. That keeps deployments with short secrets functional, it is not
// a substitute for a properly generated secret.
func ResolveSigningKey(secret string) ([]byte, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("%w: signing secret must be configured", ErrMisconfigured)
	}

	var key []byte
	if decoded, err := base64.StdEncoding.DecodeString(secret); err == nil {
		key = decoded
	} else if decoded, err := base64.URLEncoding.DecodeString(secret); err == nil {
		key = decoded
	} else {
		key = []byte(secret)
	}
	if len(key) == 0 {
		key = []byte(secret)
	}

	if len(key) >= minSigningKeyBytes {
		return key, nil
	}

	stretched := make([]byte, minSigningKeyBytes)
	copy(stretched, key)
	for i := len(key); i < minSigningKeyBytes; i++ {
		stretched[i] = key[i%len(key)]
	}
	return stretched, nil
}
