package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const derivedKeySalt = "rangepicker.v1"

// DeriveKey expands the process secret into a 32-byte HKDF-SHA256 key bound to purpose.
func DeriveKey(secret []byte, purpose string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("secret key is required")
	}
	trimmedPurpose := strings.TrimSpace(purpose)
	if trimmedPurpose == "" {
		return nil, errors.New("key purpose is required")
	}

	reader := hkdf.New(sha256.New, secret, []byte(derivedKeySalt), []byte(trimmedPurpose))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", trimmedPurpose, err)
	}
	return key, nil
}
