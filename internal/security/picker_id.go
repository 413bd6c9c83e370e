package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	pickerIDPrefix   = "pk_"
	pickerIDLength   = 20
	pickerIDAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"
)

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// NewPickerID returns an opaque public identifier for a picker instance.
func NewPickerID() (string, error) {
	suffix, err := randomToken(pickerIDLength, pickerIDAlphabet)
	if err != nil {
		return "", err
	}
	return pickerIDPrefix + suffix, nil
}

// IsPickerID reports whether value has the shape NewPickerID produces.
func IsPickerID(value string) bool {
	suffix, ok := strings.CutPrefix(value, pickerIDPrefix)
	if !ok || len(suffix) != pickerIDLength {
		return false
	}
	for _, symbol := range suffix {
		if !strings.ContainsRune(pickerIDAlphabet, symbol) {
			return false
		}
	}
	return true
}

// randomToken draws each symbol uniformly from alphabet using crypto/rand.
func randomToken(length int, alphabet string) (string, error) {
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	token := make([]byte, length)
	for index := range token {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		token[index] = alphabet[position.Int64()]
	}
	return string(token), nil
}
