package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidPickerToken = errors.New("invalid picker token")

func (handler *Handler) issuePickerToken(pickerID string) (string, error) {
	now := handler.now()
	claims := pickerTokenClaims{
		Purpose: pickerTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   pickerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.signingKey)
}

// parsePickerToken returns the picker id the token was issued for.
func (handler *Handler) parsePickerToken(raw string) (string, error) {
	tokenValue := strings.TrimSpace(raw)
	if tokenValue == "" {
		return "", errInvalidPickerToken
	}

	claims := &pickerTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.signingKey, nil
	}, jwt.WithTimeFunc(handler.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errInvalidPickerToken
	}
	if claims.Purpose != pickerTokenPurpose || strings.TrimSpace(claims.Subject) == "" {
		return "", errInvalidPickerToken
	}
	return claims.Subject, nil
}
