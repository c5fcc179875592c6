package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWT helper errors.
var (
	ErrInvalidTokenParams = errors.New("issuer, owner id, duration and sign key are required")
	ErrEmptyTokenSubject  = errors.New("token has no subject")
	ErrInvalidBearer      = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HS256 token for ownerID. The owner id becomes
// the subject claim; iat is now and exp is now+tokenDuration.
func GenerateJWTToken(issuer, ownerID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ownerID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}
	return models.Token{Token: token, SignedString: signed, OwnerID: ownerID}, nil
}

// ValidateAndParseJWTToken checks the signature, the algorithm, the issuer
// and the expiry of tokenString and returns the owner id from its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	keyFunc := func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil }

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, keyFunc,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	ownerID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("token subject: %w", err)
	}
	if ownerID == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}
	return models.Token{Token: token, SignedString: tokenString, OwnerID: ownerID}, nil
}

// ParseBearerToken returns the token part of a "Bearer <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidBearer
	}
	return parts[1], nil
}
