package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenWithoutOwner is returned by Token.GetOwnerID when neither the
// cached owner id nor the subject claim is set.
var ErrTokenWithoutOwner = errors.New("token carries no owner id")

// Token is an issued or parsed session token. None of its fields are
// serialized; the wire form is SignedString in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form.
	SignedString string `json:"-"`

	// OwnerID caches the subject claim.
	OwnerID string `json:"-"`
}

// GetOwnerID returns the cached owner id, falling back to the subject claim
// of the underlying JWT.
func (t *Token) GetOwnerID() (string, error) {
	if t.OwnerID != "" {
		return t.OwnerID, nil
	}
	if t.Token == nil || t.Claims == nil {
		return "", ErrTokenWithoutOwner
	}

	sub, err := t.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.Join(ErrTokenWithoutOwner, err)
	}
	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
