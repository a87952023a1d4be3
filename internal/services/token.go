package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 access token identifying the admin.
func IssueToken(secret []byte, a Actor, role string, exp time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(a.ID), 10),
		"name": a.Name,
		"role": role,
		"exp":  exp.Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken verifies tokenStr and returns the admin it was issued to.
func ParseToken(secret []byte, tokenStr string) (Actor, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Actor{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	return Actor{ID: uint(id), Name: name}, nil
}
