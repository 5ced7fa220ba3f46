package utils

import (
	"fmt"

	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// ActorClaims identifies who is editing schedules. Subject carries the actor
// ID issued by the identity service.
type ActorClaims struct {
	Roles    []string `json:"roles"`
	CenterID string   `json:"center_id"`
	jwt.RegisteredClaims
}

func ParseActorToken(tokenString, secret string) (*ActorClaims, error) {
	claims := &ActorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return claims, nil
}
