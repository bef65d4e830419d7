package service

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type accessTokenClaims struct {
	jwt.RegisteredClaims
}

// AuthEnabled reports whether bearer tokens are required.
func (s *Service) AuthEnabled() bool {
	return len(s.jwtSigningKey) > 0
}

// ValidateAccessToken accepts HS256 tokens signed with the configured key,
// issued by the configured issuer and carrying a subject.
func (s *Service) ValidateAccessToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return unauthorizedError("invalid token")
	}
	if len(s.jwtSigningKey) == 0 {
		return fmt.Errorf("jwt signing key is not configured")
	}

	claims := &accessTokenClaims{}
	parsedToken, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, unauthorizedError("invalid token")
			}
			return s.jwtSigningKey, nil
		},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsedToken.Valid {
		return unauthorizedError("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return unauthorizedError("invalid token")
	}

	return nil
}
