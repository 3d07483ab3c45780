package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers expired, malformed and badly signed tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the token payload the frontend and the order routes rely on.
type Claims struct {
	UserID           int    `json:"id"`
	MembershipStatus string `json:"membership_status"`
	jwt.RegisteredClaims
}

func signToken(secret string, ttl time.Duration, userID int, membershipStatus string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:           userID,
		MembershipStatus: membershipStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken parses and validates a bearer token and returns its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
