package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, checkPassword(hash, "s3cret"))
	assert.False(t, checkPassword(hash, "wrong"))
	assert.False(t, checkPassword("not-a-hash", "s3cret"))
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService(nil, Config{Secret: "test-secret"})

	token, err := signToken("test-secret", time.Hour, 42, "active")
	assert.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "active", claims.MembershipStatus)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc := NewService(nil, Config{Secret: "test-secret"})

	token, err := signToken("other-secret", time.Hour, 42, "active")
	assert.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := NewService(nil, Config{Secret: "test-secret"})

	token, err := signToken("test-secret", -time.Minute, 42, "active")
	assert.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := NewService(nil, Config{Secret: "test-secret"})

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Field validation runs before any storage access, so a nil repo is safe.
func TestSignup_MissingFields(t *testing.T) {
	svc := NewService(nil, Config{Secret: "test-secret"})

	_, err := svc.Signup(context.Background(), "", "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Signup(context.Background(), "Alice", "a@b.c", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := NewService(nil, Config{Secret: "test-secret"})

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
