package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/matcha-inventory/internal/store/memstore"
)

func newService() *Service {
	s := NewService(memstore.New(), NewTokenManager("test-secret", "test", time.Hour))
	s.cost = bcrypt.MinCost
	return s
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "issuer", time.Hour)
	token, err := tm.Generate("admin")
	require.NoError(t, err)

	username, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	tm := NewTokenManager("secret", "issuer", time.Hour)
	token, err := tm.Generate("admin")
	require.NoError(t, err)

	_, err = NewTokenManager("other", "issuer", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	later := NewTokenManager("secret", "issuer", time.Hour)
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s := newService()

	user, err := s.Register(ctx, "admin", "matcha123", "admin@shop.test")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "matcha123", user.PasswordHash)

	_, err = s.Register(ctx, "admin", "other", "")
	assert.ErrorIs(t, err, ErrUserExists)

	token, logged, err := s.Login(ctx, "admin", "matcha123")
	require.NoError(t, err)
	assert.Equal(t, "admin@shop.test", logged.Email)

	resolved, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", resolved.Username)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_, err := s.Register(ctx, "admin", "matcha123", "")
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "nobody", "matcha123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = s.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = s.Register(ctx, " ", "pw", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestResolveDeletedUser(t *testing.T) {
	s := newService()
	token, err := s.tokens.Generate("ghost")
	require.NoError(t, err)

	_, err = s.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
