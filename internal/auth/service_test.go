package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	store := repo.NewMemoryStore()
	return NewService(store.Users(), NewIssuer("secret", time.Hour), NewMemoryRefreshStore(), time.Hour)
}

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	session, err := svc.Register(ctx, "Jane@Example.com", "hunter22", "Jane")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "jane@example.com", session.User.Email)

	_, err = svc.Register(ctx, "jane@example.com", "hunter22", "Jane")
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(ctx, "jane@example.com", "hunter22")
	require.NoError(t, err)
	id, err := svc.Issuer().Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, id.UserID)

	_, err = svc.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_RegisterValidation(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name, email, password, userName string
	}{
		{"missing name", "a@b.com", "secret1", ""},
		{"bad email", "not-an-email", "secret1", "A"},
		{"short password", "a@b.com", "123", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password, tt.userName)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_RefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	session, err := svc.Register(ctx, "ops@example.com", "secret1", "Ops")
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, next.RefreshToken)

	_, err = svc.Refresh(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)

	require.NoError(t, svc.Logout(ctx, next.RefreshToken))
	_, err = svc.Refresh(ctx, next.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)
}

func TestService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.EnsureAdmin(ctx, "admin@braintree.com", "admin123", "Admin")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin@braintree.com", "admin123", "Admin")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.Login(ctx, "admin@braintree.com", "admin123")
	assert.NoError(t, err)
}

func TestMemoryRefreshStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRefreshStore()

	require.NoError(t, s.Save(ctx, "old", "a@b.com", -time.Second))
	require.NoError(t, s.Save(ctx, "fresh", "a@b.com", time.Hour))
	assert.Equal(t, 1, s.removeExpired())

	_, err := s.Consume(ctx, "old")
	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)
	email, err := s.Consume(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}
