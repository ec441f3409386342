package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peladahub/api-server/internals/auth"
	"github.com/peladahub/api-server/pkg/kvstore"
)

func newService(t *testing.T, ttl time.Duration) *auth.Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo-do-grupo"), bcrypt.DefaultCost)
	require.NoError(t, err)
	return auth.New(kvstore.NewMemory(), string(hash), "test-signing-secret", ttl)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newService(t, time.Hour)

	_, err := svc.Login("chute-errado")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login("")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newService(t, time.Hour)

	token, err := svc.Login("segredo-do-grupo")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NoError(t, svc.ValidateToken(token))
}

func TestRevokedTokenRejected(t *testing.T) {
	svc := newService(t, time.Hour)

	token, err := svc.Login("segredo-do-grupo")
	require.NoError(t, err)
	require.NoError(t, svc.RevokeToken(token))
	require.ErrorIs(t, svc.ValidateToken(token), auth.ErrInvalidToken)
}

func TestRevokeOnlyAffectsOneSession(t *testing.T) {
	svc := newService(t, time.Hour)

	first, err := svc.Login("segredo-do-grupo")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // distinct exp claim, distinct token
	second, err := svc.Login("segredo-do-grupo")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(first))
	require.ErrorIs(t, svc.ValidateToken(first), auth.ErrInvalidToken)
	require.NoError(t, svc.ValidateToken(second))
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newService(t, -time.Minute)

	token, err := svc.Login("segredo-do-grupo")
	require.NoError(t, err)
	require.ErrorIs(t, svc.ValidateToken(token), auth.ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newService(t, time.Hour)

	token, err := svc.Login("segredo-do-grupo")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	require.ErrorIs(t, svc.ValidateToken(tampered), auth.ErrInvalidToken)

	// Signed with a different secret entirely.
	other := auth.New(kvstore.NewMemory(), "", "another-secret", time.Hour)
	foreign, err := other.GenerateToken()
	require.NoError(t, err)
	require.ErrorIs(t, svc.ValidateToken(foreign), auth.ErrInvalidToken)
}
