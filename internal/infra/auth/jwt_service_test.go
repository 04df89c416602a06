package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkup/config"
	"linkup/internal/errors"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.AccessTokenTTL())
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	svc.accessTTL = -time.Minute

	token, err := svc.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenExpired))
	assert.False(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)

	verifierCfg := &config.Config{}
	verifierCfg.SecretKey.Access = "a-different-secret"
	verifier, err := NewJWTService(verifierCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTService_VerifyTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}
