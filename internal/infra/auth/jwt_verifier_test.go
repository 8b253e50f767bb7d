package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTVerifier_IssueAndVerify(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token, err := IssueToken(testSecret, "user-1", "ana@example.com", time.Now(), time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := verifier.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)
}

func TestJWTVerifier_RejectsInvalidTokens(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	expired, err := IssueToken(testSecret, "user-1", "", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	wrongSecret, err := IssueToken("another_secret", "user-1", "", time.Now(), time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "clearly-not-a-jwt-token-format"},
		{"expired", expired},
		{"wrong secret", wrongSecret},
		{"missing subject", noSubject},
		{"missing expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.VerifyIDToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
			assert.Nil(t, identity)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("")
	assert.Error(t, err)
}

func TestNewIdentityVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Auth: &config.AuthConfig{Provider: config.AuthProviderJWT}}
	cfg.SecretKey.Access = testSecret

	verifier, err := NewIdentityVerifier(Params{Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.NotNil(t, verifier)

	_, err = NewIdentityVerifier(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Auth: &config.AuthConfig{Provider: config.AuthProviderFirebase}},
		Logger: logger,
	})
	assert.Error(t, err)

	_, err = NewIdentityVerifier(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Auth: &config.AuthConfig{Provider: "ldap"}},
		Logger: logger,
	})
	assert.Error(t, err)
}
