package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korzh/servicedesk/internal/tokens"
)

func newTestAuthService() *AuthService {
	return &AuthService{
		Tokens: tokens.NewTokenService([]byte("test-jwt-secret"), "servicedesk", "servicedesk-clients"),
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "admin", password: ""},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.Login(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login_BadCredentialsDoNotLeakWhichFieldWasWrong(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()
	ctx := context.Background()

	_, wrongPassErr := svc.Login(ctx, "admin", "not-the-password")
	require.Error(t, wrongPassErr)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)

	_, unknownUserErr := svc.Login(ctx, "nobody", "not-the-password")
	require.Error(t, unknownUserErr)
	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)

	assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
}

func TestAuthService_Login_CaseSensitivePassword(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()

	res, err := svc.Login(context.Background(), "admin", "P@SSW0RD")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService()

	res, err := svc.Login(context.Background(), "admin", "p@ssw0rd")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "admin", res.Username)
	require.NotEmpty(t, res.Token)

	claims, err := svc.Tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Name)
	assert.Equal(t, "admin", claims.Subject)
}
