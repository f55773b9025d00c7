package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return NewTokenService([]byte("test-jwt-secret"), "servicedesk", "servicedesk-clients")
}

func TestTokenService_Issue_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	issued := time.Now().UTC()

	token, err := svc.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Name)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "servicedesk", claims.Issuer)
	assert.Contains(t, claims.Audience, "servicedesk-clients")
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, issued.Add(TokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		age     time.Duration
		wantErr bool
	}{
		{name: "59 minutes old", age: 59 * time.Minute, wantErr: false},
		{name: "61 minutes old", age: 61 * time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestTokenService()
			svc.now = func() time.Time { return time.Now().UTC().Add(-tt.age) }

			token, err := svc.Issue("admin")
			require.NoError(t, err)

			_, err = svc.Parse(token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, jwt.ErrTokenExpired)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTokenService_Parse_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	token, err := svc.Issue("admin")
	require.NoError(t, err)

	other := NewTokenService([]byte("another-secret"), svc.Issuer, svc.Audience)
	claims, err := other.Parse(token)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_Parse_RejectsWrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	token, err := svc.Issue("admin")
	require.NoError(t, err)

	badIssuer := NewTokenService(svc.Secret, "someone-else", svc.Audience)
	_, err = badIssuer.Parse(token)
	require.Error(t, err)

	badAudience := NewTokenService(svc.Secret, svc.Issuer, "other-clients")
	_, err = badAudience.Parse(token)
	require.Error(t, err)
}

func TestTokenService_Parse_RejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Name: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    svc.Issuer,
			Audience:  jwt.ClaimStrings{svc.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(raw)
	require.Error(t, err)
}
