package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window of an issued token.
const TokenTTL = time.Hour

type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

type TokenService struct {
	Secret   []byte
	Issuer   string
	Audience string

	now func() time.Time
}

func NewTokenService(secret []byte, issuer, audience string) *TokenService {
	return &TokenService{
		Secret:   secret,
		Issuer:   issuer,
		Audience: audience,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Issue signs a token for an already-authenticated username. The username
// is carried both as the subject and as the name claim.
func (s *TokenService) Issue(username string) (string, error) {
	now := s.now()
	claims := Claims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.Issuer,
			Audience:  jwt.ClaimStrings{s.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Parse verifies signature, issuer, audience and expiry. Expiry is checked
// with no leeway.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return s.Secret, nil
	},
		jwt.WithIssuer(s.Issuer),
		jwt.WithAudience(s.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims, nil
}
