package service

import (
	"context"

	"github.com/korzh/servicedesk/internal/logging"
	"github.com/korzh/servicedesk/internal/tokens"
)

// credentials is the static login table, fixed for the process lifetime.
// Changing it means redeploying; there is no runtime mutation path.
var credentials = map[string]string{
	"admin":    "p@ssw0rd",
	"operator": "op3rat0r",
}

type AuthService struct {
	Tokens *tokens.TokenService
}

type LoginResult struct {
	Token    string
	Username string
}

// Login checks the submitted credentials against the static table and, on
// success, issues a token. Unknown username and wrong password produce the
// same error so the caller cannot tell which one was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		l.Warn("login_failed", "reason", "missing credentials")
		return nil, ErrValidation
	}

	stored, ok := credentials[username]
	if !ok || stored != password {
		l.Warn("login_failed", "reason", "invalid username or password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(username)
	if err != nil {
		l.Error("login_failed", "reason", "cannot issue token", "error", err)
		return nil, err
	}

	l.Info("login_successful")
	return &LoginResult{Token: token, Username: username}, nil
}
