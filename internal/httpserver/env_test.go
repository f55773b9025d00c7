package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/korzh/servicedesk/internal/middleware"
	"github.com/korzh/servicedesk/internal/models"
	"github.com/korzh/servicedesk/internal/repo"
	"github.com/korzh/servicedesk/internal/service"
	"github.com/korzh/servicedesk/internal/tokens"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	R      *RequestHTTP
	A      *AuthHTTP
	DB     *gorm.DB
	Tokens *tokens.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.ServiceRequest{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	tokenSvc := tokens.NewTokenService([]byte("test-jwt-secret"), "servicedesk", "servicedesk-clients")
	requestSvc := &service.RequestService{Repo: &repo.GormRepo{DB: db}}
	authSvc := &service.AuthService{Tokens: tokenSvc}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		R:      &RequestHTTP{Svc: requestSvc},
		A:      &AuthHTTP{Svc: authSvc},
		DB:     db,
		Tokens: tokenSvc,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// newRouter wires the full echo router with auth middleware, for tests that
// exercise the surface end to end rather than a single handler.
func (env *testEnv) newRouter() *echo.Echo {
	e := echo.New()
	Register(e, &Deps{
		AuthHandler:    env.A,
		RequestHandler: env.R,
		Auth:           middleware.NewBearerAuth(env.Tokens),
	})
	return e
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}
