package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hoteladmin/config"
	"hoteladmin/infras/jwt"
	jwtMocks "hoteladmin/infras/jwt/mocks"
	otelMocks "hoteladmin/infras/otel/mocks"
	authMocks "hoteladmin/internal/domains/auth/mocks"
	"hoteladmin/permissions"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	jwt    *jwtMocks.MockJWT
	auth   *authMocks.MockAuth
	router http.Handler
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/hotels", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleUser}},
			{Path: "/v1/hotels/{id}", Method: http.MethodDelete, Permissions: []string{constant.RoleAdmin}},
		},
	}

	f := authFixture{
		jwt:  jwtMocks.NewMockJWT(ctrl),
		auth: authMocks.NewMockAuth(ctrl),
	}

	authRole := middleware.NewAuthRoleMiddleware(f.jwt, f.auth, otelMocks.NewOtel(), perms, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-User", shared.Username(r.Context()))
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		r.Post("/auth/login", echoUser)
		r.Get("/hotels", echoUser)
		r.Delete("/hotels/{id}", echoUser)
		r.Get("/reports", echoUser)
	})

	f.router = router

	return f
}

func request(router http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func userClaims(role string) *jwt.Claims {
	return &jwt.Claims{UserID: "user-1", Username: "admin", Role: role, TokenID: "tok-1", Type: jwt.AccessToken}
}

func TestAuth(t *testing.T) {
	t.Run("skipped route needs no token", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := request(f.router, http.MethodPost, "/v1/auth/login", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := request(f.router, http.MethodGet, "/v1/hotels", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

		rec := request(f.router, http.MethodGet, "/v1/hotels", bearer("expired"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Token has expired"}`, rec.Body.String())
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("valid", jwt.AccessToken).Return(userClaims(constant.RoleAdmin), nil)
		f.auth.EXPECT().IsRevoked(gomock.Any(), "tok-1").Return(true, nil)

		rec := request(f.router, http.MethodGet, "/v1/hotels", bearer("valid"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revocation lookup failure lets the request through", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("valid", jwt.AccessToken).Return(userClaims(constant.RoleAdmin), nil)
		f.auth.EXPECT().IsRevoked(gomock.Any(), "tok-1").Return(false, errors.New("redis down"))

		rec := request(f.router, http.MethodGet, "/v1/hotels", bearer("valid"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Header().Get("X-User"))
	})

	t.Run("claims without a token id", func(t *testing.T) {
		f := newAuthFixture(t)

		claims := userClaims(constant.RoleAdmin)
		claims.TokenID = ""

		f.jwt.EXPECT().ValidateToken("valid", jwt.AccessToken).Return(claims, nil)

		rec := request(f.router, http.MethodGet, "/v1/hotels", bearer("valid"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		method   string
		path     string
		wantCode int
	}{
		{name: "user may list hotels", role: constant.RoleUser, method: http.MethodGet, path: "/v1/hotels", wantCode: http.StatusOK},
		{name: "user may not delete hotels", role: constant.RoleUser, method: http.MethodDelete, path: "/v1/hotels/h-1", wantCode: http.StatusForbidden},
		{name: "admin may delete hotels", role: constant.RoleAdmin, method: http.MethodDelete, path: "/v1/hotels/h-1", wantCode: http.StatusOK},
		{name: "route missing from permissions is denied", role: constant.RoleSuperAdmin, method: http.MethodGet, path: "/v1/reports", wantCode: http.StatusForbidden},
		{name: "unknown route falls through to not found", role: constant.RoleAdmin, method: http.MethodGet, path: "/v1/nowhere", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			f.jwt.EXPECT().ValidateToken("valid", jwt.AccessToken).Return(userClaims(tt.role), nil)
			f.auth.EXPECT().IsRevoked(gomock.Any(), "tok-1").Return(false, nil)

			rec := request(f.router, tt.method, tt.path, bearer("valid"))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("internal caller skips user auth", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := request(f.router, http.MethodDelete, "/v1/hotels/h-1", map[string]string{"X-API-Key": "internal-key"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContextGuest, rec.Header().Get("X-User"))
	})

	t.Run("wrong key", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := request(f.router, http.MethodDelete, "/v1/hotels/h-1", map[string]string{"X-API-Key": "guess"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPermissionsFile(t *testing.T) {
	perms := permissions.Get()

	if assert.NotNil(t, perms) {
		assert.True(t, perms.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
		assert.Contains(t, perms.FindPermissions("/v1/hotels/", http.MethodGet).Permissions, constant.RoleUser)
		assert.NotContains(t, perms.FindPermissions("/v1/room-types/{id}", http.MethodDelete).Permissions, constant.RoleUser)
	}
}
