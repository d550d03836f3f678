package middleware

import (
	"context"
	"errors"
	"net/http"

	"hoteladmin/config"
	"hoteladmin/infras/jwt"
	"hoteladmin/infras/otel"
	authService "hoteladmin/internal/domains/auth/service"
	"hoteladmin/permissions"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/failure"
	"hoteladmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SkipAuthKey marks a request already authenticated by the internal API key.
type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is the /v1 middleware chain: APIKey, then Auth, then RBAC.
type AuthRole interface {
	Auth
	Role
}

type authRole struct {
	jwtService  jwt.JWT
	authService authService.Auth
	otel        otel.Otel
	permission  *permissions.PermissionData
	cfg         *config.Config
}

func NewAuthRoleMiddleware(
	jwtService jwt.JWT,
	authSvc authService.Auth,
	otl otel.Otel,
	perms *permissions.PermissionData,
	cfg *config.Config,
) AuthRole {
	return &authRole{
		jwtService:  jwtService,
		authService: authSvc,
		otel:        otl,
		permission:  perms,
		cfg:         cfg,
	}
}

// routeOf resolves the chi pattern the request will be dispatched to, or ""
// when no route matches.
func routeOf(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return ""
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

// Auth resolves the bearer access token into the caller identity stored on
// the request context. Routes flagged skip in the permissions file pass
// through untouched.
func (m *authRole) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		route := routeOf(request)
		if skipped(ctx) || (m.permission != nil && m.permission.FindPermissions(route, request.Method).Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       route,
			"http.method":     request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			reject(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			reject(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Username == "" || claims.TokenID == "" {
			log.Warn().Str("user_id", claims.UserID).Msg("access token is missing identity claims")
			reject(writer, scope, failure.Unauthorized(tokenErrorMessage(jwt.ErrInvalidClaim)))

			return
		}

		// lookup errors fail open so a Redis outage does not lock admins out
		revoked, err := m.authService.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			log.Warn().Err(err).Str("token_id", claims.TokenID).Msg("failed to check token revocation")
		}

		if revoked {
			reject(writer, scope, failure.Unauthorized("Token has been revoked"))

			return
		}

		for key, value := range map[any]any{
			constant.ContextKeyUserID:   claims.UserID,
			constant.ContextKeyUsername: claims.Username,
			constant.ContextKeyUserRole: claims.Role,
			constant.ContextKeyTokenID:  claims.TokenID,
			constant.ContextKeyClaims:   claims,
		} {
			ctx = context.WithValue(ctx, key, value)
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC admits the caller when their role is listed for the matched route.
// Routes absent from the permissions file are denied, while requests chi
// cannot route at all fall through to its 404.
func (m *authRole) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if skipped(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		route := routeOf(request)
		permission := m.permission.FindPermissions(route, request.Method)

		if m.permission.Skip || permission.Skip || route == "" {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !permission.Allows(role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"route":         route,
			})
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers bypass token auth with the shared key. A
// request without the header continues as a regular client; a wrong key is
// refused outright.
func (m *authRole) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)

		switch {
		case key == "":
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, false)))
		case key != m.cfg.App.APIKey:
			scope.SetAttribute("http.source", "internal")
			reject(writer, scope, failure.ForbiddenError)
		default:
			scope.SetAttribute("http.source", "internal")
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, true)))
		}
	})
}
