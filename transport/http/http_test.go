package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hoteladmin/config"
	"hoteladmin/infras/kafka"
	"hoteladmin/infras/metrics"
	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/infras/postgres"
	"hoteladmin/infras/postgres/postgrestest"
	"hoteladmin/permissions"
	"hoteladmin/shared/constant"
	"hoteladmin/transport/http/middleware"
	"hoteladmin/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func newServer(t *testing.T, db *postgres.Connection) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment

	ot := otelMocks.NewOtel()
	m := metrics.New(cfg)

	authRole := middleware.NewAuthRoleMiddleware(nil, nil, ot, permissions.Get(), cfg)

	return New(
		cfg,
		router.New(router.DomainHandlers{}, authRole),
		middleware.NewAppMiddleware(ot, cfg, nil, m),
		db,
		m,
		kafka.NewNoop(),
		ot,
	)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHealthCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		server := newServer(t, postgrestest.NewSQLite(t))

		rec := get(server, "/healthz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ServerStateReady, server.State())
	})

	t.Run("grace period", func(t *testing.T) {
		server := newServer(t, postgrestest.NewSQLite(t))
		server.setup()
		server.state.Store(int32(ServerStateInGracePeriod))

		rec := get(server, "/healthz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
	})

	t.Run("database unreachable", func(t *testing.T) {
		db := postgrestest.NewSQLite(t)
		db.Close()

		rec := get(newServer(t, db), "/healthz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), constant.ResponseErrorUnhealthy)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	server := newServer(t, postgrestest.NewSQLite(t))

	get(server, "/healthz")
	rec := get(server, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `route="/healthz"`))
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	server := newServer(t, postgrestest.NewSQLite(t))

	rec := get(server, "/v1/hotels")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
