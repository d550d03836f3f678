//go:build integration

package service_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"hoteladmin/helper"
	"hoteladmin/infras/postgres"
	"hoteladmin/internal/domains/rateadjustment/resolver"
	"hoteladmin/shared/date"
	"hoteladmin/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	pgUser     = "hoteladmin"
	pgPassword = "secret"
	pgDatabase = "hoteladmin"
)

// newPostgres starts a disposable Postgres container and applies the
// embedded migrations to it.
func newPostgres(t *testing.T) *postgres.Connection {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest pool")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run postgres")

	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgUser, pgPassword),
		Host:     fmt.Sprintf("127.0.0.1:%s", resource.GetPort("5432/tcp")),
		Path:     pgDatabase,
		RawQuery: "sslmode=disable",
	}

	var db *sqlx.DB

	pool.MaxWait = time.Minute

	err = pool.Retry(func() error {
		var openErr error

		db, openErr = sqlx.Open("postgres", dsn.String())
		if openErr != nil {
			return openErr
		}

		return db.Ping()
	})
	require.NoError(t, err, "connect postgres")

	require.NoError(t, helper.RunnerWithURL(dsn.String(), helper.ActionUp))

	conn := postgres.NewFromDB(db)
	t.Cleanup(conn.Close)

	return conn
}

func TestTimeline_Postgres(t *testing.T) {
	f := newFixtureOn(t, newPostgres(t))

	plaza := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, plaza.ID, "Deluxe Room", 150)

	f.add(t, deluxe.ID, "20", date.New(2024, 12, 24))
	f.add(t, deluxe.ID, "-10", date.New(2024, 12, 20))

	roomType, adjustments, err := f.timeline.Timeline(context.Background(), deluxe.ID)
	require.NoError(t, err)

	tests := []struct {
		on   date.Date
		want string
	}{
		{on: date.New(2024, 12, 25), want: "170.00"},
		{on: date.New(2024, 12, 21), want: "140.00"},
		{on: date.New(2024, 12, 10), want: "150.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolver.Resolve(roomType.BaseRate, adjustments, tt.on).StringFixed(2), tt.on.String())
	}

	f.publisher.EXPECT().HotelDeleted(gomock.Any(), gomock.Any())

	require.NoError(t, f.timeline.DeleteHotel(adminContext(), plaza.ID))

	_, err = f.timeline.ListHistory(context.Background(), deluxe.ID)
	assert.True(t, failure.IsNotFound(err))

	_, err = f.timeline.AddAdjustment(adminContext(), deluxe.ID, roomType.BaseRate, date.New(2025, 1, 1), "")
	assert.True(t, failure.IsNotFound(err))
}
