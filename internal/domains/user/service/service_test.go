package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hoteladmin/config"
	otelMocks "hoteladmin/infras/otel/mocks"
	userMocks "hoteladmin/internal/domains/user/mocks"
	"hoteladmin/internal/domains/user/model"
	"hoteladmin/internal/domains/user/model/dto"
	"hoteladmin/internal/domains/user/service"
	"hoteladmin/shared/cache"
	cacheMocks "hoteladmin/shared/cache/mocks"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/password"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	callerID = "2f1e4c7a-0b5d-4a9e-8c3f-6d7e8f9a0b1c"
	otherID  = "7c6b5a49-3827-4160-9f8e-7d6c5b4a3928"
)

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func superadminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")

	return context.WithValue(ctx, constant.ContextKeyUserID, callerID)
}

func TestUser_Create(t *testing.T) {
	t.Run("defaults to the user role", func(t *testing.T) {
		f := newFixture(t)

		var stored model.User

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, user model.User) { stored = user }).
			Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyUserCount).Return(nil)

		res, err := f.svc.Create(superadminContext(), dto.CreateUserRequest{Username: "frontdesk", Password: "password123"})
		require.NoError(t, err)

		assert.Equal(t, stored.ID, res.ID)
		assert.Equal(t, constant.RoleUser, res.Level)
		assert.True(t, res.Active)
		assert.Equal(t, "admin", stored.CreatedBy)
		assert.NoError(t, password.Verify("password123", stored.Password))
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(superadminContext(), dto.CreateUserRequest{Username: "admin", Password: "password123"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("concurrent insert of the same username", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := f.svc.Create(superadminContext(), dto.CreateUserRequest{Username: "frontdesk", Password: "password123"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUser_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 1}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Count(gomock.Any(), filter).Return(2, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), 2, 60).Return(errors.New("redis down"))
	f.repo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.User{{ID: otherID, Username: "frontdesk", Level: constant.RoleUser}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, filter)
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "frontdesk", res.Users[0].Username)
}

func TestUser_Get_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

	_, err := f.svc.Get(context.Background(), otherID)

	assert.Equal(t, "user not found", err.Error())
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestUser_Update(t *testing.T) {
	deactivate := false
	promote := constant.RoleAdmin

	tests := []struct {
		name     string
		id       string
		req      dto.UpdateUserRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name:     "empty request",
			id:       otherID,
			req:      dto.UpdateUserRequest{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "own account",
			id:       callerID,
			req:      dto.UpdateUserRequest{Active: &deactivate},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			id:   otherID,
			req:  dto.UpdateUserRequest{Level: &promote},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "deactivate",
			id:   otherID,
			req:  dto.UpdateUserRequest{Active: &deactivate},
			setup: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[model.FieldActive])
						assert.NotContains(t, fields, model.FieldLevel)
						assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyUserCount).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: otherID, Username: "frontdesk", Level: constant.RoleUser}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.svc.Update(superadminContext(), tt.req, tt.id)

			if tt.wantCode == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, otherID, res.ID)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestUser_Delete(t *testing.T) {
	t.Run("removes the account", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyUserCount).Return(nil)

		assert.NoError(t, f.svc.Delete(superadminContext(), otherID))
	})

	t.Run("own account", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Delete(superadminContext(), callerID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(superadminContext(), otherID)

		assert.True(t, failure.IsNotFound(err))
	})
}
