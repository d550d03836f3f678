package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/domains/user/mocks"
	"hoteladmin/internal/domains/user/model/dto"
	"hoteladmin/internal/handlers/user"
	"hoteladmin/shared/constant"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = "7c6b5a49-3827-4160-9f8e-7d6c5b4a3928"

func newRouter(t *testing.T) (*mocks.MockUserService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockUserService(gomock.NewController(t))
	handler := user.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.MockUserService)
		wantCode int
	}{
		{
			name: "created",
			body: `{"username":"frontdesk","password":"password123","level":"user"}`,
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateUserRequest{Username: "frontdesk", Password: "password123", Level: constant.RoleUser}).
					Return(dto.UserResponse{ID: userID, Username: "frontdesk", Level: constant.RoleUser, Active: true}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown role",
			body:     `{"username":"frontdesk","password":"password123","level":"owner"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "short password",
			body:     `{"username":"frontdesk","password":"short"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "username taken",
			body: `{"username":"admin","password":"password123"}`,
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.UserResponse{}, failure.Conflict("username already registered"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := serve(router, http.MethodPost, "/v1/users", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetUsers(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error) {
			assert.Equal(t, "username", params.SortBy)
			assert.Len(t, filter.Filters, 2)

			return dto.GetUsersResponse{Users: []dto.UserResponse{{ID: userID, Username: "frontdesk"}}, TotalData: 1, TotalPage: 1}, nil
		})

	rec := serve(router, http.MethodGet, "/v1/users?sort_by=username&sort_dir=ASC&level=user&active=true", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetUsersResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Users, 1)
	assert.Equal(t, "frontdesk", body.Data.Users[0].Username)
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), userID).Return(dto.UserResponse{}, failure.NotFound("user"))

	rec := serve(router, http.MethodGet, "/v1/users/"+userID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestUpdateUser(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Update(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ any, req dto.UpdateUserRequest, _ string) (dto.UserResponse, error) {
			require.NotNil(t, req.Active)
			assert.False(t, *req.Active)
			assert.Nil(t, req.Level)

			return dto.UserResponse{ID: userID, Active: false}, nil
		})

	rec := serve(router, http.MethodPatch, "/v1/users/"+userID, `{"active":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), userID).Return(nil)

	rec := serve(router, http.MethodDelete, "/v1/users/"+userID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())
}
