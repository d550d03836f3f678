package hotel_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/domains/hotel/mocks"
	"hoteladmin/internal/domains/hotel/model"
	"hoteladmin/internal/domains/hotel/model/dto"
	"hoteladmin/internal/handlers/hotel"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const hotelID = "0d6c3b8e-7a0f-4a8e-9c3e-0e8d2a1b4c5d"

func newRouter(t *testing.T) (*mocks.MockHotelService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockHotelService(gomock.NewController(t))
	handler := hotel.New(svc, otelMocks.NewOtel())

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

func TestCreateHotel(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateHotelRequest{Name: "Grand Plaza", Location: "New York"}).
			Return(dto.HotelResponse{ID: hotelID, Name: "Grand Plaza", Location: "New York", Status: model.StatusActive}, nil)

		rec := serve(router, http.MethodPost, "/v1/hotels", `{"name":"Grand Plaza","location":"New York"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data dto.HotelResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, hotelID, body.Data.ID)
		assert.Equal(t, model.StatusActive, body.Data.Status)
	})

	t.Run("missing location", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/v1/hotels", `{"name":"Grand Plaza"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetHotels(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), date.New(2024, 12, 24)).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup, _ date.Date) (dto.GetHotelsResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, "created_at", params.SortBy)
			require.Len(t, filter.Filters, 1)

			return dto.GetHotelsResponse{Hotels: []dto.HotelResponse{}, TotalData: 0}, nil
		})

	rec := serve(router, http.MethodGet, "/v1/hotels?page=2&sort_by=password&location=York&date=2024-12-24", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetHotelByID(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(svc *mocks.MockHotelService)
		wantCode int
	}{
		{
			name:   "resolves on the requested day",
			target: "/v1/hotels/" + hotelID + "?date=2024-12-24",
			setup: func(svc *mocks.MockHotelService) {
				svc.EXPECT().Get(gomock.Any(), hotelID, date.New(2024, 12, 24)).Return(dto.HotelResponse{ID: hotelID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "defaults to today",
			target: "/v1/hotels/" + hotelID,
			setup: func(svc *mocks.MockHotelService) {
				svc.EXPECT().Get(gomock.Any(), hotelID, timezone.Today()).Return(dto.HotelResponse{ID: hotelID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed date",
			target:   "/v1/hotels/" + hotelID + "?date=12/24/2024",
			setup:    func(*mocks.MockHotelService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "unknown hotel",
			target: "/v1/hotels/" + hotelID,
			setup: func(svc *mocks.MockHotelService) {
				svc.EXPECT().Get(gomock.Any(), hotelID, gomock.Any()).Return(dto.HotelResponse{}, failure.NotFound(model.EntityName))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUpdateHotel(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().
				Update(gomock.Any(), gomock.Any(), hotelID).
				DoAndReturn(func(_ any, req dto.UpdateHotelRequest, _ string) (dto.HotelResponse, error) {
					require.NotNil(t, req.Status)
					assert.Equal(t, model.StatusInactive, *req.Status)
					assert.Nil(t, req.Name)

					return dto.HotelResponse{ID: hotelID, Status: model.StatusInactive}, nil
				})

			rec := serve(router, method, "/v1/hotels/"+hotelID, `{"status":"inactive"}`)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPatch, "/v1/hotels/"+hotelID, `{"status":"closed"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteHotel(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), hotelID).Return(nil)

	rec := serve(router, http.MethodDelete, "/v1/hotels/"+hotelID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hotel deleted successfully"}`, rec.Body.String())

	svc.EXPECT().Delete(gomock.Any(), hotelID).Return(failure.NotFound(model.EntityName))

	rec = serve(router, http.MethodDelete, "/v1/hotels/"+hotelID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"hotel not found"}`, rec.Body.String())
}

func TestPublishRateSheet(t *testing.T) {
	svc, router := newRouter(t)

	on := date.New(2024, 12, 24)
	url := "https://cdn.example.com/rate-sheets/" + hotelID + "/2024-12-24-x.json"

	svc.EXPECT().PublishRateSheet(gomock.Any(), hotelID, on).Return(dto.PublishRateSheetResponse{URL: url, Date: on}, nil)

	rec := serve(router, http.MethodPost, "/v1/hotels/"+hotelID+"/rate-sheets?date=2024-12-24", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), url)
}

func TestWithdrawRateSheet(t *testing.T) {
	svc, router := newRouter(t)

	url := "https://cdn.example.com/rate-sheets/" + hotelID + "/2024-12-24-x.json"

	svc.EXPECT().WithdrawRateSheet(gomock.Any(), hotelID, dto.WithdrawRateSheetRequest{URL: url}).Return(nil)

	rec := serve(router, http.MethodDelete, "/v1/hotels/"+hotelID+"/rate-sheets", `{"url":"`+url+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Rate sheet withdrawn"}`, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/v1/hotels/"+hotelID+"/rate-sheets", `{"url":"not a url"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
