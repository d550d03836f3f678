package rateadjustment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/internal/domains/rateadjustment/mocks"
	"hoteladmin/internal/domains/rateadjustment/model/dto"
	"hoteladmin/internal/handlers/rateadjustment"
	"hoteladmin/shared/date"
	"hoteladmin/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const deluxeID = "9a1f0c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b"

func TestCreateRateAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *mocks.MockRateAdjustmentService)
		wantCode int
	}{
		{
			name: "appended",
			body: `{"room_type_id":"` + deluxeID + `","adjustment_amount":-15.5,"effective_date":"2024-12-24","reason":"Christmas"}`,
			setup: func(svc *mocks.MockRateAdjustmentService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateRateAdjustmentRequest) (dto.RateAdjustmentResponse, error) {
						require.NotNil(t, req.AdjustmentAmount)
						assert.True(t, req.AdjustmentAmount.Equal(decimal.RequireFromString("-15.5")))
						assert.Equal(t, date.New(2024, 12, 24), req.EffectiveDate)

						return dto.RateAdjustmentResponse{ID: "adj-1", RoomTypeID: deluxeID}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed effective date",
			body:     `{"room_type_id":"` + deluxeID + `","adjustment_amount":20,"effective_date":"24/12/2024"}`,
			setup:    func(*mocks.MockRateAdjustmentService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing amount",
			body:     `{"room_type_id":"` + deluxeID + `","effective_date":"2024-12-24"}`,
			setup:    func(*mocks.MockRateAdjustmentService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room type",
			body: `{"room_type_id":"` + deluxeID + `","adjustment_amount":20,"effective_date":"2024-12-24"}`,
			setup: func(svc *mocks.MockRateAdjustmentService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.RateAdjustmentResponse{}, failure.NotFound("room_type"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockRateAdjustmentService(gomock.NewController(t))
			tt.setup(svc)

			handler := rateadjustment.New(svc, otelMocks.NewOtel())

			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/rate-adjustments", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
