package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	otelMocks "hoteladmin/infras/otel/mocks"
	raModel "hoteladmin/internal/domains/rateadjustment/model"
	"hoteladmin/internal/domains/rateadjustment/model/dto"
	"hoteladmin/internal/domains/rateadjustment/service"
	rtModel "hoteladmin/internal/domains/roomtype/model"
	timelineMocks "hoteladmin/internal/domains/timeline/mocks"
	"hoteladmin/shared/date"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomTypeID = "9a1f0c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b"

func TestRateAdjustment_Create(t *testing.T) {
	timeline := timelineMocks.NewMockTimeline(gomock.NewController(t))
	svc := service.New(timeline, otelMocks.NewOtel())

	req := dto.CreateRateAdjustmentRequest{
		RoomTypeID:       roomTypeID,
		AdjustmentAmount: money.Ptr(decimal.NewFromInt(20)),
		EffectiveDate:    date.New(2024, 12, 24),
		Reason:           "Holiday Season Peak",
	}

	timeline.EXPECT().
		AddAdjustment(gomock.Any(), roomTypeID, decimal.NewFromInt(20), date.New(2024, 12, 24), "Holiday Season Peak").
		Return(raModel.RateAdjustment{
			ID:               "adj-1",
			RoomTypeID:       roomTypeID,
			AdjustmentAmount: decimal.NewFromInt(20),
			EffectiveDate:    date.New(2024, 12, 24),
			Reason:           "Holiday Season Peak",
			CreatedAt:        time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
			CreatedBy:        "admin",
		}, nil)

	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "adj-1", res.ID)
	assert.Equal(t, "20", res.AdjustmentAmount.String())
	assert.Equal(t, "admin", res.CreatedBy)
}

func TestRateAdjustment_Create_UnknownRoomType(t *testing.T) {
	timeline := timelineMocks.NewMockTimeline(gomock.NewController(t))
	svc := service.New(timeline, otelMocks.NewOtel())

	timeline.EXPECT().
		AddAdjustment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(raModel.RateAdjustment{}, failure.NotFound(rtModel.EntityName))

	_, err := svc.Create(context.Background(), dto.CreateRateAdjustmentRequest{
		RoomTypeID:       roomTypeID,
		AdjustmentAmount: money.Ptr(decimal.NewFromInt(-5)),
		EffectiveDate:    date.New(2024, 12, 24),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
