package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hoteladmin/config"
	"hoteladmin/infras/metrics"
	otelInfra "hoteladmin/infras/otel"
	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/infras/postgres"
	"hoteladmin/infras/postgres/postgrestest"
	hotelMocks "hoteladmin/internal/domains/hotel/mocks"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	hotelRepo "hoteladmin/internal/domains/hotel/repository"
	raMocks "hoteladmin/internal/domains/rateadjustment/mocks"
	raModel "hoteladmin/internal/domains/rateadjustment/model"
	raRepo "hoteladmin/internal/domains/rateadjustment/repository"
	"hoteladmin/internal/domains/rateadjustment/resolver"
	rtMocks "hoteladmin/internal/domains/roomtype/mocks"
	rtModel "hoteladmin/internal/domains/roomtype/model"
	rtRepo "hoteladmin/internal/domains/roomtype/repository"
	"hoteladmin/internal/domains/timeline/service"
	"hoteladmin/internal/events"
	eventMocks "hoteladmin/internal/events/mocks"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/model"
	"hoteladmin/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	db        *postgres.Connection
	hotels    hotelRepo.Hotel
	roomTypes rtRepo.RoomType
	publisher *eventMocks.MockPublisher
	metrics   *metrics.Metrics
	timeline  service.Timeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return newFixtureOn(t, postgrestest.NewSQLite(t))
}

func newFixtureOn(t *testing.T, db *postgres.Connection) *fixture {
	t.Helper()

	otel := otelMocks.NewOtel()

	f := &fixture{
		db:        db,
		hotels:    hotelRepo.New(db, otel),
		roomTypes: rtRepo.New(db, otel),
		publisher: eventMocks.NewMockPublisher(gomock.NewController(t)),
		metrics:   metrics.New(&config.Config{}),
	}

	f.timeline = service.New(db, f.hotels, f.roomTypes, raRepo.New(db, otel), f.publisher, f.metrics, otel)

	return f
}

func filterHotel(id string) gDto.FilterGroup {
	return shared.FilterByID(id, hotelModel.FieldID, hotelModel.TableName)
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")
}

func metadata() model.Metadata {
	now := timezone.Now()

	return model.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "admin", ModifiedBy: "admin"}
}

func (f *fixture) seedHotel(t *testing.T, name string) hotelModel.Hotel {
	t.Helper()

	hotel := hotelModel.Hotel{
		ID:       uuid.NewString(),
		Name:     name,
		Location: "New York",
		Status:   hotelModel.StatusActive,
		Metadata: metadata(),
	}
	require.NoError(t, f.hotels.Insert(context.Background(), hotel))

	return hotel
}

func (f *fixture) seedRoomType(t *testing.T, hotelID, name string, baseRate int64) rtModel.RoomType {
	t.Helper()

	roomType := rtModel.RoomType{
		ID:       uuid.NewString(),
		HotelID:  hotelID,
		Name:     name,
		BaseRate: decimal.NewFromInt(baseRate),
		Metadata: metadata(),
	}
	require.NoError(t, f.roomTypes.Insert(context.Background(), roomType))

	return roomType
}

func (f *fixture) add(t *testing.T, roomTypeID string, amount string, on date.Date) raModel.RateAdjustment {
	t.Helper()

	f.publisher.EXPECT().RateAdjustmentCreated(gomock.Any(), gomock.Any())

	adjustment, err := f.timeline.AddAdjustment(adminContext(), roomTypeID, decimal.RequireFromString(amount), on, "")
	require.NoError(t, err)

	return adjustment
}

func (f *fixture) scrape(t *testing.T) string {
	t.Helper()

	recorder := httptest.NewRecorder()
	f.metrics.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	return recorder.Body.String()
}

func TestTimeline_AddAdjustment(t *testing.T) {
	f := newFixture(t)
	hotel := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, hotel.ID, "Deluxe Room", 150)

	var published raModel.RateAdjustment

	f.publisher.EXPECT().
		RateAdjustmentCreated(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, adjustment raModel.RateAdjustment) { published = adjustment })

	adjustment, err := f.timeline.AddAdjustment(adminContext(), deluxe.ID, decimal.RequireFromString("20.005"), date.New(2024, 12, 24), "Holiday Season Peak")
	require.NoError(t, err)

	assert.NotEmpty(t, adjustment.ID)
	assert.Equal(t, deluxe.ID, adjustment.RoomTypeID)
	assert.Equal(t, "20.01", adjustment.AdjustmentAmount.StringFixed(2))
	assert.Equal(t, "admin", adjustment.CreatedBy)
	assert.Equal(t, adjustment, published)

	roomType, adjustments, err := f.timeline.Timeline(context.Background(), deluxe.ID)
	require.NoError(t, err)
	assert.Equal(t, deluxe.ID, roomType.ID)
	require.Len(t, adjustments, 1)
	assert.Equal(t, adjustment.ID, adjustments[0].ID)
	assert.Equal(t, "2024-12-24", adjustments[0].EffectiveDate.String())
	assert.True(t, adjustment.AdjustmentAmount.Equal(adjustments[0].AdjustmentAmount))
	assert.True(t, adjustment.CreatedAt.Equal(adjustments[0].CreatedAt))

	rate := resolver.Resolve(roomType.BaseRate, adjustments, date.New(2024, 12, 24))
	assert.Equal(t, "170.01", rate.StringFixed(2))

	assert.Contains(t, f.scrape(t), "hoteladmin_rate_adjustments_created_total 1")
}

func TestTimeline_AddAdjustment_UnknownRoomType(t *testing.T) {
	f := newFixture(t)

	_, err := f.timeline.AddAdjustment(adminContext(), uuid.NewString(), decimal.NewFromInt(10), date.New(2024, 12, 24), "")

	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "room_type not found", err.Error())
	assert.Contains(t, f.scrape(t), "hoteladmin_rate_adjustments_created_total 0")
}

func TestTimeline_ListHistory(t *testing.T) {
	f := newFixture(t)
	hotel := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, hotel.ID, "Deluxe Room", 150)

	first := f.add(t, deluxe.ID, "20", date.New(2024, 12, 24))
	time.Sleep(2 * time.Millisecond)
	second := f.add(t, deluxe.ID, "-10", date.New(2024, 12, 20))

	history, err := f.timeline.ListHistory(context.Background(), deluxe.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	_, err = f.timeline.ListHistory(context.Background(), uuid.NewString())
	assert.True(t, failure.IsNotFound(err))
}

func TestTimeline_Timelines(t *testing.T) {
	f := newFixture(t)
	hotel := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, hotel.ID, "Deluxe Room", 150)
	suite := f.seedRoomType(t, hotel.ID, "Executive Suite", 300)
	plain := f.seedRoomType(t, hotel.ID, "Standard Room", 90)

	f.add(t, deluxe.ID, "20", date.New(2024, 12, 24))
	f.add(t, deluxe.ID, "5", date.New(2024, 12, 26))
	f.add(t, suite.ID, "-50", date.New(2024, 12, 24))

	timelines, err := f.timeline.Timelines(context.Background(), []string{deluxe.ID, suite.ID, plain.ID})
	require.NoError(t, err)

	assert.Len(t, timelines[deluxe.ID], 2)
	assert.Len(t, timelines[suite.ID], 1)
	assert.NotContains(t, timelines, plain.ID)

	empty, err := f.timeline.Timelines(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, _, err = f.timeline.Timeline(context.Background(), uuid.NewString())
	assert.True(t, failure.IsNotFound(err))
}

func TestTimeline_DeleteRoomType(t *testing.T) {
	f := newFixture(t)
	hotel := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, hotel.ID, "Deluxe Room", 150)
	suite := f.seedRoomType(t, hotel.ID, "Executive Suite", 300)

	f.add(t, deluxe.ID, "20", date.New(2024, 12, 24))
	f.add(t, deluxe.ID, "30", date.New(2024, 12, 25))
	f.add(t, suite.ID, "-50", date.New(2024, 12, 24))

	f.publisher.EXPECT().RoomTypeDeleted(gomock.Any(), events.RoomTypeDeleted{
		RoomTypeID:  deluxe.ID,
		HotelID:     hotel.ID,
		Adjustments: 2,
	})

	require.NoError(t, f.timeline.DeleteRoomType(adminContext(), deluxe.ID))

	_, _, err := f.timeline.Timeline(context.Background(), deluxe.ID)
	assert.True(t, failure.IsNotFound(err))

	timelines, err := f.timeline.Timelines(context.Background(), []string{deluxe.ID, suite.ID})
	require.NoError(t, err)
	assert.NotContains(t, timelines, deluxe.ID)
	assert.Len(t, timelines[suite.ID], 1)

	err = f.timeline.DeleteRoomType(adminContext(), deluxe.ID)
	assert.True(t, failure.IsNotFound(err))

	assert.Contains(t, f.scrape(t), `hoteladmin_cascade_deletes_total{entity="room_type"} 1`)
}

func TestTimeline_DeleteHotel(t *testing.T) {
	f := newFixture(t)
	plaza := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, plaza.ID, "Deluxe Room", 150)
	suite := f.seedRoomType(t, plaza.ID, "Executive Suite", 300)
	other := f.seedHotel(t, "Harbour Inn")
	harbour := f.seedRoomType(t, other.ID, "Harbour View", 120)

	f.add(t, deluxe.ID, "20", date.New(2024, 12, 24))
	f.add(t, suite.ID, "40", date.New(2024, 12, 24))
	f.add(t, harbour.ID, "15", date.New(2024, 12, 24))

	f.publisher.EXPECT().
		HotelDeleted(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event events.HotelDeleted) {
			assert.Equal(t, plaza.ID, event.HotelID)
			assert.ElementsMatch(t, []string{deluxe.ID, suite.ID}, event.RoomTypeIDs)
		})

	require.NoError(t, f.timeline.DeleteHotel(adminContext(), plaza.ID))

	hotel, err := f.hotels.Get(context.Background(), filterHotel(plaza.ID))
	require.NoError(t, err)
	assert.Empty(t, hotel.ID)

	for _, id := range []string{deluxe.ID, suite.ID} {
		_, _, err := f.timeline.Timeline(context.Background(), id)
		assert.True(t, failure.IsNotFound(err), id)
	}

	_, adjustments, err := f.timeline.Timeline(context.Background(), harbour.ID)
	require.NoError(t, err)
	assert.Len(t, adjustments, 1)

	err = f.timeline.DeleteHotel(adminContext(), plaza.ID)
	assert.True(t, failure.IsNotFound(err))

	assert.Contains(t, f.scrape(t), `hoteladmin_cascade_deletes_total{entity="hotel"} 1`)
}

func TestTimeline_DeleteHotel_WithoutRoomTypes(t *testing.T) {
	f := newFixture(t)
	hotel := f.seedHotel(t, "Empty Lodge")

	f.publisher.EXPECT().HotelDeleted(gomock.Any(), events.HotelDeleted{HotelID: hotel.ID, RoomTypeIDs: []string{}})

	require.NoError(t, f.timeline.DeleteHotel(adminContext(), hotel.ID))
}

func TestTimeline_DeleteRollsBack(t *testing.T) {
	f := newFixture(t)
	hotel := f.seedHotel(t, "Grand Plaza")
	deluxe := f.seedRoomType(t, hotel.ID, "Deluxe Room", 150)
	otel := otelMocks.NewOtel()

	f.add(t, deluxe.ID, "20", date.New(2024, 12, 24))

	ctrl := gomock.NewController(t)
	adjustments := raMocks.NewMockRateAdjustment(ctrl)
	realAdjustments := raRepo.New(f.db, otel)

	adjustments.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]raModel.RateAdjustment{{}}, nil)
	adjustments.EXPECT().
		DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(realAdjustments.DeleteTx)

	roomTypes := rtMocks.NewMockRoomType(ctrl)
	roomTypes.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(deluxe, nil)
	roomTypes.EXPECT().
		DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	broken := service.New(f.db, f.hotels, roomTypes, adjustments, f.publisher, f.metrics, otel)

	err := broken.DeleteRoomType(adminContext(), deluxe.ID)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection reset"))

	_, remaining, err := f.timeline.Timeline(context.Background(), deluxe.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	assert.NotContains(t, f.scrape(t), "hoteladmin_cascade_deletes_total{")
}

func TestTimeline_FailuresAreRecordedOnSpans(t *testing.T) {
	f := newFixture(t)

	recorder := tracetest.NewSpanRecorder()
	otl := otelInfra.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	traced := service.New(f.db, f.hotels, f.roomTypes, raRepo.New(f.db, otl), f.publisher, f.metrics, otl)

	err := traced.DeleteHotel(adminContext(), uuid.NewString())
	require.True(t, failure.IsNotFound(err))

	_, err = traced.Timelines(context.Background(), []string{uuid.NewString()})
	require.NoError(t, err)

	status := map[string]codes.Code{}
	for _, span := range recorder.Ended() {
		status[span.Name()] = span.Status().Code
	}

	assert.Equal(t, codes.Error, status[constant.OtelServiceScopeName+".DeleteHotel"])
	assert.Equal(t, codes.Unset, status[constant.OtelServiceScopeName+".Timelines"])
}

func TestTimeline_DeleteRacingWithInsertConflicts(t *testing.T) {
	fkViolation := fmt.Errorf("failed to delete data: %w", &pq.Error{Code: constant.PqErrorCodeFkViolation})

	tests := []struct {
		name   string
		delete func(t *testing.T, f *fixture, ctrl *gomock.Controller) error
	}{
		{
			name: "room type gains an adjustment",
			delete: func(t *testing.T, f *fixture, ctrl *gomock.Controller) error {
				deluxe := f.seedRoomType(t, f.seedHotel(t, "Grand Plaza").ID, "Deluxe Room", 150)

				roomTypes := rtMocks.NewMockRoomType(ctrl)
				roomTypes.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe, nil)
				roomTypes.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(fkViolation)

				otl := otelMocks.NewOtel()
				racing := service.New(f.db, f.hotels, roomTypes, raRepo.New(f.db, otl), f.publisher, f.metrics, otl)

				return racing.DeleteRoomType(adminContext(), deluxe.ID)
			},
		},
		{
			name: "hotel gains a room type",
			delete: func(t *testing.T, f *fixture, ctrl *gomock.Controller) error {
				plaza := f.seedHotel(t, "Grand Plaza")

				hotels := hotelMocks.NewMockHotel(ctrl)
				hotels.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(plaza, nil)
				hotels.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(fkViolation)

				otl := otelMocks.NewOtel()
				racing := service.New(f.db, hotels, f.roomTypes, raRepo.New(f.db, otl), f.publisher, f.metrics, otl)

				return racing.DeleteHotel(adminContext(), plaza.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := tt.delete(t, f, gomock.NewController(t))

			require.Error(t, err)
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			assert.NotContains(t, f.scrape(t), "hoteladmin_cascade_deletes_total{")
		})
	}
}
