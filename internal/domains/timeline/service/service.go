// Package service owns the per room type adjustment timelines: appending
// adjustments, reading them back for resolution, and removing a room type or
// a whole hotel together with everything it owns in one transaction.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hoteladmin/infras/metrics"
	"hoteladmin/infras/otel"
	"hoteladmin/infras/postgres"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	hotelRepo "hoteladmin/internal/domains/hotel/repository"
	raModel "hoteladmin/internal/domains/rateadjustment/model"
	raRepo "hoteladmin/internal/domains/rateadjustment/repository"
	"hoteladmin/internal/domains/rateadjustment/resolver"
	rtModel "hoteladmin/internal/domains/roomtype/model"
	rtRepo "hoteladmin/internal/domains/roomtype/repository"
	"hoteladmin/internal/events"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/money"
	"hoteladmin/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// A child inserted concurrently with a cascade makes the parent delete fail
// its foreign key; the caller may simply retry.
const messageChangedDuringDelete = "%s changed while being deleted, retry"

type Timeline interface {
	AddAdjustment(ctx context.Context, roomTypeID string, amount decimal.Decimal, effectiveDate date.Date, reason string) (raModel.RateAdjustment, error)
	ListHistory(ctx context.Context, roomTypeID string) ([]raModel.RateAdjustment, error)
	Timeline(ctx context.Context, roomTypeID string) (rtModel.RoomType, []raModel.RateAdjustment, error)
	Timelines(ctx context.Context, roomTypeIDs []string) (map[string][]raModel.RateAdjustment, error)
	DeleteRoomType(ctx context.Context, roomTypeID string) error
	DeleteHotel(ctx context.Context, hotelID string) error
}

type serviceImpl struct {
	db             *postgres.Connection
	hotelRepo      hotelRepo.Hotel
	roomTypeRepo   rtRepo.RoomType
	adjustmentRepo raRepo.RateAdjustment
	publisher      events.Publisher
	metrics        *metrics.Metrics
	otel           otel.Otel
}

func New(
	db *postgres.Connection,
	hotelRepo hotelRepo.Hotel,
	roomTypeRepo rtRepo.RoomType,
	adjustmentRepo raRepo.RateAdjustment,
	publisher events.Publisher,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Timeline {
	return &serviceImpl{
		db:             db,
		hotelRepo:      hotelRepo,
		roomTypeRepo:   roomTypeRepo,
		adjustmentRepo: adjustmentRepo,
		publisher:      publisher,
		metrics:        metrics,
		otel:           otel,
	}
}

func roomTypeFilter(roomTypeID string) gDto.FilterGroup {
	return shared.FilterByID(roomTypeID, rtModel.FieldID, rtModel.TableName)
}

func adjustmentsOf(roomTypeIDs ...string) gDto.FilterGroup {
	if len(roomTypeIDs) == 1 {
		return shared.FilterByID(roomTypeIDs[0], raModel.FieldRoomTypeID, raModel.TableName)
	}

	return shared.FilterByIDs(roomTypeIDs, raModel.FieldRoomTypeID, raModel.TableName)
}

// AddAdjustment appends an adjustment. Several adjustments may share an
// effective date; the resolver breaks the tie.
func (s *serviceImpl) AddAdjustment(ctx context.Context, roomTypeID string, amount decimal.Decimal, effectiveDate date.Date, reason string) (res raModel.RateAdjustment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddAdjustment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	adjustment := raModel.RateAdjustment{
		ID:               uuid.NewString(),
		RoomTypeID:       roomTypeID,
		AdjustmentAmount: money.Round(amount),
		EffectiveDate:    effectiveDate,
		Reason:           reason,
		CreatedAt:        timezone.Now().Truncate(time.Microsecond),
		CreatedBy:        shared.Username(ctx),
	}

	err = s.db.Transaction(ctx, func(tx *sqlx.Tx) error {
		exists, err := s.roomTypeRepo.ExistTx(ctx, tx, roomTypeFilter(roomTypeID))
		if err != nil {
			return fmt.Errorf("failed to check room type: %w", err)
		}

		if !exists {
			return failure.NotFound(rtModel.EntityName)
		}

		return s.adjustmentRepo.InsertTx(ctx, tx, adjustment) //nolint:wrapcheck
	})

	if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return res, failure.NotFound(rtModel.EntityName)
	}

	if failure.IsNotFound(err) {
		return res, err
	}

	if err != nil {
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to add rate adjustment")

		return res, fmt.Errorf("failed to add rate adjustment: %w", err)
	}

	s.metrics.AdjustmentCreated()
	s.publisher.RateAdjustmentCreated(ctx, adjustment)

	return adjustment, nil
}

// ListHistory returns every adjustment of the room type, most recently created first.
func (s *serviceImpl) ListHistory(ctx context.Context, roomTypeID string) (res []raModel.RateAdjustment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.roomTypeRepo.Exist(ctx, roomTypeFilter(roomTypeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type")

		return nil, fmt.Errorf("failed to check room type: %w", err)
	}

	if !exists {
		return nil, failure.NotFound(rtModel.EntityName)
	}

	params := gDto.QueryParams{SortBy: raModel.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	adjustments, err := s.adjustmentRepo.GetAll(ctx, params, adjustmentsOf(roomTypeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate adjustments")

		return nil, fmt.Errorf("failed to get rate adjustments: %w", err)
	}

	return resolver.History(adjustments), nil
}

func (s *serviceImpl) Timeline(ctx context.Context, roomTypeID string) (roomType rtModel.RoomType, adjustments []raModel.RateAdjustment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Timeline")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err = s.roomTypeRepo.Get(ctx, roomTypeFilter(roomTypeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return roomType, nil, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, nil, failure.NotFound(rtModel.EntityName)
	}

	adjustments, err = s.adjustmentRepo.GetAll(ctx, gDto.QueryParams{}, adjustmentsOf(roomTypeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate adjustments")

		return roomType, nil, fmt.Errorf("failed to get rate adjustments: %w", err)
	}

	return roomType, adjustments, nil
}

// Timelines loads the adjustments of several room types in one query. Room
// types without adjustments have no entry.
func (s *serviceImpl) Timelines(ctx context.Context, roomTypeIDs []string) (res map[string][]raModel.RateAdjustment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Timelines")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = make(map[string][]raModel.RateAdjustment, len(roomTypeIDs))
	if len(roomTypeIDs) == 0 {
		return res, nil
	}

	adjustments, err := s.adjustmentRepo.GetAll(ctx, gDto.QueryParams{}, adjustmentsOf(roomTypeIDs...))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate adjustments")

		return nil, fmt.Errorf("failed to get rate adjustments: %w", err)
	}

	for _, adjustment := range adjustments {
		res[adjustment.RoomTypeID] = append(res[adjustment.RoomTypeID], adjustment)
	}

	return res, nil
}

func (s *serviceImpl) DeleteRoomType(ctx context.Context, roomTypeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var event events.RoomTypeDeleted

	err = s.db.Transaction(ctx, func(tx *sqlx.Tx) error {
		roomType, err := s.roomTypeRepo.GetTx(ctx, tx, roomTypeFilter(roomTypeID), rtModel.FieldID, rtModel.FieldHotelID)
		if err != nil {
			return fmt.Errorf("failed to get room type: %w", err)
		}

		if roomType.ID == constant.Empty {
			return failure.NotFound(rtModel.EntityName)
		}

		adjustments, err := s.adjustmentRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, adjustmentsOf(roomTypeID), raModel.FieldID)
		if err != nil {
			return fmt.Errorf("failed to get rate adjustments: %w", err)
		}

		if err := s.adjustmentRepo.DeleteTx(ctx, tx, adjustmentsOf(roomTypeID)); err != nil {
			return fmt.Errorf("failed to delete rate adjustments: %w", err)
		}

		if err := s.roomTypeRepo.DeleteTx(ctx, tx, roomTypeFilter(roomTypeID)); err != nil {
			return fmt.Errorf("failed to delete room type: %w", err)
		}

		event = events.RoomTypeDeleted{
			RoomTypeID:  roomType.ID,
			HotelID:     roomType.HotelID,
			Adjustments: len(adjustments),
		}

		return nil
	})

	switch {
	case err == nil:
	case failure.IsNotFound(err):
		return err
	case shared.IsPqError(err, constant.PqErrorCodeFkViolation):
		log.Warn().Err(err).Str("room_type_id", roomTypeID).Msg("room type gained adjustments during delete")

		return failure.Conflict(fmt.Sprintf(messageChangedDuringDelete, rtModel.EntityName))
	default:
		log.Error().Err(err).Str("room_type_id", roomTypeID).Msg("failed to delete room type")

		return err
	}

	s.metrics.CascadeDeleted(rtModel.EntityName)
	s.publisher.RoomTypeDeleted(ctx, event)

	return nil
}

func (s *serviceImpl) DeleteHotel(ctx context.Context, hotelID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var roomTypeIDs []string

	err = s.db.Transaction(ctx, func(tx *sqlx.Tx) error {
		hotelFilter := shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName)

		hotel, err := s.hotelRepo.GetTx(ctx, tx, hotelFilter, hotelModel.FieldID)
		if err != nil {
			return fmt.Errorf("failed to get hotel: %w", err)
		}

		if hotel.ID == constant.Empty {
			return failure.NotFound(hotelModel.EntityName)
		}

		ownedBy := shared.FilterByID(hotelID, rtModel.FieldHotelID, rtModel.TableName)

		roomTypes, err := s.roomTypeRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, ownedBy, rtModel.FieldID)
		if err != nil {
			return fmt.Errorf("failed to get room types: %w", err)
		}

		roomTypeIDs = make([]string, len(roomTypes))
		for i, roomType := range roomTypes {
			roomTypeIDs[i] = roomType.ID
		}

		if len(roomTypeIDs) > 0 {
			if err := s.adjustmentRepo.DeleteTx(ctx, tx, adjustmentsOf(roomTypeIDs...)); err != nil {
				return fmt.Errorf("failed to delete rate adjustments: %w", err)
			}

			if err := s.roomTypeRepo.DeleteTx(ctx, tx, ownedBy); err != nil {
				return fmt.Errorf("failed to delete room types: %w", err)
			}
		}

		if err := s.hotelRepo.DeleteTx(ctx, tx, hotelFilter); err != nil {
			return fmt.Errorf("failed to delete hotel: %w", err)
		}

		return nil
	})

	switch {
	case err == nil:
	case failure.IsNotFound(err):
		return err
	case shared.IsPqError(err, constant.PqErrorCodeFkViolation):
		log.Warn().Err(err).Str("hotel_id", hotelID).Msg("hotel gained room types during delete")

		return failure.Conflict(fmt.Sprintf(messageChangedDuringDelete, hotelModel.EntityName))
	default:
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to delete hotel")

		return err
	}

	s.metrics.CascadeDeleted(hotelModel.EntityName)
	s.publisher.HotelDeleted(ctx, events.HotelDeleted{HotelID: hotelID, RoomTypeIDs: roomTypeIDs})

	return nil
}
