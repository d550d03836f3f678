package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomType=MockRoomTypeService

import (
	"context"
	"fmt"

	"hoteladmin/config"
	"hoteladmin/infras/otel"
	hotelModel "hoteladmin/internal/domains/hotel/model"
	hotelRepo "hoteladmin/internal/domains/hotel/repository"
	raDto "hoteladmin/internal/domains/rateadjustment/model/dto"
	"hoteladmin/internal/domains/roomtype/model"
	"hoteladmin/internal/domains/roomtype/model/dto"
	"hoteladmin/internal/domains/roomtype/repository"
	timelineService "hoteladmin/internal/domains/timeline/service"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"

	"github.com/rs/zerolog/log"
)

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, on date.Date) (dto.GetRoomTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string, on date.Date) (dto.RoomTypeResponse, error)
	EffectiveRate(ctx context.Context, id string, on date.Date) (dto.EffectiveRateResponse, error)
	History(ctx context.Context, id string) ([]raDto.RateAdjustmentResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (dto.RoomTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.RoomType
	hotelRepo hotelRepo.Hotel
	timeline  timelineService.Timeline
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.RoomType,
	hotelRepo hotelRepo.Hotel,
	timeline timelineService.Timeline,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) RoomType {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		timeline:  timeline,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create stores a room type under an existing hotel. A new room type has no
// adjustments, so its effective rate is its base rate.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound(hotelModel.EntityName)
	}

	roomType := req.ToModel(shared.Username(ctx))

	err = s.repo.Insert(ctx, roomType)
	if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return res, failure.NotFound(hotelModel.EntityName)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyRoomTypeCount)

	res.FromModel(roomType, nil, timezone.Today())

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, on date.Date) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	roomTypes, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	roomTypeIDs := make([]string, len(roomTypes))
	for i, roomType := range roomTypes {
		roomTypeIDs[i] = roomType.ID
	}

	adjustments, err := s.timeline.Timelines(ctx, roomTypeIDs)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModels(roomTypes, adjustments, on, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyRoomTypeCount, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room type count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save room type count to cache")
	}

	return res, nil
}

// Get returns the room type resolved on the given day together with its full adjustment history.
func (s *serviceImpl) Get(ctx context.Context, id string, on date.Date) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, adjustments, err := s.timeline.Timeline(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(roomType, adjustments, on)
	res.WithHistory(adjustments)

	return res, nil
}

func (s *serviceImpl) EffectiveRate(ctx context.Context, id string, on date.Date) (res dto.EffectiveRateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EffectiveRate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, adjustments, err := s.timeline.Timeline(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(roomType, adjustments, on)

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, id string) (res []raDto.RateAdjustmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	adjustments, err := s.timeline.ListHistory(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return raDto.FromModels(adjustments), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateRoomTypeRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	req.Normalize()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return res, fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound(model.EntityName)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Username(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return res, fmt.Errorf("failed to update room type: %w", err)
	}

	return s.Get(ctx, id, timezone.Today())
}

// Delete removes the room type and every adjustment on its timeline.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.timeline.DeleteRoomType(ctx, id); err != nil {
		return err //nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyRoomTypeCount)

	return nil
}
