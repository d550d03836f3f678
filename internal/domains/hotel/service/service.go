package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hoteladmin/config"
	"hoteladmin/infras/otel"
	"hoteladmin/infras/s3"
	"hoteladmin/internal/domains/hotel/model"
	"hoteladmin/internal/domains/hotel/model/dto"
	"hoteladmin/internal/domains/hotel/repository"
	raModel "hoteladmin/internal/domains/rateadjustment/model"
	rtModel "hoteladmin/internal/domains/roomtype/model"
	rtRepo "hoteladmin/internal/domains/roomtype/repository"
	timelineService "hoteladmin/internal/domains/timeline/service"
	"hoteladmin/shared"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const rateSheetDirectory = "rate-sheets"

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, on date.Date) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string, on date.Date) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (dto.HotelResponse, error)
	Delete(ctx context.Context, id string) error
	PublishRateSheet(ctx context.Context, id string, on date.Date) (dto.PublishRateSheetResponse, error)
	WithdrawRateSheet(ctx context.Context, id string, req dto.WithdrawRateSheetRequest) error
}

type serviceImpl struct {
	repo         repository.Hotel
	roomTypeRepo rtRepo.RoomType
	timeline     timelineService.Timeline
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(
	repo repository.Hotel,
	roomTypeRepo rtRepo.RoomType,
	timeline timelineService.Timeline,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Hotel {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		timeline:     timeline,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel := req.ToModel(shared.Username(ctx))

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyHotelCount)

	res.FromModel(hotel)

	return res, nil
}

// GetAll lists one page of hotels with their room types, every rate resolved on the given day.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, on date.Date) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	hotels, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	hotelIDs := make([]string, len(hotels))
	for i, hotel := range hotels {
		hotelIDs[i] = hotel.ID
	}

	roomTypes, adjustments, err := s.roomTypesOf(ctx, shared.FilterByIDs(hotelIDs, rtModel.FieldHotelID, rtModel.TableName))
	if err != nil {
		return res, err
	}

	res.FromModels(hotels, roomTypes, adjustments, on, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyHotelCount, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save hotel count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string, on date.Date) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName)
	}

	roomTypes, adjustments, err := s.roomTypesOf(ctx, shared.FilterByID(hotel.ID, rtModel.FieldHotelID, rtModel.TableName))
	if err != nil {
		return res, err
	}

	res.FromModel(hotel)
	res.WithRoomTypes(roomTypes, adjustments, on)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHotelRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound(model.EntityName)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Username(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return res, fmt.Errorf("failed to update hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyHotelCount)

	return s.Get(ctx, id, timezone.Today())
}

// Delete removes the hotel together with its room types and their adjustments.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.timeline.DeleteHotel(ctx, id); err != nil {
		return err //nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyHotelCount)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyRoomTypeCount)

	return nil
}

// PublishRateSheet uploads the hotel's rates on the given day as a JSON
// document and returns its public URL.
func (s *serviceImpl) PublishRateSheet(ctx context.Context, id string, on date.Date) (res dto.PublishRateSheetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublishRateSheet")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, err := s.Get(ctx, id, on)
	if err != nil {
		return res, err
	}

	var sheet dto.RateSheet
	sheet.FromHotel(hotel, on, timezone.Format(timezone.Now(), constant.DateFormat), shared.Username(ctx))

	payload, err := json.Marshal(sheet)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode rate sheet")

		return res, fmt.Errorf("failed to encode rate sheet: %w", err)
	}

	directory := rateSheetDirectory + "/" + hotel.ID
	fileName := fmt.Sprintf("%s-%s.json", on.String(), uuid.NewString())

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, directory, fileName, constant.ContentTypeJSON, payload)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to upload rate sheet")

		return res, fmt.Errorf("failed to upload rate sheet: %w", err)
	}

	res.URL = url
	res.Date = on

	return res, nil
}

// WithdrawRateSheet deletes a published sheet. Only objects under the hotel's
// own rate sheet directory can be removed.
func (s *serviceImpl) WithdrawRateSheet(ctx context.Context, id string, req dto.WithdrawRateSheetRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WithdrawRateSheet")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exists {
		return failure.NotFound(model.EntityName)
	}

	bucket := s.cfg.External.S3.BucketName
	directory := rateSheetDirectory + "/" + id

	fileName, ok := strings.CutPrefix(s.s3.GetObjectNameFromURL(bucket, req.URL), directory+"/")
	if !ok || fileName == "" || strings.Contains(fileName, "/") {
		return failure.BadRequestFromString("url is not a rate sheet of this hotel")
	}

	if err = s.s3.DeleteFile(ctx, bucket, directory, fileName); err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to withdraw rate sheet")

		return fmt.Errorf("failed to withdraw rate sheet: %w", err)
	}

	return nil
}

func (s *serviceImpl) roomTypesOf(ctx context.Context, filter gDto.FilterGroup) ([]rtModel.RoomType, map[string][]raModel.RateAdjustment, error) {
	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	roomTypes, err := s.roomTypeRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return nil, nil, fmt.Errorf("failed to get room types: %w", err)
	}

	roomTypeIDs := make([]string, len(roomTypes))
	for i, roomType := range roomTypes {
		roomTypeIDs[i] = roomType.ID
	}

	adjustments, err := s.timeline.Timelines(ctx, roomTypeIDs)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return roomTypes, adjustments, nil
}
