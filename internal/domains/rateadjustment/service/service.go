package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RateAdjustment=MockRateAdjustmentService

import (
	"context"

	"hoteladmin/infras/otel"
	"hoteladmin/internal/domains/rateadjustment/model/dto"
	timelineService "hoteladmin/internal/domains/timeline/service"
	"hoteladmin/shared/constant"
)

type RateAdjustment interface {
	Create(ctx context.Context, req dto.CreateRateAdjustmentRequest) (dto.RateAdjustmentResponse, error)
}

type serviceImpl struct {
	timeline timelineService.Timeline
	otel     otel.Otel
}

func New(timeline timelineService.Timeline, otel otel.Otel) RateAdjustment {
	return &serviceImpl{
		timeline: timeline,
		otel:     otel,
	}
}

// Create appends an adjustment to the room type's timeline. Adjustments are
// never updated or deleted on their own.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRateAdjustmentRequest) (res dto.RateAdjustmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRateAdjustment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	adjustment, err := s.timeline.AddAdjustment(ctx, req.RoomTypeID, *req.AdjustmentAmount, req.EffectiveDate, req.Reason)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(adjustment)

	return res, nil
}
