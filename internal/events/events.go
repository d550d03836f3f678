// Package events publishes domain events to the configured Kafka topic once
// the change they describe has been committed.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"hoteladmin/config"
	"hoteladmin/infras/kafka"
	"hoteladmin/infras/metrics"
	"hoteladmin/infras/otel"
	raModel "hoteladmin/internal/domains/rateadjustment/model"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	"hoteladmin/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	TypeRateAdjustmentCreated = "rate_adjustment.created"
	TypeRoomTypeDeleted       = "room_type.deleted"
	TypeHotelDeleted          = "hotel.deleted"
)

type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Actor      string    `json:"actor"`
	Data       any       `json:"data"`
}

type RateAdjustmentCreated struct {
	ID               string          `json:"id"`
	RoomTypeID       string          `json:"room_type_id"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
	EffectiveDate    date.Date       `json:"effective_date"`
	Reason           string          `json:"reason"`
}

type RoomTypeDeleted struct {
	RoomTypeID  string `json:"room_type_id"`
	HotelID     string `json:"hotel_id"`
	Adjustments int    `json:"adjustments"`
}

type HotelDeleted struct {
	HotelID     string   `json:"hotel_id"`
	RoomTypeIDs []string `json:"room_type_ids"`
}

// Publisher never fails the caller: delivery problems are logged and counted.
type Publisher interface {
	RateAdjustmentCreated(ctx context.Context, adjustment raModel.RateAdjustment)
	RoomTypeDeleted(ctx context.Context, event RoomTypeDeleted)
	HotelDeleted(ctx context.Context, event HotelDeleted)
}

type publisherImpl struct {
	client  kafka.Client
	topic   string
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(client kafka.Client, cfg *config.Config, metrics *metrics.Metrics, otel otel.Otel) Publisher {
	return &publisherImpl{
		client:  client,
		topic:   cfg.Kafka.Topic,
		metrics: metrics,
		otel:    otel,
	}
}

func (p *publisherImpl) RateAdjustmentCreated(ctx context.Context, adjustment raModel.RateAdjustment) {
	p.publish(ctx, TypeRateAdjustmentCreated, adjustment.RoomTypeID, RateAdjustmentCreated{
		ID:               adjustment.ID,
		RoomTypeID:       adjustment.RoomTypeID,
		AdjustmentAmount: adjustment.AdjustmentAmount,
		EffectiveDate:    adjustment.EffectiveDate,
		Reason:           adjustment.Reason,
	})
}

func (p *publisherImpl) RoomTypeDeleted(ctx context.Context, event RoomTypeDeleted) {
	p.publish(ctx, TypeRoomTypeDeleted, event.RoomTypeID, event)
}

func (p *publisherImpl) HotelDeleted(ctx context.Context, event HotelDeleted) {
	p.publish(ctx, TypeHotelDeleted, event.HotelID, event)
}

// publish keys every message by the aggregate id so events about one room
// type or hotel keep their order within a partition.
func (p *publisherImpl) publish(ctx context.Context, eventType, key string, data any) {
	ctx, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	envelope := Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Actor:      shared.Username(ctx),
		Data:       data,
	}

	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: key, Value: envelope})
	p.metrics.EventPublished(eventType, err)

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", eventType).Str("key", key).Msg("failed to publish event")
	}
}
