package model

import (
	"time"

	"hoteladmin/shared/date"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rate_adjustments"
	EntityName = "rate_adjustment"

	FieldID               = "id"
	FieldRoomTypeID       = "room_type_id"
	FieldAdjustmentAmount = "adjustment_amount"
	FieldEffectiveDate    = "effective_date"
	FieldReason           = "reason"
	FieldCreatedAt        = "created_at"
)

// RateAdjustment is append-only: it carries no modified_* audit columns.
type RateAdjustment struct {
	ID               string          `db:"id"`
	RoomTypeID       string          `db:"room_type_id"`
	AdjustmentAmount decimal.Decimal `db:"adjustment_amount"`
	EffectiveDate    date.Date       `db:"effective_date"`
	Reason           string          `db:"reason"`
	CreatedAt        time.Time       `db:"created_at"`
	CreatedBy        string          `db:"created_by"`
}
