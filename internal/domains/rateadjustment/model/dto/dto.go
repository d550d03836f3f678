package dto

import (
	"hoteladmin/internal/domains/rateadjustment/model"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	"hoteladmin/shared/money"
	"hoteladmin/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateRateAdjustmentRequest struct {
	RoomTypeID       string           `json:"room_type_id"      validate:"required,uuid"`
	AdjustmentAmount *decimal.Decimal `json:"adjustment_amount" validate:"required,gte=-9999999999.99,lte=9999999999.99"`
	EffectiveDate    date.Date        `json:"effective_date"    validate:"required"`
	Reason           string           `json:"reason"            validate:"omitempty,max=255"`
}

type RateAdjustmentResponse struct {
	ID               string          `json:"id"`
	RoomTypeID       string          `json:"room_type_id"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
	EffectiveDate    date.Date       `json:"effective_date"`
	Reason           string          `json:"reason"`
	CreatedAt        string          `json:"created_at"`
	CreatedBy        string          `json:"created_by"`
}

func (r *RateAdjustmentResponse) FromModel(adjustment model.RateAdjustment) {
	r.ID = adjustment.ID
	r.RoomTypeID = adjustment.RoomTypeID
	r.AdjustmentAmount = money.Round(adjustment.AdjustmentAmount)
	r.EffectiveDate = adjustment.EffectiveDate
	r.Reason = adjustment.Reason
	r.CreatedAt = timezone.Format(adjustment.CreatedAt, constant.DateFormat)
	r.CreatedBy = adjustment.CreatedBy
}

func FromModels(adjustments []model.RateAdjustment) []RateAdjustmentResponse {
	res := make([]RateAdjustmentResponse, len(adjustments))
	for i, adjustment := range adjustments {
		res[i].FromModel(adjustment)
	}

	return res
}
