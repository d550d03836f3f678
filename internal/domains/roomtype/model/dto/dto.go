package dto

import (
	"net/http"

	raModel "hoteladmin/internal/domains/rateadjustment/model"
	raDto "hoteladmin/internal/domains/rateadjustment/model/dto"
	"hoteladmin/internal/domains/rateadjustment/resolver"
	"hoteladmin/internal/domains/roomtype/model"
	"hoteladmin/shared"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	gModel "hoteladmin/shared/model"
	"hoteladmin/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	HotelID  string           `json:"hotel_id"  validate:"required,uuid"`
	Name     string           `json:"name"      validate:"required,max=100"`
	BaseRate *decimal.Decimal `json:"base_rate" validate:"required,gte=0,lte=9999999999.99"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:       uuid.NewString(),
		HotelID:  c.HotelID,
		Name:     c.Name,
		BaseRate: money.Round(*c.BaseRate),
		Metadata: gModel.NewMetadata(user),
	}
}

// UpdateRoomTypeRequest is a partial update; nil fields keep their stored value.
// The owning hotel cannot be changed.
type UpdateRoomTypeRequest struct {
	Name     *string          `db:"name"      json:"name"      validate:"omitempty,min=1,max=100"`
	BaseRate *decimal.Decimal `db:"base_rate" json:"base_rate" validate:"omitempty,gte=0,lte=9999999999.99"`
}

func (u *UpdateRoomTypeRequest) Normalize() {
	if u.BaseRate != nil {
		u.BaseRate = money.Ptr(money.Round(*u.BaseRate))
	}
}

func (u *UpdateRoomTypeRequest) Apply(roomType model.RoomType) model.RoomType {
	if u.Name != nil {
		roomType.Name = *u.Name
	}

	if u.BaseRate != nil {
		roomType.BaseRate = money.Round(*u.BaseRate)
	}

	return roomType
}

type RoomTypeResponse struct {
	ID            string                         `json:"id"`
	HotelID       string                         `json:"hotel_id"`
	Name          string                         `json:"name"`
	BaseRate      decimal.Decimal                `json:"base_rate"`
	EffectiveRate decimal.Decimal                `json:"effective_rate"`
	RateDate      date.Date                      `json:"rate_date"`
	Adjustments   []raDto.RateAdjustmentResponse `json:"adjustments,omitempty"`
	gDto.Metadata
}

// FromModel fills the response and resolves the rate in force on the given day.
func (r *RoomTypeResponse) FromModel(roomType model.RoomType, adjustments []raModel.RateAdjustment, on date.Date) {
	r.ID = roomType.ID
	r.HotelID = roomType.HotelID
	r.Name = roomType.Name
	r.BaseRate = money.Round(roomType.BaseRate)
	r.EffectiveRate = money.Round(resolver.Resolve(roomType.BaseRate, adjustments, on))
	r.RateDate = on
	r.Metadata.FromModel(roomType.Metadata)
}

// WithHistory attaches the adjustment history, most recently created first.
func (r *RoomTypeResponse) WithHistory(adjustments []raModel.RateAdjustment) {
	r.Adjustments = raDto.FromModels(resolver.History(adjustments))
}

// FromModels resolves every room type against its own adjustments, keyed by room type id.
func FromModels(roomTypes []model.RoomType, adjustments map[string][]raModel.RateAdjustment, on date.Date) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		res[i].FromModel(roomType, adjustments[roomType.ID], on)
	}

	return res
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetRoomTypesResponse) FromModels(roomTypes []model.RoomType, adjustments map[string][]raModel.RateAdjustment, on date.Date, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)
	g.RoomTypes = FromModels(roomTypes, adjustments, on)
}

// EffectiveRateResponse explains a single resolution: which adjustment, if any, was applied.
type EffectiveRateResponse struct {
	RoomTypeID    string                        `json:"room_type_id"`
	Date          date.Date                     `json:"date"`
	BaseRate      decimal.Decimal               `json:"base_rate"`
	EffectiveRate decimal.Decimal               `json:"effective_rate"`
	Adjustment    *raDto.RateAdjustmentResponse `json:"adjustment"`
}

func (e *EffectiveRateResponse) FromModel(roomType model.RoomType, adjustments []raModel.RateAdjustment, on date.Date) {
	e.RoomTypeID = roomType.ID
	e.Date = on
	e.BaseRate = money.Round(roomType.BaseRate)
	e.EffectiveRate = money.Round(resolver.Resolve(roomType.BaseRate, adjustments, on))
	e.Adjustment = nil

	if selected, ok := resolver.Latest(adjustments, on); ok {
		var adjustment raDto.RateAdjustmentResponse
		adjustment.FromModel(selected)

		e.Adjustment = &adjustment
	}
}

// FilterFromRequest narrows the listing to one hotel when ?hotel_id= is given.
func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if hotelID := r.URL.Query().Get(constant.RequestParamHotelID); hotelID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hotelID,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
