package dto

import (
	"net/http"

	"hoteladmin/internal/domains/hotel/model"
	raModel "hoteladmin/internal/domains/rateadjustment/model"
	roomTypeModel "hoteladmin/internal/domains/roomtype/model"
	roomTypeDto "hoteladmin/internal/domains/roomtype/model/dto"
	"hoteladmin/shared"
	"hoteladmin/shared/date"
	gDto "hoteladmin/shared/dto"
	gModel "hoteladmin/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateHotelRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=255"`
	Status   string `json:"status"   validate:"omitempty,oneof=active inactive"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	return model.Hotel{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Location: c.Location,
		Status:   status,
		Metadata: gModel.NewMetadata(user),
	}
}

// UpdateHotelRequest is a partial update; nil fields keep their stored value.
type UpdateHotelRequest struct {
	Name     *string `db:"name"     json:"name"     validate:"omitempty,min=1,max=100"`
	Location *string `db:"location" json:"location" validate:"omitempty,min=1,max=255"`
	Status   *string `db:"status"   json:"status"   validate:"omitempty,oneof=active inactive"`
}

func (u *UpdateHotelRequest) Apply(hotel model.Hotel) model.Hotel {
	if u.Name != nil {
		hotel.Name = *u.Name
	}

	if u.Location != nil {
		hotel.Location = *u.Location
	}

	if u.Status != nil {
		hotel.Status = *u.Status
	}

	return hotel
}

type HotelResponse struct {
	ID        string                         `json:"id"`
	Name      string                         `json:"name"`
	Location  string                         `json:"location"`
	Status    string                         `json:"status"`
	RoomTypes []roomTypeDto.RoomTypeResponse `json:"room_types"`
	gDto.Metadata
}

func (h *HotelResponse) FromModel(hotel model.Hotel) {
	h.ID = hotel.ID
	h.Name = hotel.Name
	h.Location = hotel.Location
	h.Status = hotel.Status
	h.RoomTypes = []roomTypeDto.RoomTypeResponse{}
	h.Metadata.FromModel(hotel.Metadata)
}

// WithRoomTypes nests the hotel's room types, each resolved on the given day.
func (h *HotelResponse) WithRoomTypes(roomTypes []roomTypeModel.RoomType, adjustments map[string][]raModel.RateAdjustment, on date.Date) {
	h.RoomTypes = roomTypeDto.FromModels(roomTypes, adjustments, on)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// FromModels groups roomTypes under their hotels and resolves each on the given day.
func (g *GetHotelsResponse) FromModels(hotels []model.Hotel, roomTypes []roomTypeModel.RoomType, adjustments map[string][]raModel.RateAdjustment, on date.Date, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byHotel := make(map[string][]roomTypeModel.RoomType, len(hotels))
	for _, roomType := range roomTypes {
		byHotel[roomType.HotelID] = append(byHotel[roomType.HotelID], roomType)
	}

	g.Hotels = make([]HotelResponse, len(hotels))
	for i, hotel := range hotels {
		g.Hotels[i].FromModel(hotel)
		g.Hotels[i].WithRoomTypes(byHotel[hotel.ID], adjustments, on)
	}
}

// RateSheet is the document published for a hotel: every room type resolved on one day.
type RateSheet struct {
	HotelID     string          `json:"hotel_id"`
	HotelName   string          `json:"hotel_name"`
	Location    string          `json:"location"`
	Date        date.Date       `json:"date"`
	GeneratedAt string          `json:"generated_at"`
	GeneratedBy string          `json:"generated_by"`
	Rates       []RateSheetLine `json:"rates"`
}

type RateSheetLine struct {
	RoomTypeID    string          `json:"room_type_id"`
	RoomTypeName  string          `json:"room_type_name"`
	BaseRate      decimal.Decimal `json:"base_rate"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

func (r *RateSheet) FromHotel(hotel HotelResponse, on date.Date, generatedAt, generatedBy string) {
	r.HotelID = hotel.ID
	r.HotelName = hotel.Name
	r.Location = hotel.Location
	r.Date = on
	r.GeneratedAt = generatedAt
	r.GeneratedBy = generatedBy

	r.Rates = make([]RateSheetLine, len(hotel.RoomTypes))
	for i, roomType := range hotel.RoomTypes {
		r.Rates[i] = RateSheetLine{
			RoomTypeID:    roomType.ID,
			RoomTypeName:  roomType.Name,
			BaseRate:      roomType.BaseRate,
			EffectiveRate: roomType.EffectiveRate,
		}
	}
}

type PublishRateSheetResponse struct {
	URL  string    `json:"url"`
	Date date.Date `json:"date"`
}

// WithdrawRateSheetRequest names a previously published sheet by the URL
// returned when it was published.
type WithdrawRateSheetRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// FilterFromRequest builds the listing filter from the name, location and
// status query parameters. Absent parameters add no condition.
func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := query.Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if location := query.Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
