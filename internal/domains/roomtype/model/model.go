package model

import (
	"hoteladmin/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID       = "id"
	FieldHotelID  = "hotel_id"
	FieldName     = "name"
	FieldBaseRate = "base_rate"
)

// RoomType belongs to exactly one hotel for its whole life.
type RoomType struct {
	ID       string          `db:"id"`
	HotelID  string          `db:"hotel_id"`
	Name     string          `db:"name"`
	BaseRate decimal.Decimal `db:"base_rate"`
	model.Metadata
}
