package model

import "hoteladmin/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldStatus   = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Hotel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Status   string `db:"status"`
	model.Metadata
}
