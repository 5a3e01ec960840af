package model

import (
	"github.com/lib/pq"

	"royalpalace/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldSingleRate   = "single_rate"
	FieldDoubleRate   = "double_rate"
	FieldMaxOccupancy = "max_occupancy"
	FieldAmenities    = "amenities"
	FieldImage        = "image"
	FieldActive       = "active"
)

// RoomType is a bookable category such as Deluxe or Royal Suite. SingleRate
// is the nightly rate in the hotel currency; DoubleRate is optional and
// falls back to SingleRate when absent. Extra bed pricing is a global config
// value, not a per-type column.
type RoomType struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	SingleRate   float64        `db:"single_rate"`
	DoubleRate   *float64       `db:"double_rate"`
	MaxOccupancy int            `db:"max_occupancy"`
	Amenities    pq.StringArray `db:"amenities"`
	Image        string         `db:"image"`
	Active       bool           `db:"active"`
	model.Metadata
}
