package model

import (
	"fmt"

	"royalpalace/shared/model"

	roomTypeModel "royalpalace/internal/domains/roomtype/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldRoomTypeID = "room_type_id"
)

// Room occupancy states. A room moves to StatusOccupied when a booking is
// confirmed against it and returns to StatusAvailable when that booking is
// cancelled or completed. StatusMaintenance is set manually and is never
// touched by the booking flow.
const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
)

type Room struct {
	ID           string   `db:"id"`
	RoomNumber   string   `db:"room_number"`
	Floor        int      `db:"floor"`
	Status       string   `db:"status"`
	RoomTypeID   string   `db:"room_type_id"`
	RoomTypeName string   `db:"room_type_name" table:"room_types" column:"name"`
	SingleRate   float64  `db:"single_rate"    table:"room_types"`
	DoubleRate   *float64 `db:"double_rate"    table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s",
		roomTypeModel.TableName,
		TableName, FieldRoomTypeID,
		roomTypeModel.TableName, roomTypeModel.FieldID,
	)
}
