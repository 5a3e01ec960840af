package model

import (
	"fmt"
	"math/rand"
	"time"

	roomModel "royalpalace/internal/domains/room/model"
	roomTypeModel "royalpalace/internal/domains/roomtype/model"
	userModel "royalpalace/internal/domains/user/model"
	"royalpalace/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldReferenceCode   = "reference_code"
	FieldUserID          = "user_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldAdults          = "adults"
	FieldChildren        = "children"
	FieldOccupancy       = "occupancy"
	FieldExtraBed        = "extra_bed"
	FieldSpecialRequests = "special_requests"
	FieldNights          = "nights"
	FieldNightlyRate     = "nightly_rate"
	FieldTotalAmount     = "total_amount"
	FieldStatus          = "status"
)

// Booking lifecycle. CONFIRMED is the only initial state; both other states
// are terminal.
const (
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

const (
	OccupancySingle = "SINGLE"
	OccupancyDouble = "DOUBLE"
)

// CanTransition reports whether a booking may move from one status to
// another. Terminal states never transition again.
func CanTransition(from, to string) bool {
	if from != StatusConfirmed {
		return false
	}

	return to == StatusCancelled || to == StatusCompleted
}

// IsTerminal reports whether the status frees the booked room.
func IsTerminal(status string) bool {
	return status == StatusCancelled || status == StatusCompleted
}

type Booking struct {
	ID              string    `db:"id"`
	ReferenceCode   string    `db:"reference_code"`
	UserID          string    `db:"user_id"`
	RoomID          string    `db:"room_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Adults          int       `db:"adults"`
	Children        int       `db:"children"`
	Occupancy       string    `db:"occupancy"`
	ExtraBed        bool      `db:"extra_bed"`
	SpecialRequests *string   `db:"special_requests"`
	Nights          int       `db:"nights"`
	NightlyRate     float64   `db:"nightly_rate"`
	TotalAmount     float64   `db:"total_amount"`
	Status          string    `db:"status"`
	RoomNumber      string    `db:"room_number"    table:"rooms"`
	RoomTypeName    string    `db:"room_type_name" table:"room_types" column:"name"`
	GuestName       string    `db:"guest_name"     table:"users"      column:"name"`
	GuestEmail      string    `db:"guest_email"    table:"users"      column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN %s ON %s.%s = %s.%s JOIN %s ON %s.%s = %s.%s JOIN %s ON %s.%s = %s.%s",
		roomModel.TableName,
		TableName, FieldRoomID,
		roomModel.TableName, roomModel.FieldID,
		roomTypeModel.TableName,
		roomModel.TableName, roomModel.FieldRoomTypeID,
		roomTypeModel.TableName, roomTypeModel.FieldID,
		userModel.TableName,
		TableName, FieldUserID,
		userModel.TableName, userModel.FieldID,
	)
}

// NewReferenceCode builds the short code printed on confirmations: prefix,
// the last six digits of the creation time in unix milliseconds, and a
// three-digit random component. Uniqueness is carried by the booking id, not
// this code.
func NewReferenceCode(prefix string) string {
	millis := time.Now().UnixMilli() % 1_000_000

	return fmt.Sprintf("%s%06d%03d", prefix, millis, rand.Intn(1000))
}
