package dto

import (
	"github.com/google/uuid"

	"royalpalace/internal/domains/room/model"
	"royalpalace/shared"
	gDto "royalpalace/shared/dto"
	gModel "royalpalace/shared/model"
	"royalpalace/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"required,max=10"`
	Floor      int    `json:"floor"        validate:"omitempty,min=0"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Status     string `json:"status"       validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		Floor:      c.Floor,
		Status:     status,
		RoomTypeID: c.RoomTypeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number"  json:"room_number"  validate:"omitempty,max=10"`
	Floor      *int   `db:"floor"        json:"floor"        validate:"omitempty,min=0"`
	Status     string `db:"status"       json:"status"       validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
}

type RoomResponse struct {
	ID           string   `json:"id"`
	RoomNumber   string   `json:"room_number"`
	Floor        int      `json:"floor"`
	Status       string   `json:"status"`
	RoomTypeID   string   `json:"room_type_id"`
	RoomTypeName string   `json:"room_type_name"`
	SingleRate   float64  `json:"single_rate"`
	DoubleRate   *float64 `json:"double_rate,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.Status = model.Status
	r.RoomTypeID = model.RoomTypeID
	r.RoomTypeName = model.RoomTypeName
	r.SingleRate = model.SingleRate
	r.DoubleRate = model.DoubleRate
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
