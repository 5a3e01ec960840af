package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"royalpalace/internal/domains/roomtype/model"
	"royalpalace/shared"
	gDto "royalpalace/shared/dto"
	gModel "royalpalace/shared/model"
	"royalpalace/shared/timezone"
)

type CreateRoomTypeRequest struct {
	Name         string                `json:"name"          validate:"required,max=100"`
	Description  string                `json:"description"   validate:"omitempty,max=2000"`
	SingleRate   float64               `json:"single_rate"   validate:"required,gt=0"`
	DoubleRate   *float64              `json:"double_rate"   validate:"omitempty,gt=0"`
	MaxOccupancy int                   `json:"max_occupancy" validate:"required,min=1"`
	Amenities    []string              `json:"amenities"     validate:"omitempty,dive,max=100"`
	Image        *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	Active       *bool                 `json:"active"        validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user, imageURL string) model.RoomType {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomType{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Description:  c.Description,
		SingleRate:   c.SingleRate,
		DoubleRate:   c.DoubleRate,
		MaxOccupancy: c.MaxOccupancy,
		Amenities:    pq.StringArray(c.Amenities),
		Image:        imageURL,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name         string                `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Description  string                `db:"description"   json:"description"   validate:"omitempty,max=2000"`
	SingleRate   *float64              `db:"single_rate"   json:"single_rate"   validate:"omitempty,gt=0"`
	DoubleRate   *float64              `db:"double_rate"   json:"double_rate"   validate:"omitempty,gt=0"`
	MaxOccupancy *int                  `db:"max_occupancy" json:"max_occupancy" validate:"omitempty,min=1"`
	Amenities    pq.StringArray        `db:"amenities"     json:"amenities"     validate:"omitempty,dive,max=100"`
	Image        *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	Active       *bool                 `db:"active"        json:"active"        validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	SingleRate   float64  `json:"single_rate"`
	DoubleRate   *float64 `json:"double_rate,omitempty"`
	MaxOccupancy int      `json:"max_occupancy"`
	Amenities    []string `json:"amenities"`
	Image        string   `json:"image"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.SingleRate = model.SingleRate
	r.DoubleRate = model.DoubleRate
	r.MaxOccupancy = model.MaxOccupancy
	r.Amenities = model.Amenities
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
