package dto

import (
	"time"

	"github.com/google/uuid"

	"royalpalace/internal/domains/booking/model"
	"royalpalace/internal/domains/booking/pricing"
	"royalpalace/shared"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	gModel "royalpalace/shared/model"
	"royalpalace/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID          string  `json:"room_id"          validate:"required,uuid"`
	CheckIn         string  `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string  `json:"check_out"        validate:"required,datetime=2006-01-02"`
	Adults          int     `json:"adults"           validate:"required,min=1,max=10"`
	Children        int     `json:"children"         validate:"omitempty,min=0,max=10"`
	Occupancy       string  `json:"occupancy"        validate:"required,oneof=SINGLE DOUBLE"`
	ExtraBed        bool    `json:"extra_bed"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=500"`
}

// Dates parses the stay window. Validation guarantees the layout, so a parse
// failure here means the validator was bypassed.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return
}

func (c *CreateBookingRequest) ToModel(userID, referenceCode, actor string, checkIn, checkOut time.Time, quote pricing.Quote) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		ReferenceCode:   referenceCode,
		UserID:          userID,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          c.Adults,
		Children:        c.Children,
		Occupancy:       c.Occupancy,
		ExtraBed:        c.ExtraBed,
		SpecialRequests: c.SpecialRequests,
		Nights:          quote.Nights,
		NightlyRate:     quote.NightlyRate,
		TotalAmount:     quote.Total,
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CANCELLED COMPLETED"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	ReferenceCode   string  `json:"reference_code"`
	UserID          string  `json:"user_id"`
	GuestName       string  `json:"guest_name,omitempty"`
	GuestEmail      string  `json:"guest_email,omitempty"`
	RoomID          string  `json:"room_id"`
	RoomNumber      string  `json:"room_number,omitempty"`
	RoomTypeName    string  `json:"room_type_name,omitempty"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Occupancy       string  `json:"occupancy"`
	ExtraBed        bool    `json:"extra_bed"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Nights          int     `json:"nights"`
	NightlyRate     float64 `json:"nightly_rate"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.ReferenceCode = model.ReferenceCode
	b.UserID = model.UserID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.RoomID = model.RoomID
	b.RoomNumber = model.RoomNumber
	b.RoomTypeName = model.RoomTypeName
	b.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	b.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	b.Adults = model.Adults
	b.Children = model.Children
	b.Occupancy = model.Occupancy
	b.ExtraBed = model.ExtraBed
	b.SpecialRequests = model.SpecialRequests
	b.Nights = model.Nights
	b.NightlyRate = model.NightlyRate
	b.TotalAmount = model.TotalAmount
	b.Status = model.Status
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}
