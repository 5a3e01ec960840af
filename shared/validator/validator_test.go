package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"royalpalace/shared/failure"
	"royalpalace/shared/validator"
)

type createBookingBody struct {
	RoomID       string `json:"room_id"        validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	Adults       int    `json:"adults"         validate:"required,min=1"`
	Children     int    `json:"children"       validate:"omitempty,min=0"`
	Occupancy    string `json:"occupancy_type" validate:"omitempty,oneof=SINGLE DOUBLE"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"room_id":"r-1","check_in_date":"2026-09-01","check_out_date":"2026-09-04","adults":2,"occupancy_type":"DOUBLE"}`,
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing required field",
			body:    `{"check_in_date":"2026-09-01","check_out_date":"2026-09-04","adults":1}`,
			wantErr: "RoomID is required",
		},
		{
			name:    "adults below minimum",
			body:    `{"room_id":"r-1","check_in_date":"2026-09-01","check_out_date":"2026-09-04","adults":0}`,
			wantErr: "Adults is required",
		},
		{
			name:    "invalid occupancy",
			body:    `{"room_id":"r-1","check_in_date":"2026-09-01","check_out_date":"2026-09-04","adults":1,"occupancy_type":"TRIPLE"}`,
			wantErr: "Occupancy must be one of SINGLE DOUBLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createBookingBody{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("guest@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
