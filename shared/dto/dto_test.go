package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"royalpalace/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "CONFIRMED",
				Table:    "bookings",
			},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "CONFIRMED"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "email",
				Operator: dto.FilterOperatorEq,
				Value:    "guest@example.com",
			},
			wantWhere: "email = :email",
			wantArgs:  map[string]any{"email": "guest@example.com"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "booking_status",
				Field:    "status",
				Operator: dto.FilterOperatorNotEq,
				Value:    "CANCELLED",
				Table:    "bookings",
			},
			wantWhere: "bookings.status != :booking_status",
			wantArgs:  map[string]any{"booking_status": "CANCELLED"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "rate_double",
				Operator: dto.FilterIsNull,
				Table:    "room_types",
			},
			wantWhere: "room_types.rate_double IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilter_GetWhereClause_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Operator: dto.FilterOperatorIn,
		Value:    []string{"CANCELLED", "COMPLETED"},
		Table:    "bookings",
	}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "bookings.status IN (:status_0, :status_1) ", where)
	assert.Equal(t, map[string]any{"status_0": "CANCELLED", "status_1": "COMPLETED"}, args)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: "u-1", Table: "bookings"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "CONFIRMED", Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.user_id = :user_id AND bookings.status = :status)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		want           dto.QueryParams
	}{
		{
			name:           "explicit values",
			url:            "/v1/bookings?page=2&limit=25&sort_by=check_in_date&sort_dir=asc",
			defaultRequest: false,
			want:           dto.QueryParams{Page: 2, Limit: 25, SortBy: "check_in_date", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			url:            "/v1/bookings",
			defaultRequest: true,
			want:           dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "invalid values ignored",
			url:            "/v1/bookings?page=abc&limit=-3&sort_dir=sideways",
			defaultRequest: true,
			want:           dto.QueryParams{Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			q := dto.QueryParams{}
			q.FromRequest(r, tt.defaultRequest)

			assert.Equal(t, tt.want, q)
		})
	}
}
