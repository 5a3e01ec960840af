package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"royalpalace/shared/constant"
	"royalpalace/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, ConvertStringToBool(""))
	assert.Nil(t, ConvertStringToBool("not-a-bool"))

	truthy := ConvertStringToBool("true")
	if assert.NotNil(t, truthy) {
		assert.True(t, *truthy)
	}

	falsy := ConvertStringToBool("false")
	if assert.NotNil(t, falsy) {
		assert.False(t, *falsy)
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "empty result", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, CalculateTotalPage(test.total, test.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name   string `db:"name"`
		Phone  string `db:"phone"`
		Hidden string
	}

	fields := TransformFields(update{Name: "Sita Sharma", Hidden: "ignored"}, "admin@royalpalace.test")

	assert.Equal(t, "Sita Sharma", fields["name"])
	assert.NotContains(t, fields, "phone")
	assert.Equal(t, "admin@royalpalace.test", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	filter := FilterByID("b7f9", "id", "bookings")

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, "b7f9", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:b7f9", BuildCacheKey("booking:get", "b7f9"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := FilterByID("CONFIRMED", "status", "bookings")

	first := BuildCacheKeyWithQuery("booking:all", params, filter)
	second := BuildCacheKeyWithQuery("booking:all", params, filter)
	assert.Equal(t, first, second)

	params.Page = 2
	assert.NotEqual(t, first, BuildCacheKeyWithQuery("booking:all", params, filter))
}
