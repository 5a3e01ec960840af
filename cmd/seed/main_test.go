package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userModel "royalpalace/internal/domains/user/model"
)

func TestFilterByField(t *testing.T) {
	filter := filterByField(userModel.FieldEmail, "admin@royalpalace.com.np", userModel.TableName)

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(users.email = :email)", where)
	assert.Equal(t, "admin@royalpalace.com.np", args["email"])
}
