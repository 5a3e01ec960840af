package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadsEmbeddedTable(t *testing.T) {
	data := Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	t.Run("public endpoint is skipped", func(t *testing.T) {
		permission := data.FindPermissions("/v1/auth/login", http.MethodPost)

		assert.True(t, permission.Skip)
	})

	t.Run("admin endpoint names its role", func(t *testing.T) {
		permission := data.FindPermissions("/v1/users", http.MethodGet)

		assert.False(t, permission.Skip)
		assert.Equal(t, []string{"ADMIN"}, permission.Roles)
	})

	t.Run("booking endpoints allow both roles", func(t *testing.T) {
		permission := data.FindPermissions("/v1/bookings/{id}/status", http.MethodPatch)

		assert.ElementsMatch(t, []string{"ADMIN", "USER"}, permission.Roles)
	})

	t.Run("unknown route yields zero permission", func(t *testing.T) {
		permission := data.FindPermissions("/v1/unknown", http.MethodGet)

		assert.False(t, permission.Skip)
		assert.Empty(t, permission.Roles)
	})
}
