package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/permissions"
	"hotel/shared/constant"
)

func TestGet(t *testing.T) {
	table := permissions.Get()
	require.NotNil(t, table)

	assert.True(t, table.Public(http.MethodGet, "/health"))
	assert.True(t, table.Public(http.MethodGet, "/v1/rooms/{id}"))
	assert.True(t, table.Public(http.MethodPost, "/v1/auth/login"))
	assert.False(t, table.Public(http.MethodPost, "/v1/bookings/"))

	for _, route := range []string{"/v1/rooms", "/v1/rooms/"} {
		create, ok := table.Lookup(http.MethodPost, route)
		require.True(t, ok, route)
		assert.True(t, create.Allows(constant.RoleAdmin))
		assert.False(t, create.Allows(constant.RoleUser))

		assert.True(t, table.Public(http.MethodGet, route))
	}

	for _, route := range []string{"/v1/bookings", "/v1/bookings/", "/v1/users", "/v1/users/"} {
		listing, ok := table.Lookup(http.MethodGet, route)
		require.True(t, ok, route)
		assert.False(t, listing.Allows(constant.RoleUser), route)
	}

	_, ok := table.Lookup(http.MethodDelete, "/v1/bookings/{id}")
	assert.False(t, ok)

	promote, ok := table.Lookup(http.MethodPatch, "/v1/users/{id}")
	require.True(t, ok)
	assert.False(t, promote.Allows(constant.RoleAdmin))
}

func TestParse(t *testing.T) {
	t.Run("duplicate route", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[
			{"path":"/v1/rooms/","method":"GET","skip":true},
			{"path":"/v1/rooms/","method":"get"}
		]}`))

		assert.ErrorContains(t, err, "duplicate permission for GET /v1/rooms")
	})

	t.Run("trailing slash is the same route", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[
			{"path":"/v1/rooms","method":"GET","skip":true},
			{"path":"/v1/rooms/","method":"GET"}
		]}`))

		assert.ErrorContains(t, err, "duplicate permission for GET /v1/rooms")
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":`))

		assert.Error(t, err)
	})

	t.Run("skip all", func(t *testing.T) {
		table, err := permissions.Parse([]byte(`{"skip":true,"endpoints":[]}`))
		require.NoError(t, err)

		assert.True(t, table.Public(http.MethodDelete, "/anything"))
	})
}

func TestPermission_Allows(t *testing.T) {
	tests := []struct {
		name       string
		permission permissions.Permission
		role       string
		want       bool
	}{
		{name: "public", permission: permissions.Permission{Skip: true}, role: "", want: true},
		{name: "any authenticated", permission: permissions.Permission{}, role: constant.RoleUser, want: true},
		{name: "listed role", permission: permissions.Permission{Roles: []string{constant.RoleAdmin}}, role: constant.RoleAdmin, want: true},
		{name: "unlisted role", permission: permissions.Permission{Roles: []string{constant.RoleAdmin}}, role: constant.RoleUser, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.permission.Allows(tt.role))
		})
	}
}
