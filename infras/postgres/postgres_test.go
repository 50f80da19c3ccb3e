package postgres_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/postgres"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"

	endpoint := config.PostgresEndpoint{
		Host:     "replica.internal",
		Port:     "6432",
		Username: "reader",
		Password: "s3cr#t",
		Name:     "hotel",
		Timezone: "Asia/Jakarta",
		SSLMode:  "require",
	}

	parsed, err := url.Parse(postgres.DSN(cfg, endpoint, url.Values{"application_name": {"hotel"}}))
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "replica.internal:6432", parsed.Host)
	assert.Equal(t, "/staging_hotel", parsed.Path)
	assert.Equal(t, "s3cr#t", password)
	assert.Equal(t, "require", parsed.Query().Get("sslmode"))
	assert.Equal(t, "Asia/Jakarta", parsed.Query().Get("timezone"))
	assert.Equal(t, "hotel", parsed.Query().Get("application_name"))
}

func TestDSN_OmitsEmptyTimezone(t *testing.T) {
	parsed, err := url.Parse(postgres.DSN(&config.Config{}, config.PostgresEndpoint{Host: "db", Port: "5432", SSLMode: "disable"}, nil))
	require.NoError(t, err)

	assert.False(t, parsed.Query().Has("timezone"))
}
