package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection holds the read and write pools. Transactions always run on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens both pools, retrying each up to DB_POSTGRES_MAX_RETRY times.
func New(cfg *config.Config) (*Connection, error) {
	write, err := connect(context.Background(), cfg, "write", cfg.DB.Postgres.Write)
	if err != nil {
		return nil, err
	}

	read, err := connect(context.Background(), cfg, "read", cfg.DB.Postgres.Read)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing database connection")
		}
	}
}

// DSN builds a postgres URL for endpoint, applying the configured database prefix.
// Extra query values are appended after sslmode.
func DSN(cfg *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     cfg.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(ctx context.Context, cfg *config.Config, name string, endpoint config.PostgresEndpoint) (*sqlx.DB, error) {
	pool := cfg.DB.Postgres
	attempts := max(pool.MaxRetry, 1)
	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", pool.Prefix+endpoint.Name).
		Logger()

	var lastErr error

	for attempt := range attempts {
		db, err := sqlx.ConnectContext(ctx, driverName, DSN(cfg, endpoint, nil))
		if err == nil {
			db.SetMaxOpenConns(pool.MaxOpenConns)
			db.SetMaxIdleConns(pool.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifeMin) * time.Minute)

			logger.Info().Msg("Connected to database")

			return db, nil
		}

		lastErr = err
		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pool.RetryWaitTime) * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to %s database after %d attempts: %w", name, attempts, lastErr)
}
