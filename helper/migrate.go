package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"
	"hotel/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionDrop    Direction = "drop"
	DirectionStepUp  Direction = "step-up"
	DirectionVersion Direction = "version"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

func ParseDirection(raw string) (Direction, error) {
	switch direction := Direction(raw); direction {
	case DirectionUp, DirectionDown, DirectionDrop, DirectionStepUp, DirectionVersion:
		return direction, nil
	default:
		return "", fmt.Errorf("%w %q: use up, down, drop, step-up or version", ErrUnknownDirection, raw)
	}
}

// DatabaseURL targets the write pool, since migrations need DDL rights.
func DatabaseURL(config *config.Config) string {
	return postgres.DSN(config, config.DB.Postgres.Write, url.Values{
		"x-migrations-table": {config.DB.Postgres.MigrationTable},
	})
}

func Migrate(config *config.Config, direction Direction) error {
	mig, err := migrate.New(migrationsSource, DatabaseURL(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if sourceErr, dbErr := mig.Close(); sourceErr != nil || dbErr != nil {
			log.Warn().AnErr("source", sourceErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionDrop:
		err = mig.Down()
	case DirectionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownDirection, direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", direction, err)
	}

	log.Info().Str("direction", string(direction)).Msg("Database migrations completed successfully")

	return nil
}

// AutoMigrate brings the schema up to date when DB_POSTGRES_AUTO_MIGRATE is set.
func AutoMigrate(config *config.Config) error {
	if !config.DB.Postgres.AutoMigrate {
		return nil
	}

	return Migrate(config, DirectionUp)
}
