package timezone

import (
	"fmt"
	"sync"
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
)

var location = sync.OnceValue(func() *time.Location {
	return LoadLocation(config.Get().App.Timezone)
})

// LoadLocation resolves an IANA zone name, using UTC when it is empty or unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Location returns the application timezone.
func Location() *time.Location {
	return location()
}

// Now returns the current instant in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

// Format renders an instant in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(location()).Format(layout)
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the stay date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
		}
	}

	return Date(t), nil
}

// Date truncates t to midnight UTC of its own calendar day.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a stay date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
