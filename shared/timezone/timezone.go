package timezone

import (
	"time"

	"hoteladmin/config"
	"hoteladmin/shared/date"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
)

func init() {
	cfg := config.Get()

	if err := SetLocation(cfg.App.Timezone); err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")

		return
	}

	log.Info().
		Str("timezone", appLocation.String()).
		Msg("Application timezone initialized")
}

// SetLocation switches the application timezone. An empty name selects UTC.
func SetLocation(name string) error {
	if name == "" {
		appLocation = time.UTC

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation = time.UTC

		return err //nolint:wrapcheck
	}

	appLocation = loc

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// Today returns the calendar date the hotel observes right now. Rates
// without an explicit query date are resolved against it.
func Today() date.Date {
	return date.Of(Now())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
