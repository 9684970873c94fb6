package timeutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/imishinist/rlboard/internal/models"
)

// Layouts tried, in order, when parsing a time column cell.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ValidateTimeConfig checks resolution and alignment. An empty resolution
// disables alignment.
func ValidateTimeConfig(config models.TimeConfig) error {
	if config.Resolution == "" {
		return nil
	}
	if _, err := resolutionDuration(config.Resolution); err != nil {
		return err
	}
	switch config.Alignment {
	case "floor", "ceil", "round":
		return nil
	default:
		return fmt.Errorf("unsupported alignment: %s", config.Alignment)
	}
}

func resolutionDuration(resolution string) (time.Duration, error) {
	switch resolution {
	case "1m":
		return time.Minute, nil
	case "5m":
		return 5 * time.Minute, nil
	case "1h":
		return time.Hour, nil
	default:
		return 0, fmt.Errorf("unsupported resolution: %s", resolution)
	}
}

// AlignTimestamp aligns timestamp to the specified resolution and alignment
func AlignTimestamp(t time.Time, resolution string, alignment string) (time.Time, error) {
	duration, err := resolutionDuration(resolution)
	if err != nil {
		return t, err
	}

	// Truncate to the resolution
	aligned := t.Truncate(duration)

	switch alignment {
	case "floor":
		return aligned, nil
	case "ceil":
		if t.After(aligned) {
			return aligned.Add(duration), nil
		}
		return aligned, nil
	case "round":
		half := duration / 2
		if t.Sub(aligned) >= half {
			return aligned.Add(duration), nil
		}
		return aligned, nil
	default:
		return t, fmt.Errorf("unsupported alignment: %s", alignment)
	}
}

// ParseInstant interprets a time column cell. Date-times become InstantTime,
// plain numbers (epoch or step indices) become InstantOrdinal and anything
// else is InstantMissing.
func ParseInstant(s string) models.Instant {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Instant{}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Instant{Kind: models.InstantOrdinal, Ordinal: f}
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.Instant{Kind: models.InstantTime, Time: t}
		}
	}

	return models.Instant{}
}

// CoerceColumn parses the configured time column of every row of table. Rows
// are returned in table order; when the column is absent every instant is
// missing.
func CoerceColumn(table *models.Table, config models.TimeConfig) ([]models.Instant, error) {
	if err := ValidateTimeConfig(config); err != nil {
		return nil, err
	}

	instants := make([]models.Instant, len(table.Rows))
	if table.ColumnIndex(config.Column) < 0 {
		return instants, nil
	}

	for i := range table.Rows {
		instant := ParseInstant(table.Value(i, config.Column))
		if instant.Kind == models.InstantTime && config.Resolution != "" {
			aligned, err := AlignTimestamp(instant.Time, config.Resolution, config.Alignment)
			if err != nil {
				return nil, err
			}
			instant.Time = aligned
		}
		instants[i] = instant
	}

	return instants, nil
}
