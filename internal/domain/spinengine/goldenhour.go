package spinengine

import (
	"errors"
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
)

// ErrOverlappingGoldenHours means the no-overlap invariant of a location's
// golden hours has been violated. Resolution must not silently pick one of
// the windows.
var ErrOverlappingGoldenHours = errors.New("overlapping active golden hours")

// ResolveGoldenHour finds the active window containing now among the given
// golden hours, or nil if there is none. Callers pass all active windows of
// one location; finding more than one match is a data-integrity error.
func ResolveGoldenHour(hours []entity.GoldenHour, now time.Time) (*entity.GoldenHour, error) {
	var found *entity.GoldenHour
	for i := range hours {
		hour := &hours[i]
		if hour.Status != entity.Active {
			continue
		}

		if now.Before(hour.StartTime) || !now.Before(hour.EndTime) {
			continue
		}

		if found != nil {
			return nil, ErrOverlappingGoldenHours
		}

		found = hour
	}

	return found, nil
}

// Multiplier returns the multiplier of the resolved window, or 1.0 outside
// all windows.
func Multiplier(hour *entity.GoldenHour) float64 {
	if hour == nil {
		return 1.0
	}

	return hour.Multiplier
}
