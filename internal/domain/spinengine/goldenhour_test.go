package spinengine

import (
	"testing"
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_ResolveGoldenHour(t *testing.T) {
	now := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)

	morning := entity.GoldenHour{
		Base:       entity.Base{ID: "morning"},
		StartTime:  now.Add(-4 * time.Hour),
		EndTime:    now.Add(-2 * time.Hour),
		Multiplier: 2.0,
		Status:     entity.Active,
	}
	noon := entity.GoldenHour{
		Base:       entity.Base{ID: "noon"},
		StartTime:  now.Add(-time.Hour),
		EndTime:    now.Add(time.Hour),
		Multiplier: 3.0,
		Status:     entity.Active,
	}

	// Only the window containing now matches.
	hour, err := ResolveGoldenHour([]entity.GoldenHour{morning, noon}, now)
	require.NoError(t, err)
	require.NotNil(t, hour)
	require.Equal(t, "noon", hour.ID)

	// Outside all windows resolves to nil.
	hour, err = ResolveGoldenHour([]entity.GoldenHour{morning}, now)
	require.NoError(t, err)
	require.Nil(t, hour)

	// The start is inclusive, the end is exclusive.
	hour, err = ResolveGoldenHour([]entity.GoldenHour{noon}, noon.StartTime)
	require.NoError(t, err)
	require.NotNil(t, hour)

	hour, err = ResolveGoldenHour([]entity.GoldenHour{noon}, noon.EndTime)
	require.NoError(t, err)
	require.Nil(t, hour)
}

func Test_ResolveGoldenHour_SkipsInactive(t *testing.T) {
	now := time.Now()
	inactive := entity.GoldenHour{
		Base:       entity.Base{ID: "inactive"},
		StartTime:  now.Add(-time.Hour),
		EndTime:    now.Add(time.Hour),
		Multiplier: 2.0,
		Status:     entity.Inactive,
	}

	hour, err := ResolveGoldenHour([]entity.GoldenHour{inactive}, now)
	require.NoError(t, err)
	require.Nil(t, hour)
}

func Test_ResolveGoldenHour_OverlapIsAnError(t *testing.T) {
	now := time.Now()
	first := entity.GoldenHour{
		Base:      entity.Base{ID: "first"},
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		Status:    entity.Active,
	}
	second := entity.GoldenHour{
		Base:      entity.Base{ID: "second"},
		StartTime: now.Add(-30 * time.Minute),
		EndTime:   now.Add(30 * time.Minute),
		Status:    entity.Active,
	}

	_, err := ResolveGoldenHour([]entity.GoldenHour{first, second}, now)
	require.ErrorIs(t, err, ErrOverlappingGoldenHours)
}

func Test_Multiplier(t *testing.T) {
	require.Equal(t, 1.0, Multiplier(nil))
	require.Equal(t, 2.5, Multiplier(&entity.GoldenHour{Multiplier: 2.5}))
}
