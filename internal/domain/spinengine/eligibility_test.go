package spinengine

import (
	"testing"
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

type eligibilityFixture struct {
	participantEvent *entity.ParticipantEvent
	location         *entity.EventLocation
	event            *entity.Event
	region           *entity.Region
	participant      *entity.Participant
	now              time.Time
}

func activeFixture() eligibilityFixture {
	now := time.Now()
	return eligibilityFixture{
		participantEvent: &entity.ParticipantEvent{SpinsRemaining: 5, Status: entity.Active},
		location:         &entity.EventLocation{Status: entity.Active},
		event: &entity.Event{
			StartTime: now.Add(-time.Hour),
			EndTime:   now.Add(time.Hour),
			Status:    entity.Active,
		},
		region:      &entity.Region{Status: entity.Active},
		participant: &entity.Participant{Status: entity.Active},
		now:         now,
	}
}

func (f eligibilityFixture) canSpin() Reason {
	return CanSpin(f.participantEvent, f.location, f.event, f.region, f.participant, f.now)
}

func Test_CanSpin(t *testing.T) {
	f := activeFixture()
	require.Equal(t, ReasonNone, f.canSpin())

	// Any inactive entity in the chain blocks the spin.
	f = activeFixture()
	f.region.Status = entity.Inactive
	require.Equal(t, ReasonInactiveEntity, f.canSpin())

	f = activeFixture()
	f.participant.Status = entity.Deleted
	require.Equal(t, ReasonInactiveEntity, f.canSpin())

	f = activeFixture()
	f.participantEvent.Status = entity.Inactive
	require.Equal(t, ReasonInactiveEntity, f.canSpin())

	f = activeFixture()
	f.location.Status = entity.Draft
	require.Equal(t, ReasonInactiveEntity, f.canSpin())

	f = activeFixture()
	f.event.Status = entity.Archived
	require.Equal(t, ReasonInactiveEntity, f.canSpin())
}

func Test_CanSpin_EventWindow(t *testing.T) {
	// Before the event starts.
	f := activeFixture()
	f.now = f.event.StartTime.Add(-time.Minute)
	require.Equal(t, ReasonIneligible, f.canSpin())

	// The end is exclusive.
	f = activeFixture()
	f.now = f.event.EndTime
	require.Equal(t, ReasonIneligible, f.canSpin())

	// The start is inclusive.
	f = activeFixture()
	f.now = f.event.StartTime
	require.Equal(t, ReasonNone, f.canSpin())
}

func Test_CanSpin_Exhausted(t *testing.T) {
	f := activeFixture()
	f.participantEvent.SpinsRemaining = 0
	require.Equal(t, ReasonExhausted, f.canSpin())
}

func Test_StatusPredicates_DeriveFromAncestors(t *testing.T) {
	now := time.Now()
	region := &entity.Region{Status: entity.Inactive}
	province := &entity.Province{Status: entity.Active}
	event := &entity.Event{
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		Status:    entity.Active,
	}
	location := &entity.EventLocation{Status: entity.Active}

	// A stale active status on a child never widens what is allowed.
	require.False(t, ProvinceActive(province, region))
	require.False(t, LocationActive(location, event, region, now))

	region.Status = entity.Active
	require.True(t, ProvinceActive(province, region))
	require.True(t, LocationActive(location, event, region, now))
}
