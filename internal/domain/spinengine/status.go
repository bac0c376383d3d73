package spinengine

import (
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
)

// The activation hierarchy flows downward: Region -> Province,
// Region+Event -> EventLocation -> Reward / ParticipantEvent. A child is
// never considered active while an ancestor is not, regardless of its stored
// status. The predicates here re-derive activity from the ancestors so that a
// stale stored status can never widen what is allowed.

func RegionActive(region *entity.Region) bool {
	return region.Status == entity.Active
}

func ProvinceActive(province *entity.Province, region *entity.Region) bool {
	return province.Status == entity.Active && RegionActive(region)
}

// EventActive requires an active status and the current time inside
// [StartTime, EndTime).
func EventActive(event *entity.Event, now time.Time) bool {
	if event.Status != entity.Active {
		return false
	}

	return !now.Before(event.StartTime) && now.Before(event.EndTime)
}

func LocationActive(
	location *entity.EventLocation,
	event *entity.Event,
	region *entity.Region,
	now time.Time,
) bool {
	return location.Status == entity.Active && EventActive(event, now) && RegionActive(region)
}

func RewardActive(
	reward *entity.Reward,
	location *entity.EventLocation,
	event *entity.Event,
	region *entity.Region,
	now time.Time,
) bool {
	return reward.Status == entity.Active && LocationActive(location, event, region, now)
}

func ParticipantEventActive(
	participantEvent *entity.ParticipantEvent,
	location *entity.EventLocation,
	event *entity.Event,
	region *entity.Region,
	participant *entity.Participant,
	now time.Time,
) bool {
	if participantEvent.Status != entity.Active {
		return false
	}

	if participant.Status != entity.Active {
		return false
	}

	return LocationActive(location, event, region, now)
}
