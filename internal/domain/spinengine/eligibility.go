package spinengine

import (
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
)

// Reason classifies why a spin attempt is not permitted. Reasons are reported
// outcomes, never errors.
type Reason string

const (
	ReasonNone Reason = ""

	// ReasonInactiveEntity: the participant event or one of its ancestors
	// is not active.
	ReasonInactiveEntity Reason = "inactive_entity"

	// ReasonIneligible: everything is active but the event is outside its
	// time window.
	ReasonIneligible Reason = "ineligible"

	// ReasonExhausted: no remaining spins.
	ReasonExhausted Reason = "exhausted"
)

// CanSpin is a pure query: it decides whether a spin attempt is permitted
// right now and returns ReasonNone if so. It performs no writes.
func CanSpin(
	participantEvent *entity.ParticipantEvent,
	location *entity.EventLocation,
	event *entity.Event,
	region *entity.Region,
	participant *entity.Participant,
	now time.Time,
) Reason {
	if participantEvent.Status != entity.Active ||
		participant.Status != entity.Active ||
		location.Status != entity.Active ||
		region.Status != entity.Active ||
		event.Status != entity.Active {
		return ReasonInactiveEntity
	}

	if !EventActive(event, now) {
		return ReasonIneligible
	}

	if participantEvent.SpinsRemaining <= 0 {
		return ReasonExhausted
	}

	return ReasonNone
}
