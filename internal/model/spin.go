package model

import "time"

type SpinRequest struct {
	ParticipantEventID string `json:"participant_event_id"`
}

// SpinResponse reports either a committed spin (with its win/loss outcome) or
// a structured rejection. A loss is not a rejection.
type SpinResponse struct {
	Rejected    bool         `json:"rejected"`
	Reason      string       `json:"reason,omitempty"`
	Win         bool         `json:"win"`
	Reward      *Reward      `json:"reward,omitempty"`
	SpinHistory *SpinHistory `json:"spin_history,omitempty"`
}

type CanSpinRequest struct {
	ParticipantEventID string `json:"participant_event_id" form:"participant_event_id"`
}

type CanSpinResponse struct {
	CanSpin bool   `json:"can_spin"`
	Reason  string `json:"reason,omitempty"`
}

type GetActiveGoldenHourRequest struct {
	EventLocationID string    `json:"event_location_id" form:"event_location_id"`
	Timestamp       time.Time `json:"timestamp" form:"timestamp"`
}

type GetActiveGoldenHourResponse struct {
	GoldenHour *GoldenHour `json:"golden_hour,omitempty"`
}

type GetRemainingQuantityRequest struct {
	RewardEventID string `json:"reward_event_id" form:"reward_event_id"`
}

type GetRemainingQuantityResponse struct {
	RewardEvent RewardEvent `json:"reward_event"`
	Remaining   int         `json:"remaining"`
}

type GetSpinHistoriesRequest struct {
	ParticipantEventID string `json:"participant_event_id" form:"participant_event_id"`
}

type GetSpinHistoriesResponse struct {
	Histories []SpinHistory `json:"histories"`
}
