package model

type CreateParticipantRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ProvinceID string `json:"province_id"`
}

type CreateParticipantResponse struct {
	ID string `json:"id"`
}

type GetParticipantRequest struct {
	Code string `json:"code" form:"code"`
}

type GetParticipantResponse struct {
	Participant       Participant        `json:"participant"`
	ParticipantEvents []ParticipantEvent `json:"participant_events"`
}

type SetParticipantStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetParticipantStatusResponse struct{}

type CreateParticipantEventRequest struct {
	EventLocationID string `json:"event_location_id"`
	ParticipantID   string `json:"participant_id"`
	SpinsRemaining  int    `json:"spins_remaining"`
}

type CreateParticipantEventResponse struct {
	ID string `json:"id"`
}

type SetParticipantEventStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetParticipantEventStatusResponse struct{}
