package model

import "time"

type CreateEventRequest struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type CreateEventResponse struct {
	ID string `json:"id"`
}

type GetEventRequest struct {
	Code string `json:"code" form:"code"`
}

type GetEventResponse struct {
	Event     Event           `json:"event"`
	Locations []EventLocation `json:"locations"`
}

type SetEventStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetEventStatusResponse struct{}

type CreateEventLocationRequest struct {
	EventID                   string  `json:"event_id"`
	RegionID                  string  `json:"region_id"`
	MaxSpin                   int     `json:"max_spin"`
	DailySpinDistributingRate float64 `json:"daily_spin_distributing_rate"`
}

type CreateEventLocationResponse struct {
	ID string `json:"id"`
}

type SetEventLocationStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetEventLocationStatusResponse struct{}

type CreateGoldenHourRequest struct {
	EventLocationID string    `json:"event_location_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Multiplier      float64   `json:"multiplier"`
}

type CreateGoldenHourResponse struct {
	ID string `json:"id"`
}

type CreateRewardRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	EventLocationID string  `json:"event_location_id"`
	Quantity        int     `json:"quantity"`
	WinProbability  float64 `json:"win_probability"`
}

type CreateRewardResponse struct {
	ID string `json:"id"`
}

type SetRewardStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetRewardStatusResponse struct{}

type CreateRewardEventRequest struct {
	EventLocationID string `json:"event_location_id"`
	RewardID        string `json:"reward_id"`
	Quantity        int    `json:"quantity"`
	TodayQuantity   int    `json:"today_quantity"`
}

type CreateRewardEventResponse struct {
	ID string `json:"id"`
}
