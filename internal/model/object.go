package model

type Region struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Province struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	RegionID string `json:"region_id"`
	Status   string `json:"status"`
}

type Event struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type EventLocation struct {
	ID                        string  `json:"id"`
	EventID                   string  `json:"event_id"`
	RegionID                  string  `json:"region_id"`
	MaxSpin                   int     `json:"max_spin"`
	TodaySpin                 int     `json:"today_spin"`
	DailySpinDistributingRate float64 `json:"daily_spin_distributing_rate"`
	Status                    string  `json:"status"`
}

type Participant struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	ProvinceID string `json:"province_id"`
	Status     string `json:"status"`
}

type ParticipantEvent struct {
	ID              string `json:"id"`
	EventLocationID string `json:"event_location_id"`
	ParticipantID   string `json:"participant_id"`
	SpinsRemaining  int    `json:"spins_remaining"`
	Status          string `json:"status"`
}

type Reward struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	EventLocationID string  `json:"event_location_id"`
	Quantity        int     `json:"quantity"`
	WinProbability  float64 `json:"win_probability"`
	Status          string  `json:"status"`
}

type RewardEvent struct {
	ID              string `json:"id"`
	EventLocationID string `json:"event_location_id"`
	RewardID        string `json:"reward_id"`
	Quantity        int    `json:"quantity"`
	TodayQuantity   int    `json:"today_quantity"`
	Remaining       int    `json:"remaining"`
}

type GoldenHour struct {
	ID              string  `json:"id"`
	EventLocationID string  `json:"event_location_id"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Multiplier      float64 `json:"multiplier"`
	Status          string  `json:"status"`
}

type SpinHistory struct {
	ID                 string `json:"id"`
	ParticipantEventID string `json:"participant_event_id"`
	SpinTime           string `json:"spin_time"`
	Win                bool   `json:"win"`
	RewardEventID      string `json:"reward_event_id,omitempty"`
	GoldenHourID       string `json:"golden_hour_id,omitempty"`
}
