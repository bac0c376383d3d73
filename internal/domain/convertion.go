package domain

import (
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/model"
)

const defaultTimeLayout string = time.RFC3339Nano

func convertRegion(region *entity.Region) model.Region {
	if region == nil {
		return model.Region{}
	}

	return model.Region{
		ID:     region.ID,
		Code:   region.Code,
		Name:   region.Name,
		Status: string(region.Status),
	}
}

func convertProvince(province *entity.Province) model.Province {
	if province == nil {
		return model.Province{}
	}

	return model.Province{
		ID:       province.ID,
		Code:     province.Code,
		Name:     province.Name,
		RegionID: province.RegionID,
		Status:   string(province.Status),
	}
}

func convertEvent(event *entity.Event) model.Event {
	if event == nil {
		return model.Event{}
	}

	return model.Event{
		ID:        event.ID,
		Code:      event.Code,
		Name:      event.Name,
		StartTime: event.StartTime.Format(defaultTimeLayout),
		EndTime:   event.EndTime.Format(defaultTimeLayout),
		Status:    string(event.Status),
	}
}

func convertEventLocation(location *entity.EventLocation) model.EventLocation {
	if location == nil {
		return model.EventLocation{}
	}

	return model.EventLocation{
		ID:                        location.ID,
		EventID:                   location.EventID,
		RegionID:                  location.RegionID,
		MaxSpin:                   location.MaxSpin,
		TodaySpin:                 location.TodaySpin,
		DailySpinDistributingRate: location.DailySpinDistributingRate,
		Status:                    string(location.Status),
	}
}

func convertParticipant(participant *entity.Participant) model.Participant {
	if participant == nil {
		return model.Participant{}
	}

	return model.Participant{
		ID:         participant.ID,
		Code:       participant.Code,
		Name:       participant.Name,
		ProvinceID: participant.ProvinceID,
		Status:     string(participant.Status),
	}
}

func convertParticipantEvent(participantEvent *entity.ParticipantEvent) model.ParticipantEvent {
	if participantEvent == nil {
		return model.ParticipantEvent{}
	}

	return model.ParticipantEvent{
		ID:              participantEvent.ID,
		EventLocationID: participantEvent.EventLocationID,
		ParticipantID:   participantEvent.ParticipantID,
		SpinsRemaining:  participantEvent.SpinsRemaining,
		Status:          string(participantEvent.Status),
	}
}

func convertReward(reward *entity.Reward) model.Reward {
	if reward == nil {
		return model.Reward{}
	}

	return model.Reward{
		ID:              reward.ID,
		Code:            reward.Code,
		Name:            reward.Name,
		EventLocationID: reward.EventLocationID,
		Quantity:        reward.Quantity,
		WinProbability:  reward.WinProbability,
		Status:          string(reward.Status),
	}
}

func convertRewardEvent(rewardEvent *entity.RewardEvent) model.RewardEvent {
	if rewardEvent == nil {
		return model.RewardEvent{}
	}

	return model.RewardEvent{
		ID:              rewardEvent.ID,
		EventLocationID: rewardEvent.EventLocationID,
		RewardID:        rewardEvent.RewardID,
		Quantity:        rewardEvent.Quantity,
		TodayQuantity:   rewardEvent.TodayQuantity,
		Remaining:       rewardEvent.Quantity - rewardEvent.WonQuantity,
	}
}

func convertGoldenHour(goldenHour *entity.GoldenHour) model.GoldenHour {
	if goldenHour == nil {
		return model.GoldenHour{}
	}

	return model.GoldenHour{
		ID:              goldenHour.ID,
		EventLocationID: goldenHour.EventLocationID,
		StartTime:       goldenHour.StartTime.Format(defaultTimeLayout),
		EndTime:         goldenHour.EndTime.Format(defaultTimeLayout),
		Multiplier:      goldenHour.Multiplier,
		Status:          string(goldenHour.Status),
	}
}

func convertSpinHistory(history *entity.SpinHistory) model.SpinHistory {
	if history == nil {
		return model.SpinHistory{}
	}

	result := model.SpinHistory{
		ID:                 history.ID,
		ParticipantEventID: history.ParticipantEventID,
		SpinTime:           history.SpinTime.Format(defaultTimeLayout),
		Win:                history.Win,
	}

	if history.RewardEventID.Valid {
		result.RewardEventID = history.RewardEventID.String
	}

	if history.GoldenHourID.Valid {
		result.GoldenHourID = history.GoldenHourID.String
	}

	return result
}
