package testutil

import (
	"context"
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/repository"
)

// Fixture rows shared by the domain tests. CreateFixtureDb inserts fresh
// copies of them; tests mutate their own copies through the repositories.
var (
	Region1 = &entity.Region{
		Base:   entity.Base{ID: "region1"},
		Code:   "NORTH",
		Name:   "North",
		Status: entity.Active,
	}

	Province1 = &entity.Province{
		Base:     entity.Base{ID: "province1"},
		Code:     "HN",
		Name:     "Ha Noi",
		RegionID: "region1",
		Status:   entity.Active,
	}

	Event1 = &entity.Event{
		Base:      entity.Base{ID: "event1"},
		Code:      "TET2026",
		Name:      "Tet Lucky Draw",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(24 * time.Hour),
		Status:    entity.Active,
	}

	EventLocation1 = &entity.EventLocation{
		Base:                      entity.Base{ID: "location1"},
		EventID:                   "event1",
		RegionID:                  "region1",
		MaxSpin:                   100,
		TodaySpin:                 100,
		DailySpinDistributingRate: 1.0,
		Status:                    entity.Active,
	}

	Participant1 = &entity.Participant{
		Base:       entity.Base{ID: "participant1"},
		Code:       "P001",
		Name:       "First Participant",
		ProvinceID: "province1",
		Status:     entity.Active,
	}

	ParticipantEvent1 = &entity.ParticipantEvent{
		Base:            entity.Base{ID: "participant_event1"},
		EventLocationID: "location1",
		ParticipantID:   "participant1",
		SpinsRemaining:  10,
		Status:          entity.Active,
	}

	Reward1 = &entity.Reward{
		Base:            entity.Base{ID: "reward1"},
		Code:            "VOUCHER",
		Name:            "Shopping Voucher",
		EventLocationID: "location1",
		Quantity:        10,
		WinProbability:  0.5,
		Status:          entity.Active,
	}

	RewardEvent1 = &entity.RewardEvent{
		Base:            entity.Base{ID: "reward_event1"},
		EventLocationID: "location1",
		RewardID:        "reward1",
		Quantity:        5,
		TodayQuantity:   5,
	}

	GoldenHour1 = &entity.GoldenHour{
		Base:            entity.Base{ID: "golden_hour1"},
		EventLocationID: "location1",
		StartTime:       time.Now().Add(2 * time.Hour),
		EndTime:         time.Now().Add(3 * time.Hour),
		Multiplier:      2.0,
		Status:          entity.Active,
	}
)

// CreateFixtureDb returns a MockContext with the fixture hierarchy inserted:
// one active region, province, event, location, participant, entitlement,
// reward with its allocation, and one future golden hour.
func CreateFixtureDb() context.Context {
	ctx := MockContext()

	insertRegions(ctx)
	insertProvinces(ctx)
	insertEvents(ctx)
	insertEventLocations(ctx)
	insertParticipants(ctx)
	insertParticipantEvents(ctx)
	insertRewards(ctx)
	insertRewardEvents(ctx)
	insertGoldenHours(ctx)

	return ctx
}

func insertRegions(ctx context.Context) {
	regionRepo := repository.NewRegionRepository()
	record := *Region1
	if err := regionRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertProvinces(ctx context.Context) {
	provinceRepo := repository.NewProvinceRepository()
	record := *Province1
	if err := provinceRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertEvents(ctx context.Context) {
	eventRepo := repository.NewEventRepository()
	record := *Event1
	if err := eventRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertEventLocations(ctx context.Context) {
	eventLocationRepo := repository.NewEventLocationRepository()
	record := *EventLocation1
	if err := eventLocationRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertParticipants(ctx context.Context) {
	participantRepo := repository.NewParticipantRepository()
	record := *Participant1
	if err := participantRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertParticipantEvents(ctx context.Context) {
	participantEventRepo := repository.NewParticipantEventRepository()
	record := *ParticipantEvent1
	if err := participantEventRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertRewards(ctx context.Context) {
	rewardRepo := repository.NewRewardRepository()
	record := *Reward1
	if err := rewardRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertRewardEvents(ctx context.Context) {
	rewardEventRepo := repository.NewRewardEventRepository()
	record := *RewardEvent1
	if err := rewardEventRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}

func insertGoldenHours(ctx context.Context) {
	goldenHourRepo := repository.NewGoldenHourRepository()
	record := *GoldenHour1
	if err := goldenHourRepo.Create(ctx, &record); err != nil {
		panic(err)
	}
}
