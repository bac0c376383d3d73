package domain

import (
	"testing"
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/model"
	"github.com/luckydraw-lab/backend/internal/repository"
	"github.com/luckydraw-lab/backend/pkg/errorx"
	"github.com/luckydraw-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestEventDomain() *eventDomain {
	return NewEventDomain(
		repository.NewEventRepository(),
		repository.NewRegionRepository(),
		repository.NewEventLocationRepository(),
		repository.NewGoldenHourRepository(),
		repository.NewRewardRepository(),
		repository.NewRewardEventRepository(),
		repository.NewParticipantEventRepository(),
	)
}

func requireBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	errx, ok := err.(errorx.Error)
	require.True(t, ok)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_eventDomain_CreateEvent(t *testing.T) {
	ctx := testutil.MockContext()
	eventDomain := newTestEventDomain()

	resp, err := eventDomain.CreateEvent(ctx, &model.CreateEventRequest{
		Code:      "summer2026",
		Name:      "Summer Draw",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	event, err := repository.NewEventRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, "SUMMER2026", event.Code)
	require.Equal(t, entity.Active, event.Status)

	// The end must come after the start.
	_, err = eventDomain.CreateEvent(ctx, &model.CreateEventRequest{
		Code:      "BACKWARDS",
		StartTime: time.Now().Add(time.Hour),
		EndTime:   time.Now(),
	})
	requireBadRequest(t, err)

	// Too short.
	_, err = eventDomain.CreateEvent(ctx, &model.CreateEventRequest{
		Code:      "SHORT",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(10 * time.Minute),
	})
	requireBadRequest(t, err)
}

func Test_eventDomain_GetEvent(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	resp, err := eventDomain.GetEvent(ctx, &model.GetEventRequest{
		Code: testutil.Event1.Code,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.Event1.ID, resp.Event.ID)
	require.Len(t, resp.Locations, 1)
	require.Equal(t, testutil.EventLocation1.ID, resp.Locations[0].ID)

	// Lookup is case-insensitive on the code.
	resp, err = eventDomain.GetEvent(ctx, &model.GetEventRequest{Code: "tet2026"})
	require.NoError(t, err)
	require.Equal(t, testutil.Event1.ID, resp.Event.ID)

	_, err = eventDomain.GetEvent(ctx, &model.GetEventRequest{Code: "NOPE"})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_eventDomain_SetEventStatus_CascadesDeactivation(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	_, err := eventDomain.SetEventStatus(ctx, &model.SetEventStatusRequest{
		ID: testutil.Event1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	location, err := repository.NewEventLocationRepository().GetByID(ctx, testutil.EventLocation1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, location.Status)

	reward, err := repository.NewRewardRepository().GetByID(ctx, testutil.Reward1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, reward.Status)

	participantEvent, err := repository.NewParticipantEventRepository().
		GetByID(ctx, testutil.ParticipantEvent1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, participantEvent.Status)

	// The region does not depend on the event.
	region, err := repository.NewRegionRepository().GetByID(ctx, testutil.Region1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Active, region.Status)

	// Golden hours under the event went down with it and are no longer
	// resolvable.
	goldenHour, err := repository.NewGoldenHourRepository().GetByID(ctx, testutil.GoldenHour1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, goldenHour.Status)

	spinDomain := newTestSpinDomain(fixedRand(0.0))
	active, err := spinDomain.GetActiveGoldenHour(ctx, &model.GetActiveGoldenHourRequest{
		EventLocationID: testutil.EventLocation1.ID,
		Timestamp:       testutil.GoldenHour1.StartTime.Add(time.Minute),
	})
	require.NoError(t, err)
	require.Nil(t, active.GoldenHour)
}

func Test_eventDomain_SetEventLocationStatus_RequiresActiveAncestors(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	_, err := eventDomain.SetEventStatus(ctx, &model.SetEventStatusRequest{
		ID: testutil.Event1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	_, err = eventDomain.SetEventLocationStatus(ctx, &model.SetEventLocationStatusRequest{
		ID: testutil.EventLocation1.ID, Status: "active",
	})
	requireBadRequest(t, err)
}

func Test_eventDomain_SetEventLocationStatus_CascadesDeactivation(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	_, err := eventDomain.SetEventLocationStatus(ctx, &model.SetEventLocationStatusRequest{
		ID: testutil.EventLocation1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	reward, err := repository.NewRewardRepository().GetByID(ctx, testutil.Reward1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, reward.Status)

	participantEvent, err := repository.NewParticipantEventRepository().
		GetByID(ctx, testutil.ParticipantEvent1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, participantEvent.Status)

	goldenHour, err := repository.NewGoldenHourRepository().GetByID(ctx, testutil.GoldenHour1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Inactive, goldenHour.Status)

	// The ancestors are untouched.
	event, err := repository.NewEventRepository().GetByID(ctx, testutil.Event1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Active, event.Status)
}

func Test_eventDomain_SetEventLocationStatus_ReactivationChainRestoresSpins(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()
	regionDomain := newTestRegionDomain()
	participantDomain := newTestParticipantDomain()
	spinDomain := newTestSpinDomain(fixedRand(0.0))

	// Bounce the region: the cascade forces the whole subtree down.
	_, err := regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "inactive",
	})
	require.NoError(t, err)
	_, err = regionDomain.SetRegionStatus(ctx, &model.SetRegionStatusRequest{
		ID: testutil.Region1.ID, Status: "active",
	})
	require.NoError(t, err)

	resp, err := spinDomain.Spin(ctx, &model.SpinRequest{
		ParticipantEventID: testutil.ParticipantEvent1.ID,
	})
	require.NoError(t, err)
	require.True(t, resp.Rejected)
	require.Equal(t, "inactive_entity", resp.Reason)

	// Reactivate the descendants one by one, bottom of the chain last.
	_, err = regionDomain.SetProvinceStatus(ctx, &model.SetProvinceStatusRequest{
		ID: testutil.Province1.ID, Status: "active",
	})
	require.NoError(t, err)

	_, err = eventDomain.SetEventLocationStatus(ctx, &model.SetEventLocationStatusRequest{
		ID: testutil.EventLocation1.ID, Status: "active",
	})
	require.NoError(t, err)

	_, err = participantDomain.SetParticipantEventStatus(ctx, &model.SetParticipantEventStatusRequest{
		ID: testutil.ParticipantEvent1.ID, Status: "active",
	})
	require.NoError(t, err)

	resp, err = spinDomain.Spin(ctx, &model.SpinRequest{
		ParticipantEventID: testutil.ParticipantEvent1.ID,
	})
	require.NoError(t, err)
	require.False(t, resp.Rejected)
}

func Test_eventDomain_CreateEventLocation(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()
	regionDomain := newTestRegionDomain()

	secondRegion, err := regionDomain.CreateRegion(ctx, &model.CreateRegionRequest{
		Code: "CENTRAL", Name: "Central",
	})
	require.NoError(t, err)

	resp, err := eventDomain.CreateEventLocation(ctx, &model.CreateEventLocationRequest{
		EventID:                   testutil.Event1.ID,
		RegionID:                  secondRegion.ID,
		MaxSpin:                   50,
		DailySpinDistributingRate: 0.5,
	})
	require.NoError(t, err)

	location, err := repository.NewEventLocationRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Active, location.Status)

	_, err = eventDomain.CreateEventLocation(ctx, &model.CreateEventLocationRequest{
		EventID:  testutil.Event1.ID,
		RegionID: secondRegion.ID,
		MaxSpin:  -1,
	})
	requireBadRequest(t, err)
}

func Test_eventDomain_CreateGoldenHour(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	start := testutil.GoldenHour1.EndTime.Add(time.Hour)
	resp, err := eventDomain.CreateGoldenHour(ctx, &model.CreateGoldenHourRequest{
		EventLocationID: testutil.EventLocation1.ID,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		Multiplier:      2.0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	// Overlapping the fixture window is refused.
	_, err = eventDomain.CreateGoldenHour(ctx, &model.CreateGoldenHourRequest{
		EventLocationID: testutil.EventLocation1.ID,
		StartTime:       testutil.GoldenHour1.StartTime.Add(30 * time.Minute),
		EndTime:         testutil.GoldenHour1.EndTime.Add(30 * time.Minute),
		Multiplier:      2.0,
	})
	requireBadRequest(t, err)

	// Touching windows do not overlap.
	_, err = eventDomain.CreateGoldenHour(ctx, &model.CreateGoldenHourRequest{
		EventLocationID: testutil.EventLocation1.ID,
		StartTime:       testutil.GoldenHour1.EndTime,
		EndTime:         start,
		Multiplier:      3.0,
	})
	require.NoError(t, err)

	// Outside the event window.
	_, err = eventDomain.CreateGoldenHour(ctx, &model.CreateGoldenHourRequest{
		EventLocationID: testutil.EventLocation1.ID,
		StartTime:       testutil.Event1.EndTime,
		EndTime:         testutil.Event1.EndTime.Add(time.Hour),
		Multiplier:      2.0,
	})
	requireBadRequest(t, err)

	// Multiplier bounds.
	_, err = eventDomain.CreateGoldenHour(ctx, &model.CreateGoldenHourRequest{
		EventLocationID: testutil.EventLocation1.ID,
		StartTime:       start.Add(2 * time.Hour),
		EndTime:         start.Add(3 * time.Hour),
		Multiplier:      0.5,
	})
	requireBadRequest(t, err)
}

func Test_eventDomain_CreateReward(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	resp, err := eventDomain.CreateReward(ctx, &model.CreateRewardRequest{
		Code:            "phone",
		Name:            "Smartphone",
		EventLocationID: testutil.EventLocation1.ID,
		Quantity:        3,
		WinProbability:  0.01,
	})
	require.NoError(t, err)

	reward, err := repository.NewRewardRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, "PHONE", reward.Code)
	require.Equal(t, entity.Active, reward.Status)

	_, err = eventDomain.CreateReward(ctx, &model.CreateRewardRequest{
		Code:            "BADPROB",
		EventLocationID: testutil.EventLocation1.ID,
		Quantity:        1,
		WinProbability:  1.5,
	})
	requireBadRequest(t, err)
}

func Test_eventDomain_SetRewardStatus_RequiresActiveLocation(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	_, err := eventDomain.SetEventStatus(ctx, &model.SetEventStatusRequest{
		ID: testutil.Event1.ID, Status: "inactive",
	})
	require.NoError(t, err)

	_, err = eventDomain.SetRewardStatus(ctx, &model.SetRewardStatusRequest{
		ID: testutil.Reward1.ID, Status: "active",
	})
	requireBadRequest(t, err)
}

func Test_eventDomain_CreateRewardEvent(t *testing.T) {
	ctx := testutil.CreateFixtureDb()
	eventDomain := newTestEventDomain()

	rewardResp, err := eventDomain.CreateReward(ctx, &model.CreateRewardRequest{
		Code:            "HAT",
		Name:            "Hat",
		EventLocationID: testutil.EventLocation1.ID,
		Quantity:        20,
		WinProbability:  0.3,
	})
	require.NoError(t, err)

	resp, err := eventDomain.CreateRewardEvent(ctx, &model.CreateRewardEventRequest{
		EventLocationID: testutil.EventLocation1.ID,
		RewardID:        rewardResp.ID,
		Quantity:        10,
		TodayQuantity:   5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	// An allotment cannot exceed the reward inventory.
	_, err = eventDomain.CreateRewardEvent(ctx, &model.CreateRewardEventRequest{
		EventLocationID: testutil.EventLocation1.ID,
		RewardID:        rewardResp.ID,
		Quantity:        21,
	})
	requireBadRequest(t, err)
}
