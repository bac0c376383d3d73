package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/model"
	"github.com/luckydraw-lab/backend/internal/repository"
	"github.com/luckydraw-lab/backend/pkg/enum"
	"github.com/luckydraw-lab/backend/pkg/errorx"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Events shorter than this cannot be created.
const minEventDuration = 30 * time.Minute

const (
	minGoldenHourMultiplier = 1.0
	maxGoldenHourMultiplier = 10.0
)

type EventDomain interface {
	CreateEvent(context.Context, *model.CreateEventRequest) (*model.CreateEventResponse, error)
	GetEvent(context.Context, *model.GetEventRequest) (*model.GetEventResponse, error)
	SetEventStatus(context.Context, *model.SetEventStatusRequest) (*model.SetEventStatusResponse, error)
	CreateEventLocation(context.Context, *model.CreateEventLocationRequest) (*model.CreateEventLocationResponse, error)
	SetEventLocationStatus(context.Context, *model.SetEventLocationStatusRequest) (*model.SetEventLocationStatusResponse, error)
	CreateGoldenHour(context.Context, *model.CreateGoldenHourRequest) (*model.CreateGoldenHourResponse, error)
	CreateReward(context.Context, *model.CreateRewardRequest) (*model.CreateRewardResponse, error)
	SetRewardStatus(context.Context, *model.SetRewardStatusRequest) (*model.SetRewardStatusResponse, error)
	CreateRewardEvent(context.Context, *model.CreateRewardEventRequest) (*model.CreateRewardEventResponse, error)
}

type eventDomain struct {
	eventRepo            repository.EventRepository
	regionRepo           repository.RegionRepository
	eventLocationRepo    repository.EventLocationRepository
	goldenHourRepo       repository.GoldenHourRepository
	rewardRepo           repository.RewardRepository
	rewardEventRepo      repository.RewardEventRepository
	participantEventRepo repository.ParticipantEventRepository
}

func NewEventDomain(
	eventRepo repository.EventRepository,
	regionRepo repository.RegionRepository,
	eventLocationRepo repository.EventLocationRepository,
	goldenHourRepo repository.GoldenHourRepository,
	rewardRepo repository.RewardRepository,
	rewardEventRepo repository.RewardEventRepository,
	participantEventRepo repository.ParticipantEventRepository,
) *eventDomain {
	return &eventDomain{
		eventRepo:            eventRepo,
		regionRepo:           regionRepo,
		eventLocationRepo:    eventLocationRepo,
		goldenHourRepo:       goldenHourRepo,
		rewardRepo:           rewardRepo,
		rewardEventRepo:      rewardEventRepo,
		participantEventRepo: participantEventRepo,
	}
}

func (d *eventDomain) CreateEvent(
	ctx context.Context, req *model.CreateEventRequest,
) (*model.CreateEventResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Require an event code")
	}

	startTime := req.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	if !req.EndTime.After(startTime) {
		return nil, errorx.New(errorx.BadRequest, "End time must be after start time")
	}

	if req.EndTime.Sub(startTime) < minEventDuration {
		return nil, errorx.New(errorx.BadRequest,
			"Event must last at least %s", minEventDuration)
	}

	event := &entity.Event{
		Base:      entity.Base{ID: uuid.NewString()},
		Code:      strings.ToUpper(req.Code),
		Name:      req.Name,
		StartTime: startTime,
		EndTime:   req.EndTime,
		Status:    entity.Active,
	}

	if err := d.eventRepo.Create(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateEventResponse{ID: event.ID}, nil
}

func (d *eventDomain) GetEvent(
	ctx context.Context, req *model.GetEventRequest,
) (*model.GetEventResponse, error) {
	event, err := d.eventRepo.GetByCode(ctx, strings.ToUpper(req.Code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	locations, err := d.eventLocationRepo.GetByEventID(ctx, event.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get event locations: %v", err)
		return nil, errorx.Unknown
	}

	clientLocations := []model.EventLocation{}
	for i := range locations {
		clientLocations = append(clientLocations, convertEventLocation(&locations[i]))
	}

	return &model.GetEventResponse{
		Event:     convertEvent(event),
		Locations: clientLocations,
	}, nil
}

func (d *eventDomain) SetEventStatus(
	ctx context.Context, req *model.SetEventStatusRequest,
) (*model.SetEventStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	event, err := d.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if event.Status == status {
		return &model.SetEventStatusResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.eventRepo.UpdateStatus(ctx, event.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update event status: %v", err)
		return nil, errorx.Unknown
	}

	if event.Status == entity.Active && status != entity.Active {
		if err := d.cascadeEventDeactivation(ctx, event.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot cascade event deactivation: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SetEventStatusResponse{}, nil
}

func (d *eventDomain) cascadeEventDeactivation(ctx context.Context, eventID string) error {
	if err := d.rewardRepo.UpdateStatusByEventID(ctx, eventID, entity.Inactive); err != nil {
		return err
	}

	if err := d.participantEventRepo.UpdateStatusByEventID(ctx, eventID, entity.Inactive); err != nil {
		return err
	}

	if err := d.goldenHourRepo.UpdateStatusByEventID(ctx, eventID, entity.Inactive); err != nil {
		return err
	}

	return d.eventLocationRepo.UpdateStatusByEventID(ctx, eventID, entity.Inactive)
}

func (d *eventDomain) CreateEventLocation(
	ctx context.Context, req *model.CreateEventLocationRequest,
) (*model.CreateEventLocationResponse, error) {
	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	region, err := d.regionRepo.GetByID(ctx, req.RegionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found region")
		}

		xcontext.Logger(ctx).Errorf("Cannot get region: %v", err)
		return nil, errorx.Unknown
	}

	if req.MaxSpin < 0 {
		return nil, errorx.New(errorx.BadRequest, "Max spin must not be negative")
	}

	// Location status is derived, never chosen: active only while both
	// parents are active.
	status := entity.Active
	if event.Status != entity.Active || region.Status != entity.Active {
		status = entity.Inactive
	}

	location := &entity.EventLocation{
		Base:                      entity.Base{ID: uuid.NewString()},
		EventID:                   event.ID,
		RegionID:                  region.ID,
		MaxSpin:                   req.MaxSpin,
		DailySpinDistributingRate: req.DailySpinDistributingRate,
		Status:                    status,
	}

	if err := d.eventLocationRepo.Create(ctx, location); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create event location: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateEventLocationResponse{ID: location.ID}, nil
}

func (d *eventDomain) SetEventLocationStatus(
	ctx context.Context, req *model.SetEventLocationStatusRequest,
) (*model.SetEventLocationStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	location, err := d.eventLocationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event location")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	// Reactivation re-validates the ancestors.
	if status == entity.Active {
		event, err := d.eventRepo.GetByID(ctx, location.EventID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get event of location: %v", err)
			return nil, errorx.Unknown
		}

		region, err := d.regionRepo.GetByID(ctx, location.RegionID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get region of location: %v", err)
			return nil, errorx.Unknown
		}

		if event.Status != entity.Active || region.Status != entity.Active {
			return nil, errorx.New(errorx.BadRequest,
				"Cannot activate event location while its event or region is not active")
		}
	}

	if location.Status == status {
		return &model.SetEventLocationStatusResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.eventLocationRepo.UpdateStatus(ctx, location.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update event location status: %v", err)
		return nil, errorx.Unknown
	}

	if location.Status == entity.Active && status != entity.Active {
		if err := d.cascadeEventLocationDeactivation(ctx, location.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot cascade event location deactivation: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SetEventLocationStatusResponse{}, nil
}

func (d *eventDomain) cascadeEventLocationDeactivation(ctx context.Context, locationID string) error {
	if err := d.rewardRepo.UpdateStatusByEventLocationID(ctx, locationID, entity.Inactive); err != nil {
		return err
	}

	err := d.participantEventRepo.UpdateStatusByEventLocationID(ctx, locationID, entity.Inactive)
	if err != nil {
		return err
	}

	return d.goldenHourRepo.UpdateStatusByEventLocationID(ctx, locationID, entity.Inactive)
}

func (d *eventDomain) CreateGoldenHour(
	ctx context.Context, req *model.CreateGoldenHourRequest,
) (*model.CreateGoldenHourResponse, error) {
	if req.Multiplier < minGoldenHourMultiplier || req.Multiplier > maxGoldenHourMultiplier {
		return nil, errorx.New(errorx.BadRequest,
			"Multiplier must be between %g and %g",
			minGoldenHourMultiplier, maxGoldenHourMultiplier)
	}

	location, err := d.eventLocationRepo.GetByID(ctx, req.EventLocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event location")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	event, err := d.eventRepo.GetByID(ctx, location.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get event of location: %v", err)
		return nil, errorx.Unknown
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, errorx.New(errorx.BadRequest, "End time must be after start time")
	}

	if req.StartTime.Before(event.StartTime) || req.EndTime.After(event.EndTime) {
		return nil, errorx.New(errorx.BadRequest,
			"Golden hour must fall inside the event time window")
	}

	overlapped, err := d.goldenHourRepo.ExistsOverlapping(
		ctx, location.ID, req.StartTime, req.EndTime, "")
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check overlapping golden hours: %v", err)
		return nil, errorx.Unknown
	}

	if overlapped {
		return nil, errorx.New(errorx.BadRequest,
			"Golden hour overlaps another one at this location")
	}

	goldenHour := &entity.GoldenHour{
		Base:            entity.Base{ID: uuid.NewString()},
		EventLocationID: location.ID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Multiplier:      req.Multiplier,
		Status:          entity.Active,
	}

	if err := d.goldenHourRepo.Create(ctx, goldenHour); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create golden hour: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGoldenHourResponse{ID: goldenHour.ID}, nil
}

func (d *eventDomain) CreateReward(
	ctx context.Context, req *model.CreateRewardRequest,
) (*model.CreateRewardResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a reward code")
	}

	if req.Quantity < 0 {
		return nil, errorx.New(errorx.BadRequest, "Quantity must not be negative")
	}

	if req.WinProbability < 0 || req.WinProbability > 1 {
		return nil, errorx.New(errorx.BadRequest, "Win probability must be between 0 and 1")
	}

	location, err := d.eventLocationRepo.GetByID(ctx, req.EventLocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event location")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	status := entity.Active
	if location.Status != entity.Active {
		status = entity.Inactive
	}

	reward := &entity.Reward{
		Base:            entity.Base{ID: uuid.NewString()},
		Code:            strings.ToUpper(req.Code),
		Name:            req.Name,
		EventLocationID: location.ID,
		Quantity:        req.Quantity,
		WinProbability:  req.WinProbability,
		Status:          status,
	}

	if err := d.rewardRepo.Create(ctx, reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRewardResponse{ID: reward.ID}, nil
}

func (d *eventDomain) SetRewardStatus(
	ctx context.Context, req *model.SetRewardStatusRequest,
) (*model.SetRewardStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	reward, err := d.rewardRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	if status == entity.Active {
		location, err := d.eventLocationRepo.GetByID(ctx, reward.EventLocationID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get location of reward: %v", err)
			return nil, errorx.Unknown
		}

		if location.Status != entity.Active {
			return nil, errorx.New(errorx.BadRequest,
				"Cannot activate reward while its location is not active")
		}
	}

	if err := d.rewardRepo.UpdateStatus(ctx, reward.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update reward status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetRewardStatusResponse{}, nil
}

func (d *eventDomain) CreateRewardEvent(
	ctx context.Context, req *model.CreateRewardEventRequest,
) (*model.CreateRewardEventResponse, error) {
	if req.Quantity < 0 || req.TodayQuantity < 0 {
		return nil, errorx.New(errorx.BadRequest, "Quantities must not be negative")
	}

	location, err := d.eventLocationRepo.GetByID(ctx, req.EventLocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event location")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	reward, err := d.rewardRepo.GetByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	if reward.EventLocationID != location.ID {
		return nil, errorx.New(errorx.BadRequest,
			"Reward does not belong to this event location")
	}

	if req.Quantity > reward.Quantity {
		return nil, errorx.New(errorx.BadRequest,
			"Cannot allot more than the reward inventory")
	}

	rewardEvent := &entity.RewardEvent{
		Base:            entity.Base{ID: uuid.NewString()},
		EventLocationID: location.ID,
		RewardID:        reward.ID,
		Quantity:        req.Quantity,
		TodayQuantity:   req.TodayQuantity,
	}

	if err := d.rewardEventRepo.Create(ctx, rewardEvent); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRewardEventResponse{ID: rewardEvent.ID}, nil
}
