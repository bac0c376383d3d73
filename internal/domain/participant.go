package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/internal/model"
	"github.com/luckydraw-lab/backend/internal/repository"
	"github.com/luckydraw-lab/backend/pkg/enum"
	"github.com/luckydraw-lab/backend/pkg/errorx"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ParticipantDomain interface {
	CreateParticipant(context.Context, *model.CreateParticipantRequest) (*model.CreateParticipantResponse, error)
	GetParticipant(context.Context, *model.GetParticipantRequest) (*model.GetParticipantResponse, error)
	SetParticipantStatus(context.Context, *model.SetParticipantStatusRequest) (*model.SetParticipantStatusResponse, error)
	CreateParticipantEvent(context.Context, *model.CreateParticipantEventRequest) (*model.CreateParticipantEventResponse, error)
	SetParticipantEventStatus(context.Context, *model.SetParticipantEventStatusRequest) (*model.SetParticipantEventStatusResponse, error)
}

type participantDomain struct {
	participantRepo      repository.ParticipantRepository
	provinceRepo         repository.ProvinceRepository
	eventLocationRepo    repository.EventLocationRepository
	participantEventRepo repository.ParticipantEventRepository
}

func NewParticipantDomain(
	participantRepo repository.ParticipantRepository,
	provinceRepo repository.ProvinceRepository,
	eventLocationRepo repository.EventLocationRepository,
	participantEventRepo repository.ParticipantEventRepository,
) *participantDomain {
	return &participantDomain{
		participantRepo:      participantRepo,
		provinceRepo:         provinceRepo,
		eventLocationRepo:    eventLocationRepo,
		participantEventRepo: participantEventRepo,
	}
}

func (d *participantDomain) CreateParticipant(
	ctx context.Context, req *model.CreateParticipantRequest,
) (*model.CreateParticipantResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a participant code")
	}

	province, err := d.provinceRepo.GetByID(ctx, req.ProvinceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found province")
		}

		xcontext.Logger(ctx).Errorf("Cannot get province: %v", err)
		return nil, errorx.Unknown
	}

	participant := &entity.Participant{
		Base:       entity.Base{ID: uuid.NewString()},
		Code:       strings.ToUpper(req.Code),
		Name:       req.Name,
		ProvinceID: province.ID,
		Status:     entity.Active,
	}

	if err := d.participantRepo.Create(ctx, participant); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create participant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateParticipantResponse{ID: participant.ID}, nil
}

func (d *participantDomain) GetParticipant(
	ctx context.Context, req *model.GetParticipantRequest,
) (*model.GetParticipantResponse, error) {
	participant, err := d.participantRepo.GetByCode(ctx, strings.ToUpper(req.Code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	participantEvents, err := d.participantEventRepo.GetByParticipantID(ctx, participant.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participant events: %v", err)
		return nil, errorx.Unknown
	}

	clientEvents := []model.ParticipantEvent{}
	for i := range participantEvents {
		clientEvents = append(clientEvents, convertParticipantEvent(&participantEvents[i]))
	}

	return &model.GetParticipantResponse{
		Participant:       convertParticipant(participant),
		ParticipantEvents: clientEvents,
	}, nil
}

func (d *participantDomain) SetParticipantStatus(
	ctx context.Context, req *model.SetParticipantStatusRequest,
) (*model.SetParticipantStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	participant, err := d.participantRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	if participant.Status == status {
		return &model.SetParticipantStatusResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.participantRepo.UpdateStatus(ctx, participant.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update participant status: %v", err)
		return nil, errorx.Unknown
	}

	if participant.Status == entity.Active && status != entity.Active {
		err := d.participantEventRepo.UpdateStatusByParticipantID(
			ctx, participant.ID, entity.Inactive)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot cascade participant deactivation: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SetParticipantStatusResponse{}, nil
}

func (d *participantDomain) CreateParticipantEvent(
	ctx context.Context, req *model.CreateParticipantEventRequest,
) (*model.CreateParticipantEventResponse, error) {
	if req.SpinsRemaining < 0 {
		return nil, errorx.New(errorx.BadRequest, "Spins remaining must not be negative")
	}

	location, err := d.eventLocationRepo.GetByID(ctx, req.EventLocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event location")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event location: %v", err)
		return nil, errorx.Unknown
	}

	participant, err := d.participantRepo.GetByID(ctx, req.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	status := entity.Active
	if location.Status != entity.Active || participant.Status != entity.Active {
		status = entity.Inactive
	}

	participantEvent := &entity.ParticipantEvent{
		Base:            entity.Base{ID: uuid.NewString()},
		EventLocationID: location.ID,
		ParticipantID:   participant.ID,
		SpinsRemaining:  req.SpinsRemaining,
		Status:          status,
	}

	if err := d.participantEventRepo.Create(ctx, participantEvent); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create participant event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateParticipantEventResponse{ID: participantEvent.ID}, nil
}

func (d *participantDomain) SetParticipantEventStatus(
	ctx context.Context, req *model.SetParticipantEventStatusRequest,
) (*model.SetParticipantEventStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	participantEvent, err := d.participantEventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found participant event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant event: %v", err)
		return nil, errorx.Unknown
	}

	// Reactivation re-validates the ancestors.
	if status == entity.Active {
		location, err := d.eventLocationRepo.GetByID(ctx, participantEvent.EventLocationID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get location of participant event: %v", err)
			return nil, errorx.Unknown
		}

		participant, err := d.participantRepo.GetByID(ctx, participantEvent.ParticipantID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get participant of participant event: %v", err)
			return nil, errorx.Unknown
		}

		if location.Status != entity.Active || participant.Status != entity.Active {
			return nil, errorx.New(errorx.BadRequest,
				"Cannot activate participant event while its location or participant is not active")
		}
	}

	if err := d.participantEventRepo.UpdateStatus(ctx, participantEvent.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update participant event status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetParticipantEventStatusResponse{}, nil
}
