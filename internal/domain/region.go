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

type RegionDomain interface {
	CreateRegion(context.Context, *model.CreateRegionRequest) (*model.CreateRegionResponse, error)
	GetRegion(context.Context, *model.GetRegionRequest) (*model.GetRegionResponse, error)
	SetRegionStatus(context.Context, *model.SetRegionStatusRequest) (*model.SetRegionStatusResponse, error)
	CreateProvince(context.Context, *model.CreateProvinceRequest) (*model.CreateProvinceResponse, error)
	SetProvinceStatus(context.Context, *model.SetProvinceStatusRequest) (*model.SetProvinceStatusResponse, error)
}

type regionDomain struct {
	regionRepo           repository.RegionRepository
	provinceRepo         repository.ProvinceRepository
	eventLocationRepo    repository.EventLocationRepository
	rewardRepo           repository.RewardRepository
	participantEventRepo repository.ParticipantEventRepository
	goldenHourRepo       repository.GoldenHourRepository
}

func NewRegionDomain(
	regionRepo repository.RegionRepository,
	provinceRepo repository.ProvinceRepository,
	eventLocationRepo repository.EventLocationRepository,
	rewardRepo repository.RewardRepository,
	participantEventRepo repository.ParticipantEventRepository,
	goldenHourRepo repository.GoldenHourRepository,
) *regionDomain {
	return &regionDomain{
		regionRepo:           regionRepo,
		provinceRepo:         provinceRepo,
		eventLocationRepo:    eventLocationRepo,
		rewardRepo:           rewardRepo,
		participantEventRepo: participantEventRepo,
		goldenHourRepo:       goldenHourRepo,
	}
}

func (d *regionDomain) CreateRegion(
	ctx context.Context, req *model.CreateRegionRequest,
) (*model.CreateRegionResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a region code")
	}

	region := &entity.Region{
		Base:   entity.Base{ID: uuid.NewString()},
		Code:   strings.ToUpper(req.Code),
		Name:   req.Name,
		Status: entity.Active,
	}

	if err := d.regionRepo.Create(ctx, region); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create region: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRegionResponse{ID: region.ID}, nil
}

func (d *regionDomain) GetRegion(
	ctx context.Context, req *model.GetRegionRequest,
) (*model.GetRegionResponse, error) {
	region, err := d.regionRepo.GetByCode(ctx, strings.ToUpper(req.Code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found region")
		}

		xcontext.Logger(ctx).Errorf("Cannot get region: %v", err)
		return nil, errorx.Unknown
	}

	provinces, err := d.provinceRepo.GetByRegionID(ctx, region.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get provinces of region: %v", err)
		return nil, errorx.Unknown
	}

	clientProvinces := []model.Province{}
	for i := range provinces {
		clientProvinces = append(clientProvinces, convertProvince(&provinces[i]))
	}

	return &model.GetRegionResponse{
		Region:    convertRegion(region),
		Provinces: clientProvinces,
	}, nil
}

func (d *regionDomain) SetRegionStatus(
	ctx context.Context, req *model.SetRegionStatusRequest,
) (*model.SetRegionStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	region, err := d.regionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found region")
		}

		xcontext.Logger(ctx).Errorf("Cannot get region: %v", err)
		return nil, errorx.Unknown
	}

	if region.Status == status {
		return &model.SetRegionStatusResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.regionRepo.UpdateStatus(ctx, region.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update region status: %v", err)
		return nil, errorx.Unknown
	}

	// A deactivating transition forces every descendant to inactive.
	// Reactivation is never cascaded; descendants must be reactivated one by
	// one, each re-validating its ancestors.
	if region.Status == entity.Active && status != entity.Active {
		if err := d.cascadeRegionDeactivation(ctx, region.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot cascade region deactivation: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SetRegionStatusResponse{}, nil
}

func (d *regionDomain) cascadeRegionDeactivation(ctx context.Context, regionID string) error {
	if err := d.provinceRepo.UpdateStatusByRegionID(ctx, regionID, entity.Inactive); err != nil {
		return err
	}

	if err := d.rewardRepo.UpdateStatusByRegionID(ctx, regionID, entity.Inactive); err != nil {
		return err
	}

	if err := d.participantEventRepo.UpdateStatusByRegionID(ctx, regionID, entity.Inactive); err != nil {
		return err
	}

	if err := d.goldenHourRepo.UpdateStatusByRegionID(ctx, regionID, entity.Inactive); err != nil {
		return err
	}

	// The locations are deactivated last so the id subqueries above still see
	// them through their region.
	return d.eventLocationRepo.UpdateStatusByRegionID(ctx, regionID, entity.Inactive)
}

func (d *regionDomain) CreateProvince(
	ctx context.Context, req *model.CreateProvinceRequest,
) (*model.CreateProvinceResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a province code")
	}

	region, err := d.regionRepo.GetByID(ctx, req.RegionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found region")
		}

		xcontext.Logger(ctx).Errorf("Cannot get region: %v", err)
		return nil, errorx.Unknown
	}

	status := entity.Active
	if region.Status != entity.Active {
		status = entity.Inactive
	}

	province := &entity.Province{
		Base:     entity.Base{ID: uuid.NewString()},
		Code:     strings.ToUpper(req.Code),
		Name:     req.Name,
		RegionID: region.ID,
		Status:   status,
	}

	if err := d.provinceRepo.Create(ctx, province); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create province: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateProvinceResponse{ID: province.ID}, nil
}

func (d *regionDomain) SetProvinceStatus(
	ctx context.Context, req *model.SetProvinceStatusRequest,
) (*model.SetProvinceStatusResponse, error) {
	status, err := enum.ToEnum[entity.EntityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	province, err := d.provinceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found province")
		}

		xcontext.Logger(ctx).Errorf("Cannot get province: %v", err)
		return nil, errorx.Unknown
	}

	region, err := d.regionRepo.GetByID(ctx, province.RegionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get region of province: %v", err)
		return nil, errorx.Unknown
	}

	if status == entity.Active && region.Status != entity.Active {
		return nil, errorx.New(errorx.BadRequest,
			"Cannot activate province while its region is not active")
	}

	if province.Status == status {
		return &model.SetProvinceStatusResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.provinceRepo.UpdateStatus(ctx, province.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update province status: %v", err)
		return nil, errorx.Unknown
	}

	// Deactivating the last active province of a region deactivates the
	// region itself. This is the single upward cascade of the hierarchy.
	if province.Status == entity.Active && status != entity.Active {
		remaining, err := d.provinceRepo.CountActiveByRegionID(ctx, region.ID, province.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count active provinces: %v", err)
			return nil, errorx.Unknown
		}

		if remaining == 0 && region.Status == entity.Active {
			if err := d.regionRepo.UpdateStatus(ctx, region.ID, entity.Inactive); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot deactivate region: %v", err)
				return nil, errorx.Unknown
			}

			if err := d.cascadeRegionDeactivation(ctx, region.ID); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot cascade region deactivation: %v", err)
				return nil, errorx.Unknown
			}
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SetProvinceStatusResponse{}, nil
}
