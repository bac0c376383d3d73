package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type EventLocationRepository interface {
	Create(ctx context.Context, location *entity.EventLocation) error
	GetByID(ctx context.Context, id string) (*entity.EventLocation, error)
	GetByEventAndRegion(ctx context.Context, eventID, regionID string) (*entity.EventLocation, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.EventLocation, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
	UpdateStatusByRegionID(ctx context.Context, regionID string, status entity.EntityStatus) error
	UpdateStatusByEventID(ctx context.Context, eventID string, status entity.EntityStatus) error
}

type eventLocationRepository struct{}

func NewEventLocationRepository() *eventLocationRepository {
	return &eventLocationRepository{}
}

func (r *eventLocationRepository) Create(ctx context.Context, location *entity.EventLocation) error {
	return xcontext.DB(ctx).Create(location).Error
}

func (r *eventLocationRepository) GetByID(ctx context.Context, id string) (*entity.EventLocation, error) {
	var result entity.EventLocation
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventLocationRepository) GetByEventAndRegion(
	ctx context.Context, eventID, regionID string,
) (*entity.EventLocation, error) {
	var result entity.EventLocation
	err := xcontext.DB(ctx).
		Take(&result, "event_id=? AND region_id=?", eventID, regionID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventLocationRepository) GetByEventID(
	ctx context.Context, eventID string,
) ([]entity.EventLocation, error) {
	var result []entity.EventLocation
	if err := xcontext.DB(ctx).Find(&result, "event_id=?", eventID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventLocationRepository) UpdateStatus(
	ctx context.Context, id string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *eventLocationRepository) UpdateStatusByRegionID(
	ctx context.Context, regionID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Where("region_id=?", regionID).
		Update("status", status).Error
}

func (r *eventLocationRepository) UpdateStatusByEventID(
	ctx context.Context, eventID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Where("event_id=?", eventID).
		Update("status", status).Error
}
