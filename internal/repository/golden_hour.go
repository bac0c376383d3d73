package repository

import (
	"context"
	"time"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type GoldenHourRepository interface {
	Create(ctx context.Context, goldenHour *entity.GoldenHour) error
	GetByID(ctx context.Context, id string) (*entity.GoldenHour, error)
	GetActiveByEventLocationID(ctx context.Context, locationID string) ([]entity.GoldenHour, error)
	ExistsOverlapping(ctx context.Context, locationID string, start, end time.Time, excludeID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
	UpdateStatusByEventLocationID(ctx context.Context, locationID string, status entity.EntityStatus) error
	UpdateStatusByRegionID(ctx context.Context, regionID string, status entity.EntityStatus) error
	UpdateStatusByEventID(ctx context.Context, eventID string, status entity.EntityStatus) error
}

type goldenHourRepository struct{}

func NewGoldenHourRepository() *goldenHourRepository {
	return &goldenHourRepository{}
}

func (r *goldenHourRepository) Create(ctx context.Context, goldenHour *entity.GoldenHour) error {
	return xcontext.DB(ctx).Create(goldenHour).Error
}

func (r *goldenHourRepository) GetByID(ctx context.Context, id string) (*entity.GoldenHour, error) {
	var result entity.GoldenHour
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *goldenHourRepository) GetActiveByEventLocationID(
	ctx context.Context, locationID string,
) ([]entity.GoldenHour, error) {
	var result []entity.GoldenHour
	err := xcontext.DB(ctx).
		Find(&result, "event_location_id=? AND status=?", locationID, entity.Active).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ExistsOverlapping reports whether any active window of the location
// intersects [start, end). The window identified by excludeID is skipped,
// which allows updates of an existing window.
func (r *goldenHourRepository) ExistsOverlapping(
	ctx context.Context, locationID string, start, end time.Time, excludeID string,
) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.GoldenHour{}).
		Where("event_location_id=? AND status=? AND id<>?", locationID, entity.Active, excludeID).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *goldenHourRepository) UpdateStatus(
	ctx context.Context, id string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.GoldenHour{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *goldenHourRepository) UpdateStatusByEventLocationID(
	ctx context.Context, locationID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.GoldenHour{}).
		Where("event_location_id=?", locationID).
		Update("status", status).Error
}

func (r *goldenHourRepository) UpdateStatusByRegionID(
	ctx context.Context, regionID string, status entity.EntityStatus,
) error {
	locations := xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Select("id").Where("region_id=?", regionID)

	return xcontext.DB(ctx).Model(&entity.GoldenHour{}).
		Where("event_location_id IN (?)", locations).
		Update("status", status).Error
}

func (r *goldenHourRepository) UpdateStatusByEventID(
	ctx context.Context, eventID string, status entity.EntityStatus,
) error {
	locations := xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Select("id").Where("event_id=?", eventID)

	return xcontext.DB(ctx).Model(&entity.GoldenHour{}).
		Where("event_location_id IN (?)", locations).
		Update("status", status).Error
}
