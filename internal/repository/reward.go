package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type RewardRepository interface {
	Create(ctx context.Context, reward *entity.Reward) error
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	GetByCode(ctx context.Context, code string) (*entity.Reward, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
	UpdateStatusByEventLocationID(ctx context.Context, locationID string, status entity.EntityStatus) error
	UpdateStatusByRegionID(ctx context.Context, regionID string, status entity.EntityStatus) error
	UpdateStatusByEventID(ctx context.Context, eventID string, status entity.EntityStatus) error
}

type rewardRepository struct{}

func NewRewardRepository() *rewardRepository {
	return &rewardRepository{}
}

func (r *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	return xcontext.DB(ctx).Create(reward).Error
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	var result entity.Reward
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rewardRepository) GetByCode(ctx context.Context, code string) (*entity.Reward, error) {
	var result entity.Reward
	if err := xcontext.DB(ctx).Take(&result, "code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rewardRepository) UpdateStatus(
	ctx context.Context, id string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.Reward{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *rewardRepository) UpdateStatusByEventLocationID(
	ctx context.Context, locationID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.Reward{}).
		Where("event_location_id=?", locationID).
		Update("status", status).Error
}

func (r *rewardRepository) UpdateStatusByRegionID(
	ctx context.Context, regionID string, status entity.EntityStatus,
) error {
	locations := xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Select("id").Where("region_id=?", regionID)

	return xcontext.DB(ctx).Model(&entity.Reward{}).
		Where("event_location_id IN (?)", locations).
		Update("status", status).Error
}

func (r *rewardRepository) UpdateStatusByEventID(
	ctx context.Context, eventID string, status entity.EntityStatus,
) error {
	locations := xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Select("id").Where("event_id=?", eventID)

	return xcontext.DB(ctx).Model(&entity.Reward{}).
		Where("event_location_id IN (?)", locations).
		Update("status", status).Error
}
