package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RewardEventRepository interface {
	Create(ctx context.Context, rewardEvent *entity.RewardEvent) error
	GetByID(ctx context.Context, id string) (*entity.RewardEvent, error)
	GetByLocationAndReward(ctx context.Context, locationID, rewardID string) (*entity.RewardEvent, error)
	GetCandidatesByEventLocationID(ctx context.Context, locationID string) ([]entity.RewardEvent, error)
	CheckAndWin(ctx context.Context, id string) error
}

type rewardEventRepository struct{}

func NewRewardEventRepository() *rewardEventRepository {
	return &rewardEventRepository{}
}

func (r *rewardEventRepository) Create(ctx context.Context, rewardEvent *entity.RewardEvent) error {
	return xcontext.DB(ctx).Create(rewardEvent).Error
}

func (r *rewardEventRepository) GetByID(ctx context.Context, id string) (*entity.RewardEvent, error) {
	var result entity.RewardEvent
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rewardEventRepository) GetByLocationAndReward(
	ctx context.Context, locationID, rewardID string,
) (*entity.RewardEvent, error) {
	var result entity.RewardEvent
	err := xcontext.DB(ctx).
		Take(&result, "event_location_id=? AND reward_id=?", locationID, rewardID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetCandidatesByEventLocationID returns the allocations at a location that
// can still produce a win: the reward is active and both the total and the
// daily bookkeeping leave room. The joined Reward is populated.
func (r *rewardEventRepository) GetCandidatesByEventLocationID(
	ctx context.Context, locationID string,
) ([]entity.RewardEvent, error) {
	var result []entity.RewardEvent
	err := xcontext.DB(ctx).Joins("Reward").
		Where("reward_events.event_location_id=?", locationID).
		Where("reward_events.won_quantity < reward_events.quantity").
		Where("reward_events.won_today < reward_events.today_quantity").
		Where("`Reward`.`status`=?", entity.Active).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CheckAndWin books one win against the allocation. The guard enforces
// at-most-quantity wins and the daily quota under arbitrary concurrency; a
// guard miss is reported as gorm.ErrRecordNotFound.
func (r *rewardEventRepository) CheckAndWin(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Model(&entity.RewardEvent{}).
		Where("id=? AND won_quantity < quantity AND won_today < today_quantity", id).
		Updates(map[string]any{
			"won_quantity": gorm.Expr("won_quantity+?", 1),
			"won_today":    gorm.Expr("won_today+?", 1),
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
