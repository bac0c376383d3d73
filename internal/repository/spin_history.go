package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type SpinHistoryRepository interface {
	Create(ctx context.Context, history *entity.SpinHistory) error
	GetByParticipantEventID(ctx context.Context, participantEventID string) ([]entity.SpinHistory, error)
	CountWinsByRewardEventID(ctx context.Context, rewardEventID string) (int64, error)
}

type spinHistoryRepository struct{}

func NewSpinHistoryRepository() *spinHistoryRepository {
	return &spinHistoryRepository{}
}

func (r *spinHistoryRepository) Create(ctx context.Context, history *entity.SpinHistory) error {
	return xcontext.DB(ctx).Create(history).Error
}

func (r *spinHistoryRepository) GetByParticipantEventID(
	ctx context.Context, participantEventID string,
) ([]entity.SpinHistory, error) {
	var result []entity.SpinHistory
	err := xcontext.DB(ctx).
		Where("participant_event_id=?", participantEventID).
		Order("spin_time ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *spinHistoryRepository) CountWinsByRewardEventID(
	ctx context.Context, rewardEventID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.SpinHistory{}).
		Where("reward_event_id=? AND win=?", rewardEventID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
