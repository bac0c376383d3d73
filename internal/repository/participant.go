package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	GetByID(ctx context.Context, id string) (*entity.Participant, error)
	GetByCode(ctx context.Context, code string) (*entity.Participant, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
}

type participantRepository struct{}

func NewParticipantRepository() *participantRepository {
	return &participantRepository{}
}

func (r *participantRepository) Create(ctx context.Context, participant *entity.Participant) error {
	return xcontext.DB(ctx).Create(participant).Error
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*entity.Participant, error) {
	var result entity.Participant
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantRepository) GetByCode(ctx context.Context, code string) (*entity.Participant, error) {
	var result entity.Participant
	if err := xcontext.DB(ctx).Take(&result, "code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantRepository) UpdateStatus(
	ctx context.Context, id string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.Participant{}).
		Where("id=?", id).
		Update("status", status).Error
}
