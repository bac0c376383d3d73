package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ParticipantEventRepository interface {
	Create(ctx context.Context, participantEvent *entity.ParticipantEvent) error
	GetByID(ctx context.Context, id string) (*entity.ParticipantEvent, error)
	GetByLocationAndParticipant(ctx context.Context, locationID, participantID string) (*entity.ParticipantEvent, error)
	GetByParticipantID(ctx context.Context, participantID string) ([]entity.ParticipantEvent, error)
	CheckAndUseSpin(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
	UpdateStatusByEventLocationID(ctx context.Context, locationID string, status entity.EntityStatus) error
	UpdateStatusByRegionID(ctx context.Context, regionID string, status entity.EntityStatus) error
	UpdateStatusByEventID(ctx context.Context, eventID string, status entity.EntityStatus) error
	UpdateStatusByParticipantID(ctx context.Context, participantID string, status entity.EntityStatus) error
}

type participantEventRepository struct{}

func NewParticipantEventRepository() *participantEventRepository {
	return &participantEventRepository{}
}

func (r *participantEventRepository) Create(
	ctx context.Context, participantEvent *entity.ParticipantEvent,
) error {
	return xcontext.DB(ctx).Create(participantEvent).Error
}

func (r *participantEventRepository) GetByID(
	ctx context.Context, id string,
) (*entity.ParticipantEvent, error) {
	var result entity.ParticipantEvent
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantEventRepository) GetByLocationAndParticipant(
	ctx context.Context, locationID, participantID string,
) (*entity.ParticipantEvent, error) {
	var result entity.ParticipantEvent
	err := xcontext.DB(ctx).
		Take(&result, "event_location_id=? AND participant_id=?", locationID, participantID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantEventRepository) GetByParticipantID(
	ctx context.Context, participantID string,
) ([]entity.ParticipantEvent, error) {
	var result []entity.ParticipantEvent
	if err := xcontext.DB(ctx).Find(&result, "participant_id=?", participantID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// CheckAndUseSpin consumes one remaining spin. The guard makes sure two
// concurrent spins cannot double-spend the last one; a guard miss is reported
// as gorm.ErrRecordNotFound.
func (r *participantEventRepository) CheckAndUseSpin(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Model(&entity.ParticipantEvent{}).
		Where("id=? AND spins_remaining > 0", id).
		Update("spins_remaining", gorm.Expr("spins_remaining-?", 1))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *participantEventRepository) UpdateStatus(
	ctx context.Context, id string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.ParticipantEvent{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *participantEventRepository) UpdateStatusByEventLocationID(
	ctx context.Context, locationID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.ParticipantEvent{}).
		Where("event_location_id=?", locationID).
		Update("status", status).Error
}

func (r *participantEventRepository) UpdateStatusByRegionID(
	ctx context.Context, regionID string, status entity.EntityStatus,
) error {
	locations := xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Select("id").Where("region_id=?", regionID)

	return xcontext.DB(ctx).Model(&entity.ParticipantEvent{}).
		Where("event_location_id IN (?)", locations).
		Update("status", status).Error
}

func (r *participantEventRepository) UpdateStatusByEventID(
	ctx context.Context, eventID string, status entity.EntityStatus,
) error {
	locations := xcontext.DB(ctx).Model(&entity.EventLocation{}).
		Select("id").Where("event_id=?", eventID)

	return xcontext.DB(ctx).Model(&entity.ParticipantEvent{}).
		Where("event_location_id IN (?)", locations).
		Update("status", status).Error
}

func (r *participantEventRepository) UpdateStatusByParticipantID(
	ctx context.Context, participantID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.ParticipantEvent{}).
		Where("participant_id=?", participantID).
		Update("status", status).Error
}
