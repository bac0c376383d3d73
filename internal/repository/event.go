package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetByCode(ctx context.Context, code string) (*entity.Event, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
}

type eventRepository struct{}

func NewEventRepository() *eventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return xcontext.DB(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	var result entity.Event
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventRepository) GetByCode(ctx context.Context, code string) (*entity.Event, error) {
	var result entity.Event
	if err := xcontext.DB(ctx).Take(&result, "code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error {
	return xcontext.DB(ctx).Model(&entity.Event{}).
		Where("id=?", id).
		Update("status", status).Error
}
