package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type RegionRepository interface {
	Create(ctx context.Context, region *entity.Region) error
	GetByID(ctx context.Context, id string) (*entity.Region, error)
	GetByCode(ctx context.Context, code string) (*entity.Region, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
}

type regionRepository struct{}

func NewRegionRepository() *regionRepository {
	return &regionRepository{}
}

func (r *regionRepository) Create(ctx context.Context, region *entity.Region) error {
	return xcontext.DB(ctx).Create(region).Error
}

func (r *regionRepository) GetByID(ctx context.Context, id string) (*entity.Region, error) {
	var result entity.Region
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *regionRepository) GetByCode(ctx context.Context, code string) (*entity.Region, error) {
	var result entity.Region
	if err := xcontext.DB(ctx).Take(&result, "code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *regionRepository) UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error {
	return xcontext.DB(ctx).Model(&entity.Region{}).
		Where("id=?", id).
		Update("status", status).Error
}
