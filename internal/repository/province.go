package repository

import (
	"context"

	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/xcontext"
)

type ProvinceRepository interface {
	Create(ctx context.Context, province *entity.Province) error
	GetByID(ctx context.Context, id string) (*entity.Province, error)
	GetByRegionID(ctx context.Context, regionID string) ([]entity.Province, error)
	UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error
	UpdateStatusByRegionID(ctx context.Context, regionID string, status entity.EntityStatus) error
	CountActiveByRegionID(ctx context.Context, regionID, excludeID string) (int64, error)
}

type provinceRepository struct{}

func NewProvinceRepository() *provinceRepository {
	return &provinceRepository{}
}

func (r *provinceRepository) Create(ctx context.Context, province *entity.Province) error {
	return xcontext.DB(ctx).Create(province).Error
}

func (r *provinceRepository) GetByID(ctx context.Context, id string) (*entity.Province, error) {
	var result entity.Province
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *provinceRepository) GetByRegionID(ctx context.Context, regionID string) ([]entity.Province, error) {
	var result []entity.Province
	if err := xcontext.DB(ctx).Find(&result, "region_id=?", regionID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *provinceRepository) UpdateStatus(ctx context.Context, id string, status entity.EntityStatus) error {
	return xcontext.DB(ctx).Model(&entity.Province{}).
		Where("id=?", id).
		Update("status", status).Error
}

func (r *provinceRepository) UpdateStatusByRegionID(
	ctx context.Context, regionID string, status entity.EntityStatus,
) error {
	return xcontext.DB(ctx).Model(&entity.Province{}).
		Where("region_id=?", regionID).
		Update("status", status).Error
}

// CountActiveByRegionID counts active provinces of a region, not counting the
// one identified by excludeID.
func (r *provinceRepository) CountActiveByRegionID(
	ctx context.Context, regionID, excludeID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Province{}).
		Where("region_id=? AND status=? AND id<>?", regionID, entity.Active, excludeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
