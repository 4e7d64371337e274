package repository

import (
	"context"

	"gorm.io/gorm"

	"travel-backend/models"
)

type PackageRepository struct {
	DB *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{DB: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *models.Package) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error, "create package")
}

func (r *PackageRepository) FindByID(ctx context.Context, id uint) (*models.Package, error) {
	var p models.Package
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, "find package")
	}
	return &p, nil
}

func (r *PackageRepository) List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error) {
	q := r.DB.WithContext(ctx).Order("created_at DESC")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Available != nil {
		q = q.Where("available = ?", *filter.Available)
	}

	list := []models.Package{}
	if err := q.Find(&list).Error; err != nil {
		return nil, translate(err, "list packages")
	}
	return list, nil
}

// Save writes every column; Available=false and empty image lists must persist too.
func (r *PackageRepository) Save(ctx context.Context, p *models.Package) error {
	return translate(r.DB.WithContext(ctx).Save(p).Error, "update package")
}

func (r *PackageRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Package{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete package")
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
