package repository

import (
	"context"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListActive(ctx context.Context, category string) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Service
	if err := q.Order("category, name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := r.db.WithContext(ctx).Order("category, name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
