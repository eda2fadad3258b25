package repository

import (
	"context"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type TransportCostRepository struct {
	db *gorm.DB
}

func NewTransportCostRepository(db *gorm.DB) *TransportCostRepository {
	return &TransportCostRepository{db: db}
}

func (r *TransportCostRepository) ListActive(ctx context.Context) ([]domain.TransportCost, error) {
	var out []domain.TransportCost
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("district").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TransportCostRepository) List(ctx context.Context) ([]domain.TransportCost, error) {
	var out []domain.TransportCost
	if err := r.db.WithContext(ctx).Order("district").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TransportCostRepository) GetByID(ctx context.Context, id int64) (*domain.TransportCost, error) {
	var t domain.TransportCost
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransportCostRepository) Create(ctx context.Context, t *domain.TransportCost) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransportCostRepository) Update(ctx context.Context, t *domain.TransportCost) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TransportCostRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.TransportCost{}, id).Error
}
