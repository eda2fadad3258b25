package repository

import (
	"context"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type BlockedSlotRepository struct {
	db *gorm.DB
}

func NewBlockedSlotRepository(db *gorm.DB) *BlockedSlotRepository {
	return &BlockedSlotRepository{db: db}
}

func (r *BlockedSlotRepository) IsBlocked(ctx context.Context, date string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.BlockedSlot{}).
		Where("date = ?", date).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BlockedSlotRepository) List(ctx context.Context, from string) ([]domain.BlockedSlot, error) {
	q := r.db.WithContext(ctx)
	if from != "" {
		q = q.Where("date >= ?", from)
	}

	var out []domain.BlockedSlot
	if err := q.Order("date").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BlockedSlotRepository) Create(ctx context.Context, b *domain.BlockedSlot) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlockedSlotRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.BlockedSlot{}, id).Error
}
