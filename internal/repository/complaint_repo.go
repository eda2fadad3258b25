package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	var c domain.Complaint
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) GetByCode(ctx context.Context, code string) (*domain.Complaint, error) {
	var c domain.Complaint
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Complaint, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []domain.Complaint
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ComplaintRepository) Respond(ctx context.Context, id int64, resp string) (*domain.Complaint, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(domain.ComplaintAnswered),
			"response":     resp,
			"responded_at": now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ComplaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Where("status = ?", status).
		Count(&cnt)
	return cnt, tx.Error
}
