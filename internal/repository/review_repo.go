package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ListApproved(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	var out []domain.Review
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.ReviewApproved)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *ReviewRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Review, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []domain.Review
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ReviewRepository) SetAdminResponse(ctx context.Context, id int64, resp string) (*domain.Review, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", id).
		Updates(map[string]any{"admin_response": resp, "responded_at": now})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ReviewRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("status = ?", status).
		Count(&cnt)
	return cnt, tx.Error
}

type ReviewInviteRepository struct {
	db *gorm.DB
}

func NewReviewInviteRepository(db *gorm.DB) *ReviewInviteRepository {
	return &ReviewInviteRepository{db: db}
}

func (r *ReviewInviteRepository) Create(ctx context.Context, inv *domain.ReviewInvite) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *ReviewInviteRepository) GetByToken(ctx context.Context, token string) (*domain.ReviewInvite, error) {
	var inv domain.ReviewInvite
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// MarkUsed burns the invite. A second call finds no unused row and reports
// gorm.ErrRecordNotFound, so concurrent replays lose the race.
func (r *ReviewInviteRepository) MarkUsed(ctx context.Context, id int64) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&domain.ReviewInvite{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", now)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
