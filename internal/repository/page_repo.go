package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"makeupstudio/internal/domain"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var p domain.Page
	if err := r.db.WithContext(ctx).Where("slug = ? AND published = ?", slug, true).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var p domain.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageRepository) List(ctx context.Context) ([]domain.Page, error) {
	var out []domain.Page
	if err := r.db.WithContext(ctx).Order("slug").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts or updates a page keyed by slug.
func (r *PageRepository) Upsert(ctx context.Context, p *domain.Page) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "body", "published", "updated_at"}),
		}).
		Create(p).Error
}

func (r *PageRepository) Delete(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&domain.Page{}).Error
}
