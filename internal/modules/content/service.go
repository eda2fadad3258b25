package content

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"makeupstudio/internal/domain"
)

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
)

type PageRepository interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Page, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Page, error)
	List(ctx context.Context) ([]domain.Page, error)
	Upsert(ctx context.Context, p *domain.Page) error
	Delete(ctx context.Context, slug string) error
}

type Service struct {
	pages PageRepository
}

func NewService(pages PageRepository) *Service {
	return &Service{pages: pages}
}

func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Page, error) {
	p, err := s.pages.GetPublishedBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Page, error) {
	return s.pages.List(ctx)
}

func (s *Service) Upsert(ctx context.Context, req UpsertPageRequest) (*domain.Page, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	p := &domain.Page{
		Slug:      slug,
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		Published: req.Published,
	}
	if err := s.pages.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.pages.GetBySlug(ctx, slug)
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	if _, err := s.pages.GetBySlug(ctx, slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.pages.Delete(ctx, slug)
}
