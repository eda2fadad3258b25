package catalog

import (
	"context"

	"makeupstudio/internal/domain"
)

type ServiceProvider interface {
	ListActive(ctx context.Context, category string) ([]domain.Service, error)
}

type DistrictProvider interface {
	ListActive(ctx context.Context) ([]domain.TransportCost, error)
}

type Service struct {
	services  ServiceProvider
	districts DistrictProvider
}

func NewService(services ServiceProvider, districts DistrictProvider) *Service {
	return &Service{services: services, districts: districts}
}

func (s *Service) ListServices(ctx context.Context, category string) ([]domain.Service, error) {
	return s.services.ListActive(ctx, category)
}

func (s *Service) ListDistricts(ctx context.Context) ([]DistrictDTO, error) {
	entries, err := s.districts.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DistrictDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, DistrictDTO{District: e.District, Cost: e.Cost, Notes: e.Notes})
	}
	return out, nil
}
