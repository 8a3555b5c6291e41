package usecase

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the service menu offered on the booking page.
type CatalogService interface {
	Create(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error)
	GetAll(ctx context.Context) ([]response.ServiceResponse, error)
	Update(ctx context.Context, id string, req *request.ServiceRequest) (*response.ServiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	repo repository.ServiceRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Create(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
	}

	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service")
	}

	s.log.Info("Service created", zap.String("service_id", service.ID.String()), zap.String("name", req.Name))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) GetAll(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services")
	}

	resp := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		resp = append(resp, response.ServiceToResponse(service))
	}

	return resp, nil
}

func (s *catalogService) Update(ctx context.Context, id string, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", id, err)
	}

	service, err := s.repo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service")
	}
	if service == nil {
		return nil, fmt.Errorf("service not found")
	}

	service.Name = req.Name
	service.PriceCents = req.PriceCents
	service.DurationMin = req.DurationMin
	service.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service")
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid service ID format %s: %w", id, err)
	}

	if err := s.repo.Delete(ctx, serviceID); err != nil {
		return fmt.Errorf("service not found")
	}

	return nil
}
