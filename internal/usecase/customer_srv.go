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

type CustomerService interface {
	Create(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	GetAll(ctx context.Context) ([]response.CustomerResponse, error)
	Update(ctx context.Context, id string, req *request.CustomerRequest) (*response.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	repo repository.CustomerRepository
	log  *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) Create(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer")
	}

	s.log.Info("Customer created", zap.String("customer_id", customer.ID.String()))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetAll(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers")
	}

	resp := make([]response.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		resp = append(resp, response.CustomerToResponse(customer))
	}

	return resp, nil
}

func (s *customerService) Update(ctx context.Context, id string, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", id, err)
	}

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer")
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid customer ID format %s: %w", id, err)
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("customer not found")
	}

	return nil
}
