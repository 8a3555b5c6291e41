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

type ProductService interface {
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	GetAll(ctx context.Context) (*response.StockSummaryResponse, error)
	Update(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Quantity:   req.Quantity,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created", zap.String("product_id", product.ID.String()), zap.String("name", req.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetAll(ctx context.Context) (*response.StockSummaryResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products")
	}

	summary := &response.StockSummaryResponse{
		Products: make([]response.ProductResponse, 0, len(products)),
	}
	for _, product := range products {
		resp := response.ProductToResponse(product)
		if resp.LowStock {
			summary.LowStockCount++
		}
		summary.Products = append(summary.Products, resp)
	}

	return summary, nil
}

func (s *productService) Update(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", id, err)
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Name = req.Name
	product.PriceCents = req.PriceCents
	product.Quantity = req.Quantity
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid product ID format %s: %w", id, err)
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("product not found")
	}

	return nil
}
