package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type CollaboratorService interface {
	Create(ctx context.Context, req *request.CreateCollaboratorRequest) (*response.CollaboratorResponse, error)
	GetAll(ctx context.Context) ([]response.CollaboratorResponse, error)

	// GetPublic lists active collaborators for the booking page,
	// without contact or payout details.
	GetPublic(ctx context.Context) ([]response.PublicCollaboratorResponse, error)

	Update(ctx context.Context, id string, req *request.UpdateCollaboratorRequest) (*response.CollaboratorResponse, error)
	Delete(ctx context.Context, id string) error
}

type collaboratorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCollaboratorService(repo *repository.Repository, log *zap.Logger) CollaboratorService {
	return &collaboratorService{
		repo: repo,
		log:  log.With(zap.String("service", "collaborator")),
	}
}

func (s *collaboratorService) Create(ctx context.Context, req *request.CreateCollaboratorRequest) (*response.CollaboratorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create collaborator validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	rate := req.CommissionRate
	if rate == 0 {
		rate = 50
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hashed,
		Role:           entity.RoleCollaborator,
		Specialty:      req.Specialty,
		CommissionRate: rate,
		IsActive:       true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, fmt.Errorf("failed to create collaborator")
	}

	s.log.Info("Collaborator created",
		zap.String("collaborator_id", user.ID.String()),
		zap.String("email", req.Email))

	resp := response.CollaboratorToResponse(user)
	return &resp, nil
}

func (s *collaboratorService) GetAll(ctx context.Context) ([]response.CollaboratorResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators")
	}

	resp := make([]response.CollaboratorResponse, 0, len(users))
	for _, user := range users {
		if user.Role != entity.RoleCollaborator {
			continue
		}
		resp = append(resp, response.CollaboratorToResponse(user))
	}

	return resp, nil
}

func (s *collaboratorService) GetPublic(ctx context.Context) ([]response.PublicCollaboratorResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators")
	}

	resp := make([]response.PublicCollaboratorResponse, 0, len(users))
	for _, user := range users {
		if user.Role != entity.RoleCollaborator || !user.IsActive {
			continue
		}
		resp = append(resp, response.CollaboratorToPublicResponse(user))
	}

	return resp, nil
}

func (s *collaboratorService) Update(ctx context.Context, id string, req *request.UpdateCollaboratorRequest) (*response.CollaboratorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid collaborator ID format %s: %w", id, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find collaborator")
	}
	if user == nil {
		return nil, fmt.Errorf("collaborator not found")
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Specialty = req.Specialty
	user.CommissionRate = req.CommissionRate
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update collaborator")
	}

	// Deactivation should take effect immediately, not at token expiry.
	if req.IsActive != nil && !*req.IsActive {
		if err := s.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
			s.log.Warn("Failed to revoke sessions for deactivated collaborator",
				zap.Error(err), zap.String("collaborator_id", id))
		}
	}

	resp := response.CollaboratorToResponse(user)
	return &resp, nil
}

func (s *collaboratorService) Delete(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid collaborator ID format %s: %w", id, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find collaborator")
	}
	if user == nil {
		return fmt.Errorf("collaborator not found")
	}
	if user.Role == entity.RoleAdmin {
		return fmt.Errorf("cannot delete an admin account")
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
		s.log.Warn("Failed to revoke sessions before delete",
			zap.Error(err), zap.String("collaborator_id", id))
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete collaborator")
	}

	return nil
}
