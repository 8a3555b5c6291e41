package usecase

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	// Publish persists a notification row; a database trigger forwards
	// it to the realtime feed, so callers never touch the hub directly.
	Publish(ctx context.Context, title, message string, kind entity.NotificationKind, amountCents *int64, phone *string) error

	Recent(ctx context.Context, limit int) ([]response.NotificationResponse, error)
	UnreadCount(ctx context.Context) (*response.UnreadCountResponse, error)
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) Publish(ctx context.Context, title, message string, kind entity.NotificationKind, amountCents *int64, phone *string) error {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       title,
		Message:     message,
		Kind:        kind,
		AmountCents: amountCents,
		Phone:       phone,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Error("Failed to publish notification", zap.Error(err), zap.String("title", title))
		return fmt.Errorf("failed to publish notification")
	}

	return nil
}

func (s *notificationService) Recent(ctx context.Context, limit int) ([]response.NotificationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	notifications, err := s.repo.Notification.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list notifications")
	}

	resp := make([]response.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, response.NotificationToResponse(n))
	}

	return resp, nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (*response.UnreadCountResponse, error) {
	count, err := s.repo.Notification.CountUnread(ctx)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to count unread notifications")
	}

	return &response.UnreadCountResponse{Unread: count}, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	if err := s.repo.Notification.MarkAllRead(ctx); err != nil {
		s.log.Error("Failed to mark notifications read", zap.Error(err))
		return fmt.Errorf("failed to mark notifications read")
	}

	return nil
}
