package response

import (
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/utils"
)

type NotificationResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	Kind        entity.NotificationKind `json:"kind"`
	AmountCents *int64                  `json:"amount_cents,omitempty"`
	Amount      string                  `json:"amount,omitempty"`
	Phone       *string                 `json:"phone,omitempty"`
	IsRead      bool                    `json:"is_read"`
	CreatedAt   time.Time               `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:          n.ID.String(),
		Title:       n.Title,
		Message:     n.Message,
		Kind:        n.Kind,
		AmountCents: n.AmountCents,
		Phone:       n.Phone,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}

	if n.AmountCents != nil {
		resp.Amount = utils.FormatBRL(*n.AmountCents)
	}

	return resp
}
