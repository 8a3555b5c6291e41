package adaptor

import (
	"net/http"

	"salon-booking/internal/notifier"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service  usecase.NotificationService
	hub      *notifier.Hub
	queue    *notifier.Queue
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, hub *notifier.Hub, queue *notifier.Queue, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		queue:   queue,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from a different origin in dev.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// GetRecent handles GET /api/admin/notifications
func (h *NotificationHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 50)

	notifications, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "list notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// UnreadCount handles GET /api/admin/notifications/unread
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.UnreadCount(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "count unread notifications")
		return
	}

	utils.ResponseSuccess(w, "success", count)
}

// MarkAllRead handles POST /api/admin/notifications/read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "mark notifications read")
		return
	}

	utils.ResponseSuccess(w, "Notifications marked as read", nil)
}

// GetToasts handles GET /api/admin/notifications/toasts
func (h *NotificationHandler) GetToasts(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.queue.Active())
}

// DismissToast handles DELETE /api/admin/notifications/toasts/{id}
func (h *NotificationHandler) DismissToast(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid toast ID", nil)
		return
	}

	if !h.queue.Dismiss(id) {
		utils.ResponseNotFound(w, "toast not found")
		return
	}

	utils.ResponseSuccess(w, "Toast dismissed", nil)
}

// Stream handles GET /api/admin/notifications/ws and upgrades to a
// websocket that receives every inserted notification as JSON.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	client := &notifier.Client{
		ID:   uuid.NewString(),
		Send: make(chan []byte, 64),
	}
	h.hub.Register(client)

	h.log.Info("Notification stream connected", zap.String("client_id", client.ID))

	// Writer: hub fan-out to the socket.
	go func() {
		defer conn.Close()
		for payload := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}()

	// Reader: the dashboard never sends data, this just detects close.
	go func() {
		defer h.hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
