package notifier

import (
	"context"
	"encoding/json"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notificationChannel = "notifications"

// Listener holds a dedicated connection on LISTEN and forwards every
// inserted notification to the websocket hub and the toast queue. The
// insert itself is done by a database trigger, so any writer path
// (including out-of-band inserts) lands here.
type Listener struct {
	db    database.PgxIface
	hub   *Hub
	queue *Queue
	log   *zap.Logger
}

func NewListener(db database.PgxIface, hub *Hub, queue *Queue, log *zap.Logger) *Listener {
	return &Listener{
		db:    db,
		hub:   hub,
		queue: queue,
		log:   log.With(zap.String("component", "notifier-listener")),
	}
}

// Run blocks until ctx is cancelled, reconnecting with a small backoff
// when the listening connection drops.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			l.log.Error("Notification feed dropped, reconnecting", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notificationChannel); err != nil {
		return err
	}

	l.log.Info("Notification feed connected", zap.String("channel", notificationChannel))

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		l.dispatch([]byte(notification.Payload))
	}
}

// notificationRow mirrors the trigger's row_to_json payload.
type notificationRow struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Kind    string    `json:"kind"`
}

func (l *Listener) dispatch(payload []byte) {
	l.hub.Broadcast(payload)

	var row notificationRow
	if err := json.Unmarshal(payload, &row); err != nil {
		l.log.Warn("Malformed notification payload", zap.Error(err))
		return
	}

	l.queue.Push(Toast{
		ID:      row.ID,
		Title:   row.Title,
		Message: row.Message,
		Kind:    entity.NotificationKind(row.Kind),
	})
}
