package dashboard

import (
	"time"

	"github.com/exlpro/invoice-cli/internal/client/models"
)

// Notify appends an ephemeral notification and schedules its removal after
// the configured TTL. IDs are timestamp-derived and strictly increasing so
// two notifications created in the same nanosecond stay distinct.
func (d *Dashboard) Notify(t models.NotificationType, message string) {
	d.mu.Lock()

	id := time.Now().UnixNano()
	if id <= d.lastNotifID {
		id = d.lastNotifID + 1
	}
	d.lastNotifID = id

	d.notifications = append(d.notifications, models.Notification{ID: id, Type: t, Message: message})
	d.timers[id] = time.AfterFunc(d.opts.NotificationTTL, func() {
		d.expire(id)
	})

	d.mu.Unlock()
}

// Notifications returns the visible notifications in arrival order.
func (d *Dashboard) Notifications() []models.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Notification, len(d.notifications))
	copy(out, d.notifications)
	return out
}

func (d *Dashboard) expire(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.timers, id)
	for i, n := range d.notifications {
		if n.ID == id {
			d.notifications = append(d.notifications[:i], d.notifications[i+1:]...)
			return
		}
	}
}
