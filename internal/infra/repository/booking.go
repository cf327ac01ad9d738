package repository

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertBooking = `
INSERT INTO bookings (
	id, topic, requester_name, requester_email,
	slot_start, slot_end,
	resource_status, resource_id, join_url, resource_reason,
	notification_status, notification_reason,
	calendar_status, calendar_event_id, calendar_reason,
	created_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)`

// BookingRepository appends one row per workflow execution. Rows are
// write-once; there is no update path.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Save(ctx context.Context, rec *commands.BookingRecord) error {
	_, err := r.db.Exec(ctx, insertBooking,
		rec.ID, rec.Topic, rec.RequesterName, rec.RequesterEmail,
		rec.SlotStart, rec.SlotEnd,
		rec.ResourceStatus, rec.ResourceID, rec.JoinURL, rec.ResourceReason,
		rec.NotificationStatus, rec.NotificationReason,
		rec.CalendarStatus, rec.CalendarEventID, rec.CalendarReason,
		rec.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking record", err)
	}
	return nil
}
