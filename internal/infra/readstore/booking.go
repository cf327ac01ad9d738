package readstore

import (
	"context"
	"errors"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectBookingByID = `
SELECT id, topic, requester_name, requester_email,
       slot_start, slot_end,
       resource_status, resource_id, join_url, resource_reason,
       notification_status, notification_reason,
       calendar_status, calendar_event_id, calendar_reason,
       created_at
FROM bookings
WHERE id = $1`

const selectRecentBookings = `
SELECT id, topic, requester_email, slot_start, slot_end, resource_status, created_at
FROM bookings
ORDER BY created_at DESC, id DESC
LIMIT $1`

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, selectBookingByID, id).Scan(
		&v.ID, &v.Topic, &v.RequesterName, &v.RequesterEmail,
		&v.SlotStart, &v.SlotEnd,
		&v.ResourceStatus, &v.ResourceID, &v.JoinURL, &v.ResourceReason,
		&v.NotificationStatus, &v.NotificationReason,
		&v.CalendarStatus, &v.CalendarEventID, &v.CalendarReason,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

func (r *BookingReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, selectRecentBookings, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.Topic, &item.RequesterEmail,
			&item.SlotStart, &item.SlotEnd, &item.ResourceStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
