package domain

import "context"

type RoomRepository interface {
	// ListRooms returns rooms matching the price filter.
	ListRooms(ctx context.Context, f RoomFilter) ([]Document, error)
	// TopRoomsByPrice returns at most limit rooms, highest price first.
	TopRoomsByPrice(ctx context.Context, limit int) ([]Document, error)
	// GetRoom returns nil without error when no room has that id.
	GetRoom(ctx context.Context, id string) (Document, error)
	// SetAvailability updates only the availability field.
	SetAvailability(ctx context.Context, id string, available bool) (UpdateResult, error)
}

type BookingRepository interface {
	ListBookingsByEmail(ctx context.Context, email string) ([]Document, error)
	InsertBooking(ctx context.Context, doc Document) (InsertResult, error)
	// SetBookingDate updates only the booking_date field.
	SetBookingDate(ctx context.Context, id, date string) (UpdateResult, error)
	DeleteBooking(ctx context.Context, id string) (DeleteResult, error)
	DeleteBookingsByEmail(ctx context.Context, email string) (DeleteResult, error)
}

type ReviewRepository interface {
	// ListReviews returns all reviews, newest first.
	ListReviews(ctx context.Context) ([]Document, error)
	ListRoomReviews(ctx context.Context, roomID string) ([]Document, error)
	InsertReview(ctx context.Context, doc Document) (InsertResult, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
