package app_test

import (
	"context"

	"wander_wave/internal/domain"
)

// ---- fakes ----

type fakeRooms struct {
	rooms      []domain.Document
	room       domain.Document
	lastFilter domain.RoomFilter
	updates    int
}

func (f *fakeRooms) ListRooms(ctx context.Context, fl domain.RoomFilter) ([]domain.Document, error) {
	f.lastFilter = fl
	return f.rooms, nil
}
func (f *fakeRooms) TopRoomsByPrice(ctx context.Context, limit int) ([]domain.Document, error) {
	if len(f.rooms) > limit {
		return f.rooms[:limit], nil
	}
	return f.rooms, nil
}
func (f *fakeRooms) GetRoom(ctx context.Context, id string) (domain.Document, error) {
	return f.room, nil
}
func (f *fakeRooms) SetAvailability(ctx context.Context, id string, available bool) (domain.UpdateResult, error) {
	f.updates++
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeBookings struct {
	byEmail map[string][]domain.Document
}

func (f *fakeBookings) ListBookingsByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	return f.byEmail[email], nil
}
func (f *fakeBookings) InsertBooking(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	return domain.InsertResult{InsertedID: "b1"}, nil
}
func (f *fakeBookings) SetBookingDate(ctx context.Context, id, date string) (domain.UpdateResult, error) {
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}
func (f *fakeBookings) DeleteBooking(ctx context.Context, id string) (domain.DeleteResult, error) {
	return domain.DeleteResult{DeletedCount: 1}, nil
}
func (f *fakeBookings) DeleteBookingsByEmail(ctx context.Context, email string) (domain.DeleteResult, error) {
	n := int64(len(f.byEmail[email]))
	delete(f.byEmail, email)
	return domain.DeleteResult{DeletedCount: n}, nil
}

type fakeReviews struct {
	reviews []domain.Document
}

func (f *fakeReviews) ListReviews(ctx context.Context) ([]domain.Document, error) {
	return f.reviews, nil
}
func (f *fakeReviews) ListRoomReviews(ctx context.Context, roomID string) ([]domain.Document, error) {
	var out []domain.Document
	for _, r := range f.reviews {
		if r["roomId"] == roomID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReviews) InsertReview(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	f.reviews = append(f.reviews, doc)
	return domain.InsertResult{InsertedID: "r1"}, nil
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Document:
		*d = v.(domain.Document)
	case *[]domain.Document:
		*d = v.([]domain.Document)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}
