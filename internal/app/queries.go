package app

import (
	"context"
	"fmt"
	"time"

	"wander_wave/internal/domain"
)

// QueryService serves the read paths. Public room and review reads go through
// a cache-aside layer; booking reads are owner-scoped and never cached.
type QueryService struct {
	rooms    domain.RoomRepository
	bookings domain.BookingRepository
	reviews  domain.ReviewRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(
	rooms domain.RoomRepository,
	bookings domain.BookingRepository,
	reviews domain.ReviewRepository,
	cache domain.Cache,
	ttl time.Duration,
) *QueryService {
	return &QueryService{rooms: rooms, bookings: bookings, reviews: reviews, cache: cache, cacheTTL: ttl}
}

const topRoomsLimit = 4

func roomsKey(f domain.RoomFilter) string {
	return fmt.Sprintf("rooms:%d:%d", f.MinPrice, f.MaxPrice)
}

func roomKey(id string) string { return "room:" + id }

func roomReviewsKey(id string) string { return "reviews:room:" + id }

const (
	topRoomsKey   = "rooms:top"
	allReviewsKey = "reviews:all"
)

func (s *QueryService) ListRooms(ctx context.Context, f domain.RoomFilter) ([]domain.Document, error) {
	key := roomsKey(f)
	var out []domain.Document
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.rooms.ListRooms(ctx, f)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) TopRooms(ctx context.Context) ([]domain.Document, error) {
	var out []domain.Document
	if ok, _ := s.cache.Get(ctx, topRoomsKey, &out); ok {
		return out, nil
	}
	out, err := s.rooms.TopRoomsByPrice(ctx, topRoomsLimit)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, topRoomsKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) GetRoom(ctx context.Context, id string) (domain.Document, error) {
	key := roomKey(id)
	var out domain.Document
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.rooms.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if out != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) ListBookings(ctx context.Context, email string) ([]domain.Document, error) {
	return s.bookings.ListBookingsByEmail(ctx, email)
}

func (s *QueryService) ListReviews(ctx context.Context) ([]domain.Document, error) {
	var out []domain.Document
	if ok, _ := s.cache.Get(ctx, allReviewsKey, &out); ok {
		return out, nil
	}
	out, err := s.reviews.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, allReviewsKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) ListRoomReviews(ctx context.Context, roomID string) ([]domain.Document, error) {
	key := roomReviewsKey(roomID)
	var out []domain.Document
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.reviews.ListRoomReviews(ctx, roomID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
