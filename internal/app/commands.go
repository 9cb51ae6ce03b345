package app

import (
	"context"

	"wander_wave/internal/domain"
)

// CommandService serves the write paths and keeps the read cache honest by
// evicting the key variants a mutation can affect. Eviction is best effort:
// a failed Del only means a stale entry lives until its TTL.
type CommandService struct {
	rooms    domain.RoomRepository
	bookings domain.BookingRepository
	reviews  domain.ReviewRepository
	cache    domain.Cache
}

func NewCommandService(
	rooms domain.RoomRepository,
	bookings domain.BookingRepository,
	reviews domain.ReviewRepository,
	cache domain.Cache,
) *CommandService {
	return &CommandService{rooms: rooms, bookings: bookings, reviews: reviews, cache: cache}
}

func (s *CommandService) SetRoomAvailability(ctx context.Context, id string, available bool) (domain.UpdateResult, error) {
	res, err := s.rooms.SetAvailability(ctx, id, available)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	s.invalidateRoom(ctx, id)
	return res, nil
}

func (s *CommandService) CreateBooking(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	return s.bookings.InsertBooking(ctx, doc)
}

func (s *CommandService) SetBookingDate(ctx context.Context, id, date string) (domain.UpdateResult, error) {
	return s.bookings.SetBookingDate(ctx, id, date)
}

func (s *CommandService) DeleteBooking(ctx context.Context, id string) (domain.DeleteResult, error) {
	return s.bookings.DeleteBooking(ctx, id)
}

func (s *CommandService) DeleteBookingsByEmail(ctx context.Context, email string) (domain.DeleteResult, error) {
	return s.bookings.DeleteBookingsByEmail(ctx, email)
}

func (s *CommandService) CreateReview(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	res, err := s.reviews.InsertReview(ctx, doc)
	if err != nil {
		return domain.InsertResult{}, err
	}
	s.invalidateReviews(ctx, doc)
	return res, nil
}

// invalidateRoom clears the single-room entry plus the list variants that
// embed availability: the top-4 listing and the unfiltered listing. Filtered
// list entries age out via TTL.
func (s *CommandService) invalidateRoom(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, roomKey(id))
	_ = s.cache.Del(ctx, topRoomsKey)
	_ = s.cache.Del(ctx, roomsKey(domain.RoomFilter{}))
}

func (s *CommandService) invalidateReviews(ctx context.Context, doc domain.Document) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, allReviewsKey)
	if roomID, ok := doc["roomId"].(string); ok && roomID != "" {
		_ = s.cache.Del(ctx, roomReviewsKey(roomID))
	}
}
