//go:build integration || !unit

package mongo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"wander_wave/internal/domain"
	mongostore "wander_wave/internal/storage/mongo"
)

func startMongo(t *testing.T) *mongostore.Repo {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mongo: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))
	var repo *mongostore.Repo
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := mongostore.Connect(ctx, uri)
		if err != nil {
			return err
		}
		t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
		repo = mongostore.New(client.Database("HotelRoomsDB"))
		return nil
	}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return repo
}

func price(d domain.Document) float64 {
	switch v := d["price_per_night"].(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func TestRooms_FilterTopAndPatch(t *testing.T) {
	repo := startMongo(t)
	ctx := context.Background()

	prices := []int{80, 120, 200, 260, 340}
	for _, p := range prices {
		if _, err := repo.InsertRoom(ctx, domain.Document{
			"room_name":       fmt.Sprintf("room-%d", p),
			"price_per_night": p,
			"availability":    true,
		}); err != nil {
			t.Fatalf("insert room: %v", err)
		}
	}

	// Range filter is inclusive on both ends.
	rooms, err := repo.ListRooms(ctx, domain.RoomFilter{MinPrice: 120, MaxPrice: 260})
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("expected 3 rooms in [120,260], got %d", len(rooms))
	}

	// Zero bounds mean all rooms.
	all, err := repo.ListRooms(ctx, domain.RoomFilter{})
	if err != nil {
		t.Fatalf("ListRooms all: %v", err)
	}
	if len(all) != len(prices) {
		t.Fatalf("expected %d rooms, got %d", len(prices), len(all))
	}

	// Top listing: at most 4, sorted descending.
	top, err := repo.TopRoomsByPrice(ctx, 4)
	if err != nil {
		t.Fatalf("TopRoomsByPrice: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("expected 4 top rooms, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if price(top[i]) > price(top[i-1]) {
			t.Fatalf("top rooms not sorted descending: %v > %v", price(top[i]), price(top[i-1]))
		}
	}

	// Availability patch touches only that field.
	id := mustHex(t, all[0])
	res, err := repo.SetAvailability(ctx, id, false)
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Fatalf("unexpected update result: %+v", res)
	}
	got, err := repo.GetRoom(ctx, id)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got["availability"] != false {
		t.Fatalf("availability not updated: %+v", got)
	}
	if got["room_name"] != all[0]["room_name"] || price(got) != price(all[0]) {
		t.Fatalf("other fields changed: %+v vs %+v", got, all[0])
	}

	// Unknown but well-formed id resolves to a nil document, not an error.
	missing, err := repo.GetRoom(ctx, "64b000000000000000000000")
	if err != nil {
		t.Fatalf("GetRoom missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}

	// Malformed id is rejected before hitting the store.
	if _, err := repo.GetRoom(ctx, "not-a-hex-id"); err != domain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestBookings_OwnerScopedLifecycle(t *testing.T) {
	repo := startMongo(t)
	ctx := context.Background()

	ins, err := repo.InsertBooking(ctx, domain.Document{
		"user_email":   "a@x.com",
		"booking_date": "2024-01-01",
		"roomId":       "R1",
	})
	if err != nil {
		t.Fatalf("InsertBooking: %v", err)
	}
	if ins.InsertedID == "" {
		t.Fatal("expected generated id")
	}
	if _, err := repo.InsertBooking(ctx, domain.Document{"user_email": "a@x.com", "booking_date": "2024-02-02"}); err != nil {
		t.Fatalf("InsertBooking: %v", err)
	}
	if _, err := repo.InsertBooking(ctx, domain.Document{"user_email": "b@y.com", "booking_date": "2024-03-03"}); err != nil {
		t.Fatalf("InsertBooking: %v", err)
	}

	mine, err := repo.ListBookingsByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("ListBookingsByEmail: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 bookings for a@x.com, got %d", len(mine))
	}

	// Date patch by id.
	up, err := repo.SetBookingDate(ctx, ins.InsertedID, "2024-05-05")
	if err != nil {
		t.Fatalf("SetBookingDate: %v", err)
	}
	if up.ModifiedCount != 1 {
		t.Fatalf("unexpected update result: %+v", up)
	}

	// Bulk delete removes all and only the owner's bookings.
	del, err := repo.DeleteBookingsByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("DeleteBookingsByEmail: %v", err)
	}
	if del.DeletedCount != 2 {
		t.Fatalf("deleted %d, want 2", del.DeletedCount)
	}
	left, _ := repo.ListBookingsByEmail(ctx, "a@x.com")
	if len(left) != 0 {
		t.Fatalf("expected empty list, got %+v", left)
	}
	others, _ := repo.ListBookingsByEmail(ctx, "b@y.com")
	if len(others) != 1 {
		t.Fatalf("other owner's booking lost: %+v", others)
	}
}

func TestReviews_NewestFirstAndByRoom(t *testing.T) {
	repo := startMongo(t)
	ctx := context.Background()

	for i, ts := range []int64{100, 300, 200} {
		if _, err := repo.InsertReview(ctx, domain.Document{
			"roomId":    fmt.Sprintf("R%d", i%2),
			"timestamp": ts,
			"rating":    5,
		}); err != nil {
			t.Fatalf("InsertReview: %v", err)
		}
	}

	all, err := repo.ListReviews(ctx)
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(all))
	}
	ts := func(d domain.Document) int64 {
		switch v := d["timestamp"].(type) {
		case int64:
			return v
		case int32:
			return int64(v)
		case float64:
			return int64(v)
		}
		return 0
	}
	if ts(all[0]) != 300 || ts(all[1]) != 200 || ts(all[2]) != 100 {
		t.Fatalf("reviews not newest-first: %v %v %v", ts(all[0]), ts(all[1]), ts(all[2]))
	}

	byRoom, err := repo.ListRoomReviews(ctx, "R0")
	if err != nil {
		t.Fatalf("ListRoomReviews: %v", err)
	}
	if len(byRoom) != 2 {
		t.Fatalf("expected 2 reviews for R0, got %d", len(byRoom))
	}
}

func mustHex(t *testing.T, d domain.Document) string {
	t.Helper()
	oid, ok := d["_id"].(interface{ Hex() string })
	if !ok {
		t.Fatalf("document _id is not an object id: %T", d["_id"])
	}
	return oid.Hex()
}

