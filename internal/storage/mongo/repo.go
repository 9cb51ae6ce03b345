package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wander_wave/internal/domain"
)

// Collection names match the original deployment's database layout.
const (
	roomsCollection    = "hotelRooms"
	bookingsCollection = "bookings"
	reviewsCollection  = "clientReviews"
)

// Repo implements the domain repositories over a single Mongo database.
type Repo struct {
	rooms    *mongo.Collection
	bookings *mongo.Collection
	reviews  *mongo.Collection
}

func New(db *mongo.Database) *Repo {
	return &Repo{
		rooms:    db.Collection(roomsCollection),
		bookings: db.Collection(bookingsCollection),
		reviews:  db.Collection(reviewsCollection),
	}
}

// ---- rooms ----

// roomQuery builds the price predicate; a zero bound means no bound.
func roomQuery(f domain.RoomFilter) bson.M {
	price := bson.M{}
	if f.MinPrice != 0 {
		price["$gte"] = f.MinPrice
	}
	if f.MaxPrice != 0 {
		price["$lte"] = f.MaxPrice
	}
	if len(price) == 0 {
		return bson.M{}
	}
	return bson.M{"price_per_night": price}
}

func (r *Repo) ListRooms(ctx context.Context, f domain.RoomFilter) ([]domain.Document, error) {
	return r.find(ctx, r.rooms, roomQuery(f), nil)
}

func (r *Repo) TopRoomsByPrice(ctx context.Context, limit int) ([]domain.Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "price_per_night", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, r.rooms, bson.M{}, opts)
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var doc domain.Document
	err = r.rooms.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *Repo) SetAvailability(ctx context.Context, id string, available bool) (domain.UpdateResult, error) {
	return r.setField(ctx, r.rooms, id, "availability", available)
}

// InsertRoom is a seeding path only; no API route creates rooms.
func (r *Repo) InsertRoom(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	return r.insert(ctx, r.rooms, doc)
}

// ---- bookings ----

func (r *Repo) ListBookingsByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	return r.find(ctx, r.bookings, bson.M{"user_email": email}, nil)
}

func (r *Repo) InsertBooking(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	return r.insert(ctx, r.bookings, doc)
}

func (r *Repo) SetBookingDate(ctx context.Context, id, date string) (domain.UpdateResult, error) {
	return r.setField(ctx, r.bookings, id, "booking_date", date)
}

func (r *Repo) DeleteBooking(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}
	res, err := r.bookings.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *Repo) DeleteBookingsByEmail(ctx context.Context, email string) (domain.DeleteResult, error) {
	res, err := r.bookings.DeleteMany(ctx, bson.M{"user_email": email})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// ---- reviews ----

func (r *Repo) ListReviews(ctx context.Context) ([]domain.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return r.find(ctx, r.reviews, bson.M{}, opts)
}

func (r *Repo) ListRoomReviews(ctx context.Context, roomID string) ([]domain.Document, error) {
	return r.find(ctx, r.reviews, bson.M{"roomId": roomID}, nil)
}

func (r *Repo) InsertReview(ctx context.Context, doc domain.Document) (domain.InsertResult, error) {
	return r.insert(ctx, r.reviews, doc)
}

// ---- shared plumbing ----

func (r *Repo) find(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]domain.Document, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = coll.Find(ctx, filter, opts)
	} else {
		cur, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Document{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) insert(ctx context.Context, coll *mongo.Collection, doc domain.Document) (domain.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{InsertedID: idString(res.InsertedID)}, nil
}

func (r *Repo) setField(ctx context.Context, coll *mongo.Collection, id, field string, value any) (domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, domain.ErrInvalidID
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
