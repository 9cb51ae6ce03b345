package domain

import "errors"

// Document is a schemaless record as stored in a collection. Inserts keep the
// posted body verbatim and reads return the stored fields as-is; only the
// fields the backend queries or mutates are contractual:
//
//	rooms:    price_per_night (numeric), availability (bool)
//	bookings: user_email (owner), booking_date
//	reviews:  roomId (room reference, not enforced), timestamp (sort key)
type Document = map[string]any

// ErrInvalidID reports a path identifier that is not a valid store id.
var ErrInvalidID = errors.New("invalid document id")

// RoomFilter bounds price_per_night inclusively. Zero means "no bound": the
// original API treats 0 and non-numeric values the same as an absent
// parameter, and that quirk is part of the contract.
type RoomFilter struct {
	MinPrice int
	MaxPrice int
}

// Mutation summaries mirror the store's raw outcome fields.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
