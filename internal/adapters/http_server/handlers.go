package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wander_wave/internal/adapters/observability"
	"wander_wave/internal/app"
	"wander_wave/internal/auth"
	"wander_wave/internal/domain"
)

type Handlers struct {
	Q    *app.QueryService
	C    *app.CommandService
	Auth *auth.Manager
	Prod bool // controls cookie security attributes
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/hotelRooms", h.listRooms)
	s.mux.Get("/highestPricedRooms", h.topRooms)
	s.mux.Get("/hotelRooms/{id}", h.getRoom)
	s.mux.Get("/clientReviews", h.listReviews)
	s.mux.Get("/clientReviews/{roomId}", h.listRoomReviews)
	s.mux.With(RequireToken(h.Auth)).Get("/bookings", h.listBookings)

	s.mux.Post("/bookings", h.createBooking)
	s.mux.Post("/clientReviews", h.createReview)
	s.mux.Post("/jwt", h.issueToken)
	s.mux.Post("/logout", h.logout)

	s.mux.Patch("/hotelRooms/{id}", h.patchRoomAvailability)
	s.mux.Patch("/bookings/{id}", h.patchBookingDate)

	s.mux.Delete("/bookings/{id}", h.deleteBooking)
	s.mux.Delete("/bookings/user/{email}", h.deleteUserBookings)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeStoreError maps repository failures: a malformed id is the caller's
// fault, anything else is a 500 with no internal detail leaked.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidID) {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id is not a valid document id")
		return
	}
	log.Error().Err(err).Msg("store operation failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
}

// ---- rooms ----

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	f := app.ParsePriceBounds(r.URL.Query().Get("minPrice"), r.URL.Query().Get("maxPrice"))
	rooms, err := h.Q.ListRooms(r.Context(), f)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) topRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Q.TopRooms(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Q.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	// an unknown id yields null, matching the store's raw findOne outcome
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) patchRoomAvailability(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Availability *bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Availability == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "availability (boolean) is required")
		return
	}
	res, err := h.C.SetRoomAvailability(r.Context(), chi.URLParam(r, "id"), *body.Availability)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- bookings ----

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "unauthorized access")
		return
	}
	// ownership check: a caller may only read their own bookings
	if id.Email != email {
		observability.ObserveAuthFailure("forbidden")
		writeProblem(w, http.StatusForbidden, "Forbidden", "forbidden access")
		return
	}
	bookings, err := h.Q.ListBookings(r.Context(), email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON object")
		return
	}
	res, err := h.C.CreateBooking(r.Context(), doc)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) patchBookingDate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		BookingDate *string `json:"booking_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.BookingDate == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "booking_date is required")
		return
	}
	res, err := h.C.SetBookingDate(r.Context(), chi.URLParam(r, "id"), *body.BookingDate)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	res, err := h.C.DeleteBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) deleteUserBookings(w http.ResponseWriter, r *http.Request) {
	res, err := h.C.DeleteBookingsByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Q.ListReviews(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handlers) listRoomReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Q.ListRoomReviews(r.Context(), chi.URLParam(r, "roomId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON object")
		return
	}
	res, err := h.C.CreateReview(r.Context(), doc)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- session ----

func (h *Handlers) issueToken(w http.ResponseWriter, r *http.Request) {
	var user map[string]any
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON object")
		return
	}
	token, err := h.Auth.Issue(user)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	setSessionCookie(w, token, h.Prod)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.Prod)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
