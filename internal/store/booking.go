package store

import (
	"sync"
	"time"

	"github.com/rosered/backend/internal/kvstore"
	"github.com/rosered/backend/internal/models"
)

const bookingsKey = "bookings"

// StatusReserved — единственный статус брони в этой версии.
const StatusReserved = "reserved"

type BookingStore struct {
	KV *kvstore.Store

	mu sync.Mutex
}

type BookingInput struct {
	Guests   int
	Datetime string
	Comment  string
}

func (s *BookingStore) all() []models.Booking {
	var bookings []models.Booking
	s.KV.Get(bookingsKey, &bookings)
	return bookings
}

// Create appends a reservation for userID. Guests below one falls back to
// one; the datetime string is stored as supplied, without validation.
func (s *BookingStore) Create(userID string, in BookingInput) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := in.Guests
	if guests < 1 {
		guests = 1
	}

	booking := models.Booking{
		ID:        NewID(),
		UserID:    userID,
		Guests:    guests,
		Datetime:  in.Datetime,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
		Status:    StatusReserved,
	}

	all := append(s.all(), booking)
	if err := s.KV.Put(bookingsKey, all); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListForUser returns the user's bookings in storage order. Sorting by
// recency is the caller's concern.
func (s *BookingStore) ListForUser(userID string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.all() {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// Cancel removes the booking with the given id; missing ids are a no-op.
func (s *BookingStore) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.all()
	for i, b := range all {
		if b.ID == id {
			all = append(all[:i], all[i+1:]...)
			return s.KV.Put(bookingsKey, all)
		}
	}
	return nil
}
