package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func mustBook(t *testing.T, s *Store, id, checkIn, checkOut string) {
	t.Helper()
	err := s.CreateReservation(&Reservation{
		ReservationID: id,
		HotelID:       "h1",
		RoomType:      "Standard",
		CustomerName:  "Alice",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("CreateReservation(%s): %v", id, err)
	}
}

func mustAvailable(t *testing.T, s *Store, hotelID, roomType, checkIn, checkOut string) bool {
	t.Helper()
	ok, err := s.Available(hotelID, roomType, checkIn, checkOut)
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	return ok
}

func TestAvailabilityOverlap(t *testing.T) {
	s := newTestStore(t)
	mustBook(t, s, "RES-1001", "2025-06-01", "2025-06-03")

	if mustAvailable(t, s, "h1", "Standard", "2025-06-02", "2025-06-04") {
		t.Fatalf("overlapping range should not be available")
	}
	if !mustAvailable(t, s, "h1", "Standard", "2025-06-03", "2025-06-05") {
		t.Fatalf("touching boundary should be available")
	}
	if !mustAvailable(t, s, "h1", "Standard", "2025-05-28", "2025-06-01") {
		t.Fatalf("range ending at check-in should be available")
	}
	if mustAvailable(t, s, "h1", "Standard", "2025-05-30", "2025-06-10") {
		t.Fatalf("fully covering range should not be available")
	}
}

func TestAvailabilityScopedToHotelAndRoomType(t *testing.T) {
	s := newTestStore(t)
	mustBook(t, s, "RES-1002", "2025-06-01", "2025-06-03")

	if !mustAvailable(t, s, "h1", "Suite", "2025-06-01", "2025-06-03") {
		t.Fatalf("other room type should be available")
	}
	if !mustAvailable(t, s, "h2", "Standard", "2025-06-01", "2025-06-03") {
		t.Fatalf("other hotel should be available")
	}
}

func TestCancelledReservationsNeverBlock(t *testing.T) {
	s := newTestStore(t)
	mustBook(t, s, "RES-1003", "2025-06-01", "2025-06-03")

	if err := s.CancelReservation("RES-1003"); err != nil {
		t.Fatalf("CancelReservation: %v", err)
	}
	if !mustAvailable(t, s, "h1", "Standard", "2025-06-01", "2025-06-03") {
		t.Fatalf("cancelled reservation should free the dates")
	}

	// And the exact same dates can be booked again.
	mustBook(t, s, "RES-1004", "2025-06-01", "2025-06-03")
}

func TestCancelIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	mustBook(t, s, "RES-1005", "2025-06-01", "2025-06-03")

	if err := s.CancelReservation("RES-1005"); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if err := s.CancelReservation("RES-1005"); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	r, err := s.FindReservation("RES-1005")
	if err != nil {
		t.Fatalf("FindReservation: %v", err)
	}
	if r.Status != StatusCancelled {
		t.Fatalf("expected cancelled, got %s", r.Status)
	}
}

func TestFindReservationMissing(t *testing.T) {
	s := newTestStore(t)

	r, err := s.FindReservation("RES-0000")
	if err != nil {
		t.Fatalf("FindReservation: %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil for unknown reservation, got %+v", r)
	}
}

func TestSessionUpsert(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil for unknown session")
	}

	if err := s.SaveSession("s1", []byte(`[{"role":"user"}]`), StateRunning); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := s.SaveSession("s1", []byte(`[{"role":"user"},{"role":"assistant"}]`), StateRunning); err != nil {
		t.Fatalf("SaveSession (overwrite): %v", err)
	}

	sess, err = s.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess == nil {
		t.Fatalf("session not found after save")
	}
	if sess.State != StateRunning {
		t.Fatalf("expected state %s, got %s", StateRunning, sess.State)
	}
	if string(sess.Context) != `[{"role":"user"},{"role":"assistant"}]` {
		t.Fatalf("context not overwritten: %s", sess.Context)
	}
}
