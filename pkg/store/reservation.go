package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation rows are created by the booking tool and only ever mutated
// by cancellation (status flip); they are never deleted. Check-in and
// check-out are kept as ISO-like date strings and compared
// lexicographically, matching the stored format.
type Reservation struct {
	ReservationID string    `gorm:"primaryKey;column:reservation_id" json:"reservation_id"`
	HotelID       string    `gorm:"column:hotel_id" json:"hotel_id"`
	RoomType      string    `gorm:"column:room_type" json:"room_type"`
	CustomerName  string    `gorm:"column:customer_name" json:"customer_name"`
	CheckIn       string    `gorm:"column:check_in" json:"check_in"`
	CheckOut      string    `gorm:"column:check_out" json:"check_out"`
	Status        string    `gorm:"column:status" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

// Available reports whether the room can be booked for [checkIn, checkOut).
// A conflict is a confirmed reservation for the same hotel and room type
// with existing.check_in < checkOut and existing.check_out > checkIn, so a
// checkout on the day of a new check-in does not block. Cancelled rows
// never block.
func (s *Store) Available(hotelID, roomType, checkIn, checkOut string) (bool, error) {
	var count int64
	err := s.DB.Model(&Reservation{}).
		Where("hotel_id = ? AND room_type = ? AND status = ?", hotelID, roomType, StatusConfirmed).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "count overlapping reservations")
	}
	return count == 0, nil
}

func (s *Store) CreateReservation(r *Reservation) error {
	if err := s.DB.Create(r).Error; err != nil {
		return errors.Wrap(err, "insert reservation")
	}
	return nil
}

// FindReservation returns the reservation with the given id, or nil when
// no such row exists.
func (s *Store) FindReservation(reservationID string) (*Reservation, error) {
	var r Reservation
	err := s.DB.Where("reservation_id = ?", reservationID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find reservation")
	}
	return &r, nil
}

// CancelReservation flips the reservation to cancelled. Cancelling an
// already-cancelled reservation is allowed and reports no error.
func (s *Store) CancelReservation(reservationID string) error {
	err := s.DB.Model(&Reservation{}).
		Where("reservation_id = ?", reservationID).
		Update("status", StatusCancelled).Error
	if err != nil {
		return errors.Wrap(err, "cancel reservation")
	}
	return nil
}
