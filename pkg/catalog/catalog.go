// Package catalog holds the in-memory hotel inventory and its query
// operations. The catalog is immutable after construction and is passed
// into the tool layer as a read-only dependency.
package catalog

import (
	"strings"
)

type Hotel struct {
	ID        string             `json:"id" yaml:"id"`
	Name      string             `json:"name" yaml:"name"`
	City      string             `json:"city" yaml:"city"`
	Rating    float64            `json:"rating" yaml:"rating"`
	Price     float64            `json:"price" yaml:"price"`
	RoomTypes map[string]float64 `json:"room_types" yaml:"room_types"`
	Amenities []string           `json:"amenities" yaml:"amenities"`
	Context   string             `json:"context" yaml:"context"`
	ImageURL  string             `json:"image_url" yaml:"image_url"`
}

type Catalog struct {
	hotels []Hotel
}

func New(hotels []Hotel) *Catalog {
	return &Catalog{hotels: hotels}
}

// Default returns a catalog seeded with the built-in hotel list.
func Default() *Catalog {
	return New(defaultHotels)
}

// All returns the full hotel list, e.g. for JSON export to a frontend.
func (c *Catalog) All() []Hotel {
	return c.hotels
}

type SearchParams struct {
	City        string
	CheckIn     string
	CheckOut    string
	Guests      int
	Budget      float64
	Preferences []string
}

// Search returns all hotels in the given city (case-insensitive exact
// match). A positive budget excludes hotels whose base price exceeds it.
// Guests and dates are accepted for forward compatibility but do not
// filter; availability is only checked at booking time.
func (c *Catalog) Search(p SearchParams) []Hotel {
	results := []Hotel{}
	for _, hotel := range c.hotels {
		if !strings.EqualFold(hotel.City, p.City) {
			continue
		}
		if p.Budget > 0 && hotel.Price > p.Budget {
			continue
		}
		if len(p.Preferences) > 0 {
			matched := false
			for _, pref := range p.Preferences {
				if hotel.hasAmenity(pref) {
					matched = true
					break
				}
			}
			// Advisory only: a failed amenity match never excludes a hotel.
			_ = matched
		}
		results = append(results, hotel)
	}
	return results
}

// Details returns the hotel with the given id, or false when absent.
func (c *Catalog) Details(hotelID string) (Hotel, bool) {
	for _, hotel := range c.hotels {
		if hotel.ID == hotelID {
			return hotel, true
		}
	}
	return Hotel{}, false
}

func (h Hotel) hasAmenity(name string) bool {
	for _, amenity := range h.Amenities {
		if amenity == name {
			return true
		}
	}
	return false
}
