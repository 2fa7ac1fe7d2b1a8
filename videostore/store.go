package videostore

import (
	"github.com/eirikbell/videostore/pricing"
	"github.com/pkg/errors"
)

// ErrInvalidInput returned when a rental cannot be created from its arguments
var ErrInvalidInput = errors.New("invalid input")

// Movie catalog entry, immutable once created
type Movie struct {
	title    string
	category pricing.Category
}

// NewMovie creates a catalog entry
func NewMovie(title string, category pricing.Category) *Movie {
	return &Movie{title: title, category: category}
}

// Title of the movie
func (m *Movie) Title() string { return m.title }

// Category price classification of the movie
func (m *Movie) Category() pricing.Category { return m.category }

// Charge amount owed for renting the movie daysRented days
func (m *Movie) Charge(daysRented int) float64 {
	return pricing.Charge(m.category, daysRented)
}

// LoyaltyPoints points earned for renting the movie daysRented days
func (m *Movie) LoyaltyPoints(daysRented int) int {
	return pricing.LoyaltyPoints(m.category, daysRented)
}

// Rental a movie rented by a customer for a number of days
type Rental struct {
	movie      *Movie
	daysRented int
}

// NewRental fails with ErrInvalidInput for a nil movie, an unknown category
// or negative days.
func NewRental(movie *Movie, daysRented int) (*Rental, error) {
	if movie == nil {
		return nil, errors.Wrap(ErrInvalidInput, "movie is required")
	}
	if !movie.category.Valid() {
		return nil, errors.Wrapf(ErrInvalidInput, "movie %q has %s", movie.title, movie.category)
	}
	if daysRented < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "days rented must not be negative, got %d", daysRented)
	}
	return &Rental{movie: movie, daysRented: daysRented}, nil
}

// Movie rented
func (r *Rental) Movie() *Movie { return r.movie }

// DaysRented rental duration
func (r *Rental) DaysRented() int { return r.daysRented }

// Charge amount owed for this rental
func (r *Rental) Charge() float64 {
	return r.movie.Charge(r.daysRented)
}

// LoyaltyPoints frequent renter points earned by this rental
func (r *Rental) LoyaltyPoints() int {
	return r.movie.LoyaltyPoints(r.daysRented)
}

// Customer holds rentals in the order they were added
type Customer struct {
	name    string
	rentals []*Rental
}

// NewCustomer creates a customer, optionally with rentals already made
func NewCustomer(name string, rentals ...*Rental) *Customer {
	c := &Customer{name: name}
	for _, r := range rentals {
		c.AddRental(r)
	}
	return c
}

// Name of the customer
func (c *Customer) Name() string { return c.name }

// AddRental appends r to the customer's rentals
func (c *Customer) AddRental(r *Rental) {
	c.rentals = append(c.rentals, r)
}

// Rentals copy of the customer's rentals, in order
func (c *Customer) Rentals() []*Rental {
	rentals := make([]*Rental, len(c.rentals))
	copy(rentals, c.rentals)
	return rentals
}

// TotalCharge sum of all rental charges
func (c *Customer) TotalCharge() float64 {
	tot := 0.0
	for _, r := range c.rentals {
		tot += r.Charge()
	}
	return tot
}

// TotalLoyaltyPoints sum of all rental points
func (c *Customer) TotalLoyaltyPoints() int {
	tot := 0
	for _, r := range c.rentals {
		tot += r.LoyaltyPoints()
	}
	return tot
}
