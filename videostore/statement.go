package videostore

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement renders the customer's rental record. Every line but the last is
// newline terminated.
func (c *Customer) Statement() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Rental Records for %s\n", c.name)
	for _, r := range c.rentals {
		fmt.Fprintf(&sb, "\t%s\t%s\n", r.movie.title, FormatAmount(r.Charge()))
	}
	fmt.Fprintf(&sb, "Amount owed is %s\n", FormatAmount(c.TotalCharge()))
	fmt.Fprintf(&sb, "You earned %d frequent renter points", c.TotalLoyaltyPoints())

	return sb.String()
}

// FormatAmount shortest round-tripping decimal form, always with at least one
// fractional digit: 6.5, 34.0, 12.25
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
