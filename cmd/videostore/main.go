// Command videostore prints the rental statement of a sample customer.
package main

import (
	"fmt"
	"os"

	"github.com/eirikbell/videostore/pricing"
	"github.com/eirikbell/videostore/videostore"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type booking struct {
	movie *videostore.Movie
	days  int
}

func sampleCustomer() (*videostore.Customer, error) {
	avatar := videostore.NewMovie("Avatar", pricing.Regular)
	dexter := videostore.NewMovie("Dexter", pricing.Regular)
	bohemianRapsody := videostore.NewMovie("Bohemian Rapsody", pricing.NewRelease)
	animals := videostore.NewMovie("Animals", pricing.Children)

	bookings := []booking{
		{avatar, 5},
		{dexter, 7},
		{bohemianRapsody, 2},
		{animals, 10},
	}

	customer := videostore.NewCustomer("Mihaita")
	for _, b := range bookings {
		r, err := videostore.NewRental(b.movie, b.days)
		if err != nil {
			return nil, errors.Wrapf(err, "Cannot rent %s", b.movie.Title())
		}
		customer.AddRental(r)
	}
	return customer, nil
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	customer, err := sampleCustomer()
	if err != nil {
		logger.Fatal("failed to build customer", zap.Error(err))
	}

	fmt.Println(customer.Statement())

	logger.Info("statement rendered",
		zap.String("customer", customer.Name()),
		zap.Int("rentals", len(customer.Rentals())),
		zap.Float64("total_charge", customer.TotalCharge()),
		zap.Int("points", customer.TotalLoyaltyPoints()))
}
