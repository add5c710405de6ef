package models

import (
	"math"
	"time"
)

// DefaultDaysLeft is used when a search carries neither a departure date
// nor an explicit days_left value.
const DefaultDaysLeft = 20

type SearchRequest struct {
	SourceCity      string `json:"source_city"`
	DestinationCity string `json:"destination_city"`
	ClassType       string `json:"class_type,omitempty"`
	DepartureDate   string `json:"departure_date,omitempty"`
	DaysLeft        int    `json:"days_left,omitempty"`
}

// Validate normalizes the request in place: the travel class defaults to
// Economy and days_left is recomputed from the departure date whenever one
// is present. Source equal to destination is deliberately not rejected.
func (r *SearchRequest) Validate() error {
	if r.SourceCity == "" {
		return ErrMissingSource
	}
	if _, ok := CityByID(r.SourceCity); !ok {
		return ErrUnknownSourceCity
	}
	if r.DestinationCity == "" {
		return ErrMissingDestination
	}
	if _, ok := CityByID(r.DestinationCity); !ok {
		return ErrUnknownDestinationCity
	}
	if r.ClassType == "" {
		r.ClassType = "Economy"
	}
	if _, ok := TravelClassByID(r.ClassType); !ok {
		return ErrUnknownTravelClass
	}
	if r.DepartureDate != "" {
		departure, err := time.Parse("2006-01-02", r.DepartureDate)
		if err != nil {
			return ErrInvalidDepartureDate
		}
		r.DaysLeft = DaysUntil(departure, time.Now())
	}
	if r.DaysLeft <= 0 {
		r.DaysLeft = DefaultDaysLeft
	}
	return nil
}

// DaysUntil is the whole number of days between now and departure, rounded
// up. Dates in the past count the same as dates equally far in the future.
func DaysUntil(departure, now time.Time) int {
	diff := departure.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingSource          ValidationError = "source_city is required"
	ErrMissingDestination     ValidationError = "destination_city is required"
	ErrUnknownSourceCity      ValidationError = "source_city is not a known city"
	ErrUnknownDestinationCity ValidationError = "destination_city is not a known city"
	ErrUnknownTravelClass     ValidationError = "class_type is not a known travel class"
	ErrInvalidDepartureDate   ValidationError = "departure_date must be YYYY-MM-DD"
)
