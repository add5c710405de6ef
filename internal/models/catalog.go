package models

// Static reference tables for the simulated fare engine. Loaded once at
// startup, never mutated.

type Airline struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	BasePrice float64 `json:"base_price"`
}

type City struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

type TimeOfDay struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

type StopOption struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Cost  float64 `json:"cost"`
}

type TravelClass struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

var Airlines = []Airline{
	{ID: "Vistara", Label: "Vistara", BasePrice: 5000},
	{ID: "Air_India", Label: "Air India", BasePrice: 4500},
	{ID: "Indigo", Label: "Indigo", BasePrice: 3500},
	{ID: "GO_FIRST", Label: "GO FIRST", BasePrice: 3200},
	{ID: "AirAsia", Label: "AirAsia", BasePrice: 3000},
	{ID: "SpiceJet", Label: "SpiceJet", BasePrice: 3100},
}

var Cities = []City{
	{ID: "Delhi", Label: "Delhi", Factor: 1.1},
	{ID: "Mumbai", Label: "Mumbai", Factor: 1.2},
	{ID: "Bangalore", Label: "Bangalore", Factor: 1.15},
	{ID: "Kolkata", Label: "Kolkata", Factor: 1.0},
	{ID: "Hyderabad", Label: "Hyderabad", Factor: 1.05},
	{ID: "Chennai", Label: "Chennai", Factor: 1.05},
}

// Times is ordered; arrival buckets are derived by cyclic index from the
// departure bucket, so the order is part of the contract.
var Times = []TimeOfDay{
	{ID: "Early_Morning", Label: "Early Morning", Factor: 0.9},
	{ID: "Morning", Label: "Morning", Factor: 1.1},
	{ID: "Afternoon", Label: "Afternoon", Factor: 1.0},
	{ID: "Evening", Label: "Evening", Factor: 1.15},
	{ID: "Night", Label: "Night", Factor: 0.95},
	{ID: "Late_Night", Label: "Late Night", Factor: 0.85},
}

var StopOptions = []StopOption{
	{ID: "zero", Label: "Non-stop", Cost: 0},
	{ID: "one", Label: "1 Stop", Cost: 1500},
	{ID: "two_or_more", Label: "2+ Stops", Cost: 2800},
}

var TravelClasses = []TravelClass{
	{ID: "Economy", Label: "Economy", Multiplier: 1},
	{ID: "Business", Label: "Business", Multiplier: 3.5},
}

func CityByID(id string) (City, bool) {
	for _, c := range Cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

func AirlineByID(id string) (Airline, bool) {
	for _, a := range Airlines {
		if a.ID == id {
			return a, true
		}
	}
	return Airline{}, false
}

func TravelClassByID(id string) (TravelClass, bool) {
	for _, tc := range TravelClasses {
		if tc.ID == id {
			return tc, true
		}
	}
	return TravelClass{}, false
}
