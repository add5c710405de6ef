package models

// FlightOffer is one synthesized search result. Offers are created in a
// batch per search and never mutated afterwards.
type FlightOffer struct {
	ID            string     `json:"id"`
	Airline       Airline    `json:"airline"`
	Source        City       `json:"source"`
	Destination   City       `json:"destination"`
	DepartureTime string     `json:"departure_time"`
	ArrivalTime   string     `json:"arrival_time"`
	Stops         StopOption `json:"stops"`
	Price         int        `json:"price"`
	PriceDisplay  string     `json:"price_display"`
	Duration      string     `json:"duration"`
	BookingLink   string     `json:"booking_link"`
}
