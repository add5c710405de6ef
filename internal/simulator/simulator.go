package simulator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/flyhigh-app/flyhigh/internal/models"
	"github.com/flyhigh-app/flyhigh/pkg/currency"
)

// DefaultDelay models the round-trip to a real fare backend.
const DefaultDelay = 1500 * time.Millisecond

type Config struct {
	Delay time.Duration
}

func DefaultConfig() Config {
	return Config{Delay: DefaultDelay}
}

// Simulator synthesizes plausible flight offers for a route. Prices are
// random but parameter-sensitive: premium cabins, peak departure times and
// last-minute bookings all push the price up.
type Simulator struct {
	delay time.Duration
}

func New(cfg Config) *Simulator {
	return &Simulator{delay: cfg.Delay}
}

// Search returns 3 to 5 offers sorted ascending by price. The request must
// have passed Validate; unresolved ids are a contract violation and the
// only ones reported here.
func (s *Simulator) Search(ctx context.Context, req models.SearchRequest) ([]models.FlightOffer, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	source, ok := models.CityByID(req.SourceCity)
	if !ok {
		return nil, models.ErrUnknownSourceCity
	}
	dest, ok := models.CityByID(req.DestinationCity)
	if !ok {
		return nil, models.ErrUnknownDestinationCity
	}

	classID := req.ClassType
	if classID == "" {
		classID = "Economy"
	}
	class, ok := models.TravelClassByID(classID)
	if !ok {
		return nil, models.ErrUnknownTravelClass
	}

	daysLeft := req.DaysLeft
	if daysLeft <= 0 {
		daysLeft = models.DefaultDaysLeft
	}

	count := rand.Intn(3) + 3
	offers := make([]models.FlightOffer, 0, count)
	for i := 0; i < count; i++ {
		offers = append(offers, synthesize(source, dest, class, daysLeft))
	}

	sort.Slice(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})

	return offers, nil
}

func synthesize(source, dest models.City, class models.TravelClass, daysLeft int) models.FlightOffer {
	airline := models.Airlines[rand.Intn(len(models.Airlines))]
	stop := models.StopOptions[rand.Intn(len(models.StopOptions))]
	depIdx := rand.Intn(len(models.Times))
	departure := models.Times[depIdx]
	// The arrival bucket is cosmetic: two slots after departure, wrapping.
	arrival := models.Times[(depIdx+2)%len(models.Times)]

	price := airline.BasePrice
	price *= (source.Factor + dest.Factor) / 2
	price += (rand.Float64()*2 + 1) * 400
	price += stop.Cost
	price *= departure.Factor
	price *= DaysOutFactor(daysLeft)
	price *= class.Multiplier
	price += rand.Float64()*400 - 200
	final := int(math.Round(price))

	hours := rand.Intn(3) + 2
	minutes := rand.Intn(60)

	return models.FlightOffer{
		ID:            "flight-" + uuid.NewString(),
		Airline:       airline,
		Source:        source,
		Destination:   dest,
		DepartureTime: departure.Label,
		ArrivalTime:   arrival.Label,
		Stops:         stop,
		Price:         final,
		PriceDisplay:  currency.FormatINR(float64(final)),
		Duration:      fmt.Sprintf("%dh %dm", hours, minutes),
		BookingLink:   bookingLink(airline, source, dest),
	}
}

// DaysOutFactor is the price multiplier for booking daysLeft days before
// departure. It decreases monotonically in daysLeft: fewer days left means
// a higher price.
func DaysOutFactor(daysLeft int) float64 {
	return 1 + float64(50-daysLeft)/25
}

func bookingLink(airline models.Airline, source, dest models.City) string {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("flight %s %s to %s", airline.Label, source.Label, dest.Label))
	return "https://www.google.com/search?" + q.Encode()
}
