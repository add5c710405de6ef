package simulator

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyhigh-app/flyhigh/internal/models"
)

var durationRe = regexp.MustCompile(`^[2-4]h [0-9]{1,2}m$`)

func TestSearchOfferBatch(t *testing.T) {
	sim := New(Config{})
	req := models.SearchRequest{
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		ClassType:       "Economy",
		DaysLeft:        20,
	}

	// The batch is random; run a few searches to exercise the range.
	for i := 0; i < 20; i++ {
		offers, err := sim.Search(context.Background(), req)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(offers), 3)
		assert.LessOrEqual(t, len(offers), 5)

		for j, offer := range offers {
			assert.NotEmpty(t, offer.ID)
			assert.NotEmpty(t, offer.Airline.Label)
			assert.Equal(t, "Delhi", offer.Source.ID)
			assert.Equal(t, "Mumbai", offer.Destination.ID)
			assert.Regexp(t, durationRe, offer.Duration)
			assert.Contains(t, offer.BookingLink, "google.com/search")
			assert.NotEmpty(t, offer.PriceDisplay)

			if j > 0 {
				assert.GreaterOrEqual(t, offer.Price, offers[j-1].Price,
					"offers must be sorted ascending by price")
			}
		}
	}
}

func TestSearchArrivalBucketIsTwoAfterDeparture(t *testing.T) {
	sim := New(Config{})
	req := models.SearchRequest{
		SourceCity:      "Kolkata",
		DestinationCity: "Chennai",
	}

	offers, err := sim.Search(context.Background(), req)
	require.NoError(t, err)

	for _, offer := range offers {
		depIdx := timeIndexByLabel(t, offer.DepartureTime)
		wantArrival := models.Times[(depIdx+2)%len(models.Times)].Label
		assert.Equal(t, wantArrival, offer.ArrivalTime)
	}
}

func timeIndexByLabel(t *testing.T, label string) int {
	t.Helper()
	for i, tod := range models.Times {
		if tod.Label == label {
			return i
		}
	}
	t.Fatalf("unknown time-of-day label %q", label)
	return -1
}

func TestSearchUnknownCity(t *testing.T) {
	sim := New(Config{})

	_, err := sim.Search(context.Background(), models.SearchRequest{
		SourceCity:      "Atlantis",
		DestinationCity: "Mumbai",
	})
	assert.ErrorIs(t, err, models.ErrUnknownSourceCity)

	_, err = sim.Search(context.Background(), models.SearchRequest{
		SourceCity:      "Delhi",
		DestinationCity: "Atlantis",
	})
	assert.ErrorIs(t, err, models.ErrUnknownDestinationCity)
}

func TestSearchDefaultsClassAndDays(t *testing.T) {
	sim := New(Config{})

	offers, err := sim.Search(context.Background(), models.SearchRequest{
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, offers)
}

func TestSearchHonorsContextDuringDelay(t *testing.T) {
	sim := New(Config{Delay: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Search(ctx, models.SearchRequest{
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDaysOutFactor(t *testing.T) {
	// Fewer days left means a strictly higher factor.
	for d := 0; d < 50; d++ {
		assert.Greater(t, DaysOutFactor(d), DaysOutFactor(d+1))
	}

	assert.InDelta(t, 2.2, DaysOutFactor(20), 1e-9)
	assert.InDelta(t, 1.0, DaysOutFactor(50), 1e-9)
	assert.InDelta(t, 3.0, DaysOutFactor(0), 1e-9)
}
