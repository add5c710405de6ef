package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Vistara", req.Airline)
		assert.Equal(t, "Delhi", req.SourceCity)

		json.NewEncoder(w).Encode(Result{Price: 6021.37, Currency: "INR"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	result, err := client.Predict(context.Background(), Request{
		Airline:         "Vistara",
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		Stops:           "zero",
		ClassType:       "Economy",
		DaysLeft:        20,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6021.37, result.Price, 1e-9)
	assert.Equal(t, "INR", result.Currency)
}

func TestPredictServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	_, err := client.Predict(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prediction service returned")
}
