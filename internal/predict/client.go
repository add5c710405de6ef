package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client calls the external price-prediction endpoint. The call is a
// single opaque POST: no retry, no configured timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

type Request struct {
	Airline         string `json:"airline"`
	SourceCity      string `json:"source_city"`
	DestinationCity string `json:"destination_city"`
	DepartureTime   string `json:"departure_time,omitempty"`
	Stops           string `json:"stops"`
	ClassType       string `json:"class_type"`
	DaysLeft        int    `json:"days_left,omitempty"`
}

type Result struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
}

func (c *Client) Predict(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction service returned %s", resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
