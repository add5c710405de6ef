package models

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type SearchResponse struct {
	SearchCriteria SearchRequest  `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Flights        []FlightOffer  `json:"flights"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
