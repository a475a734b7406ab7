// Package dto defines data transfer objects for the Twelve Data API responses.
package dto

// TimeSeriesValue is one bar of a time_series response. Every field arrives as a string.
type TimeSeriesValue struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	Volume   string `json:"volume,omitempty"` // absent for futures, forex and indices
}

// TimeSeriesResponse represents the JSON response from the Twelve Data time_series endpoint.
// Values are ordered newest first.
type TimeSeriesResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Meta    struct {
		Symbol   string `json:"symbol"`
		Interval string `json:"interval"`
		Currency string `json:"currency"`
		Exchange string `json:"exchange"`
	} `json:"meta"`
	Values []TimeSeriesValue `json:"values"`
}
