// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem represents a symbol in the API response.
// Code is the ticker and Name is the label shown in the selector.
type SymbolItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ErrorResponse is the body returned when the list cannot be produced.
type ErrorResponse struct {
	Error string `json:"error"`
}
