package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos y cantidades viajan como números JSON, igual que los consume el cliente web.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
