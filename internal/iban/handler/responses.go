package handler

import (
	"time"

	"ibanguard/internal/iban/models"
)

// ValidateResponse is the HTTP response for POST /iban/validate.
type ValidateResponse struct {
	models.Result
	CheckedAt time.Time `json:"checked_at"`
}

// BatchResponse is the HTTP response for POST /iban/validate/batch.
type BatchResponse struct {
	Results   []models.Result `json:"results"`
	Valid     int             `json:"valid"`
	Invalid   int             `json:"invalid"`
	CheckedAt time.Time       `json:"checked_at"`
}

// CountriesResponse is the HTTP response for GET /iban/countries.
type CountriesResponse struct {
	Countries []models.CountryDetails `json:"countries"`
	Total     int                     `json:"total"`
}

func toBatchResponse(results []models.Result, checkedAt time.Time) *BatchResponse {
	resp := &BatchResponse{Results: results, CheckedAt: checkedAt}
	for _, r := range results {
		if r.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp
}
