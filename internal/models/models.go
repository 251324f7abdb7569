package models

import "time"

// Indicator identifies a named time series published by ESIOS.
type Indicator struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// DataPoint is one observation of an indicator. Geo fields are passed
// through as the provider reports them.
type DataPoint struct {
	Datetime time.Time `json:"datetime"`
	Value    float64   `json:"value"`
	GeoID    int       `json:"geo_id,omitempty"`
	GeoName  string    `json:"geo_name,omitempty"`
}

// DateRange bounds a retrieval request. Start never exceeds End once the
// range has passed validation.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
