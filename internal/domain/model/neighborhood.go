// Package model contains domain models passed between layers.
package model

import "time"

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Demographics carries descriptive population data. It is not consumed by
// the scoring formula.
type Demographics struct {
	Population     int     `json:"population,omitempty"`
	MedianAge      float64 `json:"median_age,omitempty"`
	MedianIncome   float64 `json:"median_income,omitempty"`
	EducationLevel string  `json:"education_level,omitempty"`
}

// Lifestyle holds the scorable lifestyle attributes of a neighborhood.
// Every field is optional: a nil pointer means the attribute was never
// measured, which is a valid state and not an error. Scoring substitutes
// documented defaults for absent values.
type Lifestyle struct {
	// Walkability, Transit and Bike are 0-100 scores.
	Walkability *float64 `json:"walkability_score,omitempty"`
	Transit     *float64 `json:"transit_score,omitempty"`
	Bike        *float64 `json:"bike_score,omitempty"`
	// CrimeRate is unbounded and non-negative; lower is better.
	CrimeRate *float64 `json:"crime_rate,omitempty"`
	// SchoolRating is a 0-10 rating.
	SchoolRating *float64 `json:"school_rating,omitempty"`
}

// Amenities counts nearby points of interest.
type Amenities struct {
	Restaurants int `json:"restaurants"`
	Parks       int `json:"parks"`
	Gyms        int `json:"gyms"`
	Shopping    int `json:"shopping"`
	Nightlife   int `json:"nightlife"`
	Healthcare  int `json:"healthcare"`
}

// PriceRange bounds observed rents.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Housing holds housing market data.
type Housing struct {
	MedianRent      *float64    `json:"median_rent,omitempty"`
	MedianHomePrice *float64    `json:"median_home_price,omitempty"`
	RentRange       *PriceRange `json:"rent_price_range,omitempty"`
}

// Neighborhood is one candidate entity scored against a requester's
// preferences. Instances are treated as immutable for the duration of a
// ranking operation.
type Neighborhood struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	Coordinates  Coordinates  `json:"coordinates"`
	Demographics Demographics `json:"demographics"`
	Lifestyle    Lifestyle    `json:"lifestyle"`
	Amenities    Amenities    `json:"amenities"`
	Housing      Housing      `json:"housing"`
	Description  string       `json:"description,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	LastUpdated  time.Time    `json:"last_updated,omitempty"`
}

// Float64Ptr returns a pointer to v. Convenience for building optional
// attribute values.
func Float64Ptr(v float64) *float64 { return &v }
