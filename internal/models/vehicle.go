package models

// Vehicle represents a selectable vehicle type with its fuel efficiency.
type Vehicle struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	KmPerLiter float64 `json:"kmPerLiter"`
}
