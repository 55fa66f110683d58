package model

import "fmt"

// Station is a docking station where trips start and end.
type Station struct {
	Entity

	Name      string  `validate:"required"`
	Capacity  int     `validate:"gt=0"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

// NewStation creates a validated station.
func NewStation(id, name string, capacity int, latitude, longitude float64) (*Station, error) {
	s := &Station{
		Entity:    newEntity(id),
		Name:      name,
		Capacity:  capacity,
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := check("station", s); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Station) String() string {
	return fmt.Sprintf("Station(%s, %s)", s.ID, s.Name)
}
