package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrTripTimeRange is returned when a trip ends before it starts.
var ErrTripTimeRange = errors.New("end_time must not be before start_time")

// Trip is a single ride from one station to another.
type Trip struct {
	ID             string `validate:"required"`
	UserID         string `validate:"required"`
	BikeID         string `validate:"required"`
	StartStationID string `validate:"required"`
	EndStationID   string `validate:"required"`
	StartTime      time.Time
	EndTime        time.Time
	DistanceKm     float64    `validate:"gte=0"`
	Status         TripStatus `validate:"required,oneof=completed cancelled"`
}

// NewTrip creates a validated trip. An empty status defaults to completed.
func NewTrip(id, userID, bikeID, startStationID, endStationID string,
	startTime, endTime time.Time, distanceKm float64, status TripStatus,
) (*Trip, error) {
	if status == "" {
		status = TripStatusCompleted
	}

	if endTime.Before(startTime) {
		return nil, ErrTripTimeRange
	}

	tr := &Trip{
		ID:             id,
		UserID:         userID,
		BikeID:         bikeID,
		StartStationID: startStationID,
		EndStationID:   endStationID,
		StartTime:      startTime,
		EndTime:        endTime,
		DistanceKm:     distanceKm,
		Status:         status,
	}

	if err := check("trip", tr); err != nil {
		return nil, err
	}

	return tr, nil
}

// DurationMinutes derives the trip length from its start and end times.
func (t *Trip) DurationMinutes() float64 {
	return t.EndTime.Sub(t.StartTime).Minutes()
}

func (t *Trip) String() string {
	return fmt.Sprintf("Trip(%s, %s)", t.ID, t.UserID)
}
