// Package model defines the validated domain entities of the bike-share
// system: bikes, stations, users, trips, and maintenance records. Every
// constructor validates its input and returns an error instead of producing
// an entity that violates its invariants.
package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. It is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

// BikeType distinguishes classic from electric bikes.
type BikeType string

const (
	BikeTypeClassic  BikeType = "classic"
	BikeTypeElectric BikeType = "electric"
)

// BikeStatus tracks where a bike is in its lifecycle.
type BikeStatus string

const (
	BikeStatusAvailable   BikeStatus = "available"
	BikeStatusInUse       BikeStatus = "in_use"
	BikeStatusMaintenance BikeStatus = "maintenance"
)

// UserType distinguishes casual riders from members.
type UserType string

const (
	UserTypeCasual UserType = "casual"
	UserTypeMember UserType = "member"
)

// MembershipTier is the level of a member subscription.
type MembershipTier string

const (
	TierBasic   MembershipTier = "basic"
	TierPremium MembershipTier = "premium"
)

// TripStatus marks whether a trip completed normally.
type TripStatus string

const (
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Entity carries the identity fields shared by all domain entities.
type Entity struct {
	ID        string    `validate:"required"`
	CreatedAt time.Time `validate:"required"`
}

func newEntity(id string) Entity {
	return Entity{ID: id, CreatedAt: time.Now()}
}

func check(kind string, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid %s: %w", kind, err)
	}

	return nil
}
