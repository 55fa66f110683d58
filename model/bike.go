package model

import "fmt"

// Bike is a bike in the sharing system.
type Bike struct {
	Entity

	Type   BikeType   `validate:"required,oneof=classic electric"`
	Status BikeStatus `validate:"required,oneof=available in_use maintenance"`
}

// NewBike creates a validated bike. An empty status defaults to available.
func NewBike(id string, bikeType BikeType, status BikeStatus) (*Bike, error) {
	if status == "" {
		status = BikeStatusAvailable
	}

	b := &Bike{
		Entity: newEntity(id),
		Type:   bikeType,
		Status: status,
	}

	if err := check("bike", b); err != nil {
		return nil, err
	}

	return b, nil
}

// SetStatus transitions the bike to a new status, rejecting unknown values.
func (b *Bike) SetStatus(status BikeStatus) error {
	switch status {
	case BikeStatusAvailable, BikeStatusInUse, BikeStatusMaintenance:
		b.Status = status

		return nil
	default:
		return fmt.Errorf("invalid bike status: %q", status)
	}
}

func (b *Bike) String() string {
	return fmt.Sprintf("Bike(%s, %s, %s)", b.ID, b.Type, b.Status)
}

// DefaultGearCount is used when a classic bike is created without an
// explicit gear count.
const DefaultGearCount = 7

// ClassicBike is a non-electric bike with gears.
type ClassicBike struct {
	Bike

	GearCount int `validate:"gt=0"`
}

// NewClassicBike creates a validated classic bike. A zero gearCount defaults
// to DefaultGearCount.
func NewClassicBike(id string, gearCount int, status BikeStatus) (*ClassicBike, error) {
	if gearCount == 0 {
		gearCount = DefaultGearCount
	}

	if status == "" {
		status = BikeStatusAvailable
	}

	b := &ClassicBike{
		Bike: Bike{
			Entity: newEntity(id),
			Type:   BikeTypeClassic,
			Status: status,
		},
		GearCount: gearCount,
	}

	if err := check("classic bike", b); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *ClassicBike) String() string {
	return fmt.Sprintf("ClassicBike(%s, gears=%d)", b.ID, b.GearCount)
}

// Defaults for electric bikes created with zero-valued parameters.
const (
	DefaultBatteryLevel = 100.0
	DefaultMaxRangeKm   = 50.0
)

// ElectricBike is a bike with a battery.
type ElectricBike struct {
	Bike

	BatteryLevel float64 `validate:"gte=0,lte=100"`
	MaxRangeKm   float64 `validate:"gt=0"`
}

// NewElectricBike creates a validated electric bike. A zero maxRangeKm
// defaults to DefaultMaxRangeKm; batteryLevel is taken as given, so a fully
// drained bike is representable.
func NewElectricBike(id string, batteryLevel, maxRangeKm float64, status BikeStatus) (*ElectricBike, error) {
	if maxRangeKm == 0 {
		maxRangeKm = DefaultMaxRangeKm
	}

	if status == "" {
		status = BikeStatusAvailable
	}

	b := &ElectricBike{
		Bike: Bike{
			Entity: newEntity(id),
			Type:   BikeTypeElectric,
			Status: status,
		},
		BatteryLevel: batteryLevel,
		MaxRangeKm:   maxRangeKm,
	}

	if err := check("electric bike", b); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *ElectricBike) String() string {
	return fmt.Sprintf("ElectricBike(%s, battery=%.0f%%)", b.ID, b.BatteryLevel)
}
