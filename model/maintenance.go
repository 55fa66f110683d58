package model

import (
	"fmt"
	"time"
)

// MaintenanceType classifies a maintenance event.
type MaintenanceType string

const (
	MaintenanceTireRepair         MaintenanceType = "tire_repair"
	MaintenanceBrakeAdjustment    MaintenanceType = "brake_adjustment"
	MaintenanceBatteryReplacement MaintenanceType = "battery_replacement"
	MaintenanceChainLubrication   MaintenanceType = "chain_lubrication"
	MaintenanceGeneralInspection  MaintenanceType = "general_inspection"
)

// MaintenanceRecord is a single maintenance event for a bike.
type MaintenanceRecord struct {
	ID          string `validate:"required"`
	BikeID      string `validate:"required"`
	Date        time.Time
	Type        MaintenanceType `validate:"required,oneof=tire_repair brake_adjustment battery_replacement chain_lubrication general_inspection"`
	CostEUR     float64         `validate:"gte=0"`
	Description string
}

// NewMaintenanceRecord creates a validated maintenance record.
func NewMaintenanceRecord(id, bikeID string, date time.Time,
	maintenanceType MaintenanceType, costEUR float64, description string,
) (*MaintenanceRecord, error) {
	r := &MaintenanceRecord{
		ID:          id,
		BikeID:      bikeID,
		Date:        date,
		Type:        maintenanceType,
		CostEUR:     costEUR,
		Description: description,
	}

	if err := check("maintenance record", r); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *MaintenanceRecord) String() string {
	return fmt.Sprintf("MaintenanceRecord(%s, %s)", r.ID, r.BikeID)
}
