// Package dataset loads the raw bike-share CSV files, cleans them into
// validated records, and answers the analytics questions of the platform.
// Ordering and lookup inside the analytics go through the algos package; the
// cleaned record types embed the validated model entities.
package dataset

import (
	"time"

	"github.com/citybike-labs/citybike/model"
	"github.com/citybike-labs/citybike/optional"
)

// Trip is a cleaned trip row. It embeds the validated model entity and adds
// the CSV-level duration column, which survives cleaning separately from the
// derived duration because missing values are filled with the column median.
type Trip struct {
	model.Trip

	UserType model.UserType

	// Duration is the duration_minutes column in minutes. It can differ from
	// the span between the trip's timestamps when the raw value was missing
	// and got median-filled.
	Duration float64
}

// Station is a cleaned station row: the validated entity plus the optional
// installation date, which the raw data frequently leaves blank.
type Station struct {
	model.Station

	InstallDate optional.Value[time.Time]
}

// Maintenance is a cleaned maintenance row: the validated record plus the
// bike type column used by the cost-per-bike-type report.
type Maintenance struct {
	model.MaintenanceRecord

	BikeType model.BikeType
}
