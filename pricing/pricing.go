// Package pricing implements per-trip cost calculation. Each pricing rule is
// a Strategy computing the cost of a trip from its duration and distance, and
// the rates behind the built-in strategies can be overridden with a YAML rate
// card for deployments with different tariffs.
package pricing

// Strategy computes the cost of a trip in euros.
type Strategy interface {
	// Cost returns the trip cost for the given duration in minutes and
	// distance in kilometers.
	Cost(durationMinutes, distanceKm float64) float64
}

// Rates are the components of a linear fare formula.
type Rates struct {
	UnlockFee float64 `yaml:"unlock_fee"`
	PerMinute float64 `yaml:"per_minute"`
	PerKM     float64 `yaml:"per_km"`
}

// Cost applies the linear fare formula: unlock fee plus per-minute and
// per-kilometer charges.
func (r Rates) Cost(durationMinutes, distanceKm float64) float64 {
	return r.UnlockFee + r.PerMinute*durationMinutes + r.PerKM*distanceKm
}

// Default tariffs. Casual riders pay an unlock fee; members do not and ride
// at discounted rates.
var (
	DefaultCasualRates = Rates{UnlockFee: 1.00, PerMinute: 0.15, PerKM: 0.10} //nolint:gochecknoglobals
	DefaultMemberRates = Rates{UnlockFee: 0, PerMinute: 0.08, PerKM: 0.05}    //nolint:gochecknoglobals
)

// Casual prices trips for non-member riders.
type Casual struct {
	Rates Rates
}

// NewCasual returns the casual strategy with default rates.
func NewCasual() Casual {
	return Casual{Rates: DefaultCasualRates}
}

func (c Casual) Cost(durationMinutes, distanceKm float64) float64 {
	return c.Rates.Cost(durationMinutes, distanceKm)
}

// Member prices trips for members.
type Member struct {
	Rates Rates
}

// NewMember returns the member strategy with default rates.
func NewMember() Member {
	return Member{Rates: DefaultMemberRates}
}

func (m Member) Cost(durationMinutes, distanceKm float64) float64 {
	return m.Rates.Cost(durationMinutes, distanceKm)
}

// PeakMultiplier is the surcharge applied on top of the casual tariff during
// peak hours.
const PeakMultiplier = 1.5

// PeakHour applies a multiplier on top of a base strategy (the casual tariff
// by default).
type PeakHour struct {
	Base       Strategy
	Multiplier float64
}

// NewPeakHour returns the peak-hour strategy over the default casual rates.
func NewPeakHour() PeakHour {
	return PeakHour{Base: NewCasual(), Multiplier: PeakMultiplier}
}

func (p PeakHour) Cost(durationMinutes, distanceKm float64) float64 {
	return p.Base.Cost(durationMinutes, distanceKm) * p.Multiplier
}

// MaxFreeMinutes is the longest trip the free-ride promotion covers.
const MaxFreeMinutes = 10

// FreeRidePromotion makes short trips free and charges the base strategy
// otherwise.
type FreeRidePromotion struct {
	Base        Strategy
	FreeMinutes float64
}

// NewFreeRidePromotion returns the promotion over the default casual rates.
func NewFreeRidePromotion() FreeRidePromotion {
	return FreeRidePromotion{Base: NewCasual(), FreeMinutes: MaxFreeMinutes}
}

func (f FreeRidePromotion) Cost(durationMinutes, distanceKm float64) float64 {
	if durationMinutes <= f.FreeMinutes {
		return 0
	}

	return f.Base.Cost(durationMinutes, distanceKm)
}
