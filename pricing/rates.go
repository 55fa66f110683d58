package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/citybike-labs/citybike/errors"
	"github.com/citybike-labs/citybike/model"
)

// RateCard maps user types to their tariffs.
type RateCard struct {
	Casual Rates `yaml:"casual"`
	Member Rates `yaml:"member"`
}

// DefaultRateCard returns the built-in tariffs.
func DefaultRateCard() RateCard {
	return RateCard{
		Casual: DefaultCasualRates,
		Member: DefaultMemberRates,
	}
}

// RatesFor returns the tariff for a user type. Unknown types fall back to the
// casual tariff, the most expensive one.
func (rc RateCard) RatesFor(userType model.UserType) Rates {
	if userType == model.UserTypeMember {
		return rc.Member
	}

	return rc.Casual
}

// LoadRateCard reads a YAML rate card from path. Fields missing from the file
// keep their default values, so a card can override just one tariff.
func LoadRateCard(path string) (RateCard, error) {
	card := DefaultRateCard()

	raw, err := os.ReadFile(path)
	if err != nil {
		return card, fmt.Errorf("reading rate card: %w", err)
	}

	if err := yaml.Unmarshal(raw, &card); err != nil {
		return card, fmt.Errorf("parsing rate card: %w", err)
	}

	return card, nil
}

// Fares applies the linear fare formula to many trips at once. The two slices
// must have the same length.
func Fares(durations, distances []float64, r Rates) ([]float64, error) {
	if len(durations) != len(distances) {
		return nil, fmt.Errorf("%w: %d durations vs %d distances",
			errors.ErrLengthMismatch, len(durations), len(distances))
	}

	fares := make([]float64, len(durations))
	for i := range durations {
		fares[i] = r.Cost(durations[i], distances[i])
	}

	return fares, nil
}

// Revenue sums a slice of fares.
func Revenue(fares []float64) float64 {
	total := 0.0
	for _, f := range fares {
		total += f
	}

	return total
}
