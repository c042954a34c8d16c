package objective

import "fmt"

// Strategy selects which experimental fields a fit is scored against.
type Strategy int

const (
	// PartialPressures scores exit CO₂/CO/H₂O partial pressures.
	PartialPressures Strategy = iota
	// FormationRates scores methanol and water formation rates derived
	// from molar flows at the corrected exit velocity.
	FormationRates
	// Products scores exit methanol and water partial pressures.
	Products
)

// ParseStrategy maps a configuration name onto a Strategy; an
// unrecognized name is a configuration error and must fail fast.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "partial_pressures":
		return PartialPressures, nil
	case "formation_rates":
		return FormationRates, nil
	case "products":
		return Products, nil
	}
	return 0, fmt.Errorf("objective.ParseStrategy: unrecognized strategy %q", name)
}

func (s Strategy) String() string {
	switch s {
	case PartialPressures:
		return "partial_pressures"
	case FormationRates:
		return "formation_rates"
	case Products:
		return "products"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}
