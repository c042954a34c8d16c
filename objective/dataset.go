package objective

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fircar/Kinetics-Optimization/reactor"
	"github.com/maseology/mmio"
)

// barToPa converts the bar-scale tabulated pressures to the Pa used
// internally.
const barToPa = 1e5

// Dataset holds one experimental campaign as parallel arrays indexed by
// run: bed temperature, inlet superficial velocity, inlet and measured
// exit partial pressures (converted to Pa at load) and the measured
// methanol/water formation rates [mol s⁻¹ kg⁻¹]. Read-only after load.
type Dataset struct {
	TempK    []float64
	Velocity []float64
	Inlet    [][reactor.NSpecies]float64
	Exit     [][reactor.NSpecies]float64
	RateMeOH []float64
	RateH2O  []float64
}

// Len returns the number of experimental runs.
func (d *Dataset) Len() int { return len(d.TempK) }

// LoadDataset reads a comma-delimited table with a single header line
// and one row per run:
//
//	T[K], u[m/s], pin CO2,CO,H2,MeOH,H2O [bar], pexit CO2,CO,H2,MeOH,H2O [bar], rMeOH, rH2O
func LoadDataset(fp string) (*Dataset, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" objective.LoadDataset %s: %v", fp, err)
	}
	d := &Dataset{}
	for i, ln := range lns {
		if len(strings.TrimSpace(ln)) == 0 {
			continue
		}
		stp := strings.Split(ln, ",")
		if len(stp) != 14 {
			return nil, fmt.Errorf(" objective.LoadDataset %s: line %d has %d fields, need 14", fp, i+1, len(stp))
		}
		v := make([]float64, 14)
		ok := true
		for j, s := range stp {
			if v[j], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf(" objective.LoadDataset %s: line %d: %v", fp, i+1, err)
		}

		d.TempK = append(d.TempK, v[0])
		d.Velocity = append(d.Velocity, v[1])
		var pin, pex [reactor.NSpecies]float64
		for j := 0; j < reactor.NSpecies; j++ {
			pin[j] = v[2+j] * barToPa
			pex[j] = v[7+j] * barToPa
		}
		d.Inlet = append(d.Inlet, pin)
		d.Exit = append(d.Exit, pex)
		d.RateMeOH = append(d.RateMeOH, v[12])
		d.RateH2O = append(d.RateH2O, v[13])
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf(" objective.LoadDataset %s: no runs", fp)
	}
	return d, nil
}
