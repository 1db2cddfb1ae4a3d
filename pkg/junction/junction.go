// Package junction models a single photovoltaic junction as an equivalent
// circuit: a photocurrent source in parallel with one or more ideality-factor
// diodes, a shunt conductance, an optional reverse-bias breakdown term, and a
// series resistance. Saturation currents derive from the detailed-balance
// limit at the junction temperature, after Geisz et al.
package junction

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/edp1096/pv-junction/internal/consts"
)

// Reference defaults.
const (
	DefaultBandGap = 1.1  // eV
	DefaultTempC   = 25.0 // degC
	DefaultArea    = 1.0  // cm2, with unit area current and current density coincide
	DefaultBeta    = 15.0 // luminescent coupling factor
	DefaultJext    = 0.04 // A/cm2, roughly one-sun silicon photocurrent
)

// J0Scale rescales the detailed-balance current during the ratio<->absolute
// conversion to limit floating-point cancellation. Both directions must use
// the same value so the round trip is exact.
const J0Scale = 1000.0

// ErrDiodeMismatch reports that the ideality-factor and J0-ratio sequences
// have different lengths, leaving no usable diode model.
var ErrDiodeMismatch = errors.New("junction: ideality factor and J0 ratio lengths differ")

// Junction holds the equivalent-circuit parameters of one junction. Fields
// are mutated through the Set* methods; the evaluators never cache, so every
// call reflects the current parameters.
type Junction struct {
	Name      string
	BandGap   float64 // eV
	TempC     float64 // degC
	Gsh       float64 // S/cm2, shunt conductance
	Rser      float64 // ohm*cm2, series resistance
	LightArea float64 // cm2, illuminated area
	TotalArea float64 // cm2, total area including shaded regions
	Jext      float64 // A/cm2, external photocurrent density
	JLC       float64 // A/cm2, luminescent coupling current from a neighbor
	Pn        int     // +1 p-on-n, -1 n-on-p, 0 not a diode
	Beta      float64 // luminescent coupling factor
	Gamma     float64 // photoluminescent coupling factor

	N       []float64 // diode ideality factors, n=1 bulk, n=2 SRH, n=2/3 Auger
	J0Ratio []float64 // per-diode ratio of J0 to the detailed-balance value

	RBB Breakdown // reverse-bias breakdown model, nil means none
}

// New returns a junction with the reference defaults: a two-diode (n=1, n=2)
// silicon-like cell at 25 degC under roughly one sun, no shunt, no series
// resistance, no breakdown.
func New(name string) *Junction {
	return &Junction{
		Name:      name,
		BandGap:   DefaultBandGap,
		TempC:     DefaultTempC,
		LightArea: DefaultArea,
		TotalArea: DefaultArea,
		Jext:      DefaultJext,
		Pn:        -1,
		Beta:      DefaultBeta,
		N:         []float64{1, 2},
		J0Ratio:   []float64{10, 10},
		RBB:       NoBreakdown{},
	}
}

// Copy returns an independent junction; the diode slices are cloned so the
// copies can diverge.
func (j *Junction) Copy() *Junction {
	c := *j
	c.N = append([]float64(nil), j.N...)
	c.J0Ratio = append([]float64(nil), j.J0Ratio...)
	return &c
}

// TempK is the junction temperature in kelvin.
func (j *Junction) TempK() float64 { return j.TempC + consts.KELVIN }

// ThermalVoltage is kT/q in volts.
func (j *Junction) ThermalVoltage() float64 {
	return consts.BOLTZMANN / consts.CHARGE * j.TempK()
}

// DetailedBalanceCurrent is the black-body-limit saturation current density
// for the band gap at the junction temperature:
//
//	Jdb = DBPrefix * T^3 * (x^2 + 2x + 2) * exp(-x),  x = Eg/Vth
func (j *Junction) DetailedBalanceCurrent() float64 {
	tk := j.TempK()
	x := j.BandGap / j.ThermalVoltage()
	return consts.DBPrefix * tk * tk * tk * (x*x + 2*x + 2) * math.Exp(-x)
}

// SaturationCurrents returns the temperature-dependent J0 of each diode,
//
//	J0_i = (Jdb*J0Scale)^(1/n_i) * ratio_i / J0Scale
//
// or ErrDiodeMismatch when the ideality-factor and ratio sequences differ in
// length. Callers must check the error before using the vector.
func (j *Junction) SaturationCurrents() ([]float64, error) {
	if len(j.N) != len(j.J0Ratio) {
		return nil, ErrDiodeMismatch
	}
	jdb := j.DetailedBalanceCurrent()
	j0 := make([]float64, len(j.N))
	for i, n := range j.N {
		j0[i] = math.Pow(jdb*J0Scale, 1/n) * j.J0Ratio[i] / J0Scale
	}
	return j0, nil
}

// Photocurrent is the total generated current density. External illumination
// is apportioned by the lit fraction of the total area; coupling current is
// generated uniformly and adds directly.
func (j *Junction) Photocurrent() float64 {
	return j.Jext*j.LightArea/j.TotalArea + j.JLC
}

// EmittedCurrent quantifies the light leaving the junction at internal
// voltage v as a current density: radiative emission by reciprocity plus
// photoluminescent coupling. Zero at and below zero bias.
func (j *Junction) EmittedCurrent(v float64) float64 {
	if v <= 0 {
		return 0
	}
	jem := j.DetailedBalanceCurrent() * (math.Exp(v/j.ThermalVoltage()) - 1)
	return jem + j.Gamma*j.Photocurrent()
}

// NotDiode reports whether the junction degenerates to a pure shunt: zero
// polarity, no saturation current anywhere, or no usable diode model at all.
func (j *Junction) NotDiode() bool {
	if j.Pn == 0 {
		return true
	}
	j0, err := j.SaturationCurrents()
	if err != nil {
		return true
	}
	sum := 0.0
	for _, v := range j0 {
		sum += v
	}
	return sum == 0
}

func (j *Junction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: <junction>\n", j.Name)
	fmt.Fprintf(&b, "Eg = %.2f eV, TC = %.1f C\n", j.BandGap, j.TempC)
	fmt.Fprintf(&b, "Jext = %.1f, JLC = %.1f mA/cm2\n", j.Jext*1000, j.JLC*1000)
	fmt.Fprintf(&b, "Gsh = %g S/cm2, Rser = %g ohm*cm2\n", j.Gsh, j.Rser)
	fmt.Fprintf(&b, "lightA = %g cm2, totalA = %g cm2\n", j.LightArea, j.TotalArea)
	fmt.Fprintf(&b, "pn = %d, beta = %g, gamma = %g\n", j.Pn, j.Beta, j.Gamma)
	fmt.Fprintf(&b, " %5s %10s %10s\n", "n", "J0ratio", "J0(A/cm2)")
	fmt.Fprintf(&b, " %5s %10.0f %10.3e\n", "db", 1.0, j.DetailedBalanceCurrent())
	if j0, err := j.SaturationCurrents(); err == nil {
		for i := range j.N {
			fmt.Fprintf(&b, " %5.2f %10.2f %10.3e\n", j.N[i], j.J0Ratio[i], j0[i])
		}
	} else {
		fmt.Fprintf(&b, " %v\n", err)
	}
	switch j.RBB.(type) {
	case nil, NoBreakdown:
	default:
		fmt.Fprintf(&b, "RBB: %+v\n", j.RBB)
	}
	return b.String()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
