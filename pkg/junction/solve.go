package junction

import (
	"fmt"
	"math"

	"github.com/edp1096/pv-junction/pkg/solver"
)

// Root-finding window and tolerances shared by both solvers.
const (
	VLimReverse = 10.0 // V, reverse bracket limit
	VLimForward = 3.0  // V, forward bracket limit
	VTol        = 1e-4 // V, absolute voltage tolerance
	EpsRel      = 1e-15
	MaxIter     = 1000
)

// SolveDiodeVoltage finds the junction voltage when diode current density
// jdiode flows on top of the photocurrent, without series resistance. A
// non-diode returns 0 for any input. On failure the voltage is NaN and the
// error distinguishes a missing sign change from an exhausted iteration
// budget.
func (j *Junction) SolveDiodeVoltage(jdiode float64) (float64, error) {
	if j.NotDiode() {
		return 0, nil
	}
	jtot := j.Photocurrent() + jdiode
	v, err := solver.Brent(func(v float64) float64 {
		return j.ParallelCurrent(v, jtot)
	}, -VLimReverse, VLimForward, VTol, EpsRel, MaxIter)
	if err != nil {
		return math.NaN(), fmt.Errorf("junction %s: diode voltage at %g A/cm2: %w", j.Name, jdiode, err)
	}
	return v, nil
}

// DiodeVoltage is SolveDiodeVoltage for callers that only need the NaN
// sentinel.
func (j *Junction) DiodeVoltage(jdiode float64) float64 {
	v, _ := j.SolveDiodeVoltage(jdiode)
	return v
}

// SeriesResidual is the voltage mismatch zeroed by the terminal solver: the
// applied terminal voltage vtot minus the internal node voltage v plus the
// resistive drop of the current flowing at that node.
func (j *Junction) SeriesResidual(v, vtot float64) float64 {
	return vtot - v + j.ParallelCurrent(v, j.Photocurrent())*j.Rser
}

// SolveMidVoltage finds the internal node voltage of the junction with its
// series resistance when terminal voltage vtot is applied. A non-diode
// returns 0 for any input; failures surface as NaN plus a diagnostic error.
func (j *Junction) SolveMidVoltage(vtot float64) (float64, error) {
	if j.NotDiode() {
		return 0, nil
	}
	v, err := solver.Brent(func(v float64) float64 {
		return j.SeriesResidual(v, vtot)
	}, -VLimReverse, VLimForward, VTol, EpsRel, MaxIter)
	if err != nil {
		return math.NaN(), fmt.Errorf("junction %s: mid voltage at %g V: %w", j.Name, vtot, err)
	}
	return v, nil
}

// MidVoltage is SolveMidVoltage for callers that only need the NaN sentinel.
func (j *Junction) MidVoltage(vtot float64) float64 {
	v, _ := j.SolveMidVoltage(vtot)
	return v
}
