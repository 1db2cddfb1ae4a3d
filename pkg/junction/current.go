package junction

import "math"

// RecombinationCurrent is the summed recombination current density of the
// parallel diodes at internal voltage v. Diodes with a non-positive ideality
// factor or a non-finite saturation current are excluded, and a term that
// overflows is skipped so one runaway diode cannot poison the sum.
func (j *Junction) RecombinationCurrent(v float64) float64 {
	j0, err := j.SaturationCurrents()
	if err != nil {
		return 0
	}
	vth := j.ThermalVoltage()
	jrec := 0.0
	for i, n := range j.N {
		if n <= 0 || !isFinite(j0[i]) {
			continue
		}
		term := j0[i] * (math.Exp(v/vth/n) - 1)
		if !isFinite(term) {
			continue
		}
		jrec += term
	}
	return jrec
}

// ShuntBreakdownCurrent is the ohmic shunt leakage at internal voltage v plus
// the contribution of the configured reverse-bias breakdown model.
func (j *Junction) ShuntBreakdownCurrent(v float64) float64 {
	jrbb := 0.0
	switch b := j.RBB.(type) {
	case JFG:
		if v <= b.Voltage && b.Ideality != 0 {
			scale := math.Pow(j.DetailedBalanceCurrent()*J0Scale, 1/b.Ideality) / J0Scale
			jrbb = -b.RefCurrent * scale * (math.Exp(-v/j.ThermalVoltage()/b.Ideality) - 1)
		}
	case Bishop:
		if v <= 0 && b.Voltage != 0 {
			jrbb = v * j.Gsh * b.Avalanche * math.Pow(1-v/b.Voltage, -b.Ideality)
		}
	}
	return v*j.Gsh + jrbb
}

// ParallelCurrent is the circuit residual zeroed by the solvers: the target
// current density jtot minus everything the parallel network sinks at
// internal voltage v. For a non-diode any voltage satisfies the equation and
// the target passes through unchanged.
func (j *Junction) ParallelCurrent(v, jtot float64) float64 {
	if j.NotDiode() {
		return jtot
	}
	return jtot - j.RecombinationCurrent(v) - j.ShuntBreakdownCurrent(v)
}
