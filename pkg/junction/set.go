package junction

import (
	"fmt"
	"math"

	"github.com/edp1096/pv-junction/internal/consts"
)

// Typed, validated parameter mutation. Downstream layers come through these
// instead of poking fields so the invariants hold between solver calls.

func (j *Junction) SetBandGap(eg float64) error {
	if eg <= 0 {
		return fmt.Errorf("junction %s: band gap must be positive, got %g eV", j.Name, eg)
	}
	j.BandGap = eg
	return nil
}

func (j *Junction) SetTemp(tc float64) error {
	if tc <= -consts.KELVIN {
		return fmt.Errorf("junction %s: temperature %g C is at or below absolute zero", j.Name, tc)
	}
	j.TempC = tc
	return nil
}

func (j *Junction) SetShuntConductance(gsh float64) error {
	if gsh < 0 {
		return fmt.Errorf("junction %s: shunt conductance must not be negative, got %g S/cm2", j.Name, gsh)
	}
	j.Gsh = gsh
	return nil
}

func (j *Junction) SetSeriesResistance(rser float64) error {
	if rser < 0 {
		return fmt.Errorf("junction %s: series resistance must not be negative, got %g ohm*cm2", j.Name, rser)
	}
	j.Rser = rser
	return nil
}

// SetArea sets the illuminated and total junction areas. The illuminated
// area cannot exceed the total.
func (j *Junction) SetArea(light, total float64) error {
	if light <= 0 || total <= 0 {
		return fmt.Errorf("junction %s: areas must be positive, got light=%g total=%g cm2", j.Name, light, total)
	}
	if light > total {
		return fmt.Errorf("junction %s: illuminated area %g cm2 exceeds total area %g cm2", j.Name, light, total)
	}
	j.LightArea = light
	j.TotalArea = total
	return nil
}

func (j *Junction) SetPhotocurrent(jext float64) error {
	if jext < 0 {
		return fmt.Errorf("junction %s: photocurrent density must not be negative, got %g A/cm2", j.Name, jext)
	}
	j.Jext = jext
	return nil
}

func (j *Junction) SetLuminescentCoupling(jlc float64) error {
	if jlc < 0 {
		return fmt.Errorf("junction %s: coupling current density must not be negative, got %g A/cm2", j.Name, jlc)
	}
	j.JLC = jlc
	return nil
}

// SetPolarity accepts +1 (p-on-n), -1 (n-on-p) or 0 (not a diode).
func (j *Junction) SetPolarity(pn int) error {
	if pn < -1 || pn > 1 {
		return fmt.Errorf("junction %s: polarity must be -1, 0 or +1, got %d", j.Name, pn)
	}
	j.Pn = pn
	return nil
}

func (j *Junction) SetCouplingFactors(beta, gamma float64) error {
	if beta < 0 || gamma < 0 {
		return fmt.Errorf("junction %s: coupling factors must not be negative, got beta=%g gamma=%g", j.Name, beta, gamma)
	}
	j.Beta = beta
	j.Gamma = gamma
	return nil
}

// SetDiodes replaces the whole diode list. The two sequences must have equal
// length; both are copied.
func (j *Junction) SetDiodes(n, ratio []float64) error {
	if len(n) != len(ratio) {
		return ErrDiodeMismatch
	}
	j.N = append([]float64(nil), n...)
	j.J0Ratio = append([]float64(nil), ratio...)
	return nil
}

// SetIdealityFactor updates diode i in place.
func (j *Junction) SetIdealityFactor(i int, n float64) error {
	if i < 0 || i >= len(j.N) {
		return fmt.Errorf("junction %s: diode index %d out of range [0,%d)", j.Name, i, len(j.N))
	}
	if n <= 0 {
		return fmt.Errorf("junction %s: ideality factor must be positive, got %g", j.Name, n)
	}
	j.N[i] = n
	return nil
}

// SetJ0Ratio updates the saturation-current ratio of diode i in place.
func (j *Junction) SetJ0Ratio(i int, r float64) error {
	if i < 0 || i >= len(j.J0Ratio) {
		return fmt.Errorf("junction %s: diode index %d out of range [0,%d)", j.Name, i, len(j.J0Ratio))
	}
	if r < 0 {
		return fmt.Errorf("junction %s: J0 ratio must not be negative, got %g", j.Name, r)
	}
	j.J0Ratio[i] = r
	return nil
}

// SetBreakdown installs a reverse-bias breakdown model; nil means none.
func (j *Junction) SetBreakdown(b Breakdown) {
	if b == nil {
		b = NoBreakdown{}
	}
	j.RBB = b
}

// InitFromSaturationCurrents sets J0Ratio so that SaturationCurrents
// reproduces j0ref at the current temperature. Inverse of SaturationCurrents;
// ErrDiodeMismatch when j0ref and the ideality factors differ in length.
func (j *Junction) InitFromSaturationCurrents(j0ref []float64) error {
	if len(j0ref) != len(j.N) {
		return ErrDiodeMismatch
	}
	jdb := j.DetailedBalanceCurrent()
	ratio := make([]float64, len(j0ref))
	for i, n := range j.N {
		ratio[i] = J0Scale * j0ref[i] / math.Pow(jdb*J0Scale, 1/n)
	}
	j.J0Ratio = ratio
	return nil
}
