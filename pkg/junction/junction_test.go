package junction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThermalVoltage(t *testing.T) {
	j := New("junc")
	assert.InDelta(t, 0.0256926, j.ThermalVoltage(), 1e-6)

	j.TempC = 0
	assert.InDelta(t, 0.0235382, j.ThermalVoltage(), 1e-6)
}

func TestDetailedBalanceCurrent(t *testing.T) {
	j := New("junc")
	// Reference value for Eg=1.1 eV at 25 C
	require.InEpsilon(t, 1.314e-16, j.DetailedBalanceCurrent(), 0.01)

	// Wider gap emits less
	j.BandGap = 1.6
	assert.Less(t, j.DetailedBalanceCurrent(), 1e-20)
	assert.Greater(t, j.DetailedBalanceCurrent(), 0.0)
}

func TestSaturationCurrents(t *testing.T) {
	j := New("junc")
	j0, err := j.SaturationCurrents()
	require.NoError(t, err)
	require.Len(t, j0, 2)

	jdb := j.DetailedBalanceCurrent()
	// n=1 is linear in Jdb, n=2 goes through the scaled square root
	assert.InEpsilon(t, jdb*10, j0[0], 1e-12)
	assert.InEpsilon(t, math.Sqrt(jdb*J0Scale)*10/J0Scale, j0[1], 1e-12)
}

func TestSaturationCurrentsMismatch(t *testing.T) {
	j := New("junc")
	j.J0Ratio = []float64{10}

	j0, err := j.SaturationCurrents()
	require.ErrorIs(t, err, ErrDiodeMismatch)
	assert.Nil(t, j0)

	// A junction without a usable diode model degrades to a shunt
	assert.True(t, j.NotDiode())
	assert.Zero(t, j.DiodeVoltage(0))
}

func TestJ0RoundTrip(t *testing.T) {
	j := New("junc")
	j0ref := []float64{3e-15, 2.5e-9}

	require.NoError(t, j.InitFromSaturationCurrents(j0ref))
	j0, err := j.SaturationCurrents()
	require.NoError(t, err)

	for i := range j0ref {
		assert.InEpsilon(t, j0ref[i], j0[i], 1e-12)
	}

	require.ErrorIs(t, j.InitFromSaturationCurrents([]float64{1e-15}), ErrDiodeMismatch)
}

func TestPhotocurrent(t *testing.T) {
	j := New("junc")
	assert.Equal(t, 0.04, j.Photocurrent())

	require.NoError(t, j.SetArea(0.9, 1.0))
	require.NoError(t, j.SetLuminescentCoupling(0.001))
	assert.InDelta(t, 0.04*0.9+0.001, j.Photocurrent(), 1e-15)
}

func TestEmittedCurrent(t *testing.T) {
	j := New("junc")

	assert.Zero(t, j.EmittedCurrent(-1))
	assert.Zero(t, j.EmittedCurrent(0))

	// Continuous at 0+ while gamma is zero
	assert.Less(t, j.EmittedCurrent(1e-9), 1e-20)
	assert.Greater(t, j.EmittedCurrent(0.5), 0.0)

	// Photoluminescent coupling shifts the emitted current by gamma*Jphoto
	require.NoError(t, j.SetCouplingFactors(j.Beta, 0.5))
	assert.InDelta(t, 0.5*j.Photocurrent(), j.EmittedCurrent(1e-9), 1e-10)
}

func TestNotDiode(t *testing.T) {
	j := New("junc")
	assert.False(t, j.NotDiode())

	require.NoError(t, j.SetPolarity(0))
	assert.True(t, j.NotDiode())

	j = New("junc")
	require.NoError(t, j.SetDiodes([]float64{1, 2}, []float64{0, 0}))
	assert.True(t, j.NotDiode())
}

func TestRecombinationCurrentMonotonic(t *testing.T) {
	j := New("junc")
	require.NoError(t, j.SetDiodes([]float64{1}, []float64{10}))

	prev := math.Inf(-1)
	for v := -0.3; v <= 0.8; v += 0.05 {
		jrec := j.RecombinationCurrent(v)
		assert.Greater(t, jrec, prev, "not increasing at %g V", v)
		prev = jrec
	}
}

func TestRecombinationCurrentSkipsBadTerms(t *testing.T) {
	j := New("junc")
	// Second diode drives its exponent to overflow; the first must survive
	require.NoError(t, j.SetDiodes([]float64{1, 1e-6}, []float64{10, 10}))

	want := New("ref")
	require.NoError(t, want.SetDiodes([]float64{1}, []float64{10}))

	got := j.RecombinationCurrent(0.7)
	require.True(t, !math.IsNaN(got) && !math.IsInf(got, 0))
	assert.InEpsilon(t, want.RecombinationCurrent(0.7), got, 1e-9)
}

func TestShuntBreakdownJFG(t *testing.T) {
	j := New("junc")
	j.SetBreakdown(DefaultJFG())

	// Below the onset the breakdown term must add a distinct negative
	// current on top of the (zero) shunt leakage
	got := j.ShuntBreakdownCurrent(-1)
	assert.Less(t, got, 0.0)
	assert.NotEqual(t, -1*j.Gsh, got)
	assert.InEpsilon(t, -1.237e-3, got, 0.02)

	// Inactive above the onset voltage
	assert.Equal(t, 0.5*j.Gsh, j.ShuntBreakdownCurrent(0.5))
}

func TestShuntBreakdownBishop(t *testing.T) {
	j := New("junc")
	require.NoError(t, j.SetShuntConductance(1e-4))
	j.SetBreakdown(DefaultBishop())

	// Avalanche term amplifies the shunt leakage below zero bias
	got := j.ShuntBreakdownCurrent(-1)
	assert.InEpsilon(t, -2.931e-4, got, 0.01)

	// Pure shunt above zero
	assert.InDelta(t, 1e-4*0.3, j.ShuntBreakdownCurrent(0.3), 1e-18)
}

func TestParallelCurrentNotDiode(t *testing.T) {
	j := New("junc")
	require.NoError(t, j.SetPolarity(0))

	// Degenerate: the target passes through for any voltage
	assert.Equal(t, 0.123, j.ParallelCurrent(-5, 0.123))
	assert.Equal(t, 0.123, j.ParallelCurrent(2, 0.123))
}

func TestCopy(t *testing.T) {
	j := New("junc")
	c := j.Copy()
	require.NoError(t, c.SetIdealityFactor(0, 1.5))

	assert.Equal(t, 1.0, j.N[0])
	assert.Equal(t, 1.5, c.N[0])
}

func TestStringReportsInvalidModel(t *testing.T) {
	j := New("junc")
	j.J0Ratio = []float64{10}

	s := j.String()
	assert.Contains(t, s, "lengths differ")
}
