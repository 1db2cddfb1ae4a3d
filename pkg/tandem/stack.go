// Package tandem composes junctions into a two-terminal series stack. The
// stack consumes the per-junction solver as a black box: every junction
// carries the same terminal current, the terminal voltage is the sum of the
// oriented junction voltages minus the resistive drops, and luminescent
// coupling flows from each junction into the one below it.
package tandem

import (
	"fmt"
	"math"

	"github.com/edp1096/pv-junction/pkg/junction"
	"github.com/edp1096/pv-junction/pkg/solver"
)

const (
	// JTol is the absolute current tolerance when inverting the stack
	// voltage, in A/cm2.
	JTol             = 1e-7
	maxBracketGrow   = 4
	maxBracketShrink = 20
)

// Stack is a series string of junctions, ordered top (first illuminated)
// to bottom. Solving mutates the junctions' JLC fields, so a stack must not
// share junctions with concurrent users.
type Stack struct {
	Name      string
	Junctions []*junction.Junction
	Rser2T    float64 // ohm*cm2, interconnect resistance of the whole string
}

// New builds a stack over the given junctions, top first.
func New(name string, junctions ...*junction.Junction) *Stack {
	return &Stack{Name: name, Junctions: junctions}
}

// VoltageAt returns the terminal voltage when current density jdens flows out
// of the stack. Each junction below the top receives beta times the light
// emitted by the junction above it as coupling current. NaN when any junction
// fails to solve.
func (s *Stack) VoltageAt(jdens float64) float64 {
	vtot := -jdens * s.Rser2T
	for i, jc := range s.Junctions {
		if i == 0 {
			jc.JLC = 0
		}
		v := jc.DiodeVoltage(-jdens)
		if math.IsNaN(v) {
			return math.NaN()
		}
		vtot += float64(jc.Pn)*v - jdens*jc.Rser
		if i+1 < len(s.Junctions) {
			next := s.Junctions[i+1]
			next.JLC = next.Beta * jc.EmittedCurrent(v)
		}
	}
	return vtot
}

// SolveCurrentAt inverts VoltageAt: the current density at which the stack
// sits at terminal voltage v. The current bracket starts at the largest
// junction photocurrent plus margin; an end where some junction cannot solve
// is halved back toward zero current, and a bracket without a sign change is
// doubled a few times before giving up with NaN.
func (s *Stack) SolveCurrentAt(v float64) (float64, error) {
	span := 0.1
	for _, jc := range s.Junctions {
		if p := jc.Jext*jc.LightArea/jc.TotalArea + 0.1; p > span {
			span = p
		}
	}
	f := func(jd float64) float64 { return s.VoltageAt(jd) - v }

	lo, hi := -span, span
	flo, fhi := f(lo), f(hi)
	for range maxBracketShrink {
		if !math.IsNaN(flo) {
			break
		}
		lo /= 2
		flo = f(lo)
	}
	for range maxBracketShrink {
		if !math.IsNaN(fhi) {
			break
		}
		hi /= 2
		fhi = f(hi)
	}
	for range maxBracketGrow {
		if math.IsNaN(flo) || math.IsNaN(fhi) || (flo > 0) != (fhi > 0) {
			break
		}
		lo, hi = lo*2, hi*2
		flo, fhi = f(lo), f(hi)
	}

	jd, err := solver.Brent(f, lo, hi, JTol, junction.EpsRel, junction.MaxIter)
	if err != nil {
		return math.NaN(), fmt.Errorf("stack %s: current at %g V: %w", s.Name, v, err)
	}
	return jd, nil
}

// CurrentAt is SolveCurrentAt for callers that only need the NaN sentinel.
func (s *Stack) CurrentAt(v float64) float64 {
	jd, _ := s.SolveCurrentAt(v)
	return jd
}
