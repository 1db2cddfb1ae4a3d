package junction

// Breakdown selects the reverse-bias breakdown model. The set of
// implementations is closed; evaluation type-switches over them.
type Breakdown interface{ breakdown() }

// NoBreakdown disables the breakdown term.
type NoBreakdown struct{}

// JFG adds an exponential excess current below the breakdown voltage, scaled
// off the detailed-balance current.
type JFG struct {
	Ideality   float64 // breakdown ideality mrb
	RefCurrent float64 // J0rb, reference current scale
	Voltage    float64 // V, onset voltage Vrb
}

// Bishop multiplies the shunt leakage below zero bias by an avalanche term
// that diverges toward the breakdown voltage.
type Bishop struct {
	Ideality  float64 // avalanche exponent mrb
	Avalanche float64 // multiplication factor
	Voltage   float64 // V, breakdown voltage Vrb
}

// Unmodeled marks a junction whose breakdown exists but is not represented;
// it contributes nothing.
type Unmodeled struct{}

func (NoBreakdown) breakdown() {}
func (JFG) breakdown()         {}
func (Bishop) breakdown()      {}
func (Unmodeled) breakdown()   {}

// DefaultJFG is the usual JFG parameter set.
func DefaultJFG() JFG { return JFG{Ideality: 10, RefCurrent: 0.5, Voltage: 0} }

// DefaultBishop is the usual Bishop parameter set.
func DefaultBishop() Bishop { return Bishop{Ideality: 3.28, Avalanche: 1, Voltage: -5.5} }
