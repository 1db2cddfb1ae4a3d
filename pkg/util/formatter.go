package util

import (
	"fmt"
	"math"
)

// FormatValue renders a quantity with an engineering prefix. NaN is the
// solvers' undefined-result sentinel and renders as n/a so it cannot be
// mistaken for zero.
func FormatValue(value float64, unit string) string {
	if math.IsNaN(value) {
		return "n/a"
	}
	abs := math.Abs(value)
	switch {
	case abs == 0 || abs >= 1:
		return fmt.Sprintf("%.4g %s", value, unit)
	case abs >= 1e-3:
		return fmt.Sprintf("%.4g m%s", value*1e3, unit)
	case abs >= 1e-6:
		return fmt.Sprintf("%.4g u%s", value*1e6, unit)
	case abs >= 1e-9:
		return fmt.Sprintf("%.4g n%s", value*1e9, unit)
	case abs >= 1e-12:
		return fmt.Sprintf("%.4g p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatVoltage(v float64) string { return FormatValue(v, "V") }

func FormatCurrentDensity(jd float64) string { return FormatValue(jd, "A/cm2") }
