package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/edp1096/pv-junction/pkg/junction"
	"github.com/edp1096/pv-junction/pkg/util"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	name      = flag.String("name", "junc", "junction name")
	eg        = flag.Float64("eg", junction.DefaultBandGap, "band gap (eV)")
	tc        = flag.Float64("tc", junction.DefaultTempC, "temperature (C)")
	gsh       = flag.Float64("gsh", 0, "shunt conductance (S/cm2)")
	rser      = flag.Float64("rser", 0, "series resistance (ohm*cm2)")
	lightArea = flag.Float64("lightarea", junction.DefaultArea, "illuminated area (cm2)")
	totalArea = flag.Float64("totalarea", junction.DefaultArea, "total area (cm2)")
	jext      = flag.Float64("jext", junction.DefaultJext, "photocurrent density (A/cm2)")
	jlc       = flag.Float64("jlc", 0, "luminescent coupling current density (A/cm2)")
	pn        = flag.Int("pn", -1, "polarity: +1 p-on-n, -1 n-on-p, 0 not a diode")
	beta      = flag.Float64("beta", junction.DefaultBeta, "luminescent coupling factor")
	gamma     = flag.Float64("gamma", 0, "photoluminescent coupling factor")
	nList     = flag.String("n", "1,2", "diode ideality factors, comma separated")
	ratioList = flag.String("j0ratio", "10,10", "diode J0 ratios, comma separated")
	rbb       = flag.String("rbb", "none", "reverse breakdown model: none, jfg, bishop")
	vterm     = flag.Float64("vt", 0, "terminal voltage to solve the internal node at (V)")
	sweep     = flag.String("sweep", "", "terminal voltage sweep start:stop:step (V)")
	plotFile  = flag.String("plot", "", "write the swept I-V curve to this PNG file")
)

func parseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid list entry %q: %v", p, err)
		}
		values[i] = v
	}
	return values, nil
}

func buildJunction() *junction.Junction {
	j := junction.New(*name)

	n, err := parseList(*nList)
	if err != nil {
		log.Fatalf("Error parsing -n: %v", err)
	}
	ratio, err := parseList(*ratioList)
	if err != nil {
		log.Fatalf("Error parsing -j0ratio: %v", err)
	}
	if err := j.SetDiodes(n, ratio); err != nil {
		log.Fatalf("Error setting diodes: %v", err)
	}

	steps := []error{
		j.SetBandGap(*eg),
		j.SetTemp(*tc),
		j.SetShuntConductance(*gsh),
		j.SetSeriesResistance(*rser),
		j.SetArea(*lightArea, *totalArea),
		j.SetPhotocurrent(*jext),
		j.SetLuminescentCoupling(*jlc),
		j.SetPolarity(*pn),
		j.SetCouplingFactors(*beta, *gamma),
	}
	for _, err := range steps {
		if err != nil {
			log.Fatalf("Error configuring junction: %v", err)
		}
	}

	switch strings.ToLower(*rbb) {
	case "", "none":
		j.SetBreakdown(junction.NoBreakdown{})
	case "jfg":
		j.SetBreakdown(junction.DefaultJFG())
	case "bishop":
		j.SetBreakdown(junction.DefaultBishop())
	default:
		log.Fatalf("Unsupported breakdown model: %s", *rbb)
	}

	return j
}

func printOperatingPoints(j *junction.Junction) {
	fmt.Println("Operating Points:")
	fmt.Println("=================")

	voc := j.DiodeVoltage(0)
	fmt.Printf("V(J=0)      = %s\n", util.FormatVoltage(voc))

	vmid := j.MidVoltage(0)
	jsc := math.NaN()
	if !math.IsNaN(vmid) {
		jsc = j.ParallelCurrent(vmid, j.Photocurrent())
	}
	fmt.Printf("J(Vt=0)     = %s\n", util.FormatCurrentDensity(jsc))

	vm := j.MidVoltage(*vterm)
	fmt.Printf("Vmid(%sV) = %s\n", strconv.FormatFloat(*vterm, 'g', -1, 64), util.FormatVoltage(vm))
	if !math.IsNaN(vm) {
		fmt.Printf("J(Vt=%sV) = %s\n", strconv.FormatFloat(*vterm, 'g', -1, 64),
			util.FormatCurrentDensity(j.ParallelCurrent(vm, j.Photocurrent())))
	}
}

func sweepIV(j *junction.Junction, start, stop, step float64) []plotter.XYs {
	fmt.Println("\nI-V Sweep:")
	fmt.Println("Vterm        J")
	fmt.Println("----------------------")

	var segments []plotter.XYs
	var current plotter.XYs
	for vt := start; vt <= stop+step/2; vt += step {
		vmid := j.MidVoltage(vt)
		jd := math.NaN()
		if !math.IsNaN(vmid) {
			jd = j.ParallelCurrent(vmid, j.Photocurrent())
		}
		fmt.Printf("%-12s %s\n", util.FormatVoltage(vt), util.FormatCurrentDensity(jd))

		// Undefined points break the curve instead of plotting as zero
		if math.IsNaN(jd) {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, plotter.XY{X: vt, Y: jd})
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

func savePlot(j *junction.Junction, segments []plotter.XYs, file string) {
	p := plot.New()
	p.Title.Text = j.Name
	p.X.Label.Text = "V (V)"
	p.Y.Label.Text = "J (A/cm2)"

	for _, seg := range segments {
		line, err := plotter.NewLine(seg)
		if err != nil {
			log.Fatalf("Error building plot line: %v", err)
		}
		p.Add(line)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		log.Fatalf("Error writing plot %s: %v", file, err)
	}
	fmt.Printf("\nI-V curve written to %s\n", file)
}

func main() {
	flag.Parse()

	j := buildJunction()
	fmt.Print(j)
	fmt.Println()

	printOperatingPoints(j)

	if *sweep != "" {
		parts := strings.Split(*sweep, ":")
		if len(parts) != 3 {
			log.Fatal("Usage: -sweep start:stop:step")
		}
		var vals [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				log.Fatalf("Invalid sweep bound %q: %v", p, err)
			}
			vals[i] = v
		}
		if vals[2] <= 0 || vals[1] <= vals[0] {
			log.Fatal("Sweep needs stop > start and step > 0")
		}

		segments := sweepIV(j, vals[0], vals[1], vals[2])
		if *plotFile != "" {
			savePlot(j, segments, *plotFile)
		}
	}
}
