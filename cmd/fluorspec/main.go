// Command fluorspec computes the spectrum of light scattered by a driven
// two-level atom and prints or draws the selected components.
//
// Usage:
//
//	fluorspec [flags]
//
// The drive is taken from the first of -rabi-frequency, -saturation-parameter,
// -laser-intensity or -laser-power with -laser-waist that is given. Any of the
// laser-intensity-error flags switches on Monte Carlo averaging.
//
// Examples:
//
//	fluorspec -saturation-parameter 1 -detuning 0
//	fluorspec -rabi-frequency 3 -detuning 1 -show inelastic,elastic -ascii
//	fluorspec -show full -temperature 200 -angle 45 -out spectrum.png
//	fluorspec -laser-intensity-error-sigma 0.1 -seed 7 -ascii
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-fluorescence/fluor/canvas"
	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
	"github.com/cwbudde/algo-fluorescence/fluor/scene"
	"github.com/cwbudde/algo-fluorescence/stats/line"
)

type fieldFlag struct {
	field string
	def   string
	usage string
}

// Empty defaults mean "not provided".
var fields = []fieldFlag{
	{params.FieldRabiFrequency, "", "Rabi frequency Ω/Γ (highest precedence)"},
	{params.FieldSaturationParameter, "", "saturation parameter s"},
	{params.FieldLaserIntensity, "1", "laser intensity (mW/cm²)"},
	{params.FieldLaserPower, "1", "laser power, used with -laser-waist when no intensity is given"},
	{params.FieldLaserWaist, "1", "laser beam waist"},
	{params.FieldSaturationIntensity, "1.669", "saturation intensity (mW/cm²)"},
	{params.FieldDetuning, "0", "laser detuning Δ/Γ"},
	{params.FieldGamma, "1", "natural linewidth Γ"},
	{params.FieldTemperature, "100", "atom temperature in μK (Doppler and full spectra)"},
	{params.FieldAngle, "90", "scattering angle in degrees (Doppler and full spectra)"},
	{params.FieldErrorMu, "", "mean of the normal laser-intensity error"},
	{params.FieldErrorSigma, "", "standard deviation of the normal laser-intensity error"},
	{params.FieldErrorUniform, "", "half-width of the uniform laser-intensity error"},
	{params.FieldErrorSamples, "30", "number of Monte Carlo draws"},
}

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fluorspec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	text := make(map[string]*string, len(fields))
	for _, f := range fields {
		text[f.field] = fs.String(flagName(f.field), f.def, f.usage)
	}

	def := grid.DefaultRenderConfig()
	resolution := fs.Int("resolution", def.Resolution, "number of grid points")
	span := fs.Float64("span", def.Span, "half-width of the frequency window in units of Γ")
	slider := fs.Float64("span-slider", math.NaN(), "span slider position; overrides -span with exp(v/10)/10")
	center := fs.Bool("center", false, "center the window on the detuning")
	show := fs.String("show", "combined,doppler,inelastic,elastic,full", "comma-separated components to compute")
	seed := fs.Uint64("seed", 1, "seed of the laser-intensity noise")
	out := fs.String("out", "", "write the figure to this file (png, svg, pdf)")
	ascii := fs.Bool("ascii", false, "draw text charts on stdout")
	annotate := fs.Bool("annotate", true, "mark the detuning in the figure")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fluorspec [flags]\n\n")
		fmt.Fprintf(stderr, "Computes resonance fluorescence spectra of a two-level atom.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fluorspec -saturation-parameter 1 -detuning 0\n")
		fmt.Fprintf(stderr, "  fluorspec -show full -temperature 200 -out spectrum.png\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	values := make(map[string]string, len(text))
	for field, v := range text {
		values[field] = *v
	}
	in, err := params.Parse(values)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	sel, err := scene.ParseSelection(strings.Split(*show, ","))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	sel.CenterOnDetuning = *center

	rc := grid.NewRenderConfig(grid.WithResolution(*resolution), grid.WithSpan(*span))
	if !math.IsNaN(*slider) {
		rc.Span = grid.SpanFromSlider(*slider)
	}

	res, err := scene.NewSession(scene.WithSeed(*seed)).Update(in, sel, rc)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, params.ErrMissingInput) || errors.Is(err, params.ErrParse) {
			return 2
		}
		return 1
	}
	for _, f := range res.Failures {
		fmt.Fprintf(stderr, "warning: %v\n", f)
	}

	fmt.Fprintln(stdout, scene.FormatGeneralisedRabi(res.GeneralisedRabi))
	fmt.Fprintln(stdout)
	printSummary(stdout, stderr, res)

	if *ascii {
		fmt.Fprintln(stdout)
		r := res.Render
		term := canvas.NewTerminal(stdout, canvas.WithRange(r.Offset-r.Span, r.Offset+r.Span))
		if err := res.Draw(term); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if *out != "" {
		r := res.Render
		fig := canvas.NewPNG(r.Offset-r.Span, r.Offset+r.Span, canvas.WithAnnotations(*annotate))
		if err := res.Draw(fig); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if err := fig.Save(*out, 12*vg.Inch, 7*vg.Inch); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "\nwrote %s\n", *out)
	}

	return 0
}

func printSummary(stdout, stderr io.Writer, res scene.Result) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Component\tPoints\tPeak\tPeak at\tArea\tFWHM\n")
	fmt.Fprintf(w, "---------\t------\t----\t-------\t----\t----\n")

	for _, t := range res.Traces {
		st, err := line.Calculate(t.X, t.Y)
		if err != nil {
			fmt.Fprintf(stderr, "warning: %s: %v\n", t.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.4g\t%.3f\t%.4g\t%.3f\n",
			t.Name, st.Samples, st.Peak, st.PeakX, st.Area, st.FWHM)
	}
	w.Flush()
}
