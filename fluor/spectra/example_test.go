package spectra_test

import (
	"fmt"

	"github.com/cwbudde/algo-fluorescence/fluor/grid"
	"github.com/cwbudde/algo-fluorescence/fluor/params"
	"github.com/cwbudde/algo-fluorescence/fluor/spectra"
)

func ExampleInelastic_FindBoundary() {
	p, _ := params.Resolve(params.Inputs{
		SaturationParameter: params.Float(1),
		Detuning:            params.Float(0),
	})

	span, err := spectra.NewInelastic().FindBoundary(p, 0)
	fmt.Println(span, err)

	// Output:
	// 4 <nil>
}

func ExampleElastic() {
	p, _ := params.Resolve(params.Inputs{
		SaturationParameter: params.Float(1),
		Detuning:            params.Float(0),
	})

	c := spectra.NewElastic()
	_ = c.Recompute(p, grid.NewRenderConfig(grid.WithResolution(100), grid.WithSpan(2)), 0)
	drawn := 0
	for _, y := range c.Y() {
		if y != 0 {
			drawn++
		}
	}
	fmt.Printf("%s: %d impulse, weight %.3f\n", c.Name(), drawn, c.Value())

	// Output:
	// Elastic Intensity: 1 impulse, weight 0.125
}
