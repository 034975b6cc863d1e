package main

import (
	"fmt"

	primvec "github.com/facebookincubator/go-primvec"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func sampleXYs(v *primvec.FloatVector) plotter.XYs {
	xys := make(plotter.XYs, 0, v.Len())
	for i, y := range v.All() {
		xys = append(xys, plotter.XY{X: float64(i), Y: float64(y)})
	}
	return xys
}

// savePlot draws the input and filtered signals on one chart and writes
// it to path.  The image format follows the file extension.
func savePlot(path, title string, input, output *primvec.FloatVector) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "amplitude"

	series := []struct {
		name string
		v    *primvec.FloatVector
	}{{"input", input}, {"output", output}}
	for i, s := range series {
		l, err := plotter.NewLine(sampleXYs(s.v))
		if err != nil {
			return fmt.Errorf("plotting %s: %w", s.name, err)
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(s.name, l)
	}
	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
