package export

import (
	"fmt"
	"image/color"

	"github.com/san-kum/boxwave/internal/analysis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotTrace writes height and X rotation against time. The image format
// follows path's extension (png, svg, pdf, ...).
func PlotTrace(tr *analysis.Trace, path string) error {
	if tr == nil || tr.Len() < 2 {
		return fmt.Errorf("plot %s: not enough samples", path)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("cell %d (row %d, col %d)", tr.Cell, tr.Row, tr.Col)
	p.X.Label.Text = "time (s)"
	p.Add(plotter.NewGrid())

	series := []struct {
		name   string
		values []float64
		color  color.RGBA
	}{
		{"height", tr.Heights, color.RGBA{R: 0, G: 170, B: 200, A: 255}},
		{"rotation x (rad)", tr.RotX, color.RGBA{R: 230, G: 80, B: 100, A: 255}},
	}
	for _, s := range series {
		pts := make(plotter.XYs, tr.Len())
		for i := range pts {
			pts[i] = plotter.XY{X: tr.Times[i], Y: s.values[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s.name, err)
		}
		line.Color = s.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	return nil
}
