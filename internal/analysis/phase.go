package analysis

import "strings"

type Point struct{ X, Y float64 }

// PhasePortrait holds height against vertical velocity for a traced cell.
type PhasePortrait struct {
	Points []Point
}

// NewPhasePortrait differentiates the trace's heights with central
// differences. Endpoints are dropped.
func NewPhasePortrait(tr *Trace) *PhasePortrait {
	if tr == nil || len(tr.Heights) < 3 || tr.Rate <= 0 {
		return nil
	}
	h := tr.Heights
	pp := &PhasePortrait{Points: make([]Point, 0, len(h)-2)}
	for i := 1; i < len(h)-1; i++ {
		pp.Points = append(pp.Points, Point{
			X: h[i],
			Y: (h[i+1] - h[i-1]) * tr.Rate / 2,
		})
	}
	return pp
}

// ASCII plots the portrait on a width×height character grid with axes
// drawn where they cross the visible area.
func (pp *PhasePortrait) ASCII(width, height int) string {
	if pp == nil || len(pp.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := pp.Points[0].X, pp.Points[0].X
	minY, maxY := pp.Points[0].Y, pp.Points[0].Y
	for _, p := range pp.Points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, p := range pp.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := range canvas {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := range canvas[row] {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
