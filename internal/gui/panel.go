package gui

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/boxwave/internal/control"
)

const (
	panelWidth  = 220
	panelHeight = 260
	swatchSize  = 22
	swatchGap   = 6
	swatchCols  = 6
)

func (a *App) swatchRect(i int) rl.Rectangle {
	x := a.panel.X + 14 + float32(i%swatchCols)*(swatchSize+swatchGap)
	y := a.panel.Y + 40 + float32(i/swatchCols)*(swatchSize+swatchGap)
	return rl.NewRectangle(x, y, swatchSize, swatchSize)
}

func (a *App) rotateRect() rl.Rectangle {
	return rl.NewRectangle(a.panel.X+14, a.panel.Y+110, panelWidth-28, 30)
}

func (a *App) axesRect() rl.Rectangle {
	return rl.NewRectangle(a.panel.X+14, a.panel.Y+200, 16, 16)
}

// updatePanel routes clicks on the panel to the controller.
func (a *App) updatePanel(ctx context.Context) {
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	mouse := rl.GetMousePosition()
	if !rl.CheckCollisionPointRec(mouse, a.panel) {
		return
	}
	for i, s := range control.Palette {
		if rl.CheckCollisionPointRec(mouse, a.swatchRect(i)) {
			a.ctrl.PickColor(s.Color)
			return
		}
	}
	switch {
	case rl.CheckCollisionPointRec(mouse, a.rotateRect()):
		a.ctrl.PressRotate(ctx)
	case rl.CheckCollisionPointRec(mouse, a.axesRect()):
		a.showAxes = !a.showAxes
	}
}

func (a *App) drawPanel() {
	rl.DrawRectangleRec(a.panel, ColPanel)
	rl.DrawRectangleLinesEx(a.panel, 1, ColTextDim)

	x, y := int(a.panel.X)+14, int(a.panel.Y)+12
	a.drawText("color", x, y, 16, ColText)

	base := a.ctrl.BaseColor()
	for i, s := range control.Palette {
		r := a.swatchRect(i)
		rl.DrawRectangleRec(r, color(s.Color))
		if s.Color == base {
			rl.DrawRectangleLinesEx(r, 2, ColSelect)
		}
	}

	fl := a.eng.Flourish()
	btn := a.rotateRect()
	btnCol := ColAccent
	if fl.Busy() {
		btnCol = ColTextDim
	} else if rl.CheckCollisionPointRec(rl.GetMousePosition(), btn) {
		btnCol = ColSelect
	}
	rl.DrawRectangleLinesEx(btn, 1, btnCol)
	a.drawText("rotate", int(btn.X)+int(btn.Width)/2-27, int(btn.Y)+7, 16, btnCol)

	state, stateCol := "IDLE", ColText
	if fl.Busy() {
		state, stateCol = "ROTATING", ColBusy
	}
	a.drawText(state, x, int(a.panel.Y)+152, 14, stateCol)
	a.drawText(fmt.Sprintf("cycles %d", fl.Cycles()), x+110, int(a.panel.Y)+152, 14, ColTextDim)

	bar := rl.NewRectangle(float32(x), a.panel.Y+174, panelWidth-28, 6)
	rl.DrawRectangleRec(bar, ColTextDim)
	bar.Width *= float32(fl.Progress())
	rl.DrawRectangleRec(bar, stateCol)

	box := a.axesRect()
	rl.DrawRectangleLinesEx(box, 1, ColAccent)
	if a.showAxes {
		rl.DrawRectangle(int32(box.X)+4, int32(box.Y)+4, int32(box.Width)-8, int32(box.Height)-8, ColSelect)
	}
	a.drawText("axes", int(box.X)+26, int(box.Y), 14, ColText)

	a.drawText(base.Hex(), x, int(a.panel.Y)+230, 14, ColTextDim)
}
