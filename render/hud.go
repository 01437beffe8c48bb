package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slipstream/component"
	"github.com/lixenwraith/slipstream/config"
	"github.com/lixenwraith/slipstream/track"
)

const (
	speedBarRow   = 0
	energyBarRow  = 1
	statusRow     = 2
	ribbonRow     = 3
	barNumWidth   = 8 // Right-aligned numeric readout beside each bar
	ribbonPadding = 2
)

// HUD renders the race readout to a tcell screen. Read-only observer:
// it consumes post-tick snapshots and never touches simulation state
type HUD struct {
	screen tcell.Screen
	width  int
	height int
}

// NewHUD creates a HUD bound to the screen
func NewHUD(screen tcell.Screen) *HUD {
	w, h := screen.Size()
	return &HUD{screen: screen, width: w, height: h}
}

// Resize updates the cached screen dimensions
func (h *HUD) Resize(w, height int) {
	h.width = w
	h.height = height
}

// RenderFrame draws the full HUD from one post-tick snapshot
func (h *HUD) RenderFrame(st component.RacerState, trk track.Track, tune config.Tuning, elapsed time.Duration) {
	h.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	h.drawSpeedBar(st, tune, defaultStyle)
	h.drawEnergyBar(st, defaultStyle)
	h.drawStatusLine(st, elapsed, defaultStyle)
	h.drawProgressRibbon(st, trk, defaultStyle)

	h.screen.Show()
}

// drawSpeedBar draws the speed gauge with a numeric m/s readout
func (h *HUD) drawSpeedBar(st component.RacerState, tune config.Tuning, defaultStyle tcell.Style) {
	barWidth := h.width - barNumWidth
	if barWidth < 1 {
		barWidth = 1
	}

	norm := 0.0
	if tune.MaxSpeed > 0 {
		norm = st.Speed / tune.MaxSpeed
		if norm > 1 {
			norm = 1
		}
	}
	filled := int(norm * float64(barWidth))

	for x := 0; x < barWidth; x++ {
		style := defaultStyle.Foreground(RgbBarDim)
		if x < filled {
			style = defaultStyle.Foreground(SpeedColor(float64(x+1) / float64(barWidth)))
		}
		h.screen.SetContent(x, speedBarRow, '█', nil, style)
	}

	readout := fmt.Sprintf("%4.0f", st.Speed)
	h.drawText(h.width-len(readout)-1, speedBarRow, readout, defaultStyle.Foreground(RgbStatusText))
}

// drawEnergyBar draws the boost tank with the stacked pickup count
func (h *HUD) drawEnergyBar(st component.RacerState, defaultStyle tcell.Style) {
	barWidth := h.width - barNumWidth
	if barWidth < 1 {
		barWidth = 1
	}
	filled := int(st.BoostEnergy * float64(barWidth))

	fillColor := RgbEnergyFull
	if st.BoostEnergy < 0.25 {
		fillColor = RgbEnergyEmpty
	}
	for x := 0; x < barWidth; x++ {
		style := defaultStyle.Foreground(RgbBarDim)
		if x < filled {
			style = defaultStyle.Foreground(fillColor)
		}
		h.screen.SetContent(x, energyBarRow, '▓', nil, style)
	}

	label := fmt.Sprintf("%3.0f%%", st.BoostEnergy*100)
	style := defaultStyle.Foreground(RgbStatusText)
	if st.ManualActive {
		style = defaultStyle.Foreground(RgbBoostActive)
	}
	h.drawText(h.width-len(label)-1, energyBarRow, label, style)
}

// drawStatusLine draws lap, race time, pickup stack, paint and corridor state
func (h *HUD) drawStatusLine(st component.RacerState, elapsed time.Duration, defaultStyle tcell.Style) {
	labelStyle := defaultStyle.Foreground(RgbLabelText)
	valueStyle := defaultStyle.Foreground(RgbStatusText)

	for x := 0; x < h.width; x++ {
		h.screen.SetContent(x, statusRow, ' ', nil, defaultStyle)
	}

	lap := fmt.Sprintf("LAP %d/%d", st.LapCurrent, st.LapTotal)
	h.drawText(1, statusRow, lap, valueStyle)

	clock := formatRaceTime(elapsed)
	h.drawText(len(lap)+3, statusRow, clock, labelStyle)

	x := len(lap) + len(clock) + 5
	if n := len(st.ActiveBoosters); n > 0 {
		stack := fmt.Sprintf("BOOST x%d", n)
		h.drawText(x, statusRow, stack, defaultStyle.Foreground(RgbBoostActive))
		x += len(stack) + 2
	}
	if st.InCorridor {
		h.drawText(x, statusRow, "CORRIDOR", defaultStyle.Foreground(RgbRibbonCorridor))
		x += len("CORRIDOR") + 2
	}
	if st.Paint != component.PaintNeutral {
		h.drawText(x, statusRow, "RAIL "+st.Paint.String(), defaultStyle.Foreground(RgbPaintRail))
	}
}

// drawProgressRibbon draws the circuit as a horizontal strip: corridor spans,
// booster markers, and the racer's position along it
func (h *HUD) drawProgressRibbon(st component.RacerState, trk track.Track, defaultStyle tcell.Style) {
	width := h.width - 2*ribbonPadding
	if width < 4 {
		return
	}

	cell := func(t float64) int {
		return ribbonPadding + int(track.Wrap(t)*float64(width))
	}

	for x := 0; x < width; x++ {
		ch, color := '─', RgbRibbonTrack
		if trk.CorridorStatusAt(float64(x)/float64(width), 0).Inside {
			ch, color = '═', RgbRibbonCorridor
		}
		h.screen.SetContent(ribbonPadding+x, ribbonRow, ch, nil, defaultStyle.Foreground(color))
	}

	for _, m := range trk.BoosterMarkers() {
		h.screen.SetContent(cell(m), ribbonRow, '◆', nil, defaultStyle.Foreground(RgbRibbonMarker))
	}

	h.screen.SetContent(cell(st.Progress), ribbonRow, '█', nil, defaultStyle.Foreground(RgbRibbonRacer))
}

func (h *HUD) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		if x+i >= h.width {
			return
		}
		h.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// formatRaceTime renders elapsed sim time as m:ss.mmm
func formatRaceTime(d time.Duration) string {
	mins := int(d.Minutes())
	secs := d - time.Duration(mins)*time.Minute
	return fmt.Sprintf("%d:%06.3f", mins, secs.Seconds())
}
