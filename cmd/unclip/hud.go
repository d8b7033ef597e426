package main

import (
	"fmt"
	"io"
	"time"
)

const hudHint = " u: unclip  p: projection  wasd: move  arrows: orbit  b: bounds  esc: quit "

// HUD draws a status overlay on the first and last terminal rows.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// Render writes the overlay for a terminal of width x height cells.
func (h *HUD) Render(w io.Writer, width, height int, info hudInfo) {
	const clearLine = "\x1b[2K"

	fmt.Fprint(w, moveTo(1, 1)+clearLine)
	fmt.Fprint(w, moveTo(height, 1)+clearLine)

	top := hudAccentStyle.Render(fmt.Sprintf(" %.0f FPS ", h.fps)) +
		hudStyle.Render(fmt.Sprintf(" %s  %d tris  %s  eye %s ",
			info.name, info.triangles, info.projection, formatVec(info.eye)))
	if info.nearClipped > 0 {
		top += hudWarnStyle.Render(fmt.Sprintf(" %d edges clipped ", info.nearClipped))
	}
	fmt.Fprint(w, moveTo(1, 1)+top)

	bottom := hudStyle.Render(hudHint)
	if info.status != "" {
		msg := info.status
		if len(msg) > width-2 && width > 5 {
			msg = msg[:width-5] + "..."
		}
		bottom = hudWarnStyle.Render(" " + msg + " ")
	}
	fmt.Fprint(w, moveTo(height, 1)+bottom)
}
