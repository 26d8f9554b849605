package ebitenhost

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/ranged"
)

// hudRefresh is how often, in seconds, the FPS/TPS readout is resampled.
const hudRefresh = 0.5

// HUD prints the frame rate and the controller's state in the top-left
// corner.
type HUD struct {
	elapsed  float64
	fps, tps float64
}

// Update resamples the frame rate every hudRefresh seconds.
func (h *HUD) Update(dt float64) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.fps = ebiten.ActualFPS()
	h.tps = ebiten.ActualTPS()
}

// Draw prints the readout onto screen.
func (h *HUD) Draw(screen *ebiten.Image, c *ranged.Controller, selected int) {
	ebitenutil.DebugPrint(screen, hudText(h.fps, h.tps, c, selected))
}

func hudText(fps, tps float64, c *ranged.Controller, selected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	if !c.Enabled() {
		b.WriteString("controller disabled [E]\n")
	}
	if c.Hidden() {
		b.WriteString("controller hidden [H]\n")
	}
	fmt.Fprintf(&b, "tool: %s\nstate: %s\n", c.Tool(), c.State())
	if c.IsPerforming() {
		fmt.Fprintf(&b, "mode: %s\n", c.Mode())
	}
	if c.Tool() == ranged.ToolRangedBrush {
		fmt.Fprintf(&b, "brush: %.3f\n", c.Brush().Size)
	}
	if p, ok := c.Pull(); ok {
		fmt.Fprintf(&b, "pull: %.3f\n", p.Distance)
	}
	fmt.Fprintf(&b, "selected: %d\n", selected)
	b.WriteString("[1] brush [2] lasso [3] rectangle [4] interact [0] none")
	return b.String()
}
