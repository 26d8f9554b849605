package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/ranged"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

const (
	// hoverHeight is the height the virtual hand hovers at above the cursor.
	hoverHeight = 1.0
	// tableFill is the share of the window width the table spans at start.
	tableFill = 0.8
)

var (
	background  = color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff}
	cursorColor = ranged.Color{R: 1, G: 1, B: 1, A: 0.8}
	clickFlash  = ranged.Color{R: 1, G: 1, B: 1, A: 1}
)

// toolKeys binds number keys to tools.
var toolKeys = map[ebiten.Key]ranged.ToolKind{
	ebiten.KeyDigit0: ranged.ToolNone,
	ebiten.KeyDigit1: ranged.ToolRangedBrush,
	ebiten.KeyDigit2: ranged.ToolLassoSelection,
	ebiten.KeyDigit3: ranged.ToolRectangleSelection,
	ebiten.KeyDigit4: ranged.ToolRangedInteraction,
}

// commandKeys are the other keys the sandbox reacts to.
var commandKeys = []ebiten.Key{
	ebiten.KeyE, ebiten.KeyH, ebiten.KeyC,
	ebiten.KeyEqual, ebiten.KeyMinus, ebiten.KeyEscape,
}

// Options configures a Game.
type Options struct {
	Config ranged.Config
	// Tool is selected once the controller is enabled.
	Tool   ranged.ToolKind
	Logger *zap.Logger
	// Haptics receives every pulse alongside the gamepad.
	Haptics ranged.Haptics
	// Configs delivers reloaded configurations; nil disables reloading.
	Configs       <-chan ranged.Config
	Width, Height int
}

// Game is the sandbox: the reference demo scene seen from above, a virtual
// hand hovering over the cursor, and a ranged controller driven by the
// gamepad or mouse. It implements ebiten.Game.
type Game struct {
	demo *ranged.Demo
	rig  *ranged.Rig
	sel  *ranged.SelectionSet
	ctrl *ranged.Controller
	cam  *Camera

	input   Input
	hud     HUD
	batch   batch
	configs <-chan ranged.Config
	log     *zap.Logger

	tweens []*ranged.TweenGroup
	base   map[*ranged.Entity]ranged.Color
	cursor ranged.Vec3

	width, height int
}

// NewGame builds the demo scene and an enabled controller over it.
func NewGame(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 960, 640
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	demo := ranged.BuildDemoScene()
	demo.Scene.SetLogger(log.Named("scene"))
	g := &Game{
		demo:    demo,
		rig:     ranged.NewRig(ranged.Vec3{0, hoverHeight, 0}, ranged.Vec3{0, -1, 0}),
		sel:     ranged.NewSelectionSet(),
		configs: opts.Configs,
		log:     log,
		base:    make(map[*ranged.Entity]ranged.Color),
		width:   opts.Width,
		height:  opts.Height,
	}
	g.sel.Track(demo.Shapes...)

	viewport := ranged.Rect{Width: float64(opts.Width), Height: float64(opts.Height)}
	g.cam = NewCamera(viewport, tableFill*float64(opts.Width)/2)

	g.ctrl = ranged.NewController(ranged.Options{
		Config:  opts.Config,
		World:   demo.Scene,
		Stage:   demo.Scene,
		Haptics: Fanout{GamepadHaptics{Input: &g.input}, opts.Haptics},
		Sink:    g.sel,
		Device:  g.rig,
		Surface: demo.Surface,
		Logger:  log.Named("controller"),
	})
	g.ctrl.OnClick(g.flash)
	g.ctrl.OnGrab(g.bump)
	g.ctrl.Enable()
	g.ctrl.SetSelectedTool(opts.Tool)
	return g
}

// Controller returns the sandbox's controller.
func (g *Game) Controller() *ranged.Controller {
	return g.ctrl
}

// Selection returns the sandbox's selection sink.
func (g *Game) Selection() *ranged.SelectionSet {
	return g.sel
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.applyConfigs()
	for k := range toolKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.handleKey(k)
		}
	}
	for _, k := range commandKeys {
		if inpututil.IsKeyJustPressed(k) {
			if err := g.handleKey(k); err != nil {
				return err
			}
		}
	}
	cx, cy := ebiten.CursorPosition()
	g.step(g.input.Poll(), float64(cx), float64(cy), dt)
	g.hud.Update(dt)
	return nil
}

// step aims the hand at the ground under the screen point, forwards button
// transitions and advances the controller by dt.
func (g *Game) step(b Buttons, sx, sy, dt float64) {
	x, z := g.cam.ScreenToGround(sx, sy)
	p := ranged.Vec3{x, hoverHeight, z}
	g.rig.SetPose(ranged.Pose{Position: p, Origin: p, Forward: ranged.Vec3{0, -1, 0}})
	g.cursor = ranged.Vec3{x, 0, z}

	g.input.Apply(g.ctrl, b)
	g.ctrl.Tick(dt)
	g.advanceTweens(dt)
	g.cam.Update(float32(dt))
}

// applyConfigs swaps in every configuration waiting on the channel.
func (g *Game) applyConfigs() {
	if g.configs == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.configs:
			if !ok {
				g.configs = nil
				return
			}
			if err := g.ctrl.SetConfig(cfg); err != nil {
				g.log.Warn("config reload rejected", zap.Error(err))
				continue
			}
			g.log.Info("config reloaded")
		default:
			return
		}
	}
}

// handleKey runs the action bound to k. Escape ends the game.
func (g *Game) handleKey(k ebiten.Key) error {
	if tool, ok := toolKeys[k]; ok {
		if !g.ctrl.SetSelectedTool(tool) {
			g.log.Debug("tool key ignored while performing",
				zap.Stringer("tool", tool))
		}
		return nil
	}
	switch k {
	case ebiten.KeyE:
		if g.ctrl.Enabled() {
			g.ctrl.Disable()
		} else {
			g.ctrl.Enable()
		}
	case ebiten.KeyH:
		if g.ctrl.Hidden() {
			g.ctrl.Show()
		} else {
			g.ctrl.Hide()
		}
	case ebiten.KeyC:
		g.cam.ScrollTo(0, 0, 0.4, ease.OutCirc)
	case ebiten.KeyEqual:
		g.cam.ZoomBy(1.25)
	case ebiten.KeyMinus:
		g.cam.ZoomBy(0.8)
	case ebiten.KeyEscape:
		return ebiten.Termination
	}
	return nil
}

// flash briefly lights a clicked UI element.
func (g *Game) flash(e *ranged.Entity) {
	base, ok := g.base[e]
	if !ok {
		base = e.Color
		g.base[e] = base
	}
	e.Color = clickFlash
	g.tweens = append(g.tweens, ranged.TweenColor(e, base, 0.3, ease.OutCirc))
}

// bump pops a grabbed entity's scale.
func (g *Game) bump(e *ranged.Entity) {
	e.Scale = ranged.Vec3{1.3, 1.3, 1.3}
	g.tweens = append(g.tweens, ranged.TweenScale(e, ranged.Vec3{1, 1, 1}, 0.25, ease.OutCirc))
}

func (g *Game) advanceTweens(dt float64) {
	live := g.tweens[:0]
	for _, tw := range g.tweens {
		tw.Update(float32(dt))
		if !tw.Done {
			live = append(live, tw)
		}
	}
	for i := len(live); i < len(g.tweens); i++ {
		g.tweens[i] = nil
	}
	g.tweens = live
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	appendScene(&g.batch, g.cam, g.demo.Scene)
	x, y := g.cam.WorldToScreen(g.cursor)
	g.batch.circle(x, y, 3, cursorColor)
	g.batch.flush(screen)
	g.hud.Draw(screen, g.ctrl, len(g.sel.Selected()))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.SetViewport(ranged.Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs g until it is closed or Escape is
// pressed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
