package viewer

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/fractal"
)

// RunConfig configures the viewer window and its initial state.
type RunConfig struct {
	Title         string
	Width, Height int

	// Kind and Depth preset the form and the first frame.
	Kind  fractal.Kind
	Depth int

	// ZoomDuration animates zoom changes over this many seconds. 0 snaps.
	ZoomDuration float32

	// ShowHUD prints the kind, depth, zoom and FPS overlay.
	ShowHUD bool

	// ScreenshotDir receives screenshots. Defaults to "screenshots".
	ScreenshotDir string

	// Script, if set, drives the game with injected actions.
	Script *TestRunner
	// ExitWhenScriptDone ends the game loop once Script has finished.
	ExitWhenScriptDone bool
}

// ClearColor is painted behind the fractal canvas.
var ClearColor = fractal.Color{R: 0.098, G: 0.098, B: 0.137, A: 1}

// Game is an ebiten.Game showing one fractal with depth entry, kind
// selection and zoom. The fractal is drawn into an offscreen canvas only
// when something changes; every frame blits the canvas and the overlays.
type Game struct {
	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	cfg      RunConfig
	canvas   *ebiten.Image
	surface  *Surface
	view     *fractal.View
	renderer *fractal.Renderer
	form     *fractal.Form
	notice   notice

	dirty bool

	injectQueue     []Action
	actionBuf       []Action
	charBuf         []rune
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewGame creates a Game from cfg. The first draw happens on the first Update.
func NewGame(cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		ScreenshotDir: cfg.ScreenshotDir,
		cfg:           cfg,
		canvas:        ebiten.NewImage(cfg.Width, cfg.Height),
		view:          fractal.NewView(float64(cfg.Width), float64(cfg.Height)),
		form:          fractal.NewForm(cfg.Kind, cfg.Depth),
		testRunner:    cfg.Script,
		dirty:         true,
	}
	g.surface = NewSurface(g.canvas)
	g.renderer = fractal.NewRenderer(g.surface, g.view)
	g.view.SetAnimation(cfg.ZoomDuration, ease.OutQuad)
	g.view.OnChange(g.redraw)
	return g
}

// View returns the game's view controller.
func (g *Game) View() *fractal.View { return g.view }

// Form returns the depth input and kind selector state.
func (g *Game) Form() *fractal.Form { return g.form }

// Renderer returns the dispatcher drawing into the canvas.
func (g *Game) Renderer() *fractal.Renderer { return g.renderer }

// Notice returns the message of the open notification, if any.
func (g *Game) Notice() (string, bool) {
	return g.notice.message, g.notice.visible
}

// redraw submits the form. A rejected depth opens the notification and
// leaves the canvas as it was.
func (g *Game) redraw() {
	if err := g.form.Submit(g.renderer); err != nil {
		var de *fractal.DepthError
		if !errors.As(err, &de) {
			fractal.Logger().Error("draw failed", "err", err)
		}
		g.notice.show(err.Error())
	}
}

// apply performs a single action. It reports whether the game should exit.
func (g *Game) apply(a Action) bool {
	if g.notice.blocks(a) {
		return false
	}
	switch a.Type {
	case ActionText:
		g.form.Type(a.Text)
	case ActionBackspace:
		g.form.Backspace()
	case ActionSubmit:
		if g.notice.visible {
			g.notice.dismiss()
			return false
		}
		g.redraw()
	case ActionNextKind:
		g.form.SelectKind(g.form.Kind.Next())
	case ActionSelectKind:
		g.form.SelectKind(a.Kind)
	case ActionZoomIn:
		g.view.ZoomIn()
	case ActionZoomOut:
		g.view.ZoomOut()
	case ActionResetZoom:
		g.view.Reset()
	case ActionScreenshot:
		g.Screenshot(a.Text)
	case ActionDismiss:
		g.notice.dismiss()
	case ActionQuit:
		return true
	}
	return false
}

// Update processes one frame of input and animation.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if g.dirty {
		g.dirty = false
		g.redraw()
	}

	if g.testRunner != nil {
		g.testRunner.step(g)
		if g.cfg.ExitWhenScriptDone && g.testRunner.Done() && len(g.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}

	g.actionBuf = g.actionBuf[:0]
	if a, ok := g.popInjected(); ok {
		g.actionBuf = append(g.actionBuf, a)
	} else {
		g.actionBuf, g.charBuf = pollInput(g.actionBuf, g.charBuf)
	}
	for _, a := range g.actionBuf {
		if g.apply(a) {
			return ebiten.Termination
		}
	}

	if g.view.Update(dt) && !g.notice.visible {
		g.redraw()
	}
	return nil
}

// Draw blits the canvas and the overlays onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ClearColor.RGBA())
	screen.DrawImage(g.canvas, nil)
	if g.cfg.ShowHUD {
		g.drawHUD(screen)
	}
	g.notice.draw(screen)
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen at the configured canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs the viewer until it is closed.
func Run(cfg RunConfig) error {
	g := NewGame(cfg)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	fractal.Logger().Info("window opened",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"kind", cfg.Kind,
		"depth", cfg.Depth)
	return ebiten.RunGame(g)
}
