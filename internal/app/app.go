//go:build ebiten

package app

import (
	"context"
	"image"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:      ActionTogglePause,
	ebiten.KeyN:          ActionStepOnce,
	ebiten.KeyEnter:      ActionStepOnce,
	ebiten.KeyC:          ActionClear,
	ebiten.KeyW:          ActionToggleWrap,
	ebiten.KeyG:          ActionToggleGrid,
	ebiten.KeyEqual:      ActionFaster,
	ebiten.KeyKPAdd:      ActionFaster,
	ebiten.KeyMinus:      ActionSlower,
	ebiten.KeyKPSubtract: ActionSlower,
	ebiten.KeyR:          ActionRandomize,
	ebiten.KeyQ:          ActionQuit,
	ebiten.KeyEscape:     ActionQuit,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx      context.Context
	ctrl     *Controller
	painter  *render.GridPainter
	hud      *ui.HUD
	style    render.Style
	cellSize int
	hudWidth int

	screenW, screenH int
	origin           image.Point
}

// New constructs a Game for the provided controller.
func New(ctx context.Context, ctrl *Controller, cellSize, hudWidth int) *Game {
	hud := ui.NewHUD(ctrl.Session(), hudWidth)
	hud.SetHelp(HelpLines())
	return &Game{
		ctx:      ctx,
		ctrl:     ctrl,
		hud:      hud,
		style:    render.DefaultStyle(),
		cellSize: cellSize,
		hudWidth: hudWidth,
	}
}

// WindowSize returns the window size that fits the board and HUD exactly.
func (g *Game) WindowSize() (int, int) {
	size := g.ctrl.Session().Size()
	b := render.BoardBounds(size.W, size.H, image.Point{}, g.cellSize)
	return b.Dx() + g.hudWidth, b.Dy()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) && g.ctrl.Apply(g.ctx, action) {
			return ebiten.Termination
		}
	}

	g.hud.Update(g.screenW - g.hudWidth)
	g.updatePointer()
	g.ctrl.Tick(time.Now())
	return nil
}

func (g *Game) updatePointer() {
	sess := g.ctrl.Session()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		sess.BeginStroke(life.Alive)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		sess.BeginStroke(life.Dead)
	}
	if !sess.Painting() {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		sess.EndStroke()
		return
	}
	mx, my := ebiten.CursorPosition()
	size := sess.Size()
	if x, y, ok := render.CellAt(image.Pt(mx, my), g.origin, g.cellSize, size.W, size.H); ok {
		sess.Paint(x, y)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sess := g.ctrl.Session()
	size := sess.Size()
	if g.painter == nil || !g.painter.Fits(size.W, size.H, g.cellSize) {
		g.painter = render.NewGridPainter(size.W, size.H, g.cellSize)
	}
	g.style.ShowGrid = g.ctrl.ShowGrid()
	sess.View(func(r life.Reader) {
		g.painter.Blit(screen, r, g.origin, g.style)
	})
	g.hud.Draw(screen, g.screenW-g.hudWidth)
}

// Layout keeps the logical screen equal to the window and centres the board
// in the space left of the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	size := g.ctrl.Session().Size()
	b := render.BoardBounds(size.W, size.H, image.Point{}, g.cellSize)
	avail := outsideWidth - g.hudWidth
	g.origin = image.Pt(max(0, (avail-b.Dx())/2), max(0, (outsideHeight-b.Dy())/2))
	return outsideWidth, outsideHeight
}
