package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/backdrop/field"
	"github.com/plus3/backdrop/frame"
	"github.com/plus3/backdrop/page"
)

// Overlay is drawn on top of the page, such as the debug UI.
type Overlay interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	WantCaptureMouse() bool
}

// Game runs a frame.Loop inside ebiten. Ebiten's Draw plays the role of the
// display refresh: every call fires the pending frame request.
type Game struct {
	Loop      *frame.Loop
	Scheduler *frame.StepScheduler
	Surface   *Surface
	Field     *field.Field
	Page      *page.Page
	HUD       *HUD
	Input     *Input
	Overlay   Overlay

	width, height int
}

// NewGame wires a field and a page onto a new loop. The loop runs the
// easter-egg tint, the field, the page and the HUD, in that order. It is
// started by the first Update.
func NewGame(width, height int, fieldConfig field.Config, pageConfig page.Config) *Game {
	surface := NewSurface(width, height)
	scheduler := frame.NewStepScheduler()
	loop := frame.NewLoop(scheduler)

	now := time.Now()
	pageConfig.Viewport = float64(height)
	p := page.New(pageConfig, now)
	f := field.New(surface, fieldConfig)
	hud := NewHUD(p, surface)

	g := &Game{
		Loop:      loop,
		Scheduler: scheduler,
		Surface:   surface,
		Field:     f,
		Page:      p,
		HUD:       hud,
		Input:     NewInput(loop, f, p, hud),
		width:     width,
		height:    height,
	}

	loop.Register(&Tint{Surface: surface, EasterEgg: p.EasterEgg})
	loop.Register(f)
	loop.Register(p)
	loop.Register(hud)
	return g
}

func (g *Game) Update() error {
	g.Loop.Start()

	captured := false
	if g.Overlay != nil {
		g.Overlay.Update()
		captured = g.Overlay.WantCaptureMouse()
	}
	g.Input.Poll(time.Now(), captured)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Surface.Target(screen)
	g.Scheduler.Step(time.Now())

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}

	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.Surface.SetSize(outsideWidth, outsideHeight)

		w, h := float64(outsideWidth), float64(outsideHeight)
		g.Loop.Post(func() {
			g.Field.Resize(w, h)
			g.Page.SetViewport(h, time.Now())
		})
	}
	return outsideWidth, outsideHeight
}

// Tint hue-rotates everything drawn on the surface while the easter egg is
// active.
type Tint struct {
	Surface   *Surface
	EasterEgg *page.EasterEgg
}

func (t *Tint) Execute(f *frame.Frame) {
	if !t.EasterEgg.Active(f.Now) {
		t.Surface.SetTint(nil)
		return
	}
	now := f.Now
	t.Surface.SetTint(func(c color.Color) color.Color {
		return t.EasterEgg.Tint(c, now)
	})
}
