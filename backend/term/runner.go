package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/backdrop/field"
	"github.com/plus3/backdrop/frame"
	"github.com/plus3/backdrop/page"
)

// Config controls the terminal runner.
type Config struct {
	Field      field.Config
	Page       page.Config
	FPS        int
	CellWidth  float64
	CellHeight float64
}

// DefaultConfig returns 30 frames per second with 8x16 pixel cells and a
// sparser field than the desktop front end.
func DefaultConfig() Config {
	fieldConfig := field.DefaultConfig()
	fieldConfig.ParticleCount = 60
	return Config{
		Field:      fieldConfig,
		Page:       page.DefaultConfig(),
		FPS:        30,
		CellWidth:  8,
		CellHeight: 16,
	}
}

// Runner drives a field and a page on a tcell screen.
type Runner struct {
	Screen    tcell.Screen
	Surface   *Surface
	Field     *field.Field
	Page      *page.Page
	Loop      *frame.Loop
	Scheduler *frame.TickerScheduler
}

// NewRunner initialises screen and wires the field, the page and the status
// line onto a loop ticking at cfg.FPS.
func NewRunner(screen tcell.Screen, cfg Config) (*Runner, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		cfg.CellWidth, cfg.CellHeight = 8, 16
	}

	surface := NewSurface(screen, cfg.CellWidth, cfg.CellHeight)
	_, height := surface.Size()
	cfg.Page.Viewport = height

	scheduler := frame.NewTickerScheduler(time.Second / time.Duration(cfg.FPS))
	r := &Runner{
		Screen:    screen,
		Surface:   surface,
		Field:     field.New(surface, cfg.Field),
		Page:      page.New(cfg.Page, time.Now()),
		Loop:      frame.NewLoop(scheduler),
		Scheduler: scheduler,
	}

	r.Loop.Register(r.Field)
	r.Loop.Register(r.Page)
	r.Loop.Register(&StatusLine{Surface: surface, Page: r.Page})
	r.Loop.Register(frame.SystemFunc(func(*frame.Frame) { screen.Show() }))
	return r, nil
}

// Run animates until ctx is cancelled or the user quits, then restores the
// terminal.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.Screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	go r.Scheduler.Run(ctx)
	r.Loop.Start()
	defer func() {
		r.Loop.Stop()
		r.Screen.Fini()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !r.Handle(ev, time.Now()) {
				return nil
			}
		}
	}
}

// Handle applies one terminal event and reports whether the runner should
// keep going.
func (r *Runner) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.Screen.Sync()
		w, h := r.Surface.Size()
		r.Loop.Post(func() {
			r.Field.Resize(w, h)
			r.Page.SetViewport(h, now)
		})

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x := (float64(cx) + 0.5) * r.Surface.CellWidth
		y := (float64(cy) + 0.5) * r.Surface.CellHeight
		r.Field.PointerMove(x, y)
		r.Loop.Post(func() { r.Page.PointerMove(x, y, now) })

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			r.Loop.Post(func() { r.Page.Scroll(-3*r.Surface.CellHeight, now) })
		}
		if buttons&tcell.WheelDown != 0 {
			r.Loop.Post(func() { r.Page.Scroll(3*r.Surface.CellHeight, now) })
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			r.Field.PointerLeave()
		}

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		name := KeyName(ev.Key(), ev.Rune())
		if name != "" {
			r.Loop.Post(func() { r.Page.Key(name, now) })
		}
	}
	return true
}

// KeyName returns the DOM-style name of a terminal key.
func KeyName(key tcell.Key, ch rune) string {
	switch key {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyRune:
		return string(ch)
	}
	return ""
}

// StatusLine prints the typewriter and the newest toast on the bottom row.
type StatusLine struct {
	Surface *Surface
	Page    *page.Page
}

func (s *StatusLine) Execute(f *frame.Frame) {
	_, height := s.Surface.Size()
	y := height - s.Surface.CellHeight

	s.Surface.DrawText(s.Page.Typewriter.Text(), s.Surface.CellWidth, y, field.ConnectionColor)

	if views := s.Page.Toaster.Visible(f.Now); len(views) > 0 {
		msg := views[len(views)-1].Message
		width, _ := s.Surface.Size()
		x := width - float64(len([]rune(msg))+1)*s.Surface.CellWidth
		s.Surface.DrawText(msg, x, y, field.Green.NRGBA())
	}
}
