package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/backdrop/field"
	"github.com/plus3/backdrop/frame"
	"github.com/plus3/backdrop/page"
)

// WheelStep is how many pixels one wheel notch scrolls the page.
const WheelStep = 60.0

// KeyName returns the DOM-style name of k: letters are lower case, arrows
// are "ArrowUp" and so on.
func KeyName(k ebiten.Key) string {
	name := k.String()
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return name
}

// Input polls the ebiten input state once per Update and turns changes into
// pointer updates and posted page events.
type Input struct {
	loop  *frame.Loop
	field *field.Field
	page  *page.Page
	hud   *HUD

	inside       bool
	lastX, lastY int
	keys         []ebiten.Key
}

// NewInput creates an input source feeding f and p through loop.
func NewInput(loop *frame.Loop, f *field.Field, p *page.Page, hud *HUD) *Input {
	return &Input{
		loop:  loop,
		field: f,
		page:  p,
		hud:   hud,
	}
}

// Poll reads the current input state. When captured is true another layer
// (the debug overlay) owns the mouse and the pointer counts as absent.
func (in *Input) Poll(now time.Time, captured bool) {
	width, height := in.hud.Canvas.Size()
	x, y := ebiten.CursorPosition()
	inside := !captured && ebiten.IsFocused() &&
		x >= 0 && y >= 0 && float64(x) < width && float64(y) < height

	switch {
	case inside && (!in.inside || x != in.lastX || y != in.lastY):
		px, py := float64(x), float64(y)
		in.field.PointerMove(px, py)
		in.loop.Post(func() { in.page.PointerMove(px, py, now) })
	case !inside && in.inside:
		in.field.PointerLeave()
	}
	in.inside = inside
	in.lastX, in.lastY = x, y

	if !captured {
		if _, dy := ebiten.Wheel(); dy != 0 {
			in.loop.Post(func() { in.page.Scroll(-dy*WheelStep, now) })
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			px, py := float64(x), float64(y)
			in.loop.Post(func() { in.hud.Click(px, py) })
		}
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		name := KeyName(k)
		in.loop.Post(func() { in.key(name, now) })
	}
}

func (in *Input) key(name string, now time.Time) {
	if in.page.Key(name, now) {
		return
	}
	switch name {
	case "Home":
		in.page.BackToTop()
	case "Escape":
		in.page.Menu.Close()
	case "PageDown":
		in.page.Scroll(in.page.Scroller.Viewport(), now)
	case "PageUp":
		in.page.Scroll(-in.page.Scroller.Viewport(), now)
	default:
		if strings.HasPrefix(name, "Digit") {
			n := int(name[len(name)-1] - '1')
			sections := in.page.Scroller.Sections()
			if n >= 0 && n < len(sections) {
				in.page.NavigateTo(sections[n].ID)
			}
		}
	}
}
