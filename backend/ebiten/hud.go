package ebiten

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/plus3/backdrop/field"
	"github.com/plus3/backdrop/frame"
	"github.com/plus3/backdrop/page"
)

const (
	navHeight      = 56.0
	navPadding     = 24.0
	narrowWidth    = 768.0
	progressHeight = 3.0
	toastWidth     = 320.0
	toastHeight    = 48.0
	toastMargin    = 24.0
	backToTopSize  = 20.0
	skillBarWidth  = 360.0
)

var (
	accent     = field.ConnectionColor
	textColor  = color.NRGBA{R: 230, G: 230, B: 240, A: 255}
	mutedColor = color.NRGBA{R: 140, G: 140, B: 160, A: 255}
	panelColor = color.NRGBA{R: 10, G: 10, B: 18, A: 230}

	kindColors = map[page.Kind]color.NRGBA{
		page.KindSuccess: field.Green.NRGBA(),
		page.KindInfo:    field.Cyan.NRGBA(),
		page.KindError:   field.Magenta.NRGBA(),
	}
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// NavItem is a navigation link and where it is drawn.
type NavItem struct {
	ID    string
	Label string
	Rect  Rect
}

// NavLayout places the navigation links for a window of the given width.
// Narrow windows show a menu button instead, and list the links below the
// navbar only while the menu is open.
func NavLayout(sections []page.Section, width float64, menuOpen bool) (items []NavItem, menuButton Rect, narrow bool) {
	narrow = width < narrowWidth
	if narrow {
		menuButton = Rect{X: width - navPadding - 32, Y: 12, W: 32, H: 32}
		if !menuOpen {
			return nil, menuButton, true
		}
		for i, section := range sections {
			items = append(items, NavItem{
				ID:    section.ID,
				Label: sectionLabel(section.ID),
				Rect:  Rect{X: 0, Y: navHeight + float64(i)*40, W: width, H: 40},
			})
		}
		return items, menuButton, true
	}

	total := 0.0
	for _, section := range sections {
		total += TextWidth(sectionLabel(section.ID)) + navPadding
	}
	x := width - navPadding - total
	for _, section := range sections {
		label := sectionLabel(section.ID)
		w := TextWidth(label) + navPadding
		items = append(items, NavItem{
			ID:    section.ID,
			Label: label,
			Rect:  Rect{X: x, Y: 0, W: w, H: navHeight},
		})
		x += w
	}
	return items, Rect{}, false
}

func sectionLabel(id string) string {
	if id == "" {
		return id
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// HUD draws the page chrome on top of the particle field.
type HUD struct {
	Page   *page.Page
	Canvas Canvas
}

// NewHUD creates a HUD drawing the state of p onto canvas.
func NewHUD(p *page.Page, canvas Canvas) *HUD {
	return &HUD{Page: p, Canvas: canvas}
}

func (h *HUD) Execute(f *frame.Frame) {
	now := f.Now
	width, height := h.Canvas.Size()

	h.drawSections(width)
	h.drawHero(width, now)
	h.drawSkills(now)
	h.Page.Sparks.Draw(h.Canvas, now)
	h.drawNavbar(width)
	h.drawProgress(width)
	h.drawBackToTop(width, height)
	h.drawToasts(width, height, now)
}

// Click handles a primary button press at (x, y) and reports whether it hit
// a control.
func (h *HUD) Click(x, y float64) bool {
	width, height := h.Canvas.Size()
	sections := h.Page.Scroller.Sections()

	items, menuButton, narrow := NavLayout(sections, width, h.Page.Menu.IsOpen())
	if narrow && menuButton.Contains(x, y) {
		h.Page.Menu.Toggle()
		return true
	}
	for _, item := range items {
		if item.Rect.Contains(x, y) {
			return h.Page.NavigateTo(item.ID)
		}
	}

	if h.Page.Scroller.BackToTopVisible() {
		cx, cy := backToTopCenter(width, height)
		if math.Hypot(x-cx, y-cy) <= backToTopSize {
			return h.Page.BackToTop()
		}
	}
	return false
}

func backToTopCenter(width, height float64) (float64, float64) {
	return width - 48, height - 48
}

func (h *HUD) screenY(docY float64) float64 {
	return docY - h.Page.Scroller.Y()
}

func (h *HUD) drawNavbar(width float64) {
	if h.Page.Scroller.NavbarScrolled() {
		h.Canvas.FillRect(0, 0, width, navHeight, panelColor)
		h.Canvas.StrokeLine(0, navHeight, width, navHeight, 1, accent, 0.2)
	}
	h.Canvas.DrawText("<Portfolio/>", navPadding, 34, accent)

	items, menuButton, narrow := NavLayout(h.Page.Scroller.Sections(), width, h.Page.Menu.IsOpen())
	if narrow {
		for i := range 3 {
			y := menuButton.Y + 9 + float64(i)*7
			h.Canvas.FillRect(menuButton.X+6, y, menuButton.W-12, 2, textColor)
		}
		if len(items) > 0 {
			last := items[len(items)-1].Rect
			h.Canvas.FillRect(0, navHeight, width, last.Y+last.H-navHeight, panelColor)
		}
	}

	active := h.Page.ActiveSection()
	for _, item := range items {
		clr := mutedColor
		if item.ID == active {
			clr = accent
			h.Canvas.FillRect(item.Rect.X+navPadding/2, item.Rect.Y+item.Rect.H-10, item.Rect.W-navPadding, 2, accent)
		}
		h.Canvas.DrawText(item.Label, item.Rect.X+navPadding/2, item.Rect.Y+item.Rect.H/2+4, clr)
	}
}

func (h *HUD) drawProgress(width float64) {
	filled := width * h.Page.Scroller.Progress() / 100
	if filled <= 0 {
		return
	}
	h.Canvas.FillRect(0, 0, filled, progressHeight, accent)
}

func (h *HUD) drawSections(width float64) {
	_, height := h.Canvas.Size()
	for _, section := range h.Page.Scroller.Sections() {
		if section.ID == "home" {
			continue
		}
		y := h.screenY(section.Top + 60)
		if y < -20 || y > height+20 {
			continue
		}
		title := strings.ToUpper(section.ID)
		h.Canvas.DrawText(title, (width-TextWidth(title))/2, y, textColor)
		h.Canvas.StrokeLine(width/2-30, y+10, width/2+30, y+10, 2, accent, 1)
	}
}

func (h *HUD) drawHero(width float64, now time.Time) {
	sections := h.Page.Scroller.Sections()
	if len(sections) == 0 {
		return
	}
	y := h.screenY(sections[0].Top + sections[0].Height/2)

	typed := h.Page.Typewriter.Text()
	if now.UnixMilli()/500%2 == 0 {
		typed += "|"
	}
	h.Canvas.DrawText(typed, (width-TextWidth(typed))/2, y, accent)
}

func (h *HUD) drawSkills(now time.Time) {
	skillsTop := -1.0
	for _, section := range h.Page.Scroller.Sections() {
		if section.ID == "skills" {
			skillsTop = section.Top
		}
	}
	if skillsTop < 0 {
		return
	}

	for i, skill := range h.Page.Skills.Skills() {
		y := h.screenY(skillsTop + 110 + float64(i)*44)
		h.Canvas.DrawText(skill.Name, 40, y, textColor)

		percent := h.Page.Skills.Width(i, now)
		label := fmt.Sprintf("%.0f%%", percent)
		h.Canvas.DrawText(label, 40+skillBarWidth-TextWidth(label), y, mutedColor)

		h.Canvas.FillRect(40, y+8, skillBarWidth, 6, color.NRGBA{R: 40, G: 40, B: 60, A: 255})
		if percent > 0 {
			h.Canvas.FillRect(40, y+8, skillBarWidth*percent/100, 6, accent)
		}
	}
}

func (h *HUD) drawBackToTop(width, height float64) {
	if !h.Page.Scroller.BackToTopVisible() {
		return
	}
	cx, cy := backToTopCenter(width, height)
	h.Canvas.FillCircle(cx, cy, backToTopSize, accent, 10)
	h.Canvas.DrawText("^", cx-3, cy+5, Background)
}

func (h *HUD) drawToasts(width, height float64, now time.Time) {
	views := h.Page.Toaster.Visible(now)
	for i, view := range views {
		y := height - toastMargin - float64(len(views)-i)*(toastHeight+8)
		x := width - toastMargin - toastWidth + (1-view.Slide)*(toastWidth+toastMargin)

		h.Canvas.FillRect(x, y, toastWidth, toastHeight, panelColor)
		h.Canvas.StrokeRect(x, y, toastWidth, toastHeight, 1, kindColors[view.Kind])
		h.Canvas.DrawText(view.Message, x+12, y+toastHeight/2+4, textColor)
	}
}
