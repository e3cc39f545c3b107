// Package page holds the interactive state of the portfolio page that sits
// on top of the particle backdrop: the hero typewriter, notifications,
// scroll-driven navigation, skill bars, cursor sparks and the konami easter
// egg.
//
// Everything here is driven by explicit timestamps. A Page is a frame.System
// and advances itself from the frame it is executed with.
package page

import (
	"log"
	"time"

	"github.com/plus3/backdrop/frame"
)

// Config describes the page content and the pacing of its animations.
type Config struct {
	Roles    []string
	Sections []Section
	Skills   []Skill
	// SkillsSection is the id of the section holding the skill bars.
	SkillsSection string
	Viewport      float64
	Debounce      time.Duration

	Typewriter TypewriterConfig
	Toaster    ToasterConfig
	Sparks     SparksConfig
}

// DefaultConfig returns the portfolio content and animation pacing.
func DefaultConfig() Config {
	return Config{
		Roles: []string{
			"--C++ programmer--",
			"--Frontend Developer--",
			"--DSA/CP--",
		},
		Sections: []Section{
			{ID: "home", Top: 0, Height: 720},
			{ID: "about", Top: 720, Height: 800},
			{ID: "skills", Top: 1520, Height: 700},
			{ID: "projects", Top: 2220, Height: 900},
			{ID: "experience", Top: 3120, Height: 700},
			{ID: "contact", Top: 3820, Height: 700},
		},
		Skills: []Skill{
			{Name: "C++", Percent: 90},
			{Name: "Data Structures & Algorithms", Percent: 85},
			{Name: "JavaScript", Percent: 80},
			{Name: "HTML & CSS", Percent: 85},
			{Name: "React", Percent: 70},
		},
		SkillsSection: "skills",
		Viewport:      720,
		Debounce:      100 * time.Millisecond,
		Typewriter:    DefaultTypewriterConfig(),
		Toaster:       DefaultToasterConfig(),
		Sparks:        DefaultSparksConfig(),
	}
}

// Page aggregates the interactive components of the page.
type Page struct {
	Typewriter *Typewriter
	Toaster    *Toaster
	Scroller   *Scroller
	Skills     *SkillBars
	Menu       *Menu
	Konami     *KeySequence
	EasterEgg  *EasterEgg
	Sparks     *Sparks
	Form       ContactForm

	// OnEasterEgg, when set, is called each time the konami code completes.
	OnEasterEgg func()

	debounce *Debouncer
	active   string
}

// New creates a page whose animations start at now.
func New(cfg Config, now time.Time) *Page {
	skillsTop := 0.0
	for _, section := range cfg.Sections {
		if section.ID == cfg.SkillsSection {
			skillsTop = section.Top
		}
	}

	p := &Page{
		Typewriter: NewTypewriter(cfg.Roles, cfg.Typewriter, now),
		Toaster:    NewToaster(cfg.Toaster),
		Scroller:   NewScroller(cfg.Sections, cfg.Viewport),
		Skills:     NewSkillBars(cfg.Skills, skillsTop),
		Menu:       &Menu{},
		Konami:     NewKeySequence(KonamiCode...),
		EasterEgg:  NewEasterEgg(),
		Sparks:     NewSparks(cfg.Sparks),
		debounce:   NewDebouncer(cfg.Debounce),
	}
	p.active, _ = p.Scroller.ActiveSection()
	p.Skills.Check(p.Scroller.Y(), p.Scroller.Viewport(), now)
	return p
}

// Execute advances every animation to the frame time.
func (p *Page) Execute(f *frame.Frame) {
	now := f.Now

	p.Typewriter.Update(now)
	if p.Scroller.Update(f.DeltaTime) {
		p.scrolled(now)
	}
	if p.debounce.Ready(now) {
		p.active, _ = p.Scroller.ActiveSection()
	}
	p.Toaster.Update(now)
	p.Sparks.Update(now)
}

func (p *Page) scrolled(now time.Time) {
	p.debounce.Trigger(now)
	p.Skills.Check(p.Scroller.Y(), p.Scroller.Viewport(), now)
}

// Scroll moves the document by dy pixels.
func (p *Page) Scroll(dy float64, now time.Time) {
	p.Scroller.ScrollBy(dy)
	p.scrolled(now)
}

// NavigateTo follows a navigation link: the menu closes and the document
// smoothly scrolls to the section. It reports false for an unknown id.
func (p *Page) NavigateTo(id string) bool {
	p.Menu.Close()
	return p.Scroller.ScrollToSection(id)
}

// BackToTop follows the back-to-top button when it is visible.
func (p *Page) BackToTop() bool {
	if !p.Scroller.BackToTopVisible() {
		return false
	}
	p.Scroller.ScrollToTop()
	return true
}

// SetViewport changes the visible height of the document.
func (p *Page) SetViewport(h float64, now time.Time) {
	p.Scroller.SetViewport(h)
	p.scrolled(now)
}

// ActiveSection returns the id of the highlighted navigation link, as of
// the last debounced scroll.
func (p *Page) ActiveSection() string {
	return p.active
}

// PointerMove leaves a spark at the pointer position.
func (p *Page) PointerMove(x, y float64, now time.Time) {
	p.Sparks.Emit(x, y, now)
}

// Key feeds a key press to the konami detector and reports whether it
// completed the code.
func (p *Page) Key(name string, now time.Time) bool {
	if !p.Konami.Press(name) {
		return false
	}
	p.EasterEgg.Activate(now)
	p.Toaster.Show(EasterEggMessage, KindSuccess, now)
	if p.OnEasterEgg != nil {
		p.OnEasterEgg()
	}
	return true
}

// Submit sends the contact form. On success the form is cleared and a
// success toast is shown; otherwise an error toast explains the problem.
func (p *Page) Submit(now time.Time) error {
	if err := p.Form.Validate(); err != nil {
		p.Toaster.Show("Could not send message: "+err.Error(), KindError, now)
		return err
	}

	log.Printf("contact: message from %s <%s>: %s", p.Form.Name, p.Form.Email, p.Form.Subject)
	p.Toaster.Show(SubmitMessage, KindSuccess, now)
	p.Form.Reset()
	return nil
}
