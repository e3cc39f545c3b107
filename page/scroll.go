package page

import (
	"math"
	"time"
)

const (
	// NavbarThreshold is the scroll offset past which the navbar turns solid.
	NavbarThreshold = 50.0

	// NavbarOffset is subtracted from a section's top when jumping to it so
	// the fixed navbar does not cover the heading.
	NavbarOffset = 80.0

	// SectionLead is how far above its top a section becomes the active one.
	SectionLead = 100.0

	// BackToTopThreshold is the scroll offset past which the back-to-top
	// button is shown.
	BackToTopThreshold = 500.0

	// smoothRate is the fraction of the remaining distance covered per
	// second of smooth scrolling.
	smoothRate = 10.0
)

// Section is a vertical region of the document.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Scroller tracks the vertical scroll position of the document and derives
// the navigation state from it.
type Scroller struct {
	sections []Section
	viewport float64
	document float64
	y        float64
	target   float64
}

// NewScroller creates a scroller at the top of a document made of sections.
func NewScroller(sections []Section, viewport float64) *Scroller {
	s := &Scroller{
		sections: append([]Section(nil), sections...),
	}
	for _, section := range sections {
		s.document = math.Max(s.document, section.Top+section.Height)
	}
	s.SetViewport(viewport)
	return s
}

// Sections returns the document sections.
func (s *Scroller) Sections() []Section {
	return s.sections
}

// SetViewport changes the visible height, keeping the position in range.
func (s *Scroller) SetViewport(h float64) {
	s.viewport = math.Max(h, 0)
	s.y = s.clamp(s.y)
	s.target = s.clamp(s.target)
}

// Viewport returns the visible height.
func (s *Scroller) Viewport() float64 {
	return s.viewport
}

// Document returns the total document height.
func (s *Scroller) Document() float64 {
	return math.Max(s.document, s.viewport)
}

// Y returns the current scroll offset.
func (s *Scroller) Y() float64 {
	return s.y
}

func (s *Scroller) maxY() float64 {
	return math.Max(s.Document()-s.viewport, 0)
}

func (s *Scroller) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), s.maxY())
}

// ScrollBy moves the position immediately, cancelling any smooth scroll.
func (s *Scroller) ScrollBy(dy float64) {
	s.y = s.clamp(s.y + dy)
	s.target = s.y
}

// ScrollTo starts a smooth scroll to y.
func (s *Scroller) ScrollTo(y float64) {
	s.target = s.clamp(y)
}

// ScrollToTop starts a smooth scroll to the top of the document.
func (s *Scroller) ScrollToTop() {
	s.ScrollTo(0)
}

// ScrollToSection starts a smooth scroll to the section with the given id.
// It reports false when no such section exists.
func (s *Scroller) ScrollToSection(id string) bool {
	for _, section := range s.sections {
		if section.ID == id {
			s.ScrollTo(section.Top - NavbarOffset)
			return true
		}
	}
	return false
}

// Scrolling reports whether a smooth scroll is in progress.
func (s *Scroller) Scrolling() bool {
	return s.y != s.target
}

// Update advances a smooth scroll by dt seconds and reports whether the
// position moved.
func (s *Scroller) Update(dt float64) bool {
	if s.y == s.target {
		return false
	}

	step := math.Min(dt*smoothRate, 1)
	s.y += (s.target - s.y) * step
	if math.Abs(s.target-s.y) < 0.5 {
		s.y = s.target
	}
	return true
}

// NavbarScrolled reports whether the navbar should use its scrolled style.
func (s *Scroller) NavbarScrolled() bool {
	return s.y > NavbarThreshold
}

// BackToTopVisible reports whether the back-to-top button is shown.
func (s *Scroller) BackToTopVisible() bool {
	return s.y > BackToTopThreshold
}

// Progress returns how far through the document the reader is, in percent.
func (s *Scroller) Progress() float64 {
	scrollable := s.maxY()
	if scrollable <= 0 {
		return 0
	}
	return math.Min(math.Max(s.y/scrollable*100, 0), 100)
}

// ActiveSection returns the id of the section the reader is in.
func (s *Scroller) ActiveSection() (string, bool) {
	for _, section := range s.sections {
		top := section.Top - SectionLead
		if s.y > top && s.y <= top+section.Height {
			return section.ID, true
		}
	}
	return "", false
}

// Skill is one bar of the skills section.
type Skill struct {
	Name    string
	Percent float64
}

// SkillBars animates the skill bars once the skills section scrolls into
// view. The animation plays a single time.
type SkillBars struct {
	skills    []Skill
	trigger   float64
	stagger   time.Duration
	fill      time.Duration
	triggered bool
	started   time.Time
}

// NewSkillBars creates bars for a skills section starting at sectionTop.
func NewSkillBars(skills []Skill, sectionTop float64) *SkillBars {
	return &SkillBars{
		skills:  append([]Skill(nil), skills...),
		trigger: sectionTop + SectionLead,
		stagger: 100 * time.Millisecond,
		fill:    time.Second,
	}
}

// Skills returns the bars in display order.
func (b *SkillBars) Skills() []Skill {
	return b.skills
}

// Check starts the animation when the bottom of the viewport passes the
// trigger line. It reports true on the call that starts it.
func (b *SkillBars) Check(scrollY, viewport float64, now time.Time) bool {
	if b.triggered || scrollY+viewport <= b.trigger {
		return false
	}
	b.triggered = true
	b.started = now
	return true
}

// Triggered reports whether the animation has started.
func (b *SkillBars) Triggered() bool {
	return b.triggered
}

// Width returns the width of bar i at now, in percent. Bar i starts filling
// i*100ms after the animation was triggered.
func (b *SkillBars) Width(i int, now time.Time) float64 {
	if !b.triggered || i < 0 || i >= len(b.skills) {
		return 0
	}
	start := b.started.Add(time.Duration(i) * b.stagger)
	t := progress(now.Sub(start), b.fill)
	eased := 1 - math.Pow(1-t, 3)
	return b.skills[i].Percent * eased
}
