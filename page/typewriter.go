package page

import "time"

// TypewriterConfig holds the pacing of the hero typing animation.
type TypewriterConfig struct {
	StartDelay    time.Duration // before the first character
	TypeDelay     time.Duration // between typed characters
	DeleteDelay   time.Duration // between deleted characters
	HoldDelay     time.Duration // on a fully typed role
	NextRoleDelay time.Duration // after a role is fully deleted
}

// DefaultTypewriterConfig returns the pacing used on the portfolio hero.
func DefaultTypewriterConfig() TypewriterConfig {
	return TypewriterConfig{
		StartDelay:    time.Second,
		TypeDelay:     100 * time.Millisecond,
		DeleteDelay:   50 * time.Millisecond,
		HoldDelay:     2 * time.Second,
		NextRoleDelay: 500 * time.Millisecond,
	}
}

// Typewriter types each role one character at a time, holds it, deletes it
// and moves on to the next role, forever.
type Typewriter struct {
	config   TypewriterConfig
	roles    [][]rune
	role     int
	chars    int
	deleting bool
	text     string
	next     time.Time
}

// NewTypewriter creates a typewriter whose first step happens
// config.StartDelay after start.
func NewTypewriter(roles []string, config TypewriterConfig, start time.Time) *Typewriter {
	t := &Typewriter{
		config: config,
		roles:  make([][]rune, 0, len(roles)),
		next:   start.Add(config.StartDelay),
	}
	for _, role := range roles {
		if role != "" {
			t.roles = append(t.roles, []rune(role))
		}
	}
	return t
}

// Text returns the currently visible text.
func (t *Typewriter) Text() string {
	return t.text
}

// Role returns the index of the role being typed or deleted.
func (t *Typewriter) Role() int {
	return t.role
}

// Deleting reports whether the typewriter is erasing the current role.
func (t *Typewriter) Deleting() bool {
	return t.deleting
}

// Update applies every step that is due at now and reports whether the
// visible text changed.
func (t *Typewriter) Update(now time.Time) bool {
	if len(t.roles) == 0 {
		return false
	}

	before := t.text
	for !now.Before(t.next) {
		t.next = t.next.Add(t.step())
	}
	return t.text != before
}

// step performs one keystroke and returns the delay until the next one.
func (t *Typewriter) step() time.Duration {
	role := t.roles[t.role]

	var delay time.Duration
	if t.deleting {
		t.chars--
		delay = t.config.DeleteDelay
	} else {
		t.chars++
		delay = t.config.TypeDelay
	}
	t.text = string(role[:t.chars])

	switch {
	case !t.deleting && t.chars == len(role):
		t.deleting = true
		delay = t.config.HoldDelay
	case t.deleting && t.chars == 0:
		t.deleting = false
		t.role = (t.role + 1) % len(t.roles)
		delay = t.config.NextRoleDelay
	}

	// A zero delay would never let Update return.
	if delay <= 0 {
		delay = time.Millisecond
	}
	return delay
}
