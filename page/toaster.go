package page

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Kind selects the styling of a toast.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindInfo
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindInfo:
		return "info"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// ToasterConfig controls how long toasts stay up and how long they slide.
type ToasterConfig struct {
	Lifetime   time.Duration
	Transition time.Duration
}

// DefaultToasterConfig returns a 5s lifetime with 300ms slide animations.
func DefaultToasterConfig() ToasterConfig {
	return ToasterConfig{
		Lifetime:   5 * time.Second,
		Transition: 300 * time.Millisecond,
	}
}

// Toast is a single notification.
type Toast struct {
	ID      uint32
	Message string
	Kind    Kind
	Shown   time.Time
	Closing time.Time // zero until dismissed or expired
}

// ToastView is a toast as it should be drawn at a given instant.
type ToastView struct {
	Toast
	// Slide is 1 when the toast is fully in place and 0 when it is fully
	// off-screen.
	Slide float64
}

// Toaster keeps the notifications currently on screen.
type Toaster struct {
	config ToasterConfig
	toasts *intmap.Map[uint32, *Toast]
	order  []uint32
	nextID uint32
}

// NewToaster creates an empty toaster.
func NewToaster(config ToasterConfig) *Toaster {
	return &Toaster{
		config: config,
		toasts: intmap.New[uint32, *Toast](8),
	}
}

// Show adds a toast and returns its id.
func (t *Toaster) Show(message string, kind Kind, now time.Time) uint32 {
	t.nextID++
	id := t.nextID
	t.toasts.Put(id, &Toast{
		ID:      id,
		Message: message,
		Kind:    kind,
		Shown:   now,
	})
	t.order = append(t.order, id)
	return id
}

// Dismiss starts the slide-out of a toast. It reports false when the toast
// is unknown or already closing.
func (t *Toaster) Dismiss(id uint32, now time.Time) bool {
	toast, ok := t.toasts.Get(id)
	if !ok || !toast.Closing.IsZero() {
		return false
	}
	toast.Closing = now
	return true
}

// Update expires old toasts and drops those whose slide-out has finished.
// It returns the number of toasts removed.
func (t *Toaster) Update(now time.Time) int {
	removed := 0
	kept := t.order[:0]
	for _, id := range t.order {
		toast, ok := t.toasts.Get(id)
		if !ok {
			continue
		}
		if toast.Closing.IsZero() && now.Sub(toast.Shown) >= t.config.Lifetime {
			toast.Closing = toast.Shown.Add(t.config.Lifetime)
		}
		if !toast.Closing.IsZero() && now.Sub(toast.Closing) >= t.config.Transition {
			t.toasts.Del(id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	return removed
}

// Len returns the number of toasts on screen, closing ones included.
func (t *Toaster) Len() int {
	return t.toasts.Len()
}

// Get returns a copy of the toast with the given id.
func (t *Toaster) Get(id uint32) (Toast, bool) {
	toast, ok := t.toasts.Get(id)
	if !ok {
		return Toast{}, false
	}
	return *toast, true
}

// Visible returns the toasts oldest first with their slide progress at now.
func (t *Toaster) Visible(now time.Time) []ToastView {
	views := make([]ToastView, 0, len(t.order))
	for _, id := range t.order {
		toast, ok := t.toasts.Get(id)
		if !ok {
			continue
		}
		slide := progress(now.Sub(toast.Shown), t.config.Transition)
		if !toast.Closing.IsZero() {
			slide = 1 - progress(now.Sub(toast.Closing), t.config.Transition)
		}
		views = append(views, ToastView{Toast: *toast, Slide: slide})
	}
	return views
}

// progress maps elapsed over total onto [0, 1].
func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}
