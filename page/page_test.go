package page_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/backdrop/frame"
	"github.com/plus3/backdrop/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(p *page.Page, now time.Time, dt float64) {
	p.Execute(&frame.Frame{Now: now, DeltaTime: dt, Commands: &frame.Commands{}})
}

func TestPage(t *testing.T) {
	t.Run("konami code shows the easter egg", func(t *testing.T) {
		p := page.New(page.DefaultConfig(), t0)
		fired := 0
		p.OnEasterEgg = func() { fired++ }

		for _, key := range page.KonamiCode[:len(page.KonamiCode)-1] {
			assert.False(t, p.Key(key, t0))
		}
		assert.True(t, p.Key("a", t0))
		assert.Equal(t, 1, fired)
		assert.True(t, p.EasterEgg.Active(at(time.Second)))

		views := p.Toaster.Visible(t0)
		require.Len(t, views, 1)
		assert.Equal(t, page.EasterEggMessage, views[0].Message)
	})

	t.Run("active section is debounced", func(t *testing.T) {
		p := page.New(page.DefaultConfig(), t0)
		assert.Equal(t, "home", p.ActiveSection())

		p.Scroll(800, t0)
		execute(p, at(50*time.Millisecond), 0.05)
		assert.Equal(t, "home", p.ActiveSection())

		execute(p, at(100*time.Millisecond), 0.05)
		assert.Equal(t, "about", p.ActiveSection())
	})

	t.Run("navigation closes the menu and scrolls", func(t *testing.T) {
		p := page.New(page.DefaultConfig(), t0)
		p.Menu.Toggle()
		require.True(t, p.Menu.IsOpen())

		assert.True(t, p.NavigateTo("contact"))
		assert.False(t, p.Menu.IsOpen())

		execute(p, at(time.Second), 1)
		assert.Equal(t, 3740.0, p.Scroller.Y())
		execute(p, at(1200*time.Millisecond), 0.2)
		assert.Equal(t, "contact", p.ActiveSection())
		assert.True(t, p.Skills.Triggered())

		assert.True(t, p.BackToTop())
		execute(p, at(2*time.Second), 1)
		assert.Equal(t, 0.0, p.Scroller.Y())
		assert.False(t, p.BackToTop())
	})

	t.Run("skill bars trigger when scrolled into view", func(t *testing.T) {
		p := page.New(page.DefaultConfig(), t0)
		assert.False(t, p.Skills.Triggered())

		p.Scroll(900, t0)
		assert.False(t, p.Skills.Triggered())
		p.Scroll(1, t0)
		assert.True(t, p.Skills.Triggered())
	})

	t.Run("contact form submission", func(t *testing.T) {
		p := page.New(page.DefaultConfig(), t0)

		assert.ErrorIs(t, p.Submit(t0), page.ErrMissingField)
		views := p.Toaster.Visible(t0)
		require.Len(t, views, 1)
		assert.Equal(t, page.KindError, views[0].Kind)

		p.Form = validForm()
		require.NoError(t, p.Submit(t0))
		assert.Equal(t, page.ContactForm{}, p.Form)

		views = p.Toaster.Visible(t0)
		require.Len(t, views, 2)
		assert.Equal(t, page.SubmitMessage, views[1].Message)
		assert.Equal(t, page.KindSuccess, views[1].Kind)
	})

	t.Run("frames advance the typewriter and expire toasts", func(t *testing.T) {
		p := page.New(page.DefaultConfig(), t0)
		p.Toaster.Show("hi", page.KindInfo, t0)
		p.PointerMove(5, 5, at(500*time.Millisecond))

		execute(p, at(time.Second), 1.0/60)
		assert.Equal(t, "-", p.Typewriter.Text())
		assert.Equal(t, 1, p.Sparks.Len())

		execute(p, at(6*time.Second), 1.0/60)
		assert.Equal(t, 0, p.Toaster.Len())
		assert.Equal(t, 0, p.Sparks.Len())
	})
}

func ExampleTypewriter() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := page.NewTypewriter([]string{"Go"}, page.DefaultTypewriterConfig(), start)

	for _, ms := range []int{1000, 1100, 3100, 3150} {
		tw.Update(start.Add(time.Duration(ms) * time.Millisecond))
		fmt.Printf("%dms %q\n", ms, tw.Text())
	}
	// Output:
	// 1000ms "G"
	// 1100ms "Go"
	// 3100ms "G"
	// 3150ms ""
}
