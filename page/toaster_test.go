package page_test

import (
	"testing"
	"time"

	"github.com/plus3/backdrop/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster(t *testing.T) {
	t.Run("auto dismiss after lifetime", func(t *testing.T) {
		toaster := page.NewToaster(page.DefaultToasterConfig())
		id := toaster.Show("hello", page.KindInfo, t0)

		views := toaster.Visible(at(150 * time.Millisecond))
		require.Len(t, views, 1)
		assert.Equal(t, id, views[0].ID)
		assert.InDelta(t, 0.5, views[0].Slide, 1e-9)

		assert.Equal(t, 0, toaster.Update(at(4999*time.Millisecond)))
		assert.Equal(t, 0, toaster.Update(at(5*time.Second)))
		assert.Equal(t, 1, toaster.Len())

		toast, ok := toaster.Get(id)
		require.True(t, ok)
		assert.Equal(t, at(5*time.Second), toast.Closing)

		views = toaster.Visible(at(5150 * time.Millisecond))
		require.Len(t, views, 1)
		assert.InDelta(t, 0.5, views[0].Slide, 1e-9)

		assert.Equal(t, 1, toaster.Update(at(5300*time.Millisecond)))
		assert.Equal(t, 0, toaster.Len())
		assert.Empty(t, toaster.Visible(at(5300*time.Millisecond)))
	})

	t.Run("manual dismiss", func(t *testing.T) {
		toaster := page.NewToaster(page.DefaultToasterConfig())
		id := toaster.Show("bye", page.KindError, t0)

		assert.True(t, toaster.Dismiss(id, at(time.Second)))
		assert.False(t, toaster.Dismiss(id, at(time.Second)))
		assert.False(t, toaster.Dismiss(id+1, at(time.Second)))

		assert.Equal(t, 0, toaster.Update(at(1200*time.Millisecond)))
		assert.Equal(t, 1, toaster.Update(at(1300*time.Millisecond)))
		_, ok := toaster.Get(id)
		assert.False(t, ok)
	})

	t.Run("keeps order", func(t *testing.T) {
		toaster := page.NewToaster(page.DefaultToasterConfig())
		first := toaster.Show("first", page.KindSuccess, t0)
		second := toaster.Show("second", page.KindInfo, at(time.Second))
		third := toaster.Show("third", page.KindError, at(2*time.Second))

		toaster.Dismiss(second, at(2*time.Second))
		toaster.Update(at(3 * time.Second))

		views := toaster.Visible(at(3 * time.Second))
		require.Len(t, views, 2)
		assert.Equal(t, first, views[0].ID)
		assert.Equal(t, third, views[1].ID)
		assert.Equal(t, "error", views[1].Kind.String())
	})
}
