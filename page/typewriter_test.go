package page_test

import (
	"testing"
	"time"

	"github.com/plus3/backdrop/page"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

func TestTypewriter(t *testing.T) {
	t.Run("types, holds, deletes and moves on", func(t *testing.T) {
		tw := page.NewTypewriter([]string{"ab", "xyz"}, page.DefaultTypewriterConfig(), t0)

		steps := []struct {
			at       time.Duration
			text     string
			deleting bool
			role     int
		}{
			{999 * time.Millisecond, "", false, 0},
			{time.Second, "a", false, 0},
			{1100 * time.Millisecond, "ab", true, 0},
			{3099 * time.Millisecond, "ab", true, 0},
			{3100 * time.Millisecond, "a", true, 0},
			{3150 * time.Millisecond, "", false, 1},
			{3649 * time.Millisecond, "", false, 1},
			{3650 * time.Millisecond, "x", false, 1},
		}
		for _, step := range steps {
			tw.Update(at(step.at))
			assert.Equal(t, step.text, tw.Text(), "text at %v", step.at)
			assert.Equal(t, step.deleting, tw.Deleting(), "deleting at %v", step.at)
			assert.Equal(t, step.role, tw.Role(), "role at %v", step.at)
		}
	})

	t.Run("catches up on missed steps", func(t *testing.T) {
		tw := page.NewTypewriter([]string{"hello"}, page.DefaultTypewriterConfig(), t0)

		changed := tw.Update(at(1300 * time.Millisecond))
		assert.True(t, changed)
		assert.Equal(t, "hell", tw.Text())
	})

	t.Run("wraps to the first role", func(t *testing.T) {
		tw := page.NewTypewriter([]string{"a", "b"}, page.DefaultTypewriterConfig(), t0)

		// a: typed at 1s, hold to 3s, deleted at 3s, next role at 3.5s
		// b: typed at 3.5s, hold to 5.5s, deleted at 5.5s, next role at 6s
		tw.Update(at(6 * time.Second))
		assert.Equal(t, "a", tw.Text())
		assert.Equal(t, 0, tw.Role())
	})

	t.Run("handles multi-byte runes", func(t *testing.T) {
		tw := page.NewTypewriter([]string{"héllo"}, page.DefaultTypewriterConfig(), t0)

		tw.Update(at(1100 * time.Millisecond))
		assert.Equal(t, "hé", tw.Text())
	})

	t.Run("no roles", func(t *testing.T) {
		tw := page.NewTypewriter(nil, page.DefaultTypewriterConfig(), t0)

		assert.False(t, tw.Update(at(time.Hour)))
		assert.Empty(t, tw.Text())
	})
}
