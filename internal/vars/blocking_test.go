package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockRegistry(t *testing.T) {
	t.Run("empty registry blocks nothing", func(t *testing.T) {
		r := NewBlockRegistry()
		assert.False(t, r.IsBlocked("a"))
	})

	t.Run("register and unregister", func(t *testing.T) {
		r := NewBlockRegistry()
		r.Register([]string{"a", "b"}, "panel-1")
		assert.True(t, r.IsBlocked("a"))
		assert.True(t, r.IsBlocked("b"))
		assert.False(t, r.IsBlocked("c"))

		r.Unregister([]string{"a"}, "panel-1")
		assert.False(t, r.IsBlocked("a"))
		assert.True(t, r.IsBlocked("b"))
	})

	t.Run("nested blockers must all be removed", func(t *testing.T) {
		r := NewBlockRegistry()
		r.Register([]string{"a"}, "panel-1")
		r.Register([]string{"a"}, "panel-2")

		r.Unregister([]string{"a"}, "panel-1")
		assert.True(t, r.IsBlocked("a"))

		r.Unregister([]string{"a"}, "panel-2")
		assert.False(t, r.IsBlocked("a"))
	})

	t.Run("duplicate pushes need matching removals", func(t *testing.T) {
		r := NewBlockRegistry()
		r.Register([]string{"a"}, "panel-1")
		r.Register([]string{"a"}, "panel-1")

		r.Unregister([]string{"a"}, "panel-1")
		assert.True(t, r.IsBlocked("a"))

		r.Unregister([]string{"a"}, "panel-1")
		assert.False(t, r.IsBlocked("a"))
	})

	t.Run("unregistering an unknown blocker is a no-op", func(t *testing.T) {
		r := NewBlockRegistry()
		r.Register([]string{"a"}, "panel-1")
		r.Unregister([]string{"a"}, "panel-99")
		assert.True(t, r.IsBlocked("a"))
	})
}
