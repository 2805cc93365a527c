package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/optsift/internal/schema"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and lookup", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Register(&schema.Command{Name: "copy"})

		cmd, ok := r.Lookup("copy")
		require.True(t, ok)
		assert.Equal(t, "copy", cmd.Name)

		_, ok = r.Lookup("move")
		assert.False(t, ok)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Register(&schema.Command{Name: "copy"})
		assert.Panics(t, func() {
			r.Register(&schema.Command{Name: "copy"})
		})
	})

	t.Run("populate from loaded commands", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.PopulateFromCommands(map[string]*schema.Command{
			"beta":  {Name: "beta"},
			"alpha": {Name: "alpha"},
		})

		assert.Equal(t, []string{"alpha", "beta"}, r.Names(), "names come back sorted")
	})

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, New().Names())
	})
}
