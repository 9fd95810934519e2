package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/varforge/internal/store"
	"github.com/vk/varforge/internal/subst"
)

func TestPlainValue(t *testing.T) {
	st := store.New()
	st.Set("dir", "/opt")
	sub := subst.New(st)

	t.Run("resolves with substitution", func(t *testing.T) {
		v := &PlainValue{Raw: "${dir}/bin"}
		value, ok, err := v.Resolve(sub)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "/opt/bin", value)
	})

	t.Run("unknown references stay in the result", func(t *testing.T) {
		v := &PlainValue{Raw: "${nope}/bin"}
		value, ok, err := v.Resolve(sub)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "${nope}/bin", value)
	})

	t.Run("broken syntax is a structural fault", func(t *testing.T) {
		v := &PlainValue{Raw: "${broken"}
		assert.Error(t, v.Validate())
		_, _, err := v.Resolve(sub)
		assert.Error(t, err)
	})

	t.Run("references", func(t *testing.T) {
		v := &PlainValue{Raw: "${a}/${b}"}
		assert.Equal(t, []string{"a", "b"}, v.References())
	})
}

func TestEnvironmentValue(t *testing.T) {
	sub := subst.New(store.New())

	t.Run("reads a set environment variable", func(t *testing.T) {
		t.Setenv("VARFORGE_TEST_HOME", "/home/acme")
		v := &EnvironmentValue{Name: "VARFORGE_TEST_HOME"}
		value, ok, err := v.Resolve(sub)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "/home/acme", value)
	})

	t.Run("unset environment variable yields no value", func(t *testing.T) {
		v := &EnvironmentValue{Name: "VARFORGE_TEST_DEFINITELY_UNSET"}
		_, ok, err := v.Resolve(sub)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("validate requires a name", func(t *testing.T) {
		assert.Error(t, (&EnvironmentValue{}).Validate())
		assert.NoError(t, (&EnvironmentValue{Name: "PATH"}).Validate())
	})

	t.Run("no references", func(t *testing.T) {
		assert.Empty(t, (&EnvironmentValue{Name: "PATH"}).References())
	})
}
