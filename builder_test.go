// File: params/builder_test.go
package params

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChain(t *testing.T) {
	b := NewBuilder("DESCR").WithArgs([]string{"test", "--iterations", "7"})
	With[int64](b, "iterations,it", "max iterations", 100)
	With[float64](b, "tolerance", "convergence tolerance", 1e-9)

	p, help, err := b.Build()
	require.NoError(t, err)
	require.False(t, help)

	it, err := Get[int64](p, "it")
	require.NoError(t, err)
	assert.Equal(t, int64(7), it)

	tol, err := Get[float64](p, "tolerance")
	require.NoError(t, err)
	assert.Equal(t, 1e-9, tol)
}

func TestBuilderWithString(t *testing.T) {
	b := NewBuilder("DESCR").WithString(`test --name "some value"`)
	With[string](b, "name", "a name")

	p, help, err := b.Build()
	require.NoError(t, err)
	require.False(t, help)

	name, err := Get[string](p, "name")
	require.NoError(t, err)
	assert.Equal(t, "some value", name)
}

func TestBuilderDeclarationError(t *testing.T) {
	b := NewBuilder("DESCR").WithArgs([]string{"test"})
	With[int64](b, "a", "fine")
	With[string](b, "", "empty name")
	With[int64](b, "b", "declared after the failure")

	_, _, err := b.Build()
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestBuilderValidators(t *testing.T) {
	t.Run("Pass", func(t *testing.T) {
		b := NewBuilder("DESCR").WithArgs([]string{"test", "--a", "5"})
		With[int64](b, "a", "value")
		b.WithValidator(func(r *Registry) error {
			v, err := Get[int64](r, "a")
			if err != nil {
				return err
			}
			if v <= 0 {
				return fmt.Errorf("a must be positive, got %d", v)
			}
			return nil
		})

		_, help, err := b.Build()
		require.NoError(t, err)
		assert.False(t, help)
	})

	t.Run("Fail", func(t *testing.T) {
		b := NewBuilder("DESCR").WithArgs([]string{"test", "--a", "-5"})
		With[int64](b, "a", "value")
		b.WithValidator(func(r *Registry) error {
			v, err := Get[int64](r, "a")
			if err != nil {
				return err
			}
			if v <= 0 {
				return fmt.Errorf("a must be positive, got %d", v)
			}
			return nil
		})

		_, _, err := b.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestBuilderHelpSkipsValidation(t *testing.T) {
	called := false
	b := NewBuilder("DESCR").WithArgs([]string{"test", "-?"})
	With[int64](b, "a", "value")
	b.WithValidator(func(r *Registry) error {
		called = true
		return nil
	})

	p, help, err := b.Build()
	require.NoError(t, err)
	assert.True(t, help)
	assert.NotNil(t, p)
	assert.False(t, called)
}

func TestBuilderRegistryAccess(t *testing.T) {
	b := NewBuilder("DESCR")
	require.NotNil(t, b.Registry())
	assert.Equal(t, "DESCR", b.Registry().Description())
}
