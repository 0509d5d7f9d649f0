package tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantworks/variant-go/pkg/variant"
	"github.com/variantworks/variant-go/pkg/variant/schema"
)

// End-to-end walk of the library surface: declare a set, construct values,
// reassign them, and dispatch with a complete handler set.
func TestDispatch_EndToEnd(t *testing.T) {
	set, err := schema.NewTypeSet(schema.StringType(), schema.I64Type(), schema.BoolType())
	require.NoError(t, err)

	handlers := variant.NewHandlers[int64](set)
	variant.On(handlers, func(s string) int64 { return int64(len(s)) })
	variant.On(handlers, func(n int64) int64 { return n })
	variant.On(handlers, func(b bool) int64 {
		if b {
			return 0
		}
		return 1
	})
	require.NoError(t, handlers.Err())
	require.NoError(t, handlers.Complete())

	// Text member dispatches to the length handler.
	v, err := variant.New(set, "hello")
	require.NoError(t, err)
	assert.Equal(t, schema.KindString, v.Type().Kind())

	got, err := variant.Dispatch(v, handlers)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	// Integer member passes through the identity handler unchanged.
	require.NoError(t, v.Assign(int64(42)))
	got, err = variant.Dispatch(v, handlers)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	// Boolean member negates.
	require.NoError(t, v.Assign(true))
	got, err = variant.Dispatch(v, handlers)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestDispatch_MissingHandlerFailsBeforeAnyValue(t *testing.T) {
	set, err := schema.NewTypeSet(schema.StringType(), schema.I64Type(), schema.BoolType())
	require.NoError(t, err)

	handlers := variant.NewHandlers[int64](set)
	variant.On(handlers, func(s string) int64 { return int64(len(s)) })
	variant.On(handlers, func(n int64) int64 { return n })
	// bool left uncovered

	err = handlers.Complete()
	require.Error(t, err)
	assert.True(t, errors.Is(err, variant.ErrIncompleteHandlers))
	assert.Contains(t, err.Error(), "bool")
}

func TestConstruct_OutsideSetFails(t *testing.T) {
	set, err := schema.NewTypeSet(schema.StringType(), schema.I64Type())
	require.NoError(t, err)

	_, err = variant.New(set, 3.14)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrTypeMismatch))
}

func TestRegistryDrivenDispatch(t *testing.T) {
	registry := schema.NewRegistry()
	require.NoError(t, registry.LoadYAML([]byte(`
typesets:
  - name: json-scalar
    types: [string, i64, bool]
`)))

	set, ok := registry.Get("json-scalar")
	require.True(t, ok)

	handlers := variant.NewHandlers[string](set)
	variant.On(handlers, func(s string) string { return "text" })
	variant.On(handlers, func(n int64) string { return "number" })
	variant.On(handlers, func(b bool) string { return "flag" })
	require.NoError(t, handlers.Err())

	v, err := variant.New(set, int64(9))
	require.NoError(t, err)
	got, err := variant.Dispatch(v, handlers)
	require.NoError(t, err)
	assert.Equal(t, "number", got)
}
