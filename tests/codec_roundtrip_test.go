package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantworks/variant-go/pkg/variant"
	"github.com/variantworks/variant-go/pkg/variant/codec"
	"github.com/variantworks/variant-go/pkg/variant/schema"
)

// A value survives the wire and still dispatches to the same handler as
// the original: the codec preserves the discriminant, not just the bytes.
func TestCodec_RoundTripThenDispatch(t *testing.T) {
	registry := schema.NewRegistry()
	require.NoError(t, registry.LoadYAML([]byte(`
typesets:
  - name: event-payload
    types: [string, i64, f64, bool, bytes]
`)))
	set, ok := registry.Get("event-payload")
	require.True(t, ok)

	handlers := variant.NewHandlers[string](set)
	variant.On(handlers, func(s string) string { return "string:" + s })
	variant.On(handlers, func(n int64) string { return "i64" })
	variant.On(handlers, func(f float64) string { return "f64" })
	variant.On(handlers, func(b bool) string { return "bool" })
	variant.On(handlers, func(p []byte) string { return "bytes" })
	require.NoError(t, handlers.Err())

	original, err := variant.New(set, "hello")
	require.NoError(t, err)

	wire, err := codec.Marshal(original)
	require.NoError(t, err)

	decoded, err := codec.Unmarshal(set, wire)
	require.NoError(t, err)
	assert.Equal(t, original.Tag(), decoded.Tag())

	got, err := variant.Dispatch(decoded, handlers)
	require.NoError(t, err)
	assert.Equal(t, "string:hello", got)
}

func TestCodec_EveryMemberRoundTrips(t *testing.T) {
	set, err := schema.NewTypeSet(
		schema.BoolType(),
		schema.U8Type(),
		schema.I32Type(),
		schema.U64Type(),
		schema.F32Type(),
		schema.StringType(),
	)
	require.NoError(t, err)

	samples := []any{
		true,
		uint8(0xFF),
		int32(-100000),
		uint64(1 << 62),
		float32(1.5),
		"grüße",
	}
	for _, sample := range samples {
		v, err := variant.New(set, sample)
		require.NoError(t, err, "construct %v", sample)

		wire, err := codec.Marshal(v)
		require.NoError(t, err, "marshal %v", sample)

		back, err := codec.Unmarshal(set, wire)
		require.NoError(t, err, "unmarshal %v", sample)
		assert.Equal(t, v.Tag(), back.Tag(), "tag for %v", sample)
		assert.Equal(t, sample, back.Interface(), "payload for %v", sample)
	}
}

func TestCodec_ForeignBufferRejected(t *testing.T) {
	setA, err := schema.NewTypeSet(schema.StringType(), schema.I64Type())
	require.NoError(t, err)
	// setB's member 1 is a different kind, so a setA buffer tagged i64
	// cannot decode against it.
	setB, err := schema.NewTypeSet(schema.StringType(), schema.BoolType())
	require.NoError(t, err)

	v, err := variant.New(setA, int64(5))
	require.NoError(t, err)
	wire, err := codec.Marshal(v)
	require.NoError(t, err)

	_, err = codec.Unmarshal(setB, wire)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrKindMismatch)
}
