package bean_test

import (
	"log/slog"
	"testing"

	"github.com/sghaida/beaninit/bean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeDispatcher_AttemptDoesNotMutateOnMismatch(t *testing.T) {
	t.Parallel()

	d := bean.NewTypeDispatcher(OtherParams{Level: 1}, nil)
	b := newBean("b")

	ok, err := d.Attempt(b, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, b.IsInitialized())
	assert.Equal(t, Params{}, b.Params())
	assert.Zero(t, b.hookCalls)
}

func TestTypeDispatcher_Descriptions(t *testing.T) {
	t.Parallel()

	extract := bean.WithExtractor(func(p Params) (OtherParams, bool) { return OtherParams{}, true })
	skip := bean.WithExtractor(func(p OtherParams) (Params, bool) { return Params{}, true })
	handle := bean.Handle(func(*plainBean, OtherParams, bean.Bean, *slog.Logger) error { return nil })

	d := bean.NewTypeDispatcher(Params{}, nil, extract, skip, handle)

	assert.Equal(t, "bean_test.Params (extracted bean_test.OtherParams)", d.SuppliedDescription())
	assert.Equal(t, "bean_test.Describer", d.RequiredParameterDescription(&describerBean{}))
	assert.Equal(t, "bean_test.OtherParams", d.RequiredParameterDescription(&plainBean{}))
	assert.Equal(t, "nothing", d.RequiredParameterDescription(valueBean{}))
}

func TestTypeDispatcher_HandlerUsesExtractedParams(t *testing.T) {
	t.Parallel()

	var got OtherParams
	extract := bean.WithExtractor(func(p Params) (OtherParams, bool) { return OtherParams{Level: 7}, true })
	handle := bean.Handle(func(_ *plainBean, p OtherParams, _ bean.Bean, _ *slog.Logger) error {
		got = p
		return nil
	})

	d := bean.NewTypeDispatcher(Params{}, nil, extract, handle)
	ok, err := d.Attempt(&plainBean{name: "p"}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, got.Level)
}

func TestTypeDispatcher_EnvelopeWinsOverExtracted(t *testing.T) {
	t.Parallel()

	extract := bean.WithExtractor(func(p Params) (Params, bool) { return Params{Env: "extracted"}, true })
	d := bean.NewTypeDispatcher(Params{Env: "envelope"}, nil, extract)

	b := newBean("b")
	ok, err := d.Attempt(b, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "envelope", b.Params().Env)
}

func TestTypeDispatcher_NilOptionIgnored(t *testing.T) {
	t.Parallel()

	d := bean.NewTypeDispatcher(Params{}, nil, nil)
	ok, err := d.Attempt(newBean("b"), nil)
	require.NoError(t, err)
	assert.True(t, ok)
}
