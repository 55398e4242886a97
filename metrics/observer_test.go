package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/beaninit/bean"
)

type params struct{}

type node struct {
	bean.Init[params]
	bean.Label
	Children []*node
}

func (n *node) ConfigurableFields() []bean.Field {
	return []bean.Field{bean.ListOf("children", &n.Children)}
}

type strangerParams struct{}

type stranger struct {
	bean.Init[strangerParams]
	bean.Label
}

func (s *stranger) ConfigurableFields() []bean.Field { return nil }

type mixed struct {
	bean.Init[params]
	bean.Label
	Left  *node
	Right *stranger
}

func (m *mixed) ConfigurableFields() []bean.Field {
	return []bean.Field{bean.FieldOf("left", &m.Left), bean.FieldOf("right", &m.Right)}
}

func TestObserver_CountsSuccessfulPass(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs, err := NewObserver(reg)
	require.NoError(t, err)

	root := &node{Children: []*node{{}, {}}}
	require.NoError(t, bean.InitializeRecursive(root, params{}, nil, bean.WithObserver(obs)))

	assert.Equal(t, 3.0, testutil.ToFloat64(obs.dispatches.WithLabelValues("initialized")))
	assert.Equal(t, 0.0, testutil.ToFloat64(obs.dispatches.WithLabelValues("incompatible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.passes.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 0.0, testutil.ToFloat64(obs.passes.WithLabelValues(OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(obs.duration))
}

func TestObserver_CountsFailedPass(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs, err := NewObserver(reg)
	require.NoError(t, err)

	root := &mixed{Left: &node{}, Right: &stranger{}}
	err = bean.InitializeRecursive(root, params{}, nil, bean.WithObserver(obs))
	require.ErrorIs(t, err, bean.ErrIncompatibleParameters)

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.dispatches.WithLabelValues("initialized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.dispatches.WithLabelValues("incompatible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.passes.WithLabelValues(OutcomeError)))
}

func TestObserver_Exposition(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs, err := NewObserver(reg)
	require.NoError(t, err)

	obs.Dispatched(nil, bean.Failed)
	obs.PassFinished(nil, errors.New("boom"), 0)

	want := `
# HELP beaninit_dispatch_total Beans offered to the dispatcher, by result.
# TYPE beaninit_dispatch_total counter
beaninit_dispatch_total{result="failed"} 1
beaninit_dispatch_total{result="incompatible"} 0
beaninit_dispatch_total{result="initialized"} 0
# HELP beaninit_pass_total Initialization passes, by outcome.
# TYPE beaninit_pass_total counter
beaninit_pass_total{outcome="error"} 1
beaninit_pass_total{outcome="ok"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"beaninit_dispatch_total", "beaninit_pass_total"))
}

func TestNewObserver_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewObserver(reg)
	require.NoError(t, err)

	_, err = NewObserver(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}
