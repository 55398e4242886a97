package bean_test

import (
	"errors"

	"github.com/sghaida/beaninit/bean"
)

//
// -----------------------------------------------------------------------------
// Parameter types
// -----------------------------------------------------------------------------

type Params struct{ Env string }

func (p Params) Describe() string { return "params:" + p.Env }

// Describer is satisfied by Params; beans requiring it accept Params.
type Describer interface{ Describe() string }

type OtherParams struct{ Level int }

//
// -----------------------------------------------------------------------------
// Beans
// -----------------------------------------------------------------------------

// testBean requires Params and exercises every field shape.
type testBean struct {
	bean.Init[Params]

	name    string
	Next    *testBean
	Opt     *testBean
	Items   []*testBean
	Skipped *testBean
	Label   string

	hookErr   error
	hookCalls int
}

func newBean(name string) *testBean { return &testBean{name: name} }

func (b *testBean) BeanName() string { return b.name }

func (b *testBean) ConfigurableFields() []bean.Field {
	return []bean.Field{
		bean.FieldOf("next", &b.Next),
		bean.FieldOf("opt", &b.Opt, bean.Optional),
		bean.ListOf("items", &b.Items),
		bean.FieldOf("skipped", &b.Skipped, bean.SkipInit),
		bean.FieldOf("label", &b.Label),
	}
}

func (b *testBean) OnInit(Params) error {
	b.hookCalls++
	return b.hookErr
}

// anyBean is a testBean-like bean holding heterogeneous children.
type anyBean struct {
	bean.Init[Params]

	name     string
	Children []bean.Bean
	Child    bean.Bean
}

func (b *anyBean) BeanName() string { return b.name }

func (b *anyBean) ConfigurableFields() []bean.Field {
	return []bean.Field{
		bean.FieldOf("child", &b.Child, bean.Optional),
		bean.ListOf("children", &b.Children, bean.Optional),
	}
}

// otherBean requires OtherParams.
type otherBean struct {
	bean.Init[OtherParams]
	name string
}

func (b *otherBean) BeanName() string                { return b.name }
func (b *otherBean) ConfigurableFields() []bean.Field { return nil }

// describerBean requires the Describer interface.
type describerBean struct {
	bean.Init[Describer]
	name string
}

func (b *describerBean) BeanName() string                { return b.name }
func (b *describerBean) ConfigurableFields() []bean.Field { return nil }

// plainBean is not capability-tagged.
type plainBean struct {
	name  string
	Child bean.Bean
}

func (b *plainBean) BeanName() string { return b.name }

func (b *plainBean) ConfigurableFields() []bean.Field {
	return []bean.Field{bean.FieldOf("child", &b.Child)}
}

// valueBean has value receivers and therefore no identity.
type valueBean struct{ name string }

func (b valueBean) BeanName() string                { return b.name }
func (b valueBean) ConfigurableFields() []bean.Field { return nil }

// probeBean declares hand-written fields.
type probeBean struct {
	bean.Init[Params]
	name   string
	fields []bean.Field
}

func (b *probeBean) BeanName() string                { return b.name }
func (b *probeBean) ConfigurableFields() []bean.Field { return b.fields }

var errBroken = errors.New("broken getter")

//
// -----------------------------------------------------------------------------
// Dispatcher recording calls
// -----------------------------------------------------------------------------

type recordingDispatcher struct {
	bean.Dispatcher
	calls map[bean.Bean]int
	order []string
}

func record(d bean.Dispatcher) *recordingDispatcher {
	return &recordingDispatcher{Dispatcher: d, calls: map[bean.Bean]int{}}
}

func (r *recordingDispatcher) Attempt(b, parent bean.Bean) (bool, error) {
	r.calls[b]++
	r.order = append(r.order, b.BeanName())
	return r.Dispatcher.Attempt(b, parent)
}
