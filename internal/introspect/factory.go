package introspect

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
)

// ReturnPort is the name of the single output port of a reflective node
const ReturnPort = "return"

// Factory builds nodes whose ports mirror a callable's signature
type Factory struct {
	provider SignatureProvider
	layout   graph.Layout
	log      logr.Logger
}

// Option configures a Factory
type Option func(*Factory)

// WithProvider replaces the default provider chain
func WithProvider(p SignatureProvider) Option {
	return func(f *Factory) {
		f.provider = p
	}
}

// WithLayout sets the metrics of synthesized nodes
func WithLayout(l graph.Layout) Option {
	return func(f *Factory) {
		f.layout = l
	}
}

func WithLogger(log logr.Logger) Option {
	return func(f *Factory) {
		f.log = log
	}
}

// NewFactory creates a factory that honours explicit schemas first and
// falls back to source inspection.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		layout: graph.DefaultLayout(),
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.provider == nil {
		f.provider = Chain(Described{}, NewSourceProvider())
	}
	return f
}

// FromCallable builds a node at the origin from fn's signature
func (f *Factory) FromCallable(fn any) (*graph.Node, error) {
	return f.FromCallableAt(fn, geometry.Point{})
}

// FromCallableAt builds a node at pos from fn's signature. fn is inspected,
// never called.
func (f *Factory) FromCallableAt(fn any, pos geometry.Point) (*graph.Node, error) {
	sig, err := f.provider.Inspect(fn)
	if err != nil {
		f.log.V(1).Info("cannot introspect callable", "type", fmt.Sprintf("%T", fn), "reason", err.Error())
		if !errors.Is(err, ErrUnintrospectableCallable) {
			err = fmt.Errorf("%w: %w", ErrUnintrospectableCallable, err)
		}
		return nil, err
	}
	return f.FromSignature(sig, pos)
}

// FromSignature maps sig onto a node: one input per parameter and a single
// "return" output.
func (f *Factory) FromSignature(sig Signature, pos geometry.Point) (*graph.Node, error) {
	n, err := graph.NewNode(graph.NodeSpec{
		Name:     sig.Name,
		Label:    sig.Name,
		Inputs:   sig.Params,
		Outputs:  []string{ReturnPort},
		Position: pos,
		Layout:   f.layout,
	})
	if err != nil {
		return nil, fmt.Errorf("build node for %s: %w", sig.Qualified, err)
	}
	f.log.V(1).Info("synthesized node", "name", sig.Name, "inputs", sig.Params, "results", sig.Results)
	return n, nil
}
