package introspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
)

func scale(t1, t2 string, k1 int) string {
	return t1 + t2
}

func blank(a int, _ string) (int, error) {
	return a, nil
}

func join(sep string, parts ...string) string {
	return sep
}

func noop() {}

type mixer struct{}

func (m *mixer) Blend(a, b float64) float64 {
	return a + b
}

func newTestFactory(t *testing.T, opts ...Option) *Factory {
	t.Helper()
	return NewFactory(append([]Option{WithLogger(testr.New(t))}, opts...)...)
}

func portNames(ports []*graph.Port) []string {
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.Name())
	}
	return names
}

func TestFromCallable(t *testing.T) {
	f := newTestFactory(t)

	t.Run("parameters become inputs in declaration order", func(t *testing.T) {
		n, err := f.FromCallable(scale)
		require.NoError(t, err)

		assert.Equal(t, "scale", n.Name())
		assert.Equal(t, "scale", n.Label())
		assert.Equal(t, []string{"t1", "t2", "k1"}, portNames(n.Inputs()))
		assert.Equal(t, []string{ReturnPort}, portNames(n.Outputs()))
	})

	t.Run("multiple results share one output", func(t *testing.T) {
		n, err := f.FromCallable(blank)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "arg1"}, portNames(n.Inputs()))
		assert.Equal(t, []string{ReturnPort}, portNames(n.Outputs()))
	})

	t.Run("no parameters", func(t *testing.T) {
		n, err := f.FromCallable(noop)
		require.NoError(t, err)

		assert.Empty(t, n.Inputs())
		assert.Len(t, n.Outputs(), 1)
		assert.Equal(t, float64(graph.DefaultBaseWidth+graph.DefaultPortHeight), n.Size().W)
	})

	t.Run("function literal", func(t *testing.T) {
		add := func(left, right int) int { return left + right }

		n, err := f.FromCallable(add)
		require.NoError(t, err)
		assert.Equal(t, []string{"left", "right"}, portNames(n.Inputs()))
	})

	t.Run("method expression includes receiver", func(t *testing.T) {
		n, err := f.FromCallable((*mixer).Blend)
		require.NoError(t, err)

		assert.Equal(t, "Blend", n.Name())
		assert.Equal(t, []string{"m", "a", "b"}, portNames(n.Inputs()))
	})

	t.Run("method value needs a schema", func(t *testing.T) {
		m := &mixer{}
		_, err := f.FromCallable(m.Blend)
		assert.ErrorIs(t, err, ErrUnintrospectableCallable)

		n, err := f.FromCallable(Describe("Blend", m.Blend, "a", "b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, portNames(n.Inputs()))
		assert.Equal(t, []string{ReturnPort}, portNames(n.Outputs()))
	})

	t.Run("explicit schema wins", func(t *testing.T) {
		fn := Describe("test", func(int, int, int) string { return "" }, "t1", "t2", "k1")

		n, err := f.FromCallableAt(fn, geometry.Pt(40, 60))
		require.NoError(t, err)

		assert.Equal(t, "test", n.Name())
		assert.Equal(t, []string{"t1", "t2", "k1"}, portNames(n.Inputs()))
		assert.Equal(t, geometry.Pt(40, 60), n.Position())
	})

	t.Run("node can be wired on a canvas", func(t *testing.T) {
		c := graph.NewCanvas()
		src, err := f.FromCallable(noop)
		require.NoError(t, err)
		dst, err := f.FromCallableAt(scale, geometry.Pt(0, 200))
		require.NoError(t, err)
		require.NoError(t, c.AddNode(src))
		require.NoError(t, c.AddNode(dst))

		c.OnPortClicked(src.Output(ReturnPort))
		w := c.OnPortClicked(dst.Input("k1"))

		require.NotNil(t, w)
		assert.Equal(t, dst.Input("k1"), w.Destination())
		assert.NoError(t, c.Validate())
	})
}

func TestFromCallableErrors(t *testing.T) {
	f := newTestFactory(t)
	var nilFunc func(int)

	tests := []struct {
		name string
		fn   any
	}{
		{"nil", nil},
		{"not a function", 42},
		{"nil function", nilFunc},
		{"schema arity mismatch", Describe("bad", func(a int) {}, "a", "b")},
		{"schema without name", Describe("", noop)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := f.FromCallable(tt.fn)
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, ErrUnintrospectableCallable), "got %v", err)
		})
	}

	t.Run("provider failure is surfaced", func(t *testing.T) {
		boom := errors.New("no signature")
		f := newTestFactory(t, WithProvider(ProviderFunc(func(any) (Signature, error) {
			return Signature{}, boom
		})))

		_, err := f.FromCallable(scale)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, ErrUnintrospectableCallable)
	})

	t.Run("provider error kind is not doubled", func(t *testing.T) {
		f := newTestFactory(t, WithProvider(Described{}))

		_, err := f.FromCallable(scale)
		require.ErrorIs(t, err, ErrUnintrospectableCallable)
		assert.Equal(t, 1, strings.Count(err.Error(), ErrUnintrospectableCallable.Error()))
	})
}

func TestFromSignature(t *testing.T) {
	layout := graph.Layout{
		Base:    geometry.Size{W: 80, H: 30},
		Port:    geometry.Size{W: 10, H: 10},
		PortGap: 2,
	}
	f := newTestFactory(t, WithLayout(layout))

	n, err := f.FromSignature(Signature{Name: "load", Qualified: "io.load", Params: []string{"path"}}, geometry.Pt(5, 5))
	require.NoError(t, err)
	assert.Equal(t, layout, n.Layout())
	assert.Equal(t, geometry.Size{W: 100, H: 30}, n.Size())

	_, err = f.FromSignature(Signature{Qualified: "anon"}, geometry.Point{})
	assert.ErrorIs(t, err, graph.ErrInvalidNode)

	_, err = f.FromSignature(Signature{Name: "dup", Params: []string{"x", "x"}}, geometry.Point{})
	assert.ErrorIs(t, err, graph.ErrInvalidPort)
}
