package introspect

import (
	"fmt"
	"reflect"
)

// Describer is implemented by callables that carry their own schema
type Describer interface {
	Signature() Signature
}

// DescribedFunc pairs a callable with an explicit parameter list
type DescribedFunc struct {
	Fn  any
	sig Signature
	err error
}

// Describe attaches a schema to fn. When fn is a function its arity must
// match params; result count and variadic flag are taken from its type.
func Describe(name string, fn any, params ...string) *DescribedFunc {
	d := &DescribedFunc{
		Fn: fn,
		sig: Signature{
			Name:      name,
			Qualified: name,
			Params:    append([]string{}, params...),
			Results:   1,
		},
	}
	if name == "" {
		d.err = fmt.Errorf("%w: schema has no name", ErrUnintrospectableCallable)
		return d
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return d
	}
	typ := v.Type()
	if typ.NumIn() != len(params) {
		d.err = fmt.Errorf("%w: %s takes %d parameters, schema names %d",
			ErrUnintrospectableCallable, name, typ.NumIn(), len(params))
		return d
	}
	d.sig.Results = typ.NumOut()
	d.sig.Variadic = typ.IsVariadic()
	return d
}

// Signature returns the attached schema
func (d *DescribedFunc) Signature() Signature {
	return d.sig
}

// Described resolves signatures of callables implementing Describer
type Described struct{}

func (Described) Inspect(fn any) (Signature, error) {
	if d, ok := fn.(*DescribedFunc); ok && d.err != nil {
		return Signature{}, d.err
	}
	desc, ok := fn.(Describer)
	if !ok {
		return Signature{}, fmt.Errorf("%w: %T carries no schema", ErrUnintrospectableCallable, fn)
	}
	sig := desc.Signature()
	if sig.Name == "" {
		return Signature{}, fmt.Errorf("%w: %T schema has no name", ErrUnintrospectableCallable, fn)
	}
	return sig, nil
}
