package introspect

import (
	"errors"
	"fmt"
	"go/ast"
	"strconv"

	"go.uber.org/multierr"
)

// ErrUnintrospectableCallable is returned when no parameter list can be
// resolved for a callable.
var ErrUnintrospectableCallable = errors.New("callable cannot be introspected")

// Signature is the introspected shape of a callable
type Signature struct {
	Name      string   // identifier, e.g. "scale"
	Qualified string   // runtime name, e.g. "example.com/pkg.scale"
	Params    []string // parameter names in declaration order
	Results   int      // number of return values
	Variadic  bool
}

// SignatureProvider resolves the signature of a callable
type SignatureProvider interface {
	Inspect(fn any) (Signature, error)
}

// ProviderFunc adapts a function to SignatureProvider
type ProviderFunc func(fn any) (Signature, error)

func (f ProviderFunc) Inspect(fn any) (Signature, error) { return f(fn) }

type chain []SignatureProvider

// Chain tries each provider in order and returns the first signature
// resolved. When all fail, their errors are combined.
func Chain(providers ...SignatureProvider) SignatureProvider {
	return chain(providers)
}

func (c chain) Inspect(fn any) (Signature, error) {
	if len(c) == 0 {
		return Signature{}, fmt.Errorf("%w: no signature providers", ErrUnintrospectableCallable)
	}
	var errs error
	for _, p := range c {
		sig, err := p.Inspect(fn)
		if err == nil {
			return sig, nil
		}
		errs = multierr.Append(errs, err)
	}
	return Signature{}, fmt.Errorf("%w: %w", ErrUnintrospectableCallable, errs)
}

// SignatureOf builds a signature from a parsed function type
func SignatureOf(name, qualified string, ft *ast.FuncType) Signature {
	return Signature{
		Name:      name,
		Qualified: qualified,
		Params:    ParamNames(ft),
		Results:   ResultCount(ft),
		Variadic:  IsVariadic(ft),
	}
}

// ParamNames lists the parameter names of ft in declaration order. Unnamed
// and blank parameters are called argN after their position.
func ParamNames(ft *ast.FuncType) []string {
	if ft == nil || ft.Params == nil {
		return []string{}
	}

	taken := make(map[string]struct{})
	for _, field := range ft.Params.List {
		for _, ident := range field.Names {
			taken[ident.Name] = struct{}{}
		}
	}

	names := make([]string, 0, ft.Params.NumFields())
	for _, field := range ft.Params.List {
		if len(field.Names) == 0 {
			names = append(names, placeholder(len(names), taken))
			continue
		}
		for _, ident := range field.Names {
			if ident.Name == "_" {
				names = append(names, placeholder(len(names), taken))
				continue
			}
			names = append(names, ident.Name)
		}
	}
	return names
}

func placeholder(pos int, taken map[string]struct{}) string {
	name := "arg" + strconv.Itoa(pos)
	for {
		if _, ok := taken[name]; !ok {
			break
		}
		name += "_"
	}
	taken[name] = struct{}{}
	return name
}

// ResultCount returns the number of values ft returns
func ResultCount(ft *ast.FuncType) int {
	if ft == nil || ft.Results == nil {
		return 0
	}
	return ft.Results.NumFields()
}

// IsVariadic reports whether the last parameter of ft is variadic
func IsVariadic(ft *ast.FuncType) bool {
	if ft == nil || ft.Params == nil || len(ft.Params.List) == 0 {
		return false
	}
	_, ok := ft.Params.List[len(ft.Params.List)-1].Type.(*ast.Ellipsis)
	return ok
}
