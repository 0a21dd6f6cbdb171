package introspect

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// SourceProvider reads parameter names from the declaration of a function
// in its source file. It works for top-level functions, method expressions
// and function literals whose source is present on disk. Method values
// (x.M) are rejected since their wrapper has no source; wrap them with
// Describe instead. Parsed files are cached.
type SourceProvider struct {
	mu    sync.Mutex
	fset  *token.FileSet
	files map[string]*ast.File
}

// NewSourceProvider creates a provider with an empty file cache
func NewSourceProvider() *SourceProvider {
	return &SourceProvider{
		fset:  token.NewFileSet(),
		files: make(map[string]*ast.File),
	}
}

// Inspect resolves fn through the runtime symbol table and its source file
func (sp *SourceProvider) Inspect(fn any) (Signature, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("%w: %T is not a function", ErrUnintrospectableCallable, fn)
	}
	if v.IsNil() {
		return Signature{}, fmt.Errorf("%w: nil function", ErrUnintrospectableCallable)
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return Signature{}, fmt.Errorf("%w: no symbol for %T", ErrUnintrospectableCallable, fn)
	}
	qualified := rf.Name()
	if strings.HasSuffix(qualified, methodValueSuffix) {
		// the compiler-generated wrapper has no source file of its own
		return Signature{}, fmt.Errorf("%w: %s is a method value; pass a method expression or use Describe",
			ErrUnintrospectableCallable, qualified)
	}
	ref := parseSymbol(qualified)
	file, line := rf.FileLine(rf.Entry())

	f, err := sp.parse(file)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %s: %w", ErrUnintrospectableCallable, qualified, err)
	}

	typ := v.Type()
	ft, recv := sp.lookup(f, ref, line, typ.NumIn())
	if ft == nil {
		return Signature{}, fmt.Errorf("%w: %s: declaration not found in %s", ErrUnintrospectableCallable, qualified, file)
	}

	sig := SignatureOf(ref.name, qualified, ft)
	if recv != "" {
		// method expressions take the receiver as first argument
		sig.Params = append([]string{recv}, sig.Params...)
	}
	if len(sig.Params) != typ.NumIn() {
		return Signature{}, fmt.Errorf("%w: %s: source declares %d parameters, function takes %d",
			ErrUnintrospectableCallable, qualified, len(sig.Params), typ.NumIn())
	}
	sig.Results = typ.NumOut()
	sig.Variadic = typ.IsVariadic()
	return sig, nil
}

func (sp *SourceProvider) parse(path string) (*ast.File, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if f, ok := sp.files[path]; ok {
		return f, nil
	}
	f, err := parser.ParseFile(sp.fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	sp.files[path] = f
	return f, nil
}

// lookup finds the function type for ref. For method expressions it also
// returns the receiver parameter name.
func (sp *SourceProvider) lookup(f *ast.File, ref symbol, line, arity int) (*ast.FuncType, string) {
	if ref.literal {
		return sp.findLiteral(f, line, arity), ""
	}

	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Name.Name != ref.name {
			continue
		}
		if ref.recv == "" {
			if fd.Recv == nil {
				return fd.Type, ""
			}
			continue
		}
		if fd.Recv == nil || len(fd.Recv.List) != 1 || receiverType(fd.Recv.List[0].Type) != ref.recv {
			continue
		}
		recv := "recv"
		if names := fd.Recv.List[0].Names; len(names) == 1 && names[0].Name != "_" {
			recv = names[0].Name
		}
		return fd.Type, recv
	}
	return nil, ""
}

func (sp *SourceProvider) findLiteral(f *ast.File, line, arity int) *ast.FuncType {
	var candidates []*ast.FuncType
	ast.Inspect(f, func(n ast.Node) bool {
		lit, ok := n.(*ast.FuncLit)
		if ok && sp.fset.Position(lit.Pos()).Line == line {
			candidates = append(candidates, lit.Type)
		}
		return true
	})
	for _, ft := range candidates {
		if ft.Params.NumFields() == arity {
			return ft
		}
	}
	return nil
}

func receiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverType(t.X)
	case *ast.IndexExpr:
		return receiverType(t.X)
	case *ast.IndexListExpr:
		return receiverType(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return ""
	}
}

// symbol is a runtime function name split into its parts
type symbol struct {
	name    string // identifier used as node name
	recv    string // receiver type for methods
	literal bool   // function literal, located by line
}

// methodValueSuffix marks the wrapper the compiler emits for x.M
const methodValueSuffix = "-fm"

var literalSegment = regexp.MustCompile(`^(func\d+|\d+)$`)

// parseSymbol splits runtime names such as
//
//	example.com/pkg.scale
//	example.com/pkg.(*Mixer).Blend-fm
//	example.com/pkg.TestX.func1.2
//	example.com/pkg.Map[...]
func parseSymbol(qualified string) symbol {
	name := qualified
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "[...]", "")

	name = strings.TrimSuffix(name, methodValueSuffix)

	var s symbol

	parts := strings.Split(name, ".")
	for _, part := range parts[1:] {
		if literalSegment.MatchString(part) {
			s.literal = true
			s.name = name
			return s
		}
	}

	switch len(parts) {
	case 1:
		s.name = parts[0]
	case 2:
		s.recv = strings.Trim(parts[0], "(*)")
		s.name = parts[1]
	default:
		s.name = name
	}
	return s
}
