package loader

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"go.uber.org/multierr"

	"nodegraph/internal/introspect"
)

// ScanGoFile lists the package-level functions declared in a Go source file.
// The file is parsed, never compiled or run.
func ScanGoFile(path string) ([]introspect.Signature, error) {
	return parseGoSource(path, nil)
}

// ParseGoSource is ScanGoFile for in-memory source. A nil src reads
// filename from disk.
func ParseGoSource(filename string, src []byte) ([]introspect.Signature, error) {
	return parseGoSource(filename, src)
}

// ScanGoFiles scans every path and returns the signatures of all files that
// parsed. Failures are combined into the returned error.
func ScanGoFiles(paths ...string) ([]introspect.Signature, error) {
	var all []introspect.Signature
	var errs error
	for _, path := range paths {
		sigs, err := ScanGoFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		all = append(all, sigs...)
	}
	return all, errs
}

func parseGoSource(filename string, src []byte) ([]introspect.Signature, error) {
	// a nil []byte inside the interface would be parsed as empty source
	var source any
	if src != nil {
		source = src
	}
	f, err := parser.ParseFile(token.NewFileSet(), filename, source, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	pkg := f.Name.Name
	var sigs []introspect.Signature
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv != nil {
			continue
		}
		// init cannot be referenced and blank functions have no identity
		if name := fd.Name.Name; name == "init" || name == "_" {
			continue
		}
		sigs = append(sigs, introspect.SignatureOf(fd.Name.Name, pkg+"."+fd.Name.Name, fd.Type))
	}
	return sigs, nil
}
