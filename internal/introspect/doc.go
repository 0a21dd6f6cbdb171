// Package introspect synthesizes graph nodes from the signature of a Go
// callable.
//
// A SignatureProvider turns a callable into a Signature: its identifier, its
// parameter names in declaration order and its result arity. The reflect
// package exposes parameter types but not their names, so the default chain
// first honours an explicit schema (Describe) and then falls back to reading
// the callable's declaration from its source file (SourceProvider).
//
// Factory maps a Signature onto a node: one input port per parameter and a
// single output port named "return", however many values the callable
// returns. Nothing is ever called.
package introspect
