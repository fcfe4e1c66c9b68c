package rdf

import (
	"fmt"

	"github.com/hupe1980/tripleidx/internal/hash"
)

// Kind discriminates the three RDF node categories.
type Kind uint8

const (
	// KindIRI is an IRI reference node.
	KindIRI Kind = iota + 1
	// KindLiteral is a literal node. The lexical value includes any
	// datatype or language-tag suffix chosen by the caller.
	KindLiteral
	// KindBlank is a blank node with a document-scoped label.
	KindBlank
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindLiteral:
		return "literal"
	case KindBlank:
		return "blank"
	default:
		return "invalid"
	}
}

// Node is a single RDF term. The zero value is invalid and never stored.
//
// Nodes are immutable and comparable; identity is (Kind, Value). The hash
// code is computed once at construction and carried with the node, so index
// structures can reuse it without recomputation.
type Node struct {
	kind  Kind
	value string
	hash  uint32
}

// NewIRI returns an IRI node.
func NewIRI(value string) Node { return newNode(KindIRI, value) }

// NewLiteral returns a literal node.
func NewLiteral(value string) Node { return newNode(KindLiteral, value) }

// NewBlank returns a blank node with the given label.
func NewBlank(label string) Node { return newNode(KindBlank, label) }

func newNode(kind Kind, value string) Node {
	h := hash.CRC32C([]byte{byte(kind)})
	h = hash.CRC32CUpdate(h, []byte(value))
	return Node{kind: kind, value: value, hash: h}
}

// Kind returns the node kind.
func (n Node) Kind() Kind { return n.kind }

// Value returns the lexical value.
func (n Node) Value() string { return n.value }

// Hash returns the node's 32-bit hash code, fixed at construction.
func (n Node) Hash() uint32 { return n.hash }

// IsZero reports whether n is the invalid zero node.
func (n Node) IsZero() bool { return n.kind == 0 }

// Equal reports whether two nodes denote the same term.
func (n Node) Equal(o Node) bool { return n.kind == o.kind && n.value == o.value }

// String returns a debug representation.
func (n Node) String() string {
	switch n.kind {
	case KindIRI:
		return "<" + n.value + ">"
	case KindLiteral:
		return fmt.Sprintf("%q", n.value)
	case KindBlank:
		return "_:" + n.value
	default:
		return "?"
	}
}
