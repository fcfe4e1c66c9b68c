// Package rdf defines the value model stored by the tripleidx indexes:
// nodes, triples, and the fixed hash-combining formulas the index variants
// rely on for bit-identical slot placement.
//
// Nodes carry their hash code from construction onward so the indexes never
// recompute it on the hot path. Two nodes are equal iff their kind and
// lexical value are equal; hashing is CRC32-Castagnoli over both.
package rdf
