// Package cowjson parses a JSON-subset document into an in-memory tree
// and serializes such a tree back to dense text, optimized for the common
// case where parsed string values are unmodified substrings of the input.
//
// # Core
//
// The center of the package is Text, a copy-on-write byte string: an
// (offset, length) window over a reference-counted backing buffer. Every
// string value produced by the parser is a zero-copy slice of the source
// buffer; a private copy is made only when a slice is mutated while its
// buffer is shared.
//
// # Data Model
//
// Values come in seven kinds: null, bool, int (64-bit signed), float
// (binary double), str (Text), array, object. Objects keep their members
// sorted by key, byte-lexicographically — not in insertion order — and a
// repeated key overwrites. Node wraps a Value with shape-checked keyed and
// indexed access.
//
// # Grammar
//
// The accepted grammar is deliberately narrower than standard JSON:
//   - no escape sequences: a string runs to the very next '"'
//   - no sign or exponent sign in numbers: "-1" and "1e-2" are rejected
//   - commas between elements and members are optional
//   - bytes after the first complete value are ignored
//
// The JSON bridge (FromStdJSON, ToStdJSON) covers full standard JSON for
// documents outside the subset.
//
// # Example
//
//	root, err := cowjson.ParseString(`{"b":1,"a":2}`)
//	if err != nil {
//		...
//	}
//	cowjson.Emit(root) // {"a":2,"b":1}
//
// # Concurrency
//
// The reference count is atomic, so independently owned trees that share a
// backing buffer may be read from multiple goroutines. Mutating aliased
// slices concurrently is not supported; copy-on-write assumes one owning
// goroutine per buffer being mutated.
package cowjson
