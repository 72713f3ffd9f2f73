package cowjson

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CanonicalHash returns a 64-bit hex digest of the tree's dense serialized
// form. Because object members serialize in key order, two structurally
// equal trees hash identically regardless of insertion order. Not
// cryptographic.
func CanonicalHash(n *Node) string {
	h := xxhash.New()
	_ = Write(h, n) // the digest's Write never fails
	return fmt.Sprintf("%016x", h.Sum64())
}
