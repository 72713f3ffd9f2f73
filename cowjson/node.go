package cowjson

import "fmt"

// ShapeError reports an accessor used against a value of the wrong kind.
type ShapeError struct {
	Want Kind
	Got  Kind
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cowjson: expected %s, got %s", e.Want, e.Got)
}

// Node owns one Value and offers shape-checked navigation over it.
// Children of array and object values are owned exclusively by their
// parent, so a tree is acyclic by construction; only string leaves share
// backing buffers.
type Node struct {
	val *Value
}

// NewNode wraps v in a Node. A nil v wraps null.
func NewNode(v *Value) *Node {
	if v == nil {
		v = Null()
	}
	return &Node{val: v}
}

// Value returns the wrapped value.
func (n *Node) Value() *Value {
	return n.val
}

// Kind returns the wrapped value's kind.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.val.Kind()
}

// Len returns the wrapped value's length.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return n.val.Len()
}

// Key returns the child for an object key. Returns a ShapeError when the
// value is not an object, and a not-found error for an absent key.
func (n *Node) Key(key string) (*Node, error) {
	if n.Kind() != KindObject {
		return nil, &ShapeError{Want: KindObject, Got: n.Kind()}
	}
	child := n.val.findMember([]byte(key))
	if child == nil {
		return nil, fmt.Errorf("cowjson: key %q not found", key)
	}
	return child, nil
}

// Index returns the i-th child of an array. Returns a ShapeError when the
// value is not an array.
func (n *Node) Index(i int) (*Node, error) {
	if n.Kind() != KindArray {
		return nil, &ShapeError{Want: KindArray, Got: n.Kind()}
	}
	if i < 0 || i >= len(n.val.arrVal) {
		return nil, fmt.Errorf("cowjson: index %d out of bounds (len=%d)", i, len(n.val.arrVal))
	}
	return n.val.arrVal[i], nil
}

// Set inserts or overwrites the object member for key. Returns a
// ShapeError when the value is not an object.
func (n *Node) Set(key Text, child *Node) error {
	if n.Kind() != KindObject {
		return &ShapeError{Want: KindObject, Got: n.Kind()}
	}
	n.val.setMember(key, child)
	return nil
}

// Append adds a child to an array. Appending to a non-array is silently
// ignored, not an error.
func (n *Node) Append(child *Node) {
	if n.Kind() != KindArray {
		return
	}
	n.val.arrVal = append(n.val.arrVal, child)
}

// Equal reports deep structural equality of the wrapped values.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.val.Equal(o.val)
}
