package cowjson

import (
	"bytes"
	"sort"
)

// Kind discriminates the seven value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one object entry. Members are kept sorted by key.
type Member struct {
	Key  Text
	Node *Node
}

// Value is the tagged union of the seven kinds. Only the payload field
// matching the kind is valid. Array and Object own their children; Str
// holds a shared (possibly aliased) Text.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   Text

	arrVal []*Node
	objVal []Member // sorted by Key, byte-lexicographic
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates a 64-bit integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a double-precision float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value sharing t's backing buffer.
func Str(t Text) *Value {
	return &Value{kind: KindStr, strVal: t}
}

// StrString creates a string value backed by a fresh private buffer.
func StrString(s string) *Value {
	return &Value{kind: KindStr, strVal: NewTextString(s)}
}

// Array creates an array value owning the given children.
func Array(children ...*Node) *Value {
	return &Value{kind: KindArray, arrVal: children}
}

// Object creates an object value from members. Members are stored in key
// order regardless of argument order; a repeated key overwrites.
func Object(members ...Member) *Value {
	v := &Value{kind: KindObject}
	for _, m := range members {
		v.setMember(m.Key, m.Node)
	}
	return v
}

// Field builds a Member for Object construction.
func Field(key string, child *Node) Member {
	return Member{Key: NewTextString(key), Node: child}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, &ShapeError{Want: KindBool, Got: v.Kind()}
	}
	return v.boolVal, nil
}

// AsInt returns the integer payload.
func (v *Value) AsInt() (int64, error) {
	if v.Kind() != KindInt {
		return 0, &ShapeError{Want: KindInt, Got: v.Kind()}
	}
	return v.intVal, nil
}

// AsFloat returns the float payload.
func (v *Value) AsFloat() (float64, error) {
	if v.Kind() != KindFloat {
		return 0, &ShapeError{Want: KindFloat, Got: v.Kind()}
	}
	return v.floatVal, nil
}

// AsStr returns the string payload. The Text still aliases whatever buffer
// it was parsed from.
func (v *Value) AsStr() (Text, error) {
	if v.Kind() != KindStr {
		return Text{}, &ShapeError{Want: KindStr, Got: v.Kind()}
	}
	return v.strVal, nil
}

// AsArray returns the array children.
func (v *Value) AsArray() ([]*Node, error) {
	if v.Kind() != KindArray {
		return nil, &ShapeError{Want: KindArray, Got: v.Kind()}
	}
	return v.arrVal, nil
}

// AsObject returns the object members in key order.
func (v *Value) AsObject() ([]Member, error) {
	if v.Kind() != KindObject {
		return nil, &ShapeError{Want: KindObject, Got: v.Kind()}
	}
	return v.objVal, nil
}

// Len returns the length of an array, object, or string; 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	case KindStr:
		return v.strVal.Len()
	default:
		return 0
	}
}

// Number returns a numeric payload widened to float64.
func (v *Value) Number() (float64, bool) {
	switch v.Kind() {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// ============================================================
// Object members
// ============================================================

// setMember inserts or overwrites the member for key, keeping objVal
// sorted by key.
func (v *Value) setMember(key Text, child *Node) {
	i := sort.Search(len(v.objVal), func(i int) bool {
		return v.objVal[i].Key.Compare(key) >= 0
	})
	if i < len(v.objVal) && v.objVal[i].Key.Equal(key) {
		v.objVal[i].Node = child
		return
	}
	v.objVal = append(v.objVal, Member{})
	copy(v.objVal[i+1:], v.objVal[i:])
	v.objVal[i] = Member{Key: key, Node: child}
}

// findMember returns the member node for key, or nil.
func (v *Value) findMember(key []byte) *Node {
	i := sort.Search(len(v.objVal), func(i int) bool {
		return bytes.Compare(v.objVal[i].Key.Bytes(), key) >= 0
	})
	if i < len(v.objVal) && bytes.Equal(v.objVal[i].Key.Bytes(), key) {
		return v.objVal[i].Node
	}
	return nil
}

// ============================================================
// Equality
// ============================================================

// Equal reports deep structural equality. Floats compare with ==; object
// members compare in key order, so two objects built in different
// insertion orders still compare equal.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindStr:
		return v.strVal.Equal(o.strVal)
	case KindArray:
		if len(v.arrVal) != len(o.arrVal) {
			return false
		}
		for i := range v.arrVal {
			if !v.arrVal[i].Equal(o.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.objVal) != len(o.objVal) {
			return false
		}
		for i := range v.objVal {
			if !v.objVal[i].Key.Equal(o.objVal[i].Key) {
				return false
			}
			if !v.objVal[i].Node.Equal(o.objVal[i].Node) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
