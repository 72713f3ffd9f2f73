package cowjson

import (
	"fmt"
	"math"

	gojson "github.com/goccy/go-json"
)

// ============================================================
// Standard JSON Bridge
// ============================================================
//
// The core parser and writer cover a deliberately narrow JSON subset: no
// escape sequences and no signed numbers. The bridge converts between the
// same tree model and full standard JSON for documents outside the subset.

// maxSafeInt is the largest integer exactly representable as a float64.
const maxSafeInt = 1<<53 - 1

// FromStdJSON decodes standard JSON (escapes, signed numbers, Unicode)
// into a tree. Numbers that are integral and within the float64-exact
// range become Int, everything else Float.
func FromStdJSON(data []byte) (*Node, error) {
	var v interface{}
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cowjson: decode: %w", err)
	}
	return FromInterface(v)
}

// ToStdJSON encodes the tree as standard escaped JSON. Object keys emit in
// sorted order.
func ToStdJSON(n *Node) ([]byte, error) {
	v, err := ToInterface(n)
	if err != nil {
		return nil, err
	}
	out, err := gojson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cowjson: encode: %w", err)
	}
	return out, nil
}

// FromInterface converts a decoded interface{} value into a tree.
func FromInterface(v interface{}) (*Node, error) {
	val, err := fromInterface(v)
	if err != nil {
		return nil, err
	}
	return NewNode(val), nil
}

func fromInterface(v interface{}) (*Value, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case bool:
		return Bool(val), nil

	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("cowjson: non-finite number %v", val)
		}
		if val == math.Trunc(val) && val >= -maxSafeInt && val <= maxSafeInt {
			return Int(int64(val)), nil
		}
		return Float(val), nil

	case string:
		return StrString(val), nil

	case []interface{}:
		arr := Array()
		for i, elem := range val {
			child, err := fromInterface(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr.arrVal = append(arr.arrVal, NewNode(child))
		}
		return arr, nil

	case map[string]interface{}:
		obj := Object()
		for k, elem := range val {
			child, err := fromInterface(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj.setMember(NewTextString(k), NewNode(child))
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("cowjson: unsupported JSON type %T", v)
	}
}

// ToInterface converts a tree into the interface{} shape used by standard
// JSON encoders.
func ToInterface(n *Node) (interface{}, error) {
	v := n.Value()
	switch v.Kind() {
	case KindNull:
		return nil, nil
	case KindBool:
		return v.boolVal, nil
	case KindInt:
		return v.intVal, nil
	case KindFloat:
		return v.floatVal, nil
	case KindStr:
		return v.strVal.String(), nil
	case KindArray:
		out := make([]interface{}, 0, len(v.arrVal))
		for i, child := range v.arrVal {
			cv, err := ToInterface(child)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			out = append(out, cv)
		}
		return out, nil
	case KindObject:
		out := make(map[string]interface{}, len(v.objVal))
		for _, m := range v.objVal {
			cv, err := ToInterface(m.Node)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", m.Key.String(), err)
			}
			out[m.Key.String()] = cv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cowjson: unsupported kind %s", v.Kind())
	}
}
