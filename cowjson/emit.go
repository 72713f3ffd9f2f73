package cowjson

import (
	"bytes"
	"io"
	"strconv"
)

// Write serializes the tree rooted at n into w as dense text: no inserted
// whitespace, object members in key order. String bytes are written as-is
// between quotes with no escaping, so a string containing '"' or control
// bytes does not round-trip.
func Write(w io.Writer, n *Node) error {
	e := &emitter{w: w}
	e.emit(n)
	return e.err
}

// Emit serializes the tree rooted at n and returns the text.
func Emit(n *Node) string {
	var buf bytes.Buffer
	_ = Write(&buf, n) // bytes.Buffer writes cannot fail
	return buf.String()
}

// emitter is a read-only recursive traversal. The first write error is
// kept and all later writes become no-ops.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) writeString(s string) {
	if e.err == nil {
		_, e.err = io.WriteString(e.w, s)
	}
}

func (e *emitter) writeBytes(b []byte) {
	if e.err == nil {
		_, e.err = e.w.Write(b)
	}
}

func (e *emitter) writeByte(c byte) {
	if e.err == nil {
		_, e.err = e.w.Write([]byte{c})
	}
}

func (e *emitter) emit(n *Node) {
	v := n.Value()
	switch v.Kind() {
	case KindNull:
		e.writeString("null")

	case KindBool:
		if v.boolVal {
			e.writeString("true")
		} else {
			e.writeString("false")
		}

	case KindInt:
		e.writeString(strconv.FormatInt(v.intVal, 10))

	case KindFloat:
		e.writeString(strconv.FormatFloat(v.floatVal, 'g', -1, 64))

	case KindStr:
		e.writeByte('"')
		e.writeBytes(v.strVal.Bytes())
		e.writeByte('"')

	case KindArray:
		e.writeByte('[')
		for i, child := range v.arrVal {
			if i > 0 {
				e.writeByte(',')
			}
			e.emit(child)
		}
		e.writeByte(']')

	case KindObject:
		e.writeByte('{')
		for i, m := range v.objVal {
			if i > 0 {
				e.writeByte(',')
			}
			e.writeByte('"')
			e.writeBytes(m.Key.Bytes())
			e.writeString("\":")
			e.emit(m.Node)
		}
		e.writeByte('}')
	}
}
