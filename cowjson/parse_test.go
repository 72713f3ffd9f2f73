package cowjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"null", KindNull},
		{"true", KindBool},
		{"false", KindBool},
		{"123", KindInt},
		{"0", KindInt},
		{"3.14", KindFloat},
		{"1e3", KindFloat},
		{`"hello"`, KindStr},
		{`""`, KindStr},
		{"[]", KindArray},
		{"{}", KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, root.Kind())
		})
	}
}

func TestParse_ScalarValues(t *testing.T) {
	root, err := ParseString("123")
	require.NoError(t, err)
	i, err := root.Value().AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(123), i)

	root, err = ParseString("2.5")
	require.NoError(t, err)
	f, err := root.Value().AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	root, err = ParseString(`"hi"`)
	require.NoError(t, err)
	s, err := root.Value().AsStr()
	require.NoError(t, err)
	assert.Equal(t, "hi", s.String())
}

func TestParse_EndToEnd(t *testing.T) {
	root, err := ParseString(`[1,2.5,true,null,"x"]`)
	require.NoError(t, err)
	require.Equal(t, KindArray, root.Kind())
	require.Equal(t, 5, root.Len())

	kinds := []Kind{KindInt, KindFloat, KindBool, KindNull, KindStr}
	for i, k := range kinds {
		child, err := root.Index(i)
		require.NoError(t, err)
		assert.Equal(t, k, child.Kind())
	}

	assert.Equal(t, `[1,2.5,true,null,"x"]`, Emit(root))
}

func TestParse_StringZeroCopy(t *testing.T) {
	src := NewTextString(`{"k":"hello"}`)
	root, err := NewParser(src).Parse()
	require.NoError(t, err)

	child, err := root.Key("k")
	require.NoError(t, err)
	str, err := child.Value().AsStr()
	require.NoError(t, err)

	// The parsed string aliases the source buffer until mutated.
	require.Same(t, src.buf, str.buf)
	assert.Equal(t, "hello", str.String())

	str.SetAt(0, 'H')
	assert.NotSame(t, src.buf, str.buf)
	assert.Equal(t, "Hello", str.String())
	assert.Equal(t, `{"k":"hello"}`, src.String())
}

func TestParse_DuplicateKeys(t *testing.T) {
	root, err := ParseString(`{"a":1,"a":2}`)
	require.NoError(t, err)
	require.Equal(t, 1, root.Len())

	child, err := root.Key("a")
	require.NoError(t, err)
	i, err := child.Value().AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(2), i)
}

func TestParse_KeyReordering(t *testing.T) {
	root, err := ParseString(`{"b":1,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, Emit(root))
}

func TestParse_NestedDocument(t *testing.T) {
	root, err := ParseString(`{"user":{"name":"ada","tags":["x","y"],"age":36}}`)
	require.NoError(t, err)

	user, err := root.Key("user")
	require.NoError(t, err)
	name, err := user.Key("name")
	require.NoError(t, err)
	s, err := name.Value().AsStr()
	require.NoError(t, err)
	assert.Equal(t, "ada", s.String())

	tags, err := user.Key("tags")
	require.NoError(t, err)
	assert.Equal(t, 2, tags.Len())

	assert.Equal(t, `{"user":{"age":36,"name":"ada","tags":["x","y"]}}`, Emit(root))
}

func TestParse_CommaOmissionTolerated(t *testing.T) {
	root, err := ParseString(`[1 2 3]`)
	require.NoError(t, err)
	require.Equal(t, 3, root.Len())

	root, err = ParseString(`{"a":1 "b":2}`)
	require.NoError(t, err)
	assert.Equal(t, 2, root.Len())
}

func TestParse_TrailingGarbageAccepted(t *testing.T) {
	root, err := ParseString(`1 this is never looked at`)
	require.NoError(t, err)
	i, err := root.Value().AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)
}

func TestParse_Whitespace(t *testing.T) {
	root, err := ParseString(" \t\n  { \"a\": [1, 2] }  ")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2]}`, Emit(root))
}

func TestParse_NegativeNumberRejected(t *testing.T) {
	// The number grammar has no sign handling; '-' is an illegal token.
	for _, input := range []string{`-1`, `{"a":-1}`, `1e-2`, `[-0.5]`} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty", "", "unexpected end of input"},
		{"whitespace only", "  \n ", "unexpected end of input"},
		{"bad null", "nul", "illegal token"},
		{"bad true", "trve", "illegal token"},
		{"bad false", "fals", "illegal token"},
		{"unterminated string", `"abc`, `expected '"'`},
		{"bad number", "1.2.3", "invalid number"},
		{"lone dot", "..", "invalid number"},
		{"unterminated array", "[1,2", "unterminated array"},
		{"unterminated nested array", "[[1]", "unterminated array"},
		{"unterminated object", `{"a":1`, "unterminated object"},
		{"missing colon", `{"a" 1}`, "expected ':' after object key"},
		{"space before colon", `{"a" :1}`, "expected ':' after object key"},
		{"non-string key", `{1:2}`, "object key must be a string"},
		{"null key", `{null:2}`, "object key must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, perr.Message, tt.msg)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := ParseString("[1,\n2,\nnulx]")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Pos.Row)
	assert.Equal(t, 7, perr.Pos.Offset)
}

func TestParse_NoPartialTree(t *testing.T) {
	root, err := ParseString(`{"ok":1,"bad":nope}`)
	assert.Error(t, err)
	assert.Nil(t, root)
}

func TestParser_Reuse(t *testing.T) {
	p := NewParser(NewTextString("[1,2]"))
	first, err := p.Parse()
	require.NoError(t, err)
	second, err := p.Parse()
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
