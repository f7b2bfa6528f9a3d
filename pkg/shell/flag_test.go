package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw      string
		kind     FlagKind
		expected any
	}{
		{raw: "true", kind: FlagBool, expected: true},
		{raw: "false", kind: FlagBool, expected: false},
		{raw: "42", kind: FlagInt, expected: 42},
		{raw: "-7", kind: FlagInt, expected: -7},
		{raw: "0", kind: FlagInt, expected: 0},
		{raw: "007", kind: FlagString, expected: "007"},
		{raw: "+5", kind: FlagString, expected: "+5"},
		{raw: "-0", kind: FlagString, expected: "-0"},
		{raw: "TRUE", kind: FlagString, expected: "TRUE"},
		{raw: "1.5", kind: FlagString, expected: "1.5"},
		{raw: "hello world", kind: FlagString, expected: "hello world"},
		{raw: "", kind: FlagString, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := ParseFlag(tt.raw)
			assert.Equal(t, tt.kind, f.Kind())
			assert.Equal(t, tt.expected, f.Value())
		})
	}
}

func TestFlag_Accessors(t *testing.T) {
	s := StringFlag("x")
	v, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	_, ok = s.Bool()
	assert.False(t, ok)
	_, ok = s.Int()
	assert.False(t, ok)

	b, ok := BoolFlag(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	n, ok := IntFlag(3).Int()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	assert.Equal(t, "true", BoolFlag(true).String())
	assert.Equal(t, "3", IntFlag(3).String())
	assert.Equal(t, "x", s.String())
	assert.Equal(t, "int", FlagInt.String())
	assert.Equal(t, "bool", FlagBool.String())
	assert.Equal(t, "string", FlagString.String())
}

func TestShell_FlagStore(t *testing.T) {
	sh := newTestShell(t)

	_, ok := sh.GetFlag("verbose")
	assert.False(t, ok, "absent before set")

	sh.SetFlag("verbose", BoolFlag(true))
	sh.SetFlag("limit", IntFlag(10))
	sh.SetFlag("verbose", StringFlag("loud"))

	f, ok := sh.GetFlag("verbose")
	require.True(t, ok)
	assert.Equal(t, StringFlag("loud"), f, "overwrite replaces value and type")

	assert.Equal(t, []string{"limit", "verbose"}, sh.FlagNames())

	sh.UnsetFlag("limit")
	sh.UnsetFlag("never-set")
	assert.Equal(t, []string{"verbose"}, sh.FlagNames())
}

func TestParseFlag_PrintsBackAsEntered(t *testing.T) {
	for _, raw := range []string{"true", "false", "42", "-7", "0", "007", "+5", "-0", "1e3", "hello world"} {
		assert.Equal(t, raw, ParseFlag(raw).String(), raw)
	}
}
