package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Extractor:
// - Recognize the four group bindings and route by CONSTANTS/FUNCTIONS marker
// - Extract constant shape (type tag, name, literal value)
// - Special-case math.pi as a symbolic literal
// - Extract function shape with nested parameter shapes
// - Handle parameter defaults, including the None sentinel
// - Qualify and normalize description arguments
// - Skip elements that fail shape recognition without aborting the list
// - Preserve source order within each group
// - Yield four empty groups for irrelevant input
// - Find bindings at any nesting depth
// - Reject syntactically broken source

func TestExtractor_IrrelevantSource(t *testing.T) {
	t.Parallel()

	source := []byte(`
import os

class Widget:
    pass

OTHER_CONSTANTS = [1, 2, 3]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	for _, g := range ConstantGroups {
		assert.Empty(t, defs.Constants[g])
	}
	for _, g := range FunctionGroups {
		assert.Empty(t, defs.Functions[g])
	}
	assert.Equal(t, 0, defs.Total())
}

func TestExtractor_Constants(t *testing.T) {
	t.Parallel()

	source := []byte(`
import math

KOTOR_CONSTANTS = [
    ScriptConstant(DataType.INT, "TRUE", 1),
    ScriptConstant(DataType.FLOAT, "PI", math.pi),
    ScriptConstant(DataType.STRING, "BARK_SOUND_PREFIX", "bark"),
    ScriptConstant(DataType.FLOAT, "DIRECTION_EAST", 0.0),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	constants := defs.Constants["KOTOR_CONSTANTS"]
	require.Len(t, constants, 4)

	assert.Equal(t, Constant{
		Name:     "TRUE",
		Type:     "int",
		Value:    Literal{Kind: LiteralInt, Int: 1},
		Category: "Basic",
	}, constants[0])

	assert.Equal(t, "PI", constants[1].Name)
	assert.Equal(t, "float", constants[1].Type)
	assert.Equal(t, LiteralSymbolic, constants[1].Value.Kind)
	assert.Equal(t, "Math.PI", constants[1].Value.String())

	assert.Equal(t, "string", constants[2].Type)
	assert.Equal(t, Literal{Kind: LiteralString, Str: "bark"}, constants[2].Value)

	assert.Equal(t, LiteralFloat, constants[3].Value.Kind)
	assert.Equal(t, "0.0", constants[3].Value.String())
}

func TestExtractor_SkipsUnrecognizedShapes(t *testing.T) {
	t.Parallel()

	// One bad element never aborts the rest of the list.
	source := []byte(`
KOTOR_CONSTANTS = [
    ScriptConstant(DataType.INT, "FIRST", 1),
    ScriptConstant(DataType.INT, "NO_VALUE"),
    ScriptConstant(DataType.INT, "NEGATIVE", -40),
    ScriptConstant(OtherType.INT, "WRONG_NAMESPACE", 1),
    make_constant(DataType.INT, "WRONG_CALLEE", 2),
    "not a call at all",
    ScriptConstant(DataType.INT, "LAST", 9),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	constants := defs.Constants["KOTOR_CONSTANTS"]
	require.Len(t, constants, 2)
	assert.Equal(t, "FIRST", constants[0].Name)
	assert.Equal(t, "LAST", constants[1].Name)
}

func TestExtractor_Functions(t *testing.T) {
	t.Parallel()

	source := []byte(`
KOTOR_FUNCTIONS = [
    ScriptFunction(DataType.VOID, "ActionDoNothing", []),
    ScriptFunction(
        DataType.INT,
        "GetCreatureHasItem",
        [
            ScriptParam(DataType.STRING, "sItemTag", "tag"),
            ScriptParam(DataType.OBJECT, "oCreature", None),
            broken_param("x"),
        ],
        "Determines whether oCreature has sItemTag\r\nin its    inventory.",
    ),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	functions := defs.Functions["KOTOR_FUNCTIONS"]
	require.Len(t, functions, 2)

	noop := functions[0]
	assert.Equal(t, "void", noop.ReturnType)
	assert.Empty(t, noop.Parameters)
	assert.Equal(t, "ActionDoNothing function", noop.Description)
	assert.Equal(t, "Action", noop.Category)

	fn := functions[1]
	assert.Equal(t, "GetCreatureHasItem", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	assert.Equal(t, "Object", fn.Category)

	// The broken parameter is dropped; the list just ends up shorter.
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, Parameter{Name: "sItemTag", Type: "string", DefaultValue: "tag"}, fn.Parameters[0])
	assert.Equal(t, Parameter{Name: "oCreature", Type: "object"}, fn.Parameters[1])

	// Escaped line breaks collapse to single spaces, as do whitespace runs.
	assert.Equal(t, "Determines whether oCreature has sItemTag in its inventory.", fn.Description)
}

func TestExtractor_ShortDescriptionKeepsFallback(t *testing.T) {
	t.Parallel()

	source := []byte(`
KOTOR_FUNCTIONS = [
    ScriptFunction(DataType.VOID, "PlayAnimation", [], "anim"),
    ScriptFunction(DataType.VOID, "PlaySound", [], "0123456789"),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	functions := defs.Functions["KOTOR_FUNCTIONS"]
	require.Len(t, functions, 2)
	assert.Equal(t, "PlayAnimation function", functions[0].Description)
	// Exactly 10 characters does not qualify either; the rule is > 10.
	assert.Equal(t, "PlaySound function", functions[1].Description)
}

func TestExtractor_ParamDefaults(t *testing.T) {
	t.Parallel()

	source := []byte(`
KOTOR_FUNCTIONS = [
    ScriptFunction(DataType.VOID, "SetValues", [
        ScriptParam(DataType.INT, "nCount", 0),
        ScriptParam(DataType.FLOAT, "fDelay", 1.5),
        ScriptParam(DataType.STRING, "sTag", ""),
        ScriptParam(DataType.OBJECT, "oTarget", None),
        ScriptParam(DataType.INT, "nBare"),
    ]),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	functions := defs.Functions["KOTOR_FUNCTIONS"]
	require.Len(t, functions, 1)

	params := functions[0].Parameters
	require.Len(t, params, 5)
	assert.Equal(t, "0", params[0].DefaultValue)
	assert.Equal(t, "1.5", params[1].DefaultValue)
	// An empty-string default is indistinguishable from no default,
	// matching the source tool's truthiness check.
	assert.Equal(t, "", params[2].DefaultValue)
	assert.Equal(t, "", params[3].DefaultValue)
	assert.Equal(t, "", params[4].DefaultValue)
}

func TestExtractor_NestedBinding(t *testing.T) {
	t.Parallel()

	source := []byte(`
if True:
    TSL_CONSTANTS = [
        ScriptConstant(DataType.INT, "TRUE", 1),
    ]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)
	require.Len(t, defs.Constants["TSL_CONSTANTS"], 1)
}

func TestExtractor_OrderPreserved(t *testing.T) {
	t.Parallel()

	source := []byte(`
KOTOR_CONSTANTS = [
    ScriptConstant(DataType.INT, "ZEBRA", 3),
    ScriptConstant(DataType.INT, "ALPHA", 1),
    ScriptConstant(DataType.INT, "MIDDLE", 2),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	constants := defs.Constants["KOTOR_CONSTANTS"]
	require.Len(t, constants, 3)
	assert.Equal(t, "ZEBRA", constants[0].Name)
	assert.Equal(t, "ALPHA", constants[1].Name)
	assert.Equal(t, "MIDDLE", constants[2].Name)
}

func TestExtractor_HexLiteral(t *testing.T) {
	t.Parallel()

	source := []byte(`
KOTOR_CONSTANTS = [
    ScriptConstant(DataType.INT, "OBJECT_TYPE_ALL", 0x7FFF),
]
`)

	defs, err := NewExtractor().Extract(source)
	require.NoError(t, err)

	constants := defs.Constants["KOTOR_CONSTANTS"]
	require.Len(t, constants, 1)
	assert.Equal(t, "32767", constants[0].Value.String())
}

func TestExtractor_BrokenSource(t *testing.T) {
	t.Parallel()

	_, err := NewExtractor().Extract([]byte("KOTOR_CONSTANTS = [ScriptConstant("))
	require.Error(t, err)
}

func TestUnquotePythonString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{`"plain"`, "plain"},
		{`'single'`, "single"},
		{`"""triple"""`, "triple"},
		{`"a\r\nb"`, "a\r\nb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"tab\there"`, "tab\there"},
		{`r"raw\n"`, `raw\n`},
		{`""`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unquotePythonString(tt.raw), "raw: %s", tt.raw)
	}
}

func TestFormatPyFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0", formatPyFloat(1.0))
	assert.Equal(t, "0.5", formatPyFloat(0.5))
	assert.Equal(t, "180.0", formatPyFloat(180.0))
}
