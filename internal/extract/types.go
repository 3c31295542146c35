package extract

import (
	"strconv"
	"strings"
)

// Group names recognized at the top level of scriptdefs.py. Extraction order
// within each group follows source order; the slices below fix the group
// order used everywhere downstream.
var (
	ConstantGroups = []string{"KOTOR_CONSTANTS", "TSL_CONSTANTS"}
	FunctionGroups = []string{"KOTOR_FUNCTIONS", "TSL_FUNCTIONS"}
)

// LiteralKind discriminates the literal values the extractor recognizes.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	// LiteralSymbolic marks the one recognized non-literal value expression,
	// math.pi, which is rendered as a symbolic token rather than a number.
	LiteralSymbolic
)

// Literal is a tagged variant for the constant/default values that survive
// extraction. Only the field matching Kind is meaningful.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
}

// String renders the literal the way Python's str() would, which is the form
// parameter defaults take in the generated output.
func (l Literal) String() string {
	switch l.Kind {
	case LiteralInt:
		return strconv.FormatInt(l.Int, 10)
	case LiteralFloat:
		return formatPyFloat(l.Float)
	case LiteralSymbolic:
		return "Math.PI"
	default:
		return l.Str
	}
}

// formatPyFloat formats a float the way Python repr does: a whole-number
// float keeps its trailing ".0" (1.0, not 1).
func formatPyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

// Constant is one extracted ScriptConstant entry.
type Constant struct {
	Name     string
	Type     string // "int", "float", "string"
	Value    Literal
	Category string
}

// Parameter is one extracted ScriptParam entry, owned by its Function.
type Parameter struct {
	Name         string
	Type         string
	DefaultValue string // empty when the source had no (or a None) default
}

// Function is one extracted ScriptFunction entry.
type Function struct {
	Name        string
	ReturnType  string
	Parameters  []Parameter
	Description string
	Category    string
}

// Definitions is the sole handoff between the extractor and the emitter:
// per-group ordered record slices, built once per run and read-only after.
type Definitions struct {
	Constants map[string][]Constant
	Functions map[string][]Function
}

// NewDefinitions returns a Definitions with every recognized group present
// and empty, so an input containing none of the bindings still yields four
// well-formed groups.
func NewDefinitions() *Definitions {
	d := &Definitions{
		Constants: make(map[string][]Constant, len(ConstantGroups)),
		Functions: make(map[string][]Function, len(FunctionGroups)),
	}
	for _, g := range ConstantGroups {
		d.Constants[g] = []Constant{}
	}
	for _, g := range FunctionGroups {
		d.Functions[g] = []Function{}
	}
	return d
}

// Total returns the number of extracted records across all groups.
func (d *Definitions) Total() int {
	n := 0
	for _, cs := range d.Constants {
		n += len(cs)
	}
	for _, fs := range d.Functions {
		n += len(fs)
	}
	return n
}
