package extract

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Constructor and namespace identifiers recognized in scriptdefs.py.
const (
	constantCtor  = "ScriptConstant"
	functionCtor  = "ScriptFunction"
	paramCtor     = "ScriptParam"
	typeNamespace = "DataType"
)

// Extractor parses scriptdefs.py source text and pulls the four recognized
// definition lists out of it.
type Extractor struct {
	language *sitter.Language
}

// NewExtractor creates an extractor with the Python grammar loaded.
func NewExtractor() *Extractor {
	return &Extractor{
		language: sitter.NewLanguage(python.Language()),
	}
}

// Extract parses the source and returns the per-group definitions. A source
// that parses but contains none of the recognized bindings yields four empty
// groups. Elements that do not match a recognized constructor shape are
// skipped silently; extraction is best-effort, not validation.
func (e *Extractor) Extract(source []byte) (*Definitions, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(e.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse python source")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("python source contains syntax errors")
	}

	defs := NewDefinitions()

	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "assignment" {
			return true
		}
		e.extractAssignment(n, source, defs)
		return true
	})

	return defs, nil
}

// extractAssignment handles one assignment node: single identifier target
// naming a recognized group, list literal value.
func (e *Extractor) extractAssignment(node *sitter.Node, source []byte, defs *Definitions) {
	left := node.ChildByFieldName("left")
	right := node.ChildByFieldName("right")
	if left == nil || right == nil {
		return
	}
	if left.Kind() != "identifier" || right.Kind() != "list" {
		return
	}

	group := nodeText(left, source)
	switch {
	case strings.Contains(group, "CONSTANTS"):
		if _, ok := defs.Constants[group]; !ok {
			return
		}
		for _, elem := range namedChildren(right) {
			if c, ok := e.extractConstant(elem, source); ok {
				defs.Constants[group] = append(defs.Constants[group], c)
			}
		}
	case strings.Contains(group, "FUNCTIONS"):
		if _, ok := defs.Functions[group]; !ok {
			return
		}
		for _, elem := range namedChildren(right) {
			if f, ok := e.extractFunction(elem, source); ok {
				defs.Functions[group] = append(defs.Functions[group], f)
			}
		}
	}
}

// extractConstant recognizes ScriptConstant(DataType.X, "NAME", value).
func (e *Extractor) extractConstant(node *sitter.Node, source []byte) (Constant, bool) {
	if callName(node, source) != constantCtor {
		return Constant{}, false
	}

	args := positionalArgs(node)
	if len(args) < 3 {
		return Constant{}, false
	}

	dataType, ok := typeTag(args[0], source)
	if !ok {
		return Constant{}, false
	}

	name, ok := stringLiteral(args[1], source)
	if !ok {
		return Constant{}, false
	}

	value, ok := valueLiteral(args[2], source)
	if !ok {
		return Constant{}, false
	}

	return Constant{
		Name:     name,
		Type:     dataType,
		Value:    value,
		Category: ConstantCategory(name),
	}, true
}

// extractFunction recognizes
// ScriptFunction(DataType.X, "Name", [params...], "description"?).
func (e *Extractor) extractFunction(node *sitter.Node, source []byte) (Function, bool) {
	if callName(node, source) != functionCtor {
		return Function{}, false
	}

	args := positionalArgs(node)
	if len(args) < 3 {
		return Function{}, false
	}

	returnType, ok := typeTag(args[0], source)
	if !ok {
		return Function{}, false
	}

	name, ok := stringLiteral(args[1], source)
	if !ok {
		return Function{}, false
	}

	if args[2].Kind() != "list" {
		return Function{}, false
	}
	params := []Parameter{}
	for _, elem := range namedChildren(args[2]) {
		if p, ok := e.extractParam(elem, source); ok {
			params = append(params, p)
		}
	}

	description := name + " function"
	if len(args) >= 4 {
		if desc, ok := stringLiteral(args[3], source); ok && len(desc) > 10 {
			description = normalizeDescription(desc)
		}
	}

	return Function{
		Name:        name,
		ReturnType:  returnType,
		Parameters:  params,
		Description: description,
		Category:    FunctionCategory(name),
	}, true
}

// extractParam recognizes ScriptParam(DataType.X, "name", default?). A None
// third argument means no default.
func (e *Extractor) extractParam(node *sitter.Node, source []byte) (Parameter, bool) {
	if callName(node, source) != paramCtor {
		return Parameter{}, false
	}

	args := positionalArgs(node)
	if len(args) < 2 {
		return Parameter{}, false
	}

	paramType, ok := typeTag(args[0], source)
	if !ok {
		return Parameter{}, false
	}

	name, ok := stringLiteral(args[1], source)
	if !ok {
		return Parameter{}, false
	}

	param := Parameter{Name: name, Type: paramType}
	if len(args) >= 3 && args[2].Kind() != "none" {
		if def, ok := valueLiteral(args[2], source); ok && def.Kind != LiteralSymbolic {
			param.DefaultValue = def.String()
		}
	}
	return param, true
}

// typeTag recognizes a DataType.X attribute access and returns the
// lower-cased attribute name.
func typeTag(node *sitter.Node, source []byte) (string, bool) {
	object, attr, ok := attributeParts(node, source)
	if !ok || object != typeNamespace {
		return "", false
	}
	return strings.ToLower(attr), true
}

// stringLiteral returns the decoded value of a string literal node.
func stringLiteral(node *sitter.Node, source []byte) (string, bool) {
	if node == nil || node.Kind() != "string" {
		return "", false
	}
	return unquotePythonString(nodeText(node, source)), true
}

// valueLiteral recognizes the value expressions a ScriptConstant (or a
// ScriptParam default) may carry: an integer, a float, a string, or the
// special-cased math.pi. Anything else, including unary minus, disqualifies
// the element.
func valueLiteral(node *sitter.Node, source []byte) (Literal, bool) {
	if node == nil {
		return Literal{}, false
	}

	switch node.Kind() {
	case "integer":
		// Base prefix handled by ParseInt so hex literals come out decimal.
		v, err := strconv.ParseInt(strings.ReplaceAll(nodeText(node, source), "_", ""), 0, 64)
		if err != nil {
			return Literal{}, false
		}
		return Literal{Kind: LiteralInt, Int: v}, true
	case "float":
		v, err := strconv.ParseFloat(strings.ReplaceAll(nodeText(node, source), "_", ""), 64)
		if err != nil {
			return Literal{}, false
		}
		return Literal{Kind: LiteralFloat, Float: v}, true
	case "string":
		return Literal{Kind: LiteralString, Str: unquotePythonString(nodeText(node, source))}, true
	case "attribute":
		object, attr, ok := attributeParts(node, source)
		if ok && object == "math" && attr == "pi" {
			return Literal{Kind: LiteralSymbolic}, true
		}
	}
	return Literal{}, false
}

// normalizeDescription flattens a description string to one line: escaped
// and real CR LF pairs become spaces, then runs of whitespace collapse.
func normalizeDescription(s string) string {
	s = strings.ReplaceAll(s, `\r\n`, " ")
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
