package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the text content of a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor stops descent into that node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		walkTree(child, visitor)
	}
}

// namedChildren returns the named children of a node, skipping comments.
func namedChildren(node *sitter.Node) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(uint(i))
		if child.Kind() == "comment" {
			continue
		}
		results = append(results, child)
	}
	return results
}

// positionalArgs returns the positional arguments of a call node's argument
// list. Keyword arguments do not count as positional, matching how Python's
// own AST separates args from keywords.
func positionalArgs(call *sitter.Node) []*sitter.Node {
	argList := call.ChildByFieldName("arguments")
	if argList == nil {
		return nil
	}

	var args []*sitter.Node
	for _, child := range namedChildren(argList) {
		if child.Kind() == "keyword_argument" {
			continue
		}
		args = append(args, child)
	}
	return args
}

// callName returns the callee identifier of a call node, or "" when the
// callee is not a bare identifier.
func callName(call *sitter.Node, source []byte) string {
	if call == nil || call.Kind() != "call" {
		return ""
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Kind() != "identifier" {
		return ""
	}
	return nodeText(fn, source)
}

// attributeParts splits an attribute-access node (obj.attr) into its object
// identifier and attribute name. ok is false for any other shape, including
// chained accesses whose object is not a bare identifier.
func attributeParts(node *sitter.Node, source []byte) (object, attr string, ok bool) {
	if node == nil || node.Kind() != "attribute" {
		return "", "", false
	}
	obj := node.ChildByFieldName("object")
	att := node.ChildByFieldName("attribute")
	if obj == nil || att == nil || obj.Kind() != "identifier" {
		return "", "", false
	}
	return nodeText(obj, source), nodeText(att, source), true
}

// unquotePythonString decodes a Python string literal node into its runtime
// value: delimiters and prefixes stripped, escape sequences resolved. Only
// the escapes that actually occur in scriptdefs.py are handled; an
// unrecognized escape keeps its backslash, as Python does.
func unquotePythonString(raw string) string {
	// Strip string prefixes (r, b, u, f and case variants).
	s := strings.TrimLeft(raw, "rbufRBUF")

	isRaw := strings.ContainsAny(raw[:len(raw)-len(s)], "rR")

	// Strip matching quote delimiters, triple quotes first.
	for _, q := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			s = s[len(q) : len(s)-len(q)]
			break
		}
	}

	if isRaw || !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\':
			sb.WriteByte('\\')
		case '\'':
			sb.WriteByte('\'')
		case '"':
			sb.WriteByte('"')
		case '\n':
			// Line continuation inside the literal: swallow it.
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
