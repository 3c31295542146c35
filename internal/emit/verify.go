package emit

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Verify checks that generated output is syntactically well-formed
// TypeScript before it is allowed anywhere near the output file. Semantic
// correctness is the consumer's problem; malformed syntax is ours.
func Verify(output string) error {
	lang := sitter.NewLanguage(typescript.LanguageTypescript())

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree := parser.Parse([]byte(output), nil)
	if tree == nil {
		return fmt.Errorf("failed to parse generated typescript")
	}
	defer tree.Close()

	if tree.RootNode().HasError() {
		return fmt.Errorf("generated typescript contains syntax errors")
	}
	return nil
}
