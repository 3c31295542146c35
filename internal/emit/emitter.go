package emit

import (
	"fmt"
	"strings"

	"github.com/kotor-tools/defgen/internal/extract"
)

// Emitter serializes extracted definitions into the TypeScript module text.
// Emission is pure string building; nothing touches the filesystem here.
type Emitter struct {
	// OnRecord, when set, is called once per serialized record. The CLI
	// hooks a progress bar into it.
	OnRecord func()
}

// Emit renders the full module: banner, fixed preamble, the four exported
// collections in fixed group order with records in extraction order, then
// the fixed helper declarations.
func (e *Emitter) Emit(defs *extract.Definitions) string {
	var sb strings.Builder

	sb.WriteString(banner)
	sb.WriteString(preamble)

	for _, group := range extract.ConstantGroups {
		e.writeConstants(&sb, group, defs.Constants[group])
	}
	for _, group := range extract.FunctionGroups {
		e.writeFunctions(&sb, group, defs.Functions[group])
	}

	sb.WriteString(trailer)
	return sb.String()
}

func (e *Emitter) writeConstants(sb *strings.Builder, group string, constants []extract.Constant) {
	fallback := groupFallback(group, "constant")

	fmt.Fprintf(sb, "export const %s: NWScriptConstant[] = [\n", group)
	for i, c := range constants {
		desc := Describe(c.Name, c.Category, fallback)
		fmt.Fprintf(sb, `  { name: "%s", type: "%s", value: %s, description: "%s", category: "%s" }`,
			escapeTS(c.Name), c.Type, renderValue(c.Value), escapeTS(desc), escapeTS(c.Category))
		if i < len(constants)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
		e.recordDone()
	}
	sb.WriteString("];\n\n")
}

func (e *Emitter) writeFunctions(sb *strings.Builder, group string, functions []extract.Function) {
	fallback := groupFallback(group, "function")

	fmt.Fprintf(sb, "export const %s: NWScriptFunction[] = [\n", group)
	for i, f := range functions {
		desc := Describe(f.Name, f.Category, fallback)
		// The function's own extracted description wins only when it says
		// more than the generic group fallback would.
		if f.Description != "" && len(f.Description) > len(fallback) {
			desc = f.Description
		}

		params := make([]string, 0, len(f.Parameters))
		for _, p := range f.Parameters {
			param := fmt.Sprintf(`{ name: "%s", type: "%s"`, escapeTS(p.Name), p.Type)
			if p.DefaultValue != "" {
				param += fmt.Sprintf(`, defaultValue: "%s"`, escapeTS(p.DefaultValue))
			}
			param += " }"
			params = append(params, param)
		}

		fmt.Fprintf(sb, `  { name: "%s", returnType: "%s", parameters: [%s], description: "%s", category: "%s" }`,
			escapeTS(f.Name), f.ReturnType, strings.Join(params, ", "), escapeTS(desc), escapeTS(f.Category))
		if i < len(functions)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
		e.recordDone()
	}
	sb.WriteString("];\n\n")
}

func (e *Emitter) recordDone() {
	if e.OnRecord != nil {
		e.OnRecord()
	}
}

// groupFallback builds the generic description for a group ("kotor
// constant", "tsl function", ...).
func groupFallback(group, kind string) string {
	if strings.Contains(group, "KOTOR") {
		return "kotor " + kind
	}
	return "tsl " + kind
}

// renderValue renders a constant value for the output: numbers bare, the
// symbolic π as an unquoted Math.PI token, strings quoted.
func renderValue(l extract.Literal) string {
	if l.Kind == extract.LiteralString {
		return `"` + escapeTS(l.Str) + `"`
	}
	return l.String()
}

// escapeTS escapes a string for embedding in a double-quoted TypeScript
// string literal.
func escapeTS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
