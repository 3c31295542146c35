package extract

import "strings"

// Category inference is name-pattern matching only. The rule order below is
// the contract: generated output is stable across runs only because these
// chains evaluate first-match-wins in a fixed sequence.

// Qualifier words that extend a constant's category prefix to two segments
// (FORCE_POWER_HEAL groups under "Force Power", not "Force").
var constantQualifiers = map[string]bool{
	"TYPE":  true,
	"SLOT":  true,
	"BONUS": true,
	"POWER": true,
}

// categoryRule pairs a keyword set with the category it names.
type categoryRule struct {
	keywords []string
	label    string
}

// accessorRules apply only to names starting with get/set/is/has. A gated
// name that matches none of them is General; the later chains never see it.
var accessorRules = []categoryRule{
	{[]string{"pc", "player", "character", "object", "creature"}, "Object"},
	{[]string{"party", "npc", "available"}, "Party"},
	{[]string{"item", "inventory", "equipped"}, "Item"},
	{[]string{"area", "location", "position", "facing"}, "Location"},
	{[]string{"ability", "skill", "level", "class"}, "Character"},
	{[]string{"global", "local"}, "Variable"},
	{[]string{"time", "day", "hour", "module"}, "Game State"},
}

// keywordRules apply to everything that is not gated and not an
// action/effect prefix. A name satisfying several sets takes the earliest.
var keywordRules = []categoryRule{
	{[]string{"damage", "attack", "combat", "weapon", "armor"}, "Combat"},
	{[]string{"speak", "conversation", "dialog"}, "Dialog"},
	{[]string{"play", "sound", "music", "visual", "camera"}, "Audio/Visual"},
	{[]string{"move", "jump", "teleport", "walk"}, "Movement"},
	{[]string{"execute", "script", "event", "signal"}, "Script"},
	{[]string{"random", "float", "int", "vector", "distance"}, "Math"},
	{[]string{"store", "save", "load"}, "Save/Load"},
	{[]string{"force", "power"}, "Force"},
}

// ConstantCategory infers a category label from a constant name.
func ConstantCategory(name string) string {
	switch name {
	case "TRUE", "FALSE":
		return "Basic"
	case "PI":
		return "Math"
	}

	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return "Other"
	}

	prefix := parts[0]
	if len(parts) > 2 && constantQualifiers[parts[1]] {
		prefix = parts[0] + "_" + parts[1]
	}

	category := pyTitle(strings.ReplaceAll(prefix, "_", " "))
	if len(category) > 1 && strings.HasSuffix(category, "s") {
		category = category[:len(category)-1]
	}
	return category
}

// FunctionCategory infers a category label from a function name.
func FunctionCategory(name string) string {
	lower := strings.ToLower(name)

	switch {
	case hasAnyPrefix(lower, "get", "set", "is", "has"):
		for _, rule := range accessorRules {
			if containsAny(lower, rule.keywords) {
				return rule.label
			}
		}
	case strings.HasPrefix(lower, "action"):
		return "Action"
	case strings.HasPrefix(lower, "effect") || strings.Contains(lower, "effect"):
		return "Effect"
	default:
		for _, rule := range keywordRules {
			if containsAny(lower, rule.keywords) {
				return rule.label
			}
		}
	}

	return "General"
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// pyTitle title-cases a string with Python str.title semantics: a letter
// following a non-letter is upper-cased, every other letter lower-cased.
func pyTitle(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			sb.WriteRune(toUpper(r))
		case isLetter:
			sb.WriteRune(toLower(r))
		default:
			sb.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return sb.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}
