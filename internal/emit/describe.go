package emit

// descriptions is one shared lookup table keyed by two populations: specific
// constant names (TRUE, FALSE, PI) and category labels. The overload is
// deliberate; splitting it would force a choice about which table wins on a
// key collision, which nothing downstream defines.
var descriptions = map[string]string{
	// Specific names
	"TRUE":  "Boolean true value",
	"FALSE": "Boolean false value",
	"PI":    "Mathematical constant π",

	// Categories
	"Planet":         "Planet identifier constant",
	"Damage":         "Damage type constant",
	"Damage Type":    "Damage type constant",
	"Ability":        "Ability score constant",
	"Skill":          "Skill identifier constant",
	"Feat":           "Feat identifier constant",
	"Animation":      "Animation constant",
	"Base Item":      "Base item type constant",
	"Inventory":      "Inventory slot constant",
	"Inventory Slot": "Inventory slot constant",
	"Object Type":    "Object type constant",
	"Race":           "Racial type constant",
	"Gender":         "Gender constant",
	"Saving Throw":   "Saving throw constant",
	"Alignment":      "Alignment constant",
	"Duration":       "Duration type constant",
	"Direction":      "Direction constant in degrees",
	"Force Power":    "Force power identifier",
	"Vfx":            "Visual effect constant",
	"Item Property":  "Item property constant",
	"Combat":         "Combat-related constant",
	"Npc":            "NPC identifier constant",
	"Party":          "Party management constant",
	"Camera":         "Camera mode constant",
	"Difficulty":     "Game difficulty constant",
	"Encounter":      "Encounter constant",
	"Trap":           "Trap type constant",
	"Creature":       "Creature size constant",
	"Effect":         "Effect type constant",
	"Conversation":   "Conversation type constant",
	"Disguise":       "Disguise type constant",
	"Immunity":       "Immunity type constant",
	"Aoe":            "Area of effect constant",
	"Polymorph":      "Polymorph type constant",
	"Communication":  "Communication volume constant",
	"Attitude":       "Attitude constant",
}

// Describe resolves a description: specific name first, category label
// second, the caller's fallback verbatim when both miss.
func Describe(name, category, fallback string) string {
	if d, ok := descriptions[name]; ok {
		return d
	}
	if d, ok := descriptions[category]; ok {
		return d
	}
	return fallback
}
