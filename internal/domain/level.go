package domain

import "strings"

// Level is the target comprehension tier of generated content.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// levelAliases keeps the eli5/eli12/eli18 values older clients still send.
var levelAliases = map[string]Level{
	"basic":        LevelBasic,
	"intermediate": LevelIntermediate,
	"advanced":     LevelAdvanced,
	"eli5":         LevelBasic,
	"eli12":        LevelIntermediate,
	"eli18":        LevelAdvanced,
}

// ParseLevel maps a wire value to a Level. Unknown values yield an
// INVALID_LEVEL error.
func ParseLevel(raw string) (Level, error) {
	level, ok := levelAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", NewInvalidLevelError(raw)
	}
	return level, nil
}

// WordLimit is the word ceiling embedded in explanation prompts.
func (l Level) WordLimit() int {
	switch l {
	case LevelBasic:
		return 200
	case LevelIntermediate:
		return 300
	case LevelAdvanced:
		return 400
	default:
		return 0
	}
}

func (l Level) Valid() bool {
	return l.WordLimit() > 0
}
