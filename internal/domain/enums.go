package domain

import "strings"

// Level is the athlete's self-reported experience level.
type Level string

const (
	LevelNovice       Level = "novice"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel normalizes a free-text level. Unrecognized values are treated
// as advanced, matching the catalog selection behavior.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "novice":
		return LevelNovice
	case "intermediate":
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// Canonical intensity labels for model-sourced sessions. Hand-authored
// catalog entries may also carry compound labels such as "Easy–Moderate",
// which are kept as free text and score with the default factor.
const (
	IntensityEasy     = "Easy"
	IntensityModerate = "Moderate"
	IntensityHard     = "Hard"
)

// IntensityFactor maps an intensity label to its load multiplier. Unknown
// labels score as Moderate.
func IntensityFactor(intensity string) int {
	switch intensity {
	case IntensityEasy:
		return 1
	case IntensityModerate:
		return 2
	case IntensityHard:
		return 3
	default:
		return 2
	}
}

// CanonicalIntensity reports whether the label is one of Easy/Moderate/Hard.
func CanonicalIntensity(intensity string) bool {
	switch intensity {
	case IntensityEasy, IntensityModerate, IntensityHard:
		return true
	}
	return false
}
