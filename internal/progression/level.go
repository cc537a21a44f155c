package progression

// Level is the companion's growth stage, derived from XP.
type Level string

const (
	LevelBaby       Level = "baby"
	LevelAdolescent Level = "adolescent"
	LevelAdult      Level = "adult"
)

// XP thresholds for level transitions.
const (
	adolescentXP = 20
	adultXP      = 60
)

// LevelForXP maps an XP total to its level. Level is never stored
// independently; every mutation recomputes it from the new XP.
func LevelForXP(xp int) Level {
	switch {
	case xp < adolescentXP:
		return LevelBaby
	case xp < adultXP:
		return LevelAdolescent
	default:
		return LevelAdult
	}
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelBaby:
		return "Bébé"
	case LevelAdolescent:
		return "Ado"
	case LevelAdult:
		return "Adulte"
	default:
		return string(l)
	}
}
