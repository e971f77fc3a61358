package assessment

// DifficultyForScore maps a 1–5 self-assessment rating to the micro-check
// tier. The quiz flow uses it to choose the variant shown and the scorer uses
// it to verify the recorded tier; both must go through this function.
func DifficultyForScore(selfScore int) Difficulty {
	switch {
	case selfScore <= 2:
		return DifficultyEasy
	case selfScore == 3:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// Difficulties returns the tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
