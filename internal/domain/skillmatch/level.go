package skillmatch

const (
	LevelExcellent = "Excellent"
	LevelGood      = "Good"
	LevelModerate  = "Moderate"
	LevelFair      = "Fair"
	LevelLow       = "Low"
)

// Level is the qualitative band for a match percentage, with the display
// attributes the UI renders alongside the score.
type Level struct {
	Level       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ClassifyLevel maps a percentage to its band. The thresholds partition
// [0,100]; out-of-range input is not clamped, so anything above 100 reads
// as Excellent and anything below 0 as Low.
func ClassifyLevel(percentage int) Level {
	switch {
	case percentage >= 90:
		return Level{
			Level:       LevelExcellent,
			Color:       "#10b981",
			Description: "Outstanding skill match! You have almost all required skills.",
			Icon:        "🎯",
		}
	case percentage >= 75:
		return Level{
			Level:       LevelGood,
			Color:       "#059669",
			Description: "Strong skill match! You meet most requirements.",
			Icon:        "✅",
		}
	case percentage >= 50:
		return Level{
			Level:       LevelModerate,
			Color:       "#f59e0b",
			Description: "Decent skill match. Consider developing missing skills.",
			Icon:        "⚡",
		}
	case percentage >= 25:
		return Level{
			Level:       LevelFair,
			Color:       "#f97316",
			Description: "Some skills match. Significant skill development needed.",
			Icon:        "📈",
		}
	default:
		return Level{
			Level:       LevelLow,
			Color:       "#ef4444",
			Description: "Limited skill match. Consider skill development or alternative roles.",
			Icon:        "📚",
		}
	}
}
