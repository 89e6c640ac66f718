package skillmatch

import "strings"

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Recommendation suggests learning resources for one missing skill.
type Recommendation struct {
	Skill     string   `json:"skill"`
	Platforms []string `json:"platforms"`
	Priority  string   `json:"priority"`
}

// learningPlatforms maps a normalized skill label to curated resources.
// Skills outside the table fall back to defaultPlatforms.
var learningPlatforms = map[string][]string{
	"javascript":       {"FreeCodeCamp", "MDN Web Docs", "JavaScript.info"},
	"react":            {"React Documentation", "React Tutorial", "Scrimba React Course"},
	"python":           {"Python.org Tutorial", "Codecademy Python", "Real Python"},
	"machine learning": {"Coursera ML Course", "Kaggle Learn", "Fast.ai"},
	"sql":              {"W3Schools SQL", "SQLBolt", "Mode SQL Tutorial"},
	"aws":              {"AWS Training", "A Cloud Guru", "AWS Documentation"},
	"css":              {"CSS-Tricks", "Flexbox Froggy", "Grid Garden"},
	"node.js":          {"Node.js Documentation", "NodeSchool", "Express.js Tutorial"},
}

var defaultPlatforms = []string{"Coursera", "Udemy", "YouTube tutorials"}

var highPrioritySkills = map[string]struct{}{
	"javascript": {},
	"python":     {},
	"react":      {},
	"sql":        {},
	"css":        {},
	"html":       {},
}

var mediumPrioritySkills = map[string]struct{}{
	"node.js":    {},
	"typescript": {},
	"angular":    {},
	"vue":        {},
	"aws":        {},
	"docker":     {},
}

// Recommend builds one recommendation per missing skill, in input order,
// without deduplication. Callers that only want the top few truncate on
// their side.
func Recommend(missingSkills []string) []Recommendation {
	out := make([]Recommendation, 0, len(missingSkills))
	for _, skill := range missingSkills {
		key := strings.ToLower(strings.TrimSpace(skill))

		platforms, ok := learningPlatforms[key]
		if !ok {
			platforms = defaultPlatforms
		}
		copied := make([]string, len(platforms))
		copy(copied, platforms)

		out = append(out, Recommendation{
			Skill:     skill,
			Platforms: copied,
			Priority:  SkillPriority(skill),
		})
	}
	return out
}

// SkillPriority looks up the learning priority for a skill. Unknown
// skills are Low.
func SkillPriority(skill string) string {
	key := strings.ToLower(strings.TrimSpace(skill))
	if _, ok := highPrioritySkills[key]; ok {
		return PriorityHigh
	}
	if _, ok := mediumPrioritySkills[key]; ok {
		return PriorityMedium
	}
	return PriorityLow
}
