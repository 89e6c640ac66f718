package skillmatch

// Synonyms maps a canonical skill label to alternate spellings and
// abbreviations treated as equivalent during matching. Keys and values
// are already normalized (lowercase, trimmed). Read-only after init.
var Synonyms = map[string][]string{
	"javascript":       {"js", "ecmascript", "node.js", "nodejs"},
	"typescript":       {"ts"},
	"react":            {"reactjs", "react.js"},
	"angular":          {"angularjs"},
	"vue":              {"vuejs", "vue.js"},
	"python":           {"py"},
	"machine learning": {"ml", "artificial intelligence", "ai"},
	"css":              {"css3", "cascading style sheets"},
	"html":             {"html5", "hypertext markup language"},
	"sql":              {"mysql", "postgresql", "database"},
	"c++":              {"cpp", "c plus plus"},
	"c#":               {"csharp", "c sharp"},
	"ui/ux":            {"user interface", "user experience", "ui design", "ux design"},
	"frontend":         {"front-end", "front end"},
	"backend":          {"back-end", "back end"},
	"fullstack":        {"full-stack", "full stack"},
	"devops":           {"dev ops", "development operations"},
	"api":              {"rest api", "restful", "web api"},
	"aws":              {"amazon web services"},
	"gcp":              {"google cloud platform"},
	"azure":            {"microsoft azure"},
}

// Synonymous reports whether two normalized labels belong to the same
// synonym set: one is the canonical key and the other an alternate, or
// both are alternates of the same key.
func Synonymous(a, b string) bool {
	for canonical, alts := range Synonyms {
		if a == canonical && containsLabel(alts, b) {
			return true
		}
		if b == canonical && containsLabel(alts, a) {
			return true
		}
		if containsLabel(alts, a) && containsLabel(alts, b) {
			return true
		}
	}
	return false
}

func containsLabel(labels []string, target string) bool {
	for _, l := range labels {
		if l == target {
			return true
		}
	}
	return false
}
