// Package skillmatch scores a job seeker's skill list against a job's
// required skills. All functions are pure and total: malformed or empty
// input degrades to a zero result instead of returning an error, so a
// score can always be rendered.
package skillmatch

import (
	"math"
	"strings"
)

// Result is the outcome of comparing a candidate skill list against a
// job's required skills. MatchedSkills and MissingSkills hold normalized
// required-skill labels in the iteration order of the required list.
type Result struct {
	Percentage    int      `json:"percentage"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	TotalRequired int      `json:"total_required"`
	TotalMatched  int      `json:"total_matched"`
}

// ComputeMatch evaluates required-skill coverage. A required skill counts
// as matched when any candidate skill equals it, is a substring of it,
// contains it, or is a declared synonym. One candidate skill may satisfy
// any number of required skills.
func ComputeMatch(candidateSkills, requiredSkills []string) Result {
	candidate := Normalize(candidateSkills)
	required := Normalize(requiredSkills)

	matched := make([]string, 0, len(required))
	missing := make([]string, 0)

	for _, req := range required {
		if anyMatches(candidate, req) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	percentage := 0
	if len(required) > 0 {
		percentage = int(math.Round(float64(len(matched)) / float64(len(required)) * 100))
	}

	return Result{
		Percentage:    percentage,
		MatchedSkills: matched,
		MissingSkills: missing,
		TotalRequired: len(required),
		TotalMatched:  len(matched),
	}
}

// Normalize lowercases and trims each label, dropping entries that end up
// empty. The output preserves input order and does not deduplicate.
func Normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func anyMatches(candidate []string, required string) bool {
	for _, c := range candidate {
		if skillsMatch(c, required) {
			return true
		}
	}
	return false
}

func skillsMatch(candidate, required string) bool {
	if candidate == required {
		return true
	}
	if strings.Contains(required, candidate) {
		return true
	}
	if strings.Contains(candidate, required) {
		return true
	}
	return Synonymous(candidate, required)
}
