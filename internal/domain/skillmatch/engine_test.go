package skillmatch

import (
	"reflect"
	"testing"
)

func TestComputeMatch_EmptyCandidate(t *testing.T) {
	res := ComputeMatch(nil, []string{"React", "SQL"})

	if res.Percentage != 0 {
		t.Fatalf("expected percentage 0, got %d", res.Percentage)
	}
	if len(res.MatchedSkills) != 0 {
		t.Fatalf("expected no matched skills, got %v", res.MatchedSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"react", "sql"}) {
		t.Fatalf("expected normalized required list as missing, got %v", res.MissingSkills)
	}
	if res.TotalRequired != 2 || res.TotalMatched != 0 {
		t.Fatalf("unexpected totals: required=%d matched=%d", res.TotalRequired, res.TotalMatched)
	}
}

func TestComputeMatch_EmptyRequired(t *testing.T) {
	res := ComputeMatch([]string{"Go", "Python"}, nil)

	if res.Percentage != 0 {
		t.Fatalf("expected percentage 0, got %d", res.Percentage)
	}
	if res.TotalRequired != 0 {
		t.Fatalf("expected total required 0, got %d", res.TotalRequired)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}
}

func TestComputeMatch_BlankEntriesDropped(t *testing.T) {
	res := ComputeMatch([]string{" ", ""}, []string{"  ", "go", ""})

	if res.TotalRequired != 1 {
		t.Fatalf("expected blank required entries dropped, total=%d", res.TotalRequired)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"go"}) {
		t.Fatalf("unexpected missing: %v", res.MissingSkills)
	}
}

func TestComputeMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	res := ComputeMatch([]string{"  React "}, []string{"react"})

	if res.Percentage != 100 {
		t.Fatalf("expected 100%%, got %d", res.Percentage)
	}
	if !reflect.DeepEqual(res.MatchedSkills, []string{"react"}) {
		t.Fatalf("unexpected matched: %v", res.MatchedSkills)
	}
}

func TestComputeMatch_Synonyms(t *testing.T) {
	cases := []struct {
		name      string
		candidate []string
		required  []string
	}{
		{"alternate matches canonical", []string{"js"}, []string{"javascript"}},
		{"canonical matches alternate", []string{"JavaScript"}, []string{"js"}},
		{"two alternates of one key", []string{"ml"}, []string{"ai"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ComputeMatch(tc.candidate, tc.required)
			if res.Percentage != 100 {
				t.Fatalf("expected match, got percentage %d (missing %v)", res.Percentage, res.MissingSkills)
			}
		})
	}
}

func TestComputeMatch_SubstringRule(t *testing.T) {
	res := ComputeMatch([]string{"reactjs"}, []string{"react"})
	if res.Percentage != 100 {
		t.Fatalf("expected substring match, got %d", res.Percentage)
	}

	res = ComputeMatch([]string{"sql"}, []string{"postgresql databases"})
	if res.Percentage != 100 {
		t.Fatalf("expected candidate-in-required match, got %d", res.Percentage)
	}
}

func TestComputeMatch_Scenario(t *testing.T) {
	res := ComputeMatch(
		[]string{"JavaScript", "CSS", "Python"},
		[]string{"javascript", "react", "css", "sql"},
	)

	if !reflect.DeepEqual(res.MatchedSkills, []string{"javascript", "css"}) {
		t.Fatalf("unexpected matched: %v", res.MatchedSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"react", "sql"}) {
		t.Fatalf("unexpected missing: %v", res.MissingSkills)
	}
	if res.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", res.Percentage)
	}
	if lvl := ClassifyLevel(res.Percentage); lvl.Level != LevelModerate {
		t.Fatalf("expected Moderate, got %s", lvl.Level)
	}
}

func TestComputeMatch_TotalsInvariant(t *testing.T) {
	cases := [][2][]string{
		{{"go", "python"}, {"go", "rust", "python", "java"}},
		{{}, {"go"}},
		{{"go"}, {}},
		{{"a", "b", "c"}, {"a", "a", "b"}},
	}

	for i, tc := range cases {
		res := ComputeMatch(tc[0], tc[1])
		if res.TotalMatched != len(res.MatchedSkills) {
			t.Fatalf("case %d: total_matched=%d but %d matched entries", i, res.TotalMatched, len(res.MatchedSkills))
		}
		if res.TotalMatched+len(res.MissingSkills) != res.TotalRequired {
			t.Fatalf("case %d: matched+missing != required", i)
		}
	}
}

func TestComputeMatch_PreservesRequiredOrder(t *testing.T) {
	res := ComputeMatch(
		[]string{"css", "go"},
		[]string{"Rust", "CSS", "Java", "Go", "SQL"},
	)

	if !reflect.DeepEqual(res.MatchedSkills, []string{"css", "go"}) {
		t.Fatalf("matched order not preserved: %v", res.MatchedSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"rust", "java", "sql"}) {
		t.Fatalf("missing order not preserved: %v", res.MissingSkills)
	}
}

func TestComputeMatch_OneCandidateMayCoverMany(t *testing.T) {
	res := ComputeMatch([]string{"javascript"}, []string{"js", "nodejs", "ecmascript"})
	if res.Percentage != 100 {
		t.Fatalf("expected full coverage by one candidate, got %d (missing %v)", res.Percentage, res.MissingSkills)
	}
}
