package skillmatch

import (
	"reflect"
	"testing"
)

func TestRecommend_KnownAndUnknownSkills(t *testing.T) {
	recs := Recommend([]string{"sql", "unknownlang"})

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	if recs[0].Skill != "sql" {
		t.Fatalf("order not preserved: %v", recs)
	}
	if !reflect.DeepEqual(recs[0].Platforms, []string{"W3Schools SQL", "SQLBolt", "Mode SQL Tutorial"}) {
		t.Fatalf("unexpected sql platforms: %v", recs[0].Platforms)
	}
	if recs[0].Priority != PriorityHigh {
		t.Fatalf("expected sql priority High, got %s", recs[0].Priority)
	}

	if !reflect.DeepEqual(recs[1].Platforms, []string{"Coursera", "Udemy", "YouTube tutorials"}) {
		t.Fatalf("expected generic fallback platforms, got %v", recs[1].Platforms)
	}
	if recs[1].Priority != PriorityLow {
		t.Fatalf("expected unknown priority Low, got %s", recs[1].Priority)
	}
}

func TestRecommend_NoDedupNoFilter(t *testing.T) {
	recs := Recommend([]string{"react", "react", "docker"})

	if len(recs) != 3 {
		t.Fatalf("expected repeated skills kept, got %d entries", len(recs))
	}
	if recs[0].Skill != "react" || recs[1].Skill != "react" || recs[2].Skill != "docker" {
		t.Fatalf("unexpected order: %v", recs)
	}
	if recs[2].Priority != PriorityMedium {
		t.Fatalf("expected docker priority Medium, got %s", recs[2].Priority)
	}
}

func TestRecommend_CaseInsensitiveLookup(t *testing.T) {
	recs := Recommend([]string{"  AWS "})

	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if !reflect.DeepEqual(recs[0].Platforms, []string{"AWS Training", "A Cloud Guru", "AWS Documentation"}) {
		t.Fatalf("expected aws platforms for mixed-case input, got %v", recs[0].Platforms)
	}
	if recs[0].Priority != PriorityMedium {
		t.Fatalf("expected aws priority Medium, got %s", recs[0].Priority)
	}
}

func TestRecommend_Empty(t *testing.T) {
	if recs := Recommend(nil); len(recs) != 0 {
		t.Fatalf("expected empty output, got %v", recs)
	}
}
