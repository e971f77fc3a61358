package assessment

import "testing"

func TestLevelsBySection(t *testing.T) {
	results := []DomainResult{
		{Domain: DomainMath, Level: LevelWeak},
		{Domain: DomainPhysics, Level: LevelStrong},
	}
	sections := []string{"Mathematics", "Physics", "Exam Strategy", "Reading Comprehension"}

	got := LevelsBySection(results, sections, "")
	want := map[string]Level{
		"Mathematics":           LevelWeak,
		"Physics":               LevelStrong,
		"Exam Strategy":         LevelModerate,
		"Reading Comprehension": LevelModerate,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sections, want %d", len(got), len(want))
	}
	for s, lvl := range want {
		if got[s] != lvl {
			t.Errorf("%q = %q, want %q", s, got[s], lvl)
		}
	}
}

func TestSectionMap_SharedSectionTakesWeakest(t *testing.T) {
	m := SectionMap{DomainMath: "Science", DomainPhysics: "Science"}
	results := []DomainResult{
		{Domain: DomainMath, Level: LevelStrong},
		{Domain: DomainPhysics, Level: LevelWeak},
	}
	got := m.Levels(results, []string{"Science", "Art"}, LevelStrong)
	if got["Science"] != LevelWeak {
		t.Errorf("Science = %s, want weak", got["Science"])
	}
	if got["Art"] != LevelStrong {
		t.Errorf("Art = %s, want explicit fallback strong", got["Art"])
	}
}
