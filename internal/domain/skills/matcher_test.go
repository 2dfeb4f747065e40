package skills

import (
	"reflect"
	"testing"
)

func TestMatch_EmptyInputs(t *testing.T) {
	cases := []struct {
		name        string
		description string
		userSkills  []string
	}{
		{"empty description", "", []string{"Python"}},
		{"nil skills", "Python developer wanted", nil},
		{"empty skills", "Python developer wanted", []string{}},
		{"both empty", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Match(tc.description, tc.userSkills)
			if res.Percentage != 0 {
				t.Fatalf("expected percentage 0, got %d", res.Percentage)
			}
			if len(res.MatchedSkills) != 0 {
				t.Fatalf("expected no matched skills, got %v", res.MatchedSkills)
			}
		})
	}
}

func TestMatch_AllSkillsPresent(t *testing.T) {
	desc := "We need Node.js, Express, MongoDB, and React experience."
	userSkills := []string{"React", "Node.js", "MongoDB"}

	res := Match(desc, userSkills)
	if res.Percentage != 100 {
		t.Fatalf("expected 100, got %d", res.Percentage)
	}
	if !reflect.DeepEqual(res.MatchedSkills, []string{"React", "Node.js", "MongoDB"}) {
		t.Fatalf("unexpected matched skills: %v", res.MatchedSkills)
	}
}

func TestMatch_PreservesCasingAndOrder(t *testing.T) {
	desc := "looking for react and MONGODB developers"
	res := Match(desc, []string{"MongoDB", "React", "Rust"})

	if !reflect.DeepEqual(res.MatchedSkills, []string{"MongoDB", "React"}) {
		t.Fatalf("unexpected matched skills: %v", res.MatchedSkills)
	}
	if res.Percentage != 67 {
		t.Fatalf("expected 67, got %d", res.Percentage)
	}
}

func TestMatch_ShortSkillInsideLongerWord(t *testing.T) {
	// Substring containment is not word-boundary aware: "go" is inside
	// "mongodb", so it counts as matched.
	res := Match("looking for react and MONGODB developers", []string{"MongoDB", "React", "Go"})
	if !reflect.DeepEqual(res.MatchedSkills, []string{"MongoDB", "React", "Go"}) {
		t.Fatalf("unexpected matched skills: %v", res.MatchedSkills)
	}
	if res.Percentage != 100 {
		t.Fatalf("expected 100, got %d", res.Percentage)
	}
}

func TestMatch_Rounding(t *testing.T) {
	// 1 of 3 -> 33, 2 of 3 -> 67 (round half up).
	desc := "python only"
	res := Match(desc, []string{"python", "react", "vue"})
	if res.Percentage != 33 {
		t.Fatalf("expected 33, got %d", res.Percentage)
	}

	res = Match("python and react", []string{"python", "react", "vue"})
	if res.Percentage != 67 {
		t.Fatalf("expected 67, got %d", res.Percentage)
	}
}

func TestMatch_EmptySkillStringCountsAsMatched(t *testing.T) {
	// "" is contained in every description, so it both matches and
	// contributes to the denominator.
	res := Match("python developer", []string{"python", ""})
	if !reflect.DeepEqual(res.MatchedSkills, []string{"python", ""}) {
		t.Fatalf("unexpected matched skills: %v", res.MatchedSkills)
	}
	if res.Percentage != 100 {
		t.Fatalf("expected 100, got %d", res.Percentage)
	}
}

func TestMatch_DuplicateSkillsNeverExceed100(t *testing.T) {
	desc := "react react react"
	res := Match(desc, []string{"react", "React", "REACT"})
	if res.Percentage != 100 {
		t.Fatalf("expected 100, got %d", res.Percentage)
	}
	if len(res.MatchedSkills) != 3 {
		t.Fatalf("expected 3 matched entries, got %d", len(res.MatchedSkills))
	}
}

func TestMatch_SubstringContainment(t *testing.T) {
	// "java" matches inside "javascript" -- accepted imprecision.
	res := Match("senior javascript engineer", []string{"Java"})
	if res.Percentage != 100 {
		t.Fatalf("expected substring match, got %d", res.Percentage)
	}
}

func TestMatch_PercentageBounds(t *testing.T) {
	descs := []string{"", "go", "go rust python java react vue angular"}
	skillSets := [][]string{nil, {"go"}, {"go", "go", "go"}, {"zzz"}, {"go", "zzz"}}

	for _, d := range descs {
		for _, s := range skillSets {
			res := Match(d, s)
			if res.Percentage < 0 || res.Percentage > 100 {
				t.Fatalf("percentage out of range for desc=%q skills=%v: %d", d, s, res.Percentage)
			}
		}
	}
}
