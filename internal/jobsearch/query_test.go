package jobsearch

import "testing"

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		name     string
		skills   []string
		location string
		want     string
	}{
		{
			name:   "languages and framework",
			skills: []string{"Python", "JavaScript", "Golang", "React", "MongoDB"},
			want:   "Python JavaScript React developer jobs India",
		},
		{
			name:   "framework only",
			skills: []string{"React", "MongoDB"},
			want:   "React developer jobs India",
		},
		{
			name:   "no classified skills falls back to first two",
			skills: []string{"MongoDB", "Docker", "Jira"},
			want:   "MongoDB Docker developer jobs India",
		},
		{
			name:     "location before suffix",
			skills:   []string{"Python"},
			location: "Mumbai",
			want:     "Python Mumbai developer jobs India",
		},
		{
			name:     "country marker not repeated",
			skills:   []string{"Python"},
			location: "Mumbai India",
			want:     "Python Mumbai India developer jobs",
		},
		{
			name:   "duplicate terms collapsed",
			skills: []string{"Node.js", "Node.js"},
			want:   "Node.js developer jobs India",
		},
		{
			name:   "empty skills",
			skills: nil,
			want:   "developer jobs India",
		},
		{
			name:   "single raw skill fallback",
			skills: []string{"Leadership"},
			want:   "Leadership developer jobs India",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildQuery(tc.skills, tc.location)
			if got != tc.want {
				t.Fatalf("BuildQuery(%v, %q) = %q, want %q", tc.skills, tc.location, got, tc.want)
			}
		})
	}
}

func TestBuildQuery_DotStrippedFrameworkMatch(t *testing.T) {
	// "NodeJS" carries no dot but still matches the "node.js" framework
	// entry because classification strips dots from framework terms.
	got := BuildQuery([]string{"NodeJS"}, "")
	if got != "NodeJS developer jobs India" {
		t.Fatalf("unexpected query: %q", got)
	}
}
