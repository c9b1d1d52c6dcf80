package worker

import "testing"

func TestHasSkillToken(t *testing.T) {
	cases := []struct {
		skills string
		token  string
		want   bool
	}{
		{"harvesting, ploughing", "harvesting", true},
		{"harvesting, ploughing", "plough", true},
		{"harvesting", "Harvesting", false},
		{"harvesting", "sowing", false},
		{"", "harvesting", false},
		{"harvesting", "", true},
		{"weeding-and-sowing", "and", true},
	}
	for _, tc := range cases {
		if got := HasSkillToken(tc.skills, tc.token); got != tc.want {
			t.Fatalf("HasSkillToken(%q, %q) = %v, want %v", tc.skills, tc.token, got, tc.want)
		}
	}
}
