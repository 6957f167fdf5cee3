package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTables_Shape(t *testing.T) {
	require.Len(t, technicalRules, 4)
	require.Len(t, researchRules, 4)
	require.Len(t, interdisciplinaryRules, 3)

	for _, rule := range technicalRules {
		assert.NotEmpty(t, rule.triggers)
		assert.NotEmpty(t, rule.templates)
		for _, tmpl := range rule.templates {
			assert.NotEmpty(t, tmpl.title)
			assert.NotEmpty(t, tmpl.description)
			assert.NotEmpty(t, tmpl.difficulty)
			assert.NotEmpty(t, tmpl.duration)
			assert.Nil(t, tmpl.areaFilter, "technical templates carry no researchAreas")
		}
	}
	for _, rule := range researchRules {
		for _, tmpl := range rule.templates {
			assert.NotNil(t, tmpl.areaFilter, "research templates always carry researchAreas")
		}
	}
}

func TestAnySkillMatches(t *testing.T) {
	cases := []struct {
		name     string
		skills   []string
		triggers []string
		want     bool
	}{
		{"exact lowercase", []string{"python"}, []string{"python"}, true},
		{"mixed case skill", []string{"Python"}, []string{"python"}, true},
		{"substring is not a match", []string{"micropython"}, []string{"python"}, false},
		{"no overlap", []string{"go"}, []string{"python"}, false},
		{"empty skills", nil, []string{"python"}, false},
		{"empty triggers", []string{"python"}, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, anySkillMatches(tc.skills, tc.triggers))
		})
	}
}

func TestAnyInterestMatches(t *testing.T) {
	cases := []struct {
		name      string
		interests []string
		triggers  []string
		want      bool
	}{
		{"substring match", []string{"Applied Machine Learning"}, []string{"machine learning"}, true},
		{"case folded", []string{"NLP"}, []string{"nlp"}, true},
		{"no overlap", []string{"Robotics"}, []string{"nlp"}, false},
		{"empty interests", nil, []string{"data"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, anyInterestMatches(tc.interests, tc.triggers))
		})
	}
}

func TestFilterSkills_CaseSensitiveExactMatch(t *testing.T) {
	allowList := []string{"JavaScript", "React"}

	assert.Equal(t, []string{"JavaScript"}, filterSkills([]string{"JavaScript", "vue"}, allowList))
	assert.Empty(t, filterSkills([]string{"javascript", "react"}, allowList))
}

func TestFilterInterests_SubstringKeepsOriginal(t *testing.T) {
	kept := filterInterests([]string{"Biomedical Data Mining", "Robotics"}, []string{"data"})
	assert.Equal(t, []string{"Biomedical Data Mining"}, kept)
}

func TestFirstN(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, firstN([]string{"a", "b", "c"}, 2))
	assert.Equal(t, []string{"a"}, firstN([]string{"a"}, 3))
	assert.Equal(t, []string{}, firstN(nil, 2))
}

func TestCapProjects(t *testing.T) {
	projects := technicalProjects([]string{"javascript", "python", "docker"})
	assert.Len(t, projects, 4)

	// Under the cap, the slice passes through untouched.
	one := technicalProjects([]string{"docker"})
	assert.Len(t, one, 1)
}
