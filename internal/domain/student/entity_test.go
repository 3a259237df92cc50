package student

import (
	"testing"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/matching"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestProfile_MergeKeepsUnsuppliedFields(t *testing.T) {
	p := Profile{}.Merge(ProfilePatch{Email: ptr("b@x.com")})
	p = p.Merge(ProfilePatch{Name: ptr("A")})

	if assert.NotNil(t, p.Name) {
		assert.Equal(t, "A", *p.Name)
	}
	if assert.NotNil(t, p.Email) {
		assert.Equal(t, "b@x.com", *p.Email)
	}
	assert.Nil(t, p.Education)
	assert.Nil(t, p.CareerGoal)
}

func TestProfile_MergeReplacesCareerGoalAsUnit(t *testing.T) {
	p := Profile{CareerGoal: &CareerGoal{Title: "Data Scientist", Reason: ptr("numbers")}}
	p = p.Merge(ProfilePatch{CareerGoal: &CareerGoal{Title: "AI Engineer"}})

	assert.Equal(t, "AI Engineer", p.CareerGoal.Title)
	assert.Nil(t, p.CareerGoal.Reason)
}

func TestProfile_MergeDoesNotAliasPatch(t *testing.T) {
	name := "A"
	p := Profile{}.Merge(ProfilePatch{Name: &name})
	name = "changed"
	assert.Equal(t, "A", *p.Name)
}

func TestProfilePatch_IsEmpty(t *testing.T) {
	assert.True(t, ProfilePatch{}.IsEmpty())
	assert.False(t, ProfilePatch{Education: ptr("BSc")}.IsEmpty())
}

func TestRecord_CloneIsDeep(t *testing.T) {
	r := Record{
		ID:        "student_1",
		Skills:    []string{"Python"},
		SkillGaps: []string{"SQL"},
		Pathway:   map[string]catalog.Resource{"SQL": {Title: "t"}},
		Progress:  map[string]bool{"SQL": false},
		CareerMatches: []matching.CareerMatch{{
			Title:          "Data Scientist",
			MatchingSkills: []string{"Python"},
		}},
		Profile: Profile{Name: ptr("A")},
	}

	c := r.Clone()
	c.Skills[0] = "x"
	c.Progress["SQL"] = true
	c.Pathway["SQL"] = catalog.Resource{Title: "other"}
	c.CareerMatches[0].MatchingSkills[0] = "x"
	*c.Profile.Name = "B"

	assert.Equal(t, "Python", r.Skills[0])
	assert.False(t, r.Progress["SQL"])
	assert.Equal(t, "t", r.Pathway["SQL"].Title)
	assert.Equal(t, "Python", r.CareerMatches[0].MatchingSkills[0])
	assert.Equal(t, "A", *r.Profile.Name)
}

func TestRecord_Completion(t *testing.T) {
	r := Record{Progress: map[string]bool{"a": true, "b": false, "c": true}}
	done, total := r.Completion()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)
}
