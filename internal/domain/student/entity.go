package student

import (
	"time"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/matching"
)

type CareerGoal struct {
	Title  string  `json:"title"`
	Reason *string `json:"reason,omitempty"`
}

type Profile struct {
	Name       *string     `json:"name,omitempty"`
	Email      *string     `json:"email,omitempty"`
	Education  *string     `json:"education,omitempty"`
	CareerGoal *CareerGoal `json:"career_goal,omitempty"`
}

// ProfilePatch carries only the fields a caller supplied. Nil fields are left
// untouched on merge.
type ProfilePatch struct {
	Name       *string
	Email      *string
	Education  *string
	CareerGoal *CareerGoal
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Education == nil && p.CareerGoal == nil
}

type Record struct {
	ID            string                      `json:"student_id"`
	Skills        []string                    `json:"skills"`
	SkillGaps     []string                    `json:"skill_gaps"`
	Pathway       map[string]catalog.Resource `json:"pathway"`
	CareerMatches []matching.CareerMatch      `json:"career_matches"`
	Progress      map[string]bool             `json:"progress"`
	Profile       Profile                     `json:"profile"`
	CreatedAt     time.Time                   `json:"created_at"`
}

// Completion counts completed pathway skills.
func (r Record) Completion() (completed, total int) {
	for _, done := range r.Progress {
		total++
		if done {
			completed++
		}
	}
	return completed, total
}

// Merge applies the supplied patch fields onto p.
func (p Profile) Merge(patch ProfilePatch) Profile {
	if patch.Name != nil {
		p.Name = strPtr(*patch.Name)
	}
	if patch.Email != nil {
		p.Email = strPtr(*patch.Email)
	}
	if patch.Education != nil {
		p.Education = strPtr(*patch.Education)
	}
	if patch.CareerGoal != nil {
		p.CareerGoal = patch.CareerGoal.clone()
	}
	return p
}

func (p Profile) Clone() Profile {
	out := Profile{CareerGoal: p.CareerGoal.clone()}
	if p.Name != nil {
		out.Name = strPtr(*p.Name)
	}
	if p.Email != nil {
		out.Email = strPtr(*p.Email)
	}
	if p.Education != nil {
		out.Education = strPtr(*p.Education)
	}
	return out
}

func (g *CareerGoal) clone() *CareerGoal {
	if g == nil {
		return nil
	}
	out := &CareerGoal{Title: g.Title}
	if g.Reason != nil {
		out.Reason = strPtr(*g.Reason)
	}
	return out
}

// Clone returns a deep copy so callers never share maps or slices with a store.
func (r Record) Clone() Record {
	out := r
	out.Skills = copyStrings(r.Skills)
	out.SkillGaps = copyStrings(r.SkillGaps)

	out.Pathway = make(map[string]catalog.Resource, len(r.Pathway))
	for k, v := range r.Pathway {
		out.Pathway[k] = v
	}
	out.Progress = make(map[string]bool, len(r.Progress))
	for k, v := range r.Progress {
		out.Progress[k] = v
	}

	out.CareerMatches = make([]matching.CareerMatch, len(r.CareerMatches))
	for i, m := range r.CareerMatches {
		m.MatchingSkills = copyStrings(m.MatchingSkills)
		m.MissingSkills = copyStrings(m.MissingSkills)
		m.Details.RequiredSkills = copyStrings(m.Details.RequiredSkills)
		out.CareerMatches[i] = m
	}

	out.Profile = r.Profile.Clone()
	return out
}

func strPtr(s string) *string { return &s }

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
