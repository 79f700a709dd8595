// Package skills decides which catalog skills are relevant to a job profile
// and renders the retained skills as an HTML table.
package skills

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// alwaysKeep is the fixed set of skills retained regardless of relevance
// matching, compared case-insensitively.
var alwaysKeep = map[string]struct{}{
	"git":        {},
	"github":     {},
	"debugging":  {},
	"react":      {},
	"next.js":    {},
	"node.js":    {},
	"express.js": {},
	"sql":        {},
	"mysql":      {},
	"mongodb":    {},
}

// Normalize lower-cases and trims a skill or job term.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// BuildRelevantSkills filters the master catalog against the job profile.
//
// A skill is retained when its normalized form is a substring of some job
// term, some job term is a substring of it, or it is on the always-keep list.
// The symmetric containment is a deliberately loose heuristic carried over
// as-is: a one-letter job term matches every skill containing that letter,
// and an empty term matches everything. Job terms come from required skills,
// preferred skills, tools and keywords only; responsibilities and soft skills
// do not participate.
//
// Category order and skill order follow the master catalog; categories with
// no retained skills are omitted.
func BuildRelevantSkills(profile *types.JobProfile, master *types.SkillsCatalog) *types.SkillsCatalog {
	terms := jobTerms(profile)

	filtered := &types.SkillsCatalog{}
	for _, category := range master.Categories {
		var kept []string
		for _, skill := range category.Skills {
			if Relevant(skill, terms) {
				kept = append(kept, skill)
			}
		}
		if len(kept) > 0 {
			filtered.Categories = append(filtered.Categories, types.SkillCategory{
				Name:   category.Name,
				Skills: kept,
			})
		}
	}

	return filtered
}

// Relevant reports whether a single skill passes the containment heuristic
// against the normalized term set.
func Relevant(skill string, terms map[string]struct{}) bool {
	norm := Normalize(skill)
	if _, ok := alwaysKeep[norm]; ok {
		return true
	}
	for term := range terms {
		if strings.Contains(norm, term) || strings.Contains(term, norm) {
			return true
		}
	}
	return false
}

// jobTerms collects the normalized matching terms from the profile fields
// that participate in relevance filtering.
func jobTerms(profile *types.JobProfile) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, field := range [][]string{
		profile.RequiredSkills,
		profile.PreferredSkills,
		profile.Tools,
		profile.Keywords,
	} {
		for _, s := range field {
			terms[Normalize(s)] = struct{}{}
		}
	}
	return terms
}
