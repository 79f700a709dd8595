// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobProfile represents the structured requirements extracted from a free-text job posting.
type JobProfile struct {
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Tools            []string `json:"tools"`
	Responsibilities []string `json:"responsibilities"`
	SoftSkills       []string `json:"soft_skills"`
	Keywords         []string `json:"keywords"`
	JobTitle         string   `json:"job_title"`
	CompanyName      string   `json:"company_name"`
}

// EmptyJobProfile returns the fixed all-empty profile used when extraction
// produces output that cannot be parsed. Every slice field is non-nil so the
// profile marshals back to the same shape the extraction prompt requests.
func EmptyJobProfile() *JobProfile {
	return &JobProfile{
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Tools:            []string{},
		Responsibilities: []string{},
		SoftSkills:       []string{},
		Keywords:         []string{},
	}
}

// IsEmpty reports whether the profile carries no extracted content at all.
func (p *JobProfile) IsEmpty() bool {
	return len(p.RequiredSkills) == 0 &&
		len(p.PreferredSkills) == 0 &&
		len(p.Tools) == 0 &&
		len(p.Responsibilities) == 0 &&
		len(p.SoftSkills) == 0 &&
		len(p.Keywords) == 0 &&
		p.JobTitle == "" &&
		p.CompanyName == ""
}
