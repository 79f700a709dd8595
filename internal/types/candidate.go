package types

import "encoding/json"

// Project is one entry from the candidate's projects bank. The source JSON is
// free-form per project, so entries are kept as raw objects and passed through
// to the generation prompts untouched.
type Project = json.RawMessage

// Experience is one entry from the candidate's work history bank, kept raw
// for the same reason as Project.
type Experience = json.RawMessage

// ProjectsBank mirrors the {"projects": [...]} input file.
type ProjectsBank struct {
	Projects []Project `json:"projects"`
}

// ExperienceBank mirrors the {"experience": [...]} input file.
type ExperienceBank struct {
	Experience []Experience `json:"experience"`
}
