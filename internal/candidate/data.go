package candidate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadProjects loads the projects bank from a {"projects": [...]} JSON file.
func LoadProjects(path string) (*types.ProjectsBank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var bank types.ProjectsBank
	if err := json.Unmarshal(content, &bank); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to unmarshal JSON from %s", path),
			Cause:   err,
		}
	}

	return &bank, nil
}

// LoadExperience loads the experience bank from a {"experience": [...]} JSON file.
func LoadExperience(path string) (*types.ExperienceBank, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var bank types.ExperienceBank
	if err := json.Unmarshal(content, &bank); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to unmarshal JSON from %s", path),
			Cause:   err,
		}
	}

	return &bank, nil
}

// LoadSkillsCatalog loads the master skills catalog, preserving the category
// order of the source document.
func LoadSkillsCatalog(path string) (*types.SkillsCatalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var catalog types.SkillsCatalog
	if err := json.Unmarshal(content, &catalog); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to unmarshal JSON from %s", path),
			Cause:   err,
		}
	}

	return &catalog, nil
}
