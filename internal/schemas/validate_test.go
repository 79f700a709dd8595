package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobProfileJSON_Valid(t *testing.T) {
	doc := `{
		"required_skills": ["Go"],
		"preferred_skills": [],
		"tools": [],
		"responsibilities": [],
		"soft_skills": [],
		"keywords": [],
		"job_title": "Engineer",
		"company_name": ""
	}`
	assert.NoError(t, ValidateJobProfileJSON(doc))
}

func TestValidateJobProfileJSON_WrongFieldType(t *testing.T) {
	err := ValidateJobProfileJSON(`{"required_skills": "Go"}`)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Equal(t, "required_skills", verr.Errors[0].Field)
}

func TestValidateJobProfileJSON_NonObject(t *testing.T) {
	assert.Error(t, ValidateJobProfileJSON(`["a"]`))
}

func TestValidateJobProfileJSON_InvalidJSON(t *testing.T) {
	assert.Error(t, ValidateJobProfileJSON(`{not json`))
}

func TestValidateJobProfileJSON_ExtraFieldsAllowed(t *testing.T) {
	assert.NoError(t, ValidateJobProfileJSON(`{"job_title": "x", "salary": "lots"}`))
}
