package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "personalInfo": {
    "fullName": "张三",
    "email": "zhangsan@example.com",
    "phone": "13800138000",
    "location": "北京",
    "summary": "十年后端开发经验，熟悉分布式系统设计。"
  },
  "skills": [
    {"id": "s1", "category": "后端", "skills": ["Go"], "level": "高级"}
  ]
}`

func TestValidateResumeJSON_AcceptsValidDocument(t *testing.T) {
	assert.NoError(t, ValidateResumeJSON([]byte(validDoc)))
}

func TestValidateResumeJSON_RejectsMissingPersonalInfo(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"workExperience": []}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Equal(t, "(root)", verr.Errors[0].Field)
	assert.Contains(t, verr.Errors[0].Message, "personalInfo")
}

func TestValidateResumeJSON_RejectsMissingContactField(t *testing.T) {
	doc := `{
	  "personalInfo": {
	    "fullName": "张三",
	    "email": "zhangsan@example.com",
	    "location": "北京",
	    "summary": "十年后端开发经验，熟悉分布式系统设计。"
	  }
	}`

	err := ValidateResumeJSON([]byte(doc))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "phone")
}

func TestValidateResumeJSON_RejectsUnknownSkillLevel(t *testing.T) {
	doc := `{
	  "personalInfo": {
	    "fullName": "张三",
	    "email": "zhangsan@example.com",
	    "phone": "13800138000",
	    "location": "北京",
	    "summary": "十年后端开发经验，熟悉分布式系统设计。"
	  },
	  "skills": [
	    {"id": "s1", "category": "后端", "skills": ["Go"], "level": "大师"}
	  ]
	}`

	err := ValidateResumeJSON([]byte(doc))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Errors[0].Field, "level")
}

func TestValidateResumeJSON_RejectsMalformedJSON(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"personalInfo":`))

	var serr *SchemaLoadError
	assert.ErrorAs(t, err, &serr)
}
