package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGrade = `{
  "scores": {"format": 3, "impact": 2, "tech_depth": 4, "projects": 3},
  "focus_areas": ["impact"],
  "weak_bullets": [
    {"section": "experience", "idx": 0, "reason": "no metrics"},
    {"section": "projects", "idx": 1, "reason": "vague impact"},
    {"section": "experience", "idx": 2, "reason": "passive voice"}
  ],
  "format_checks": {
    "sections_present": {"experience": true, "projects": true, "education": true, "skills": true},
    "tense_consistency": true,
    "bullet_style_consistency": true,
    "ats_safe": true,
    "contact_complete": true,
    "length_density_ok": true,
    "skills_normalized": true
  }
}`

func TestValidateGrade_Valid(t *testing.T) {
	assert.NoError(t, ValidateGrade(validGrade))
}

func TestValidateGrade_NotJSON(t *testing.T) {
	err := ValidateGrade("resume looks fine to me")
	assert.Error(t, err)
}

func TestValidateGrade_TooFewWeakBullets(t *testing.T) {
	doc := `{
	  "scores": {"format": 3, "impact": 2, "tech_depth": 4, "projects": 3},
	  "focus_areas": ["impact"],
	  "weak_bullets": [
	    {"section": "experience", "idx": 0, "reason": "no metrics"}
	  ],
	  "format_checks": {
	    "sections_present": {"experience": true, "projects": true, "education": true, "skills": true},
	    "tense_consistency": true,
	    "bullet_style_consistency": true,
	    "ats_safe": true,
	    "contact_complete": true,
	    "length_density_ok": true,
	    "skills_normalized": true
	  }
	}`

	err := ValidateGrade(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateGrade_UnknownFocusArea(t *testing.T) {
	doc := `{
	  "scores": {"format": 3, "impact": 2, "tech_depth": 4, "projects": 3},
	  "focus_areas": ["vibes"],
	  "weak_bullets": [
	    {"section": "experience", "idx": 0, "reason": "a"},
	    {"section": "experience", "idx": 1, "reason": "b"},
	    {"section": "experience", "idx": 2, "reason": "c"}
	  ],
	  "format_checks": {
	    "sections_present": {"experience": true, "projects": true, "education": true, "skills": true},
	    "tense_consistency": true,
	    "bullet_style_consistency": true,
	    "ats_safe": true,
	    "contact_complete": true,
	    "length_density_ok": true,
	    "skills_normalized": true
	  }
	}`

	assert.Error(t, ValidateGrade(doc))
}

func TestValidateFeedback_Valid(t *testing.T) {
	doc := `{
	  "feedback": {
	    "big_tech_readiness_score": 5,
	    "strengths": ["clear structure"],
	    "weaknesses": ["no metrics"],
	    "tips": ["quantify outcomes"],
	    "motivation": "keep going"
	  }
	}`

	assert.NoError(t, ValidateFeedback(doc))
}

func TestValidateFeedback_MissingScore(t *testing.T) {
	doc := `{
	  "feedback": {
	    "strengths": [],
	    "weaknesses": [],
	    "tips": [],
	    "motivation": ""
	  }
	}`

	assert.Error(t, ValidateFeedback(doc))
}
