package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Feedback is the qualitative output of the deep coaching pass. The readiness
// score is overwritten with the combined final score before the report is
// stored or returned.
type Feedback struct {
	ReadinessScore float64  `json:"big_tech_readiness_score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Tips           []string `json:"tips"`
	Motivation     string   `json:"motivation"`
}

// Report is the stored result of one grading request.
type Report struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	ResumeName  string       `json:"resume_name"`
	Role        Role         `json:"role"`
	Feedback    Feedback     `json:"feedback"`
	FormatScore int          `json:"resume_format_score"`
	Grade       *GradeResult `json:"grade,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// GradeParams carries the validated inputs of one grading request.
type GradeParams struct {
	ResumeName string `validate:"required,min=1"`
	Role       Role   `validate:"required"`
	PDF        []byte `validate:"required,min=1"`
}

// Validate validates the GradeParams using the validator.
func (p *GradeParams) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
