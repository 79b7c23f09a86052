// Package grading provides the high-level orchestration of one resume
// grading request: the cheap grader pass, deterministic format scoring,
// retrieval-augmented context assembly, the deep coaching pass, and the
// final score combination.
package grading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-grader/internal/llm"
	"github.com/jonathan/resume-grader/internal/prompts"
	"github.com/jonathan/resume-grader/internal/schemas"
	"github.com/jonathan/resume-grader/internal/scoring"
	"github.com/jonathan/resume-grader/internal/types"
)

// Generation tuning for the two passes. The grader pass runs cold for
// consistent structured output; the deep pass is slightly creative for
// coaching prose.
const (
	graderTemperature = 0.2
	graderMaxTokens   = 600
	deepTemperature   = 0.5
)

// ContextBuilder assembles the retrieved context block for the deep pass.
// *rag.Orchestrator implements it.
type ContextBuilder interface {
	BuildContext(ctx context.Context, role types.Role, grade *types.GradeResult) (string, error)
}

// Result holds the outputs of one grading run.
type Result struct {
	Grade       *types.GradeResult
	FormatScore int
	Context     string
	Feedback    types.Feedback
}

// Pipeline runs the two-pass grading flow. Collaborators are injected at
// composition time; the pipeline holds no per-request state.
type Pipeline struct {
	client  llm.Client
	builder ContextBuilder
	Verbose bool
}

// NewPipeline creates a grading pipeline from an LLM client and a context builder.
func NewPipeline(client llm.Client, builder ContextBuilder) *Pipeline {
	return &Pipeline{client: client, builder: builder}
}

// feedbackEnvelope mirrors the deep pass JSON wrapper.
type feedbackEnvelope struct {
	Feedback types.Feedback `json:"feedback"`
}

// Run grades one resume for one target role.
func (p *Pipeline) Run(ctx context.Context, params types.GradeParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grade params: %w", err)
	}

	// Step 1: cheap grader pass. Any failure falls back to the default
	// grade; retrieval then runs on role seed queries instead.
	grade := p.graderPass(ctx, params.PDF)

	// Step 2: deterministic format score, independent of model output
	formatScore := scoring.ComputeFormatScore(grade.FormatChecks)
	if p.Verbose {
		fmt.Printf("[VERBOSE] deterministic format score = %d\n", formatScore)
	}

	// Step 3: retrieval. Failure is non-fatal; grading continues with an
	// empty context rather than failing the whole request.
	contextText, err := p.builder.BuildContext(ctx, params.Role, grade)
	if err != nil {
		fmt.Printf("Warning: context retrieval failed; continuing without context: %v\n", err)
		contextText = ""
	}

	// Step 4: deep coaching pass with scope guardrails and retrieved context
	feedback, err := p.deepPass(ctx, params, grade, contextText)
	if err != nil {
		return nil, fmt.Errorf("deep grading pass failed: %w", err)
	}

	// Step 5: combine the model readiness score with the format score
	feedback.ReadinessScore = scoring.CombineReadinessWithFormat(feedback.ReadinessScore, float64(formatScore))

	return &Result{
		Grade:       grade,
		FormatScore: formatScore,
		Context:     contextText,
		Feedback:    feedback,
	}, nil
}

// graderPass runs the lite-model grading call and parses its structured
// output, substituting the default grade on any failure.
func (p *Pipeline) graderPass(ctx context.Context, pdf []byte) *types.GradeResult {
	prompt := prompts.MustGet("grading.json", "grader")

	raw, err := p.client.GenerateJSONWithPDF(ctx, prompt, pdf, llm.TierLite, llm.GenerateOptions{
		Temperature:     graderTemperature,
		MaxOutputTokens: graderMaxTokens,
	})
	if err != nil {
		fmt.Printf("Warning: grader pass failed, falling back to default grade: %v\n", err)
		return types.DefaultGrade()
	}

	if err := schemas.ValidateGrade(raw); err != nil {
		fmt.Printf("Warning: grader output failed schema validation, falling back to default grade: %v\n", err)
		return types.DefaultGrade()
	}

	var grade types.GradeResult
	if err := json.Unmarshal([]byte(raw), &grade); err != nil {
		fmt.Printf("Warning: grader output unparsable, falling back to default grade: %v\n", err)
		return types.DefaultGrade()
	}

	return &grade
}

// deepPass runs the standard-model coaching call and parses its feedback.
func (p *Pipeline) deepPass(ctx context.Context, params types.GradeParams, grade *types.GradeResult, contextText string) (types.Feedback, error) {
	prompt := buildScopedPrompt(params.Role, grade, contextText)

	raw, err := p.client.GenerateJSONWithPDF(ctx, prompt, params.PDF, llm.TierStandard, llm.GenerateOptions{
		Temperature:     deepTemperature,
		MaxOutputTokens: deepPassTokenBudget(len(grade.FocusAreas)),
	})
	if err != nil {
		return types.Feedback{}, err
	}

	if err := schemas.ValidateFeedback(raw); err != nil {
		return types.Feedback{}, fmt.Errorf("feedback output failed schema validation: %w", err)
	}

	var envelope feedbackEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return types.Feedback{}, fmt.Errorf("failed to parse feedback: %w", err)
	}
	return envelope.Feedback, nil
}

// buildScopedPrompt wraps the analysis template in scope guardrails derived
// from the grader output and appends the retrieved context.
func buildScopedPrompt(role types.Role, grade *types.GradeResult, contextText string) string {
	focusAreas, _ := json.Marshal(grade.FocusAreas)
	weakBullets, _ := json.Marshal(grade.WeakBullets)

	scoped := prompts.Format(prompts.MustGet("grading.json", "scope"), map[string]string{
		"Role":        string(role),
		"FocusAreas":  string(focusAreas),
		"WeakBullets": string(weakBullets),
		"MainTask":    prompts.MustGet("grading.json", "analysis"),
	})

	prompt := prompts.MustGet("grading.json", "system") + "\n\n" + scoped
	if contextText != "" {
		prompt += "\n\n" + contextText
	}
	return prompt
}

// deepPassTokenBudget scales the deep pass output budget with the number of
// focus areas: more deficits warrant a fuller response.
func deepPassTokenBudget(deficits int) int32 {
	switch deficits {
	case 0:
		return 900
	case 1:
		return 1200
	case 2:
		return 1500
	default:
		return 1800
	}
}
