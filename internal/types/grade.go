package types

import "strings"

// Section identifies a resume section for weak-bullet references.
type Section string

// Resume sections the grader pass may flag.
const (
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionEducation  Section = "education"
	SectionSummary    Section = "summary"
	SectionSkills     Section = "skills"
)

// WeakBullet is a resume line item flagged by the grader pass as needing
// improvement. Reason doubles as a retrieval query.
type WeakBullet struct {
	Section Section `json:"section"`
	Idx     int     `json:"idx"`
	Reason  string  `json:"reason"`
}

// CategoryScores holds the grader pass per-category scores, each 0-5.
type CategoryScores struct {
	Format    int `json:"format"`
	Impact    int `json:"impact"`
	TechDepth int `json:"tech_depth"`
	Projects  int `json:"projects"`
}

// SectionsPresent records which core resume sections were found.
type SectionsPresent struct {
	Experience bool `json:"experience"`
	Projects   bool `json:"projects"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
}

// Count returns the number of present sections.
func (s SectionsPresent) Count() int {
	n := 0
	for _, present := range []bool{s.Experience, s.Projects, s.Education, s.Skills} {
		if present {
			n++
		}
	}
	return n
}

// FormatChecks is the fixed boolean formatting checklist produced by the
// grader pass. Missing fields unmarshal to false, which the scorer treats as
// a failed check.
type FormatChecks struct {
	SectionsPresent        SectionsPresent `json:"sections_present"`
	TenseConsistency       bool            `json:"tense_consistency"`
	BulletStyleConsistency bool            `json:"bullet_style_consistency"`
	ATSSafe                bool            `json:"ats_safe"`
	ContactComplete        bool            `json:"contact_complete"`
	LengthDensityOK        bool            `json:"length_density_ok"`
	SkillsNormalized       bool            `json:"skills_normalized"`
}

// GradeResult is the structured output of the cheap grader pass.
type GradeResult struct {
	Scores       CategoryScores `json:"scores"`
	FocusAreas   []string       `json:"focus_areas"`
	WeakBullets  []WeakBullet   `json:"weak_bullets"`
	FormatChecks FormatChecks   `json:"format_checks"`
}

// ExampleQueries derives retrieval queries from the weak bullets: trimmed
// non-empty reasons in original order, capped at five. Returns nil when no
// bullet carries a usable reason.
func (g *GradeResult) ExampleQueries() []string {
	bullets := g.WeakBullets
	if len(bullets) > 5 {
		bullets = bullets[:5]
	}
	var queries []string
	for _, wb := range bullets {
		reason := strings.TrimSpace(wb.Reason)
		if reason != "" {
			queries = append(queries, reason)
		}
	}
	return queries
}

// DefaultFormatChecks is the checklist substituted when the grader pass fails
// entirely. Deliberately imperfect so a failed pass cannot inflate the score.
func DefaultFormatChecks() FormatChecks {
	return FormatChecks{
		SectionsPresent: SectionsPresent{
			Experience: true,
			Projects:   true,
			Education:  true,
			Skills:     true,
		},
		TenseConsistency:       true,
		BulletStyleConsistency: false,
		ATSSafe:                true,
		ContactComplete:        true,
		LengthDensityOK:        false,
		SkillsNormalized:       false,
	}
}

// DefaultGrade is the GradeResult substituted when the grader pass fails or
// returns unparsable output. Retrieval then falls back to role seed queries.
func DefaultGrade() *GradeResult {
	return &GradeResult{
		Scores:       CategoryScores{Format: 3, Impact: 3, TechDepth: 3, Projects: 3},
		FocusAreas:   []string{"impact", "tech_depth"},
		WeakBullets:  nil,
		FormatChecks: DefaultFormatChecks(),
	}
}
