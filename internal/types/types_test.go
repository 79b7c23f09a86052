package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(string(role))
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
}

func TestParseRole_Unknown(t *testing.T) {
	_, err := ParseRole("Astronaut")
	assert.Error(t, err)

	// Matching is exact, not case-insensitive
	_, err = ParseRole("backend engineer")
	assert.Error(t, err)
}

func TestSeedQueriesByRole_CoverAllRoles(t *testing.T) {
	for _, role := range Roles {
		assert.NotEmpty(t, SeedQueriesByRole[role], "role %s has no seed queries", role)
	}
}

func TestSearchHit_PrimaryTag(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		expected string
	}{
		{"no metadata", nil, "misc"},
		{"no tags key", map[string]any{"source": "x"}, "misc"},
		{"empty tags", map[string]any{"tags": []any{}}, "misc"},
		{"string slice", map[string]any{"tags": []string{"caching", "latency"}}, "caching"},
		{"any slice from JSON", map[string]any{"tags": []any{"metrics", "latency"}}, "metrics"},
		{"empty first tag", map[string]any{"tags": []any{""}}, "misc"},
		{"non-string first tag", map[string]any{"tags": []any{42}}, "misc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := SearchHit{Metadata: tt.metadata}
			assert.Equal(t, tt.expected, hit.PrimaryTag())
		})
	}
}

func TestSectionsPresent_Count(t *testing.T) {
	assert.Equal(t, 0, SectionsPresent{}.Count())
	assert.Equal(t, 2, SectionsPresent{Experience: true, Skills: true}.Count())
	assert.Equal(t, 4, SectionsPresent{Experience: true, Projects: true, Education: true, Skills: true}.Count())
}

func TestGradeResult_ExampleQueries(t *testing.T) {
	grade := &GradeResult{
		WeakBullets: []WeakBullet{
			{Section: SectionExperience, Idx: 0, Reason: "vague verb"},
			{Section: SectionExperience, Idx: 1, Reason: "  "},
			{Section: SectionProjects, Idx: 0, Reason: " no metric "},
		},
	}

	assert.Equal(t, []string{"vague verb", "no metric"}, grade.ExampleQueries())
}

func TestGradeResult_ExampleQueries_CapsAtFive(t *testing.T) {
	grade := &GradeResult{}
	for i := 0; i < 7; i++ {
		grade.WeakBullets = append(grade.WeakBullets, WeakBullet{Reason: "weak"})
	}

	assert.Len(t, grade.ExampleQueries(), 5)
}

func TestGradeResult_ExampleQueries_Empty(t *testing.T) {
	assert.Nil(t, (&GradeResult{}).ExampleQueries())
}

func TestDefaultGrade(t *testing.T) {
	grade := DefaultGrade()

	assert.Equal(t, CategoryScores{Format: 3, Impact: 3, TechDepth: 3, Projects: 3}, grade.Scores)
	assert.Equal(t, []string{"impact", "tech_depth"}, grade.FocusAreas)
	assert.Nil(t, grade.WeakBullets)
	// Retrieval must fall back to seed queries
	assert.Nil(t, grade.ExampleQueries())
}

func TestGradeParams_Validate(t *testing.T) {
	params := &GradeParams{
		ResumeName: "resume.pdf",
		Role:       RoleBackend,
		PDF:        []byte("%PDF-"),
	}
	assert.NoError(t, params.Validate())

	assert.Error(t, (&GradeParams{Role: RoleBackend, PDF: []byte("x")}).Validate())
	assert.Error(t, (&GradeParams{ResumeName: "r.pdf", Role: RoleBackend}).Validate())
}
