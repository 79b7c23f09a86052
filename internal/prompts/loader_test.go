package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_GradingPrompts(t *testing.T) {
	ClearCache()

	for _, key := range []string{"system", "grader", "analysis", "scope"} {
		prompt, err := Get("grading.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("grading.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "system")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("grading.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	out := Format("role = {{.Role}}, focus = {{.Focus}}", map[string]string{
		"Role":  "Backend Engineer",
		"Focus": "impact",
	})
	assert.Equal(t, "role = Backend Engineer, focus = impact", out)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	out := Format("{{.Missing}}", map[string]string{"Role": "x"})
	assert.Equal(t, "{{.Missing}}", out)
}
