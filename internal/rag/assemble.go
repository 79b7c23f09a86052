package rag

import (
	"strings"

	"github.com/jonathan/resume-grader/internal/types"
)

// contextPreamble opens every assembled context block and tells the deep
// pass not to invent facts beyond the retrieved content.
const contextPreamble = "# CONTEXT (retrieved; do not invent beyond this)"

// AssembleContext renders the retrieved hits into the labeled text block
// injected into the deep grading prompt. Sections appear in a fixed order
// and empty sections are omitted entirely; output is deterministic for
// identical inputs.
func AssembleContext(rubricHits, exampleHits, keywordHits, jdHits, rewriteHits []types.SearchHit) string {
	sections := []string{contextPreamble}

	if block := bulletSection("RUBRICS", rubricHits); block != "" {
		sections = append(sections, block)
	}
	if block := bulletSection("EXAMPLES", exampleHits); block != "" {
		sections = append(sections, block)
	}
	// Keyword chunks are comma-separated lists already; no bullet prefix.
	if block := plainSection("ATS_KEYWORDS", keywordHits); block != "" {
		sections = append(sections, block)
	}
	if block := bulletSection("JD", jdHits); block != "" {
		sections = append(sections, block)
	}
	if block := bulletSection("REWRITE_PATTERNS", rewriteHits); block != "" {
		sections = append(sections, block)
	}

	return strings.Join(sections, "\n")
}

// bulletSection renders hits as "- content" lines between tag markers.
func bulletSection(label string, hits []types.SearchHit) string {
	if len(hits) == 0 {
		return ""
	}
	lines := make([]string, 0, len(hits))
	for _, h := range hits {
		lines = append(lines, "- "+h.Content)
	}
	return "<" + label + ">\n" + strings.Join(lines, "\n") + "\n</" + label + ">"
}

// plainSection renders hit contents as bare lines between tag markers.
func plainSection(label string, hits []types.SearchHit) string {
	if len(hits) == 0 {
		return ""
	}
	lines := make([]string, 0, len(hits))
	for _, h := range hits {
		lines = append(lines, h.Content)
	}
	return "<" + label + ">\n" + strings.Join(lines, "\n") + "\n</" + label + ">"
}
