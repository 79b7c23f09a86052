package types

// Collection is a logical partition of reference content by purpose.
type Collection string

// Reference content collections stored in the vector table.
const (
	CollectionRubrics         Collection = "rubrics"
	CollectionExamples        Collection = "examples"
	CollectionKeywords        Collection = "keywords"
	CollectionJD              Collection = "jd"
	CollectionRewritePatterns Collection = "rewrite_patterns"
	CollectionAntiPatterns    Collection = "anti_patterns"
)

// Collections lists every valid collection.
var Collections = []Collection{
	CollectionRubrics,
	CollectionExamples,
	CollectionKeywords,
	CollectionJD,
	CollectionRewritePatterns,
	CollectionAntiPatterns,
}

// ReferenceChunk is one retrievable unit of reference content. Chunks are
// immutable once ingested; the grading path only reads them.
type ReferenceChunk struct {
	ID         int64          `json:"id"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Collection Collection     `json:"collection"`
	Role       Role           `json:"role"`
	Level      Level          `json:"level"`
}

// SearchHit is one similarity-search result. Score is cosine similarity in
// [0,1], higher is more relevant. Hits live only for the duration of one
// grading request.
type SearchHit struct {
	ID       int64          `json:"id"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Score    float64        `json:"score"`
}

// PrimaryTag returns the first entry of the metadata "tags" list, or "misc"
// when tags are absent or empty. Used for diversity grouping.
func (h SearchHit) PrimaryTag() string {
	tags, ok := h.Metadata["tags"]
	if !ok {
		return "misc"
	}
	switch v := tags.(type) {
	case []string:
		if len(v) > 0 && v[0] != "" {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok && s != "" {
				return s
			}
		}
	}
	return "misc"
}
