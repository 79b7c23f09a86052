// Package rag provides retrieval-augmented context assembly for the deep
// grading pass: similarity search over reference chunks, deduplication and
// diversity filtering, and rendering of the final context block.
package rag

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-grader/internal/types"
)

// Embedder turns query text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ChunkStore performs a nearest-neighbor lookup over reference chunks
// restricted to one collection/role/level partition.
type ChunkStore interface {
	SearchChunks(ctx context.Context, collection types.Collection, role types.Role, level types.Level, queryVec []float32, limit int) ([]types.SearchHit, error)
}

// Gateway issues similarity searches against the chunk store. It is
// read-only; both collaborators are injected at composition time.
type Gateway struct {
	embedder Embedder
	store    ChunkStore
}

// NewGateway creates a Gateway from an embedder and a chunk store.
func NewGateway(embedder Embedder, store ChunkStore) *Gateway {
	return &Gateway{embedder: embedder, store: store}
}

// Search embeds queryText and returns at most topK hits from the given
// partition, ordered by descending similarity. Embedding or lookup failures
// propagate; no partial results are synthesized.
func (g *Gateway) Search(ctx context.Context, collection types.Collection, role types.Role, level types.Level, queryText string, topK int) ([]types.SearchHit, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	vec, err := g.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embedding query failed: %w", err)
	}

	hits, err := g.store.SearchChunks(ctx, collection, role, level, vec, topK)
	if err != nil {
		return nil, fmt.Errorf("searching %s chunks failed: %w", collection, err)
	}
	return hits, nil
}

// Convenience wrappers with the canned query text used for each collection.

// SearchExamples finds example resume bullets matching a specific weakness.
func (g *Gateway) SearchExamples(ctx context.Context, role types.Role, queryText string, topK int) ([]types.SearchHit, error) {
	return g.Search(ctx, types.CollectionExamples, role, types.LevelBeginner, queryText, topK)
}

// SearchRubrics retrieves scoring rubrics for a role.
func (g *Gateway) SearchRubrics(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error) {
	return g.Search(ctx, types.CollectionRubrics, role, types.LevelBeginner, fmt.Sprintf("%s beginner rubric", role), topK)
}

// SearchKeywords retrieves ATS-friendly keywords for a role.
func (g *Gateway) SearchKeywords(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error) {
	return g.Search(ctx, types.CollectionKeywords, role, types.LevelBeginner, fmt.Sprintf("%s beginner keywords ATS", role), topK)
}

// SearchJD retrieves relevant job description snippets.
func (g *Gateway) SearchJD(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error) {
	return g.Search(ctx, types.CollectionJD, role, types.LevelBeginner, fmt.Sprintf("%s beginner JD", role), topK)
}

// SearchRewritePatterns retrieves bullet rewrite patterns/templates.
func (g *Gateway) SearchRewritePatterns(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error) {
	return g.Search(ctx, types.CollectionRewritePatterns, role, types.LevelBeginner, fmt.Sprintf("%s beginner bullet rewrite", role), topK)
}

// SearchAntiPatterns retrieves common resume anti-patterns to avoid.
func (g *Gateway) SearchAntiPatterns(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error) {
	return g.Search(ctx, types.CollectionAntiPatterns, role, types.LevelBeginner, fmt.Sprintf("%s beginner resume anti-patterns", role), topK)
}
