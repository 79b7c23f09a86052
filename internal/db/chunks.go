package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-grader/internal/types"
)

// SearchChunks performs a nearest-neighbor lookup over the rag_chunks table
// restricted to one collection/role/level partition, returning at most limit
// hits ordered by descending cosine similarity. pgvector's <=> operator is
// cosine distance, so score = 1 - distance.
func (db *DB) SearchChunks(ctx context.Context, collection types.Collection, role types.Role, level types.Level, queryVec []float32, limit int) ([]types.SearchHit, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, content, metadata, 1 - (embedding <=> $4::vector) AS score
		 FROM rag_chunks
		 WHERE collection = $1 AND role = $2 AND level = $3 AND embedding IS NOT NULL
		 ORDER BY embedding <=> $4::vector
		 LIMIT $5`,
		collection, role, level, VectorLiteral(queryVec), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}
	defer rows.Close()

	var hits []types.SearchHit
	for rows.Next() {
		var (
			hit      types.SearchHit
			metadata []byte
		)
		if err := rows.Scan(&hit.ID, &hit.Content, &metadata, &hit.Score); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &hit.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse chunk metadata: %w", err)
			}
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunk rows: %w", err)
	}

	return hits, nil
}

// ChunkContent is a chunk id/content pair awaiting an embedding.
type ChunkContent struct {
	ID      int64
	Content string
}

// ListChunksMissingEmbedding returns up to limit ingested chunks that have
// no embedding yet, oldest first.
func (db *DB) ListChunksMissingEmbedding(ctx context.Context, limit int) ([]ChunkContent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, content FROM rag_chunks WHERE embedding IS NULL ORDER BY id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks missing embeddings: %w", err)
	}
	defer rows.Close()

	var chunks []ChunkContent
	for rows.Next() {
		var c ChunkContent
		if err := rows.Scan(&c.ID, &c.Content); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		chunks = append(chunks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chunk rows: %w", err)
	}

	return chunks, nil
}

// UpdateChunkEmbedding writes a generated embedding back to its chunk.
func (db *DB) UpdateChunkEmbedding(ctx context.Context, id int64, vec []float32) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE rag_chunks SET embedding = $2::vector WHERE id = $1`,
		id, VectorLiteral(vec),
	)
	if err != nil {
		return fmt.Errorf("failed to update embedding for chunk %d: %w", id, err)
	}
	return nil
}

// VectorLiteral renders a float vector as a pgvector text literal, e.g.
// "[0.1,0.2,0.3]".
func VectorLiteral(vec []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
