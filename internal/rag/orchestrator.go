package rag

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-grader/internal/types"
)

// Per-category result limits for one grading request.
const (
	rubricTopK   = 2
	keywordTopK  = 1
	jdTopK       = 2
	rewriteTopK  = 3
	examplesTopK = 4
)

// Searcher is the retrieval surface the orchestrator fans out over.
// *Gateway implements it.
type Searcher interface {
	SearchExamples(ctx context.Context, role types.Role, queryText string, topK int) ([]types.SearchHit, error)
	SearchRubrics(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error)
	SearchKeywords(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error)
	SearchJD(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error)
	SearchRewritePatterns(ctx context.Context, role types.Role, topK int) ([]types.SearchHit, error)
}

// Orchestrator issues the fixed set of searches needed for one grading
// request and assembles the retrieved hits into a context block.
type Orchestrator struct {
	searcher Searcher
	filter   FilterOptions
}

// NewOrchestrator creates an Orchestrator with default filter options.
func NewOrchestrator(searcher Searcher) *Orchestrator {
	return &Orchestrator{searcher: searcher, filter: DefaultFilterOptions()}
}

// WithFilterOptions overrides the example filter tuning.
func (o *Orchestrator) WithFilterOptions(opts FilterOptions) *Orchestrator {
	o.filter = opts
	return o
}

// ExampleQueries returns the example-search queries for a grade: up to five
// trimmed weak-bullet reasons, or the role's fixed seed list when none are
// usable.
func ExampleQueries(role types.Role, grade *types.GradeResult) []string {
	if grade != nil {
		if queries := grade.ExampleQueries(); len(queries) > 0 {
			return queries
		}
	}
	return types.SeedQueriesByRole[role]
}

// BuildContext runs the retrieval fan-out for one grading request and
// returns the assembled context block. All searches run concurrently and
// are joined; a single failed search fails the whole call. The caller
// treats failure as non-fatal and grades without retrieved context.
func (o *Orchestrator) BuildContext(ctx context.Context, role types.Role, grade *types.GradeResult) (string, error) {
	queries := ExampleQueries(role, grade)

	var (
		rubricHits  []types.SearchHit
		keywordHits []types.SearchHit
		jdHits      []types.SearchHit
		rewriteHits []types.SearchHit
	)
	// One slot per query preserves issue order regardless of completion order.
	exampleResults := make([][]types.SearchHit, len(queries))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hits, err := o.searcher.SearchRubrics(gCtx, role, rubricTopK)
		if err != nil {
			return fmt.Errorf("rubrics search failed: %w", err)
		}
		rubricHits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := o.searcher.SearchKeywords(gCtx, role, keywordTopK)
		if err != nil {
			return fmt.Errorf("keywords search failed: %w", err)
		}
		keywordHits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := o.searcher.SearchJD(gCtx, role, jdTopK)
		if err != nil {
			return fmt.Errorf("jd search failed: %w", err)
		}
		jdHits = hits
		return nil
	})
	g.Go(func() error {
		hits, err := o.searcher.SearchRewritePatterns(gCtx, role, rewriteTopK)
		if err != nil {
			return fmt.Errorf("rewrite patterns search failed: %w", err)
		}
		rewriteHits = hits
		return nil
	})

	for i, query := range queries {
		g.Go(func() error {
			hits, err := o.searcher.SearchExamples(gCtx, role, query, examplesTopK)
			if err != nil {
				return fmt.Errorf("examples search %q failed: %w", query, err)
			}
			exampleResults[i] = hits
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	// Flatten example hits in the order searches were issued; within one
	// search the store already returns descending score order.
	var exampleHits []types.SearchHit
	for _, hits := range exampleResults {
		exampleHits = append(exampleHits, hits...)
	}

	diverse := FilterExamples(exampleHits, o.filter)

	return AssembleContext(rubricHits, diverse, keywordHits, jdHits, rewriteHits), nil
}
