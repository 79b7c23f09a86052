package rag

import "github.com/jonathan/resume-grader/internal/types"

// FilterOptions tunes the example dedup/diversity filter.
type FilterOptions struct {
	// MinScore is the minimum similarity a hit needs to survive. Hits below
	// it are considered too dissimilar to be trustworthy even when novel.
	MinScore float64
	// MaxGroups caps the number of distinct tag groups kept.
	MaxGroups int
}

// DefaultFilterOptions returns the tuning used in production.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{MinScore: 0.55, MaxGroups: 6}
}

// FilterExamples reduces a flattened example-hit candidate list to at most
// opts.MaxGroups diverse hits, in two stages:
//
//  1. Dedup + threshold: iterate in order, drop hits whose id was already
//     seen, keep the rest only when score >= opts.MinScore.
//  2. Diversity cap: keep at most one hit per primary metadata tag
//     (first-seen wins, "misc" when untagged), at most opts.MaxGroups tag
//     groups in encounter order.
//
// Without the cap a handful of near-duplicate high-scoring chunks from one
// category could crowd out all other categories in the context budget.
func FilterExamples(hits []types.SearchHit, opts FilterOptions) []types.SearchHit {
	seen := make(map[int64]bool)
	var filtered []types.SearchHit
	for _, h := range hits {
		if seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		if h.Score >= opts.MinScore {
			filtered = append(filtered, h)
		}
	}

	// Ordered group-by on the primary tag: first hit per tag wins, groups
	// keep their encounter order.
	byTag := make(map[string]types.SearchHit)
	var tagOrder []string
	for _, h := range filtered {
		tag := h.PrimaryTag()
		if _, ok := byTag[tag]; ok {
			continue
		}
		byTag[tag] = h
		tagOrder = append(tagOrder, tag)
	}

	if len(tagOrder) > opts.MaxGroups {
		tagOrder = tagOrder[:opts.MaxGroups]
	}

	diverse := make([]types.SearchHit, 0, len(tagOrder))
	for _, tag := range tagOrder {
		diverse = append(diverse, byTag[tag])
	}
	return diverse
}
