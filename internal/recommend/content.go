// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"github.com/nextreel/nextreel/internal/catalog"
)

// Similar returns the topN items most similar to key, excluding key
// itself. An unknown key yields an empty result, not an error; the
// caller decides whether absence from the space is a failure.
func (vs *VectorSpace) Similar(key catalog.ItemKey, topN int) []ScoredItem {
	idx, ok := vs.index[key]
	if !ok {
		return nil
	}
	target := vs.vectors[idx]

	out := make([]ScoredItem, 0, len(vs.items)-1)
	for i, vec := range vs.vectors {
		if i == idx {
			continue
		}
		out = append(out, ScoredItem{Key: vs.items[i], Score: dot(target, vec)})
	}
	sortScored(out)
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// RecommendForHistory scores every candidate item by its mean similarity
// to the supplied history set, excluding history items themselves.
// History keys not present in the space are ignored; if none remain the
// result is empty.
func (vs *VectorSpace) RecommendForHistory(history []catalog.ItemKey, topN int) []ScoredItem {
	watched := make(map[int]struct{}, len(history))
	for _, key := range history {
		if idx, ok := vs.index[key]; ok {
			watched[idx] = struct{}{}
		}
	}
	if len(watched) == 0 {
		return nil
	}

	sums := make([]float64, len(vs.items))
	for idx := range watched {
		target := vs.vectors[idx]
		for i, vec := range vs.vectors {
			sums[i] += dot(target, vec)
		}
	}

	n := float64(len(watched))
	out := make([]ScoredItem, 0, len(vs.items)-len(watched))
	for i := range vs.items {
		if _, ok := watched[i]; ok {
			continue
		}
		out = append(out, ScoredItem{Key: vs.items[i], Score: sums[i] / n})
	}
	sortScored(out)
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
