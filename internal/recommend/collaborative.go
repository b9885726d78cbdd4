// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"math"
	"sort"
)

// cosineRows computes cosine similarity between two sparse rating rows.
// Returns 0 when either row has zero norm.
func cosineRows(a, b map[int]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller row for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for j, av := range a {
		if bv, ok := b[j]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}
	var na, nb float64
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// neighbor pairs a user index with its similarity to the target user.
type neighbor struct {
	userIdx int
	sim     float64
}

// collaborativeRecommend produces ranked predictions for a user from the
// rating matrix.
//
// Warm path: cosine similarity between the target row and every other
// row; the top neighborCount most-similar users form the neighbor set;
// each candidate item the target has not rated scores
// sum(rating*sim)/sum(sim) over that set.
//
// Unknown users, and users whose neighbor similarity sum is zero, fall
// back to global popularity.
func (m *ratingMatrix) collaborativeRecommend(userID, topN, neighborCount int) []ScoredItem {
	if m.empty() {
		return nil
	}

	userIdx, ok := m.userIndex[userID]
	if !ok {
		return m.popular(topN, nil)
	}
	target := m.rows[userIdx]

	neighbors := make([]neighbor, 0, len(m.users)-1)
	for i := range m.rows {
		if i == userIdx {
			continue
		}
		neighbors = append(neighbors, neighbor{i, cosineRows(target, m.rows[i])})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].sim != neighbors[j].sim {
			return neighbors[i].sim > neighbors[j].sim
		}
		return neighbors[i].userIdx < neighbors[j].userIdx
	})
	if len(neighbors) > neighborCount {
		neighbors = neighbors[:neighborCount]
	}

	var simSum float64
	for _, n := range neighbors {
		simSum += n.sim
	}
	if simSum == 0 {
		// No overlapping taste among neighbors. Degenerate similarity,
		// not an error: serve popularity instead.
		return m.popular(topN, target)
	}

	weighted := make(map[int]float64)
	for _, n := range neighbors {
		if n.sim == 0 {
			continue
		}
		for j, rating := range m.rows[n.userIdx] {
			weighted[j] += rating * n.sim
		}
	}

	out := make([]ScoredItem, 0, len(weighted))
	for j, w := range weighted {
		if _, rated := target[j]; rated {
			continue
		}
		out = append(out, ScoredItem{Key: m.items[j], Score: w / simSum})
	}
	sortScored(out)
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// popular returns the globally most-interacted-with items, scored by
// rater count. Items present in exclude (a rating row) are skipped.
func (m *ratingMatrix) popular(topN int, exclude map[int]float64) []ScoredItem {
	if m.empty() {
		return nil
	}
	out := make([]ScoredItem, 0, len(m.items))
	for j, count := range m.raters {
		if count == 0 {
			continue
		}
		if _, rated := exclude[j]; rated {
			continue
		}
		out = append(out, ScoredItem{Key: m.items[j], Score: float64(count)})
	}
	sortScored(out)
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// sortScored orders items by score descending, ties by key ascending.
// Every ranked list in this package goes through it so results are
// reproducible across runs.
func sortScored(items []ScoredItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Key.Less(items[j].Key)
	})
}
