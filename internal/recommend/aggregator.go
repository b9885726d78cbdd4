// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"sort"

	"github.com/nextreel/nextreel/internal/catalog"
)

// ImplicitRating maps a watch-progress percentage to a 1-5 rating.
// The bands are fixed: finishing content is a strong positive signal,
// abandoning it early is a weak one, but never zero (zero cells mean
// "no interaction" in the matrix).
func ImplicitRating(percent float64) float64 {
	switch {
	case percent >= 90:
		return 5
	case percent >= 75:
		return 4
	case percent >= 50:
		return 3
	case percent >= 25:
		return 2
	default:
		return 1
	}
}

// ratingMatrix is a sparse user-by-item rating matrix. Rows and columns
// are index-addressed; users are ordered by ID ascending and items by
// key ascending so identical input data always yields identical layout.
type ratingMatrix struct {
	users     []int
	items     []catalog.ItemKey
	userIndex map[int]int
	itemIndex map[catalog.ItemKey]int

	// rows holds one sparse rating row per user index, keyed by item
	// index. Absent cells are zero (no interaction).
	rows []map[int]float64

	// raters counts users with a nonzero cell per item index. This is
	// the popularity signal used by the cold-start fallback.
	raters []int
}

// buildRatingMatrix aggregates watch progress and explicit ratings into a
// unified user-by-item matrix spanning both movies and series.
//
// Movie cells come from watch percentage via ImplicitRating. A series cell
// is derived from the arithmetic mean of the user's episode watch
// percentages for that series. Explicit ratings override implicit ones,
// last write wins.
func buildRatingMatrix(provider DataProvider) *ratingMatrix {
	cells := make(map[int]map[catalog.ItemKey]float64)

	put := func(userID int, key catalog.ItemKey, rating float64) {
		row, ok := cells[userID]
		if !ok {
			row = make(map[catalog.ItemKey]float64)
			cells[userID] = row
		}
		row[key] = rating
	}

	for _, w := range provider.MovieWatches() {
		put(w.UserID, catalog.MovieKey(w.MovieID), ImplicitRating(w.Percent))
	}

	// Aggregate episode progress into one implicit rating per series.
	type userSeries struct{ userID, seriesID int }
	pctSum := make(map[userSeries]float64)
	pctCount := make(map[userSeries]int)
	for _, w := range provider.EpisodeWatches() {
		seriesID, ok := provider.SeriesIDForEpisode(w.EpisodeID)
		if !ok {
			continue
		}
		k := userSeries{w.UserID, seriesID}
		pctSum[k] += w.Percent
		pctCount[k]++
	}
	for k, sum := range pctSum {
		put(k.userID, catalog.SeriesKey(k.seriesID), ImplicitRating(sum/float64(pctCount[k])))
	}

	// Explicit ratings override the implicit signal.
	for _, r := range provider.MovieRatings() {
		put(r.UserID, catalog.MovieKey(r.MovieID), float64(r.Rating))
	}
	for _, r := range provider.SeriesRatings() {
		put(r.UserID, catalog.SeriesKey(r.SeriesID), float64(r.Rating))
	}

	m := &ratingMatrix{
		userIndex: make(map[int]int, len(cells)),
	}

	m.users = make([]int, 0, len(cells))
	for userID := range cells {
		m.users = append(m.users, userID)
	}
	sort.Ints(m.users)
	for i, userID := range m.users {
		m.userIndex[userID] = i
	}

	itemSet := make(map[catalog.ItemKey]struct{})
	for _, row := range cells {
		for key := range row {
			itemSet[key] = struct{}{}
		}
	}
	m.items = make([]catalog.ItemKey, 0, len(itemSet))
	for key := range itemSet {
		m.items = append(m.items, key)
	}
	sort.Slice(m.items, func(i, j int) bool { return m.items[i].Less(m.items[j]) })
	m.itemIndex = make(map[catalog.ItemKey]int, len(m.items))
	for i, key := range m.items {
		m.itemIndex[key] = i
	}

	m.rows = make([]map[int]float64, len(m.users))
	m.raters = make([]int, len(m.items))
	for i, userID := range m.users {
		src := cells[userID]
		row := make(map[int]float64, len(src))
		for key, rating := range src {
			j := m.itemIndex[key]
			row[j] = rating
			m.raters[j]++
		}
		m.rows[i] = row
	}

	return m
}

// empty reports whether the matrix has no interaction data at all.
func (m *ratingMatrix) empty() bool {
	return len(m.users) == 0 || len(m.items) == 0
}

// ratedKeys returns the item keys the user has a nonzero cell for,
// ordered ascending. Returns nil for unknown users.
func (m *ratingMatrix) ratedKeys(userID int) []catalog.ItemKey {
	idx, ok := m.userIndex[userID]
	if !ok {
		return nil
	}
	keys := make([]catalog.ItemKey, 0, len(m.rows[idx]))
	for j := range m.rows[idx] {
		keys = append(keys, m.items[j])
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
