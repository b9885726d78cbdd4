// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"reflect"
	"testing"

	"github.com/nextreel/nextreel/internal/catalog"
)

// tasteFixture builds a store where users 1 and 2 share taste on movies
// 10 and 11, user 2 additionally loves movie 12, and user 3 likes only
// movie 20.
func tasteFixture() *catalog.Store {
	s := catalog.NewStore()
	s.RecordMovieWatch(catalog.MovieWatch{UserID: 1, MovieID: 10, Percent: 95})
	s.RecordMovieWatch(catalog.MovieWatch{UserID: 1, MovieID: 11, Percent: 90})
	s.RecordMovieWatch(catalog.MovieWatch{UserID: 2, MovieID: 10, Percent: 92})
	s.RecordMovieWatch(catalog.MovieWatch{UserID: 2, MovieID: 11, Percent: 96})
	s.RecordMovieWatch(catalog.MovieWatch{UserID: 2, MovieID: 12, Percent: 100})
	s.RecordMovieWatch(catalog.MovieWatch{UserID: 3, MovieID: 20, Percent: 88})
	return s
}

func TestCollaborativeRecommendWarmPath(t *testing.T) {
	m := buildRatingMatrix(tasteFixture())

	got := m.collaborativeRecommend(1, 10, 20)
	if len(got) == 0 {
		t.Fatal("no recommendations for warm user")
	}
	// User 2 is user 1's strongest neighbor, so movie 12 should lead.
	if got[0].Key != catalog.MovieKey(12) {
		t.Errorf("top recommendation = %v, want movie:12", got[0].Key)
	}
	// Items user 1 already rated are excluded.
	for _, si := range got {
		if si.Key == catalog.MovieKey(10) || si.Key == catalog.MovieKey(11) {
			t.Errorf("already-rated item %v surfaced", si.Key)
		}
	}
}

func TestCollaborativeIdenticalHistoriesYieldIdenticalOutput(t *testing.T) {
	s := tasteFixture()
	// Users 8 and 9 have identical histories.
	for _, user := range []int{8, 9} {
		s.RecordMovieWatch(catalog.MovieWatch{UserID: user, MovieID: 10, Percent: 95})
		s.RecordMovieWatch(catalog.MovieWatch{UserID: user, MovieID: 11, Percent: 90})
	}
	m := buildRatingMatrix(s)

	a := m.collaborativeRecommend(8, 10, 20)
	b := m.collaborativeRecommend(9, 10, 20)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical histories produced different rankings:\n%v\n%v", a, b)
	}
}

func TestCollaborativeUnknownUserGetsPopularity(t *testing.T) {
	m := buildRatingMatrix(tasteFixture())

	a := m.collaborativeRecommend(100, 10, 20)
	b := m.collaborativeRecommend(200, 10, 20)
	if len(a) == 0 {
		t.Fatal("no popularity fallback for unknown user")
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("popularity fallback is not deterministic:\n%v\n%v", a, b)
	}
	// Movies 10 and 11 have two raters each, everything else one. The
	// tie breaks by key ascending.
	want := []catalog.ItemKey{catalog.MovieKey(10), catalog.MovieKey(11), catalog.MovieKey(12), catalog.MovieKey(20)}
	for i, si := range a {
		if si.Key != want[i] {
			t.Errorf("popularity order[%d] = %v, want %v", i, si.Key, want[i])
		}
	}
}

func TestCollaborativeDisjointTasteFallsBackToPopularity(t *testing.T) {
	m := buildRatingMatrix(tasteFixture())

	// User 3 shares no items with anyone, so every neighbor similarity
	// is zero and the similarity sum degenerates.
	got := m.collaborativeRecommend(3, 10, 20)
	if len(got) == 0 {
		t.Fatal("degenerate similarity did not fall back to popularity")
	}
	for _, si := range got {
		if si.Key == catalog.MovieKey(20) {
			t.Errorf("already-rated item %v surfaced in fallback", si.Key)
		}
	}
}

func TestCollaborativeEmptyMatrix(t *testing.T) {
	m := buildRatingMatrix(catalog.NewStore())
	if got := m.collaborativeRecommend(1, 10, 20); got != nil {
		t.Errorf("empty matrix produced %v, want nil", got)
	}
}

func TestSortScoredTieBreak(t *testing.T) {
	items := []ScoredItem{
		{Key: catalog.SeriesKey(2), Score: 1},
		{Key: catalog.MovieKey(9), Score: 1},
		{Key: catalog.MovieKey(3), Score: 2},
	}
	sortScored(items)

	want := []catalog.ItemKey{catalog.MovieKey(3), catalog.MovieKey(9), catalog.SeriesKey(2)}
	for i, si := range items {
		if si.Key != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, si.Key, want[i])
		}
	}
}
