// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"testing"

	"github.com/nextreel/nextreel/internal/catalog"
)

func TestSimilarExcludesSelf(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 200)

	for _, si := range vs.Similar(catalog.MovieKey(1), 10) {
		if si.Key == catalog.MovieKey(1) {
			t.Fatal("Similar returned the query item itself")
		}
	}
}

func TestSimilarUnknownKeyIsEmpty(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 200)

	if got := vs.Similar(catalog.MovieKey(999), 10); len(got) != 0 {
		t.Errorf("Similar for unknown key = %v, want empty", got)
	}
}

func TestSimilarRanksRelatedContentFirst(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 200)

	got := vs.Similar(catalog.MovieKey(1), 3)
	if len(got) == 0 {
		t.Fatal("Similar returned nothing")
	}
	// Movie 2 shares genre, director, cast, and description terms with
	// movie 1; the pastoral romance does not.
	if got[0].Key != catalog.MovieKey(2) {
		t.Errorf("top similar = %v, want movie:2 (got list %v)", got[0].Key, got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}
}

func TestRecommendForHistoryExcludesHistory(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 200)
	history := []catalog.ItemKey{catalog.MovieKey(1), catalog.SeriesKey(1)}

	got := vs.RecommendForHistory(history, 10)
	if len(got) == 0 {
		t.Fatal("RecommendForHistory returned nothing")
	}
	for _, si := range got {
		for _, h := range history {
			if si.Key == h {
				t.Errorf("history item %v appeared in output", h)
			}
		}
	}
}

func TestRecommendForHistoryEmptyHistory(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 200)

	if got := vs.RecommendForHistory(nil, 10); len(got) != 0 {
		t.Errorf("RecommendForHistory(nil) = %v, want empty", got)
	}
	unknown := []catalog.ItemKey{catalog.MovieKey(777)}
	if got := vs.RecommendForHistory(unknown, 10); len(got) != 0 {
		t.Errorf("RecommendForHistory(unknown-only) = %v, want empty", got)
	}
}
