// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/nextreel/nextreel/internal/catalog"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stop words removed",
			text: "the quick fox",
			want: []string{"quick", "fox", "quick fox"},
		},
		{
			name: "bigrams follow unigrams",
			text: "space opera epic",
			want: []string{"space", "opera", "epic", "space opera", "opera epic"},
		},
		{
			name: "single characters dropped",
			text: "a b war",
			want: []string{"war"},
		},
		{
			name: "case and punctuation normalized",
			text: "Sci-Fi, Thriller!",
			want: []string{"sci", "fi", "thriller", "sci fi", "fi thriller"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func contentFixture() *catalog.Store {
	s := catalog.NewStore()
	s.PutMovie(catalog.Movie{
		ID: 1, Title: "Star Wanderer", Description: "space adventure among distant planets",
		Director: "Rivera", Cast: []string{"Cole", "Winters"},
		Genres: []string{"scifi", "adventure"}, Status: catalog.MovieStatusReady,
	})
	s.PutMovie(catalog.Movie{
		ID: 2, Title: "Void Runner", Description: "space adventure chasing rogue planets",
		Director: "Rivera", Cast: []string{"Cole"},
		Genres: []string{"scifi"}, Status: catalog.MovieStatusReady,
	})
	s.PutMovie(catalog.Movie{
		ID: 3, Title: "Quiet Fields", Description: "a gentle pastoral romance in the countryside",
		Director: "Halloran", Cast: []string{"Marsh"},
		Genres: []string{"romance"}, Status: catalog.MovieStatusReady,
	})
	s.PutSeries(catalog.Series{
		ID: 1, Title: "Deep Orbit", Description: "space station crew adventure drama",
		Director: "Rivera", Cast: []string{"Cole"},
		Genres: []string{"scifi"}, Status: catalog.SeriesStatusActive,
	})
	return s
}

func TestBuildVectorSpaceDeterminism(t *testing.T) {
	a := buildVectorSpace(contentFixture(), 200)
	b := buildVectorSpace(contentFixture(), 200)

	if !reflect.DeepEqual(a.items, b.items) {
		t.Fatalf("item order differs: %v vs %v", a.items, b.items)
	}
	if !reflect.DeepEqual(a.vocab, b.vocab) {
		t.Fatalf("vocabulary differs: %v vs %v", a.vocab, b.vocab)
	}
	if !reflect.DeepEqual(a.vectors, b.vectors) {
		t.Fatal("vectors differ between identical builds")
	}
}

func TestBuildVectorSpaceVocabularyCap(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 5)
	if len(vs.vocab) > 5 {
		t.Errorf("vocabulary size = %d, want <= 5", len(vs.vocab))
	}
}

func TestBuildVectorSpaceNormalization(t *testing.T) {
	vs := buildVectorSpace(contentFixture(), 200)
	for i, vec := range vs.vectors {
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm != 0 && math.Abs(norm-1) > 1e-9 {
			t.Errorf("vector %d norm = %v, want 1 or 0", i, norm)
		}
	}
}

func TestZeroVectorItemSimilarityIsZero(t *testing.T) {
	s := contentFixture()
	// An item with no usable text gets an all-zero vector.
	s.PutMovie(catalog.Movie{ID: 4, Title: "X", Status: catalog.MovieStatusReady})

	vs := buildVectorSpace(s, 200)
	for _, si := range vs.Similar(catalog.MovieKey(4), 10) {
		if si.Score != 0 {
			t.Errorf("similarity to zero-vector item = %v for %v, want 0", si.Score, si.Key)
		}
	}
}

func TestVectorSpaceSkipsNonReadyItems(t *testing.T) {
	s := contentFixture()
	s.PutMovie(catalog.Movie{ID: 9, Title: "Hidden", Description: "space adventure",
		Genres: []string{"scifi"}, Status: catalog.MovieStatusPending})
	s.PutSeries(catalog.Series{ID: 9, Title: "Gone", Status: catalog.SeriesStatusInactive})

	vs := buildVectorSpace(s, 200)
	if vs.Contains(catalog.MovieKey(9)) {
		t.Error("pending movie was vectorized")
	}
	if vs.Contains(catalog.SeriesKey(9)) {
		t.Error("inactive series was vectorized")
	}
}
